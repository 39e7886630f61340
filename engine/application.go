package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/cadence/engine/core"
)

const (
	DefaultTickRate     float64 = 60
	DefaultMaxFrameTime float64 = 0.25
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"height"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Minimum log level name ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
	// Simulation ticks per second. Must be positive.
	TickRate float64 `toml:"tick_rate"`
	// Per-frame cap on accumulated time in seconds, the spiral-of-death guard.
	MaxFrameTime float64 `toml:"max_frame_time"`
	// When positive, sleep after rendering to cap the frame rate.
	LimitFPS float64 `toml:"limit_fps"`
}

// DefaultApplicationConfig returns a configuration with the standard
// 60 ticks/second rate and a 250ms frame-time cap.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:    100,
		StartPosY:    100,
		StartWidth:   1280,
		StartHeight:  720,
		Name:         "Cadence Application",
		LogLevel:     "info",
		TickRate:     DefaultTickRate,
		MaxFrameTime: DefaultMaxFrameTime,
	}
}

// LoadApplicationConfig reads a TOML configuration file, filling any omitted
// field from the defaults. The configuration is immutable for the lifetime
// of the loop; it is read once and never watched.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate reports configuration errors before the loop ever starts.
func (c *ApplicationConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config tick_rate %v: %w", c.TickRate, core.ErrInvalidTickRate)
	}
	if c.MaxFrameTime <= 0 {
		return fmt.Errorf("config max_frame_time %v: %w", c.MaxFrameTime, core.ErrInvalidMaxFrameTime)
	}
	return nil
}

// MaxFrameDuration returns the spiral-of-death cap as a time.Duration.
func (c *ApplicationConfig) MaxFrameDuration() time.Duration {
	return time.Duration(c.MaxFrameTime * float64(time.Second))
}
