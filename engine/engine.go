package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/cadence/engine/core"
	"github.com/spaghettifunk/cadence/engine/platform"
)

type Stage uint8

const (
	// Engine has been created but the loop has not started
	StageIdle Stage = iota
	// Engine is executing loop iterations
	StageRunning
	// A termination trigger fired; the current iteration is completing
	StageExiting
	// The loop has returned
	StageTerminated
)

// messagePump is the narrow windowing contract the loop depends on: event
// delivery and lifecycle, nothing about rendering surfaces.
type messagePump interface {
	Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error
	PumpMessages() ([]core.EventContext, error)
	Shutdown() error
}

// Engine drives the per-frame protocol: pump events, advance the fixed
// timestep, run the application's update/render callbacks and age the input
// snapshot. Everything runs on a single thread; the input and timestep state
// are owned here and never shared.
type Engine struct {
	id           uuid.UUID
	currentStage Stage
	gameInstance *Game
	isSuspended  bool
	platform     messagePump
	input        *core.Input
	ingester     *core.Ingester
	timestep     *core.Timestep
	clock        *core.Clock
	metrics      *core.Metrics
	width        uint32
	height       uint32
	exitCode     int

	// tick supplies the per-iteration wall-clock delta; swapped out in tests.
	tick func() time.Duration
}

func New(g *Game) (*Engine, error) {
	return newEngine(g, platform.New())
}

func newEngine(g *Game, pump messagePump) (*Engine, error) {
	config := g.ApplicationConfig
	if config == nil {
		config = DefaultApplicationConfig()
		g.ApplicationConfig = config
	}
	if err := config.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	core.SetLogLevel(core.ParseLogLevel(config.LogLevel))

	timestep, err := core.NewTimestep(config.TickRate, config.MaxFrameDuration())
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	input := core.NewInput()
	e := &Engine{
		id:           uuid.New(),
		currentStage: StageIdle,
		gameInstance: g,
		platform:     pump,
		input:        input,
		ingester:     core.NewIngester(input),
		timestep:     timestep,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		width:        config.StartWidth,
		height:       config.StartHeight,
	}
	e.tick = e.clock.Tick

	// Give the application read access to the per-frame state.
	g.Input = e.input
	g.Metrics = e.metrics

	return e, nil
}

func (e *Engine) Initialize() error {
	config := e.gameInstance.ApplicationConfig

	if err := e.platform.Startup(config.Name,
		config.StartPosX,
		config.StartPosY,
		config.StartWidth,
		config.StartHeight); err != nil {
		return fmt.Errorf("platform startup: %w", err)
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	core.LogInfo("engine %s initialized: %.0f ticks/s, max frame time %s",
		e.id, config.TickRate, config.MaxFrameDuration())
	return nil
}

// Run executes the loop until the window requests close or an update
// callback returns Exit. It returns the application's exit code and, when
// the platform pump fails, the terminating error.
func (e *Engine) Run() (int, error) {
	e.currentStage = StageRunning
	e.clock.Start()

	config := e.gameInstance.ApplicationConfig
	fixedDelta := e.timestep.Delta().Seconds()

	var frameLimit time.Duration
	if config.LimitFPS > 0 {
		frameLimit = time.Duration(float64(time.Second) / config.LimitFPS)
	}

	for e.currentStage == StageRunning {
		frameStart := time.Now()

		events, err := e.platform.PumpMessages()
		if err != nil {
			// Not self-healing (e.g. a destroyed window); report and stop.
			e.currentStage = StageTerminated
			return e.exitCode, fmt.Errorf("event pump: %w", err)
		}
		for _, event := range events {
			if e.ingester.Ingest(event) {
				continue
			}
			switch event.Type {
			case core.EVENT_CODE_APPLICATION_QUIT:
				core.LogInfo("application quit requested, shutting down")
				e.requestExit(0)
			case core.EVENT_CODE_RESIZED:
				e.onResized(event)
			}
		}

		if e.isSuspended {
			continue
		}

		delta := e.tick()
		ticks := e.timestep.Advance(delta)

		// A pending close skips this frame's simulation entirely; otherwise
		// run the fixed-rate updates in order, stopping at the first Exit.
		if e.currentStage == StageRunning {
			for i := 0; i < ticks; i++ {
				control := e.gameInstance.FnUpdate(fixedDelta)
				if exit, code := control.ExitRequested(); exit {
					e.requestExit(code)
					break
				}
			}
		}

		// Render exactly once per iteration, even when no tick ran or an
		// exit is pending, so the frame reflects the latest state.
		if e.gameInstance.FnRender != nil {
			e.gameInstance.FnRender(e.timestep.Alpha())
		}

		// NOTE: Input update/state copying should always be handled after
		// any input should be recorded. As a safety, input is the last thing
		// to be updated before this frame ends.
		e.input.Update()

		frameElapsed := time.Since(frameStart)
		e.metrics.Update(frameElapsed.Seconds())

		if remaining := frameLimit - frameElapsed; frameLimit > 0 && remaining > 0 {
			time.Sleep(remaining)
		}
	}

	e.currentStage = StageTerminated
	return e.exitCode, nil
}

func (e *Engine) Shutdown() error {
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) requestExit(code int) {
	if e.currentStage == StageExiting {
		return
	}
	e.currentStage = StageExiting
	e.exitCode = code
}

func (e *Engine) onResized(event core.EventContext) {
	se, ok := event.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong payload associated with the event type `%d`", event.Type)
		return
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width != e.width || height != e.height {
		e.width = width
		e.height = height

		core.LogDebug("window resize: %d, %d", width, height)

		// Handle minimization
		if width == 0 || height == 0 {
			core.LogInfo("window minimized, suspending application")
			e.isSuspended = true
			return
		}
		if e.isSuspended {
			core.LogInfo("window restored, resuming application")
			e.isSuspended = false
		}
		if e.gameInstance.FnOnResize != nil {
			if err := e.gameInstance.FnOnResize(width, height); err != nil {
				core.LogError(err.Error())
			}
		}
	}
}
