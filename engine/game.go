package engine

import (
	"github.com/spaghettifunk/cadence/engine/core"
)

// LoopControl is returned by the update callback each tick to signal whether
// the loop should keep running.
type LoopControl struct {
	exit bool
	code int
}

// Continue keeps the loop running.
func Continue() LoopControl {
	return LoopControl{}
}

// Exit requests loop termination with the given exit code. The code is
// propagated unchanged to the caller of Run.
func Exit(code int) LoopControl {
	return LoopControl{exit: true, code: code}
}

// ExitRequested reports whether this control value requests termination,
// along with the exit code.
func (lc LoopControl) ExitRequested() (bool, int) {
	return lc.exit, lc.code
}

type Initialize func() error
type Update func(deltaTime float64) LoopControl
type Render func(alpha float64)
type OnResize func(width uint32, height uint32) error
type Shutdown func() error

// Game is the application contract: the update callback runs zero or more
// times per frame at the fixed tick rate, render runs exactly once per frame
// with the interpolation alpha. State is for the application's own use.
type Game struct {
	ApplicationConfig *ApplicationConfig
	Input             *core.Input
	Metrics           *core.Metrics
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}
