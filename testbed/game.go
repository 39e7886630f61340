package testbed

import (
	"github.com/spaghettifunk/cadence/engine"
	"github.com/spaghettifunk/cadence/engine/core"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	// Player position advanced on fixed ticks; prev* keeps the last tick's
	// value so render can blend between the two.
	posX, posY         float64
	prevPosX, prevPosY float64
	speed              float64
	zoom               float64

	width  uint32
	height uint32

	paused bool
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:    100,
				StartPosY:    100,
				StartWidth:   1280,
				StartHeight:  720,
				Name:         "Cadence Testbed",
				LogLevel:     "debug",
				TickRate:     60,
				MaxFrameTime: 0.25,
			},
			State: &gameState{
				speed: 200.0,
				zoom:  1.0,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize() error {
	core.LogInfo("booting testbed...")
	return nil
}

func (g *TestGame) Update(deltaTime float64) engine.LoopControl {
	state := g.State.(*gameState)

	if g.Input.KeyJustPressed(core.KEY_ESCAPE) {
		core.LogInfo("escape pressed, exiting")
		return engine.Exit(0)
	}

	if g.Input.KeyJustPressed(core.KEY_P) {
		state.paused = !state.paused
		core.LogDebug("paused: %t", state.paused)
	}

	state.prevPosX = state.posX
	state.prevPosY = state.posY

	if state.paused {
		return engine.Continue()
	}

	if g.Input.IsKeyDown(core.KEY_A) || g.Input.IsKeyDown(core.KEY_LEFT) {
		state.posX -= state.speed * deltaTime
	}
	if g.Input.IsKeyDown(core.KEY_D) || g.Input.IsKeyDown(core.KEY_RIGHT) {
		state.posX += state.speed * deltaTime
	}
	if g.Input.IsKeyDown(core.KEY_W) || g.Input.IsKeyDown(core.KEY_UP) {
		state.posY -= state.speed * deltaTime
	}
	if g.Input.IsKeyDown(core.KEY_S) || g.Input.IsKeyDown(core.KEY_DOWN) {
		state.posY += state.speed * deltaTime
	}

	if _, dy := g.Input.ScrollDelta(); dy != 0 {
		state.zoom += dy * 0.1
		if state.zoom < 0.1 {
			state.zoom = 0.1
		}
	}

	if g.Input.ButtonJustPressed(core.BUTTON_LEFT) {
		x, y := g.Input.MousePosition()
		state.posX = x
		state.posY = y
		core.LogDebug("teleported to %.1f, %.1f", x, y)
	}

	return engine.Continue()
}

func (g *TestGame) Render(alpha float64) {
	state := g.State.(*gameState)

	// Blend between the last two simulated positions for smooth motion on
	// displays running faster than the tick rate.
	x := state.prevPosX + (state.posX-state.prevPosX)*alpha
	y := state.prevPosY + (state.posY-state.prevPosY)*alpha

	fps, frameTime := g.Metrics.Frame()
	core.LogDebug("FPS: %5.1f(%4.1fms) pos=[%7.2f %7.2f] zoom=%.2f alpha=%.3f",
		fps, frameTime, x, y, state.zoom, alpha)
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)

	state.width = width
	state.height = height

	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shutting down")
	return nil
}
