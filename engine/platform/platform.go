package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/cadence/engine/containers"
	"github.com/spaghettifunk/cadence/engine/core"
)

// Capacity of the callback→loop event buffer. GLFW delivers at most a few
// dozen events per PollEvents call; overflowing this means the loop stalled.
const eventQueueSize = 512

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the GLFW window and buffers its callback events until the
// loop drains them with PumpMessages.
type Platform struct {
	Window *glfw.Window
	queue  *containers.RingQueue[core.EventContext]
}

func New() *Platform {
	return &Platform{
		Window: nil,
		queue:  containers.NewRingQueue[core.EventContext](eventQueueSize),
	}
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // The application owns surface creation.

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		return err
	}
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetCloseCallback(p.closeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}

// PumpMessages polls the OS for pending events and returns everything the
// callbacks buffered, in arrival order. A window close request is delivered
// as the final EVENT_CODE_APPLICATION_QUIT event.
func (p *Platform) PumpMessages() ([]core.EventContext, error) {
	if p.Window == nil {
		return nil, fmt.Errorf("pump messages: %w", core.ErrPlatformNotStarted)
	}

	glfw.PollEvents()

	events := make([]core.EventContext, 0, p.queue.Len())
	for !p.queue.IsEmpty() {
		event, err := p.queue.Dequeue()
		if err != nil {
			return events, fmt.Errorf("pump messages: %w", err)
		}
		events = append(events, event)
	}

	if p.Window.ShouldClose() {
		events = append(events, core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}

	return events, nil
}

// GetAbsoluteTime returns the seconds elapsed since GLFW was initialized.
func GetAbsoluteTime() float64 {
	return glfw.GetTime()
}

func (p *Platform) enqueue(event core.EventContext) {
	if err := p.queue.Enqueue(event); err != nil {
		core.LogWarn("event queue overflow, dropping event type %d", event.Type)
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Auto-repeat is not a state transition.
	if action == glfw.Repeat {
		return
	}
	if key < 0 || core.KeyCode(key) >= core.KEYS_MAX_KEYS {
		return
	}

	code := core.EVENT_CODE_KEY_PRESSED
	if action == glfw.Release {
		code = core.EVENT_CODE_KEY_RELEASED
	}
	p.enqueue(core.EventContext{
		Type: code,
		Data: &core.KeyEvent{
			KeyCode: core.KeyCode(key),
			Mods:    core.ModifierKey(mods),
		},
	})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if core.Button(button) >= core.BUTTON_MAX_BUTTONS {
		return
	}

	code := core.EVENT_CODE_BUTTON_PRESSED
	if action == glfw.Release {
		code = core.EVENT_CODE_BUTTON_RELEASED
	}
	p.enqueue(core.EventContext{
		Type: code,
		Data: &core.MouseEvent{
			Button: core.Button(button),
		},
	})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.enqueue(core.EventContext{
		Type: core.EVENT_CODE_MOUSE_MOVED,
		Data: &core.MouseEvent{
			PosX: xpos,
			PosY: ypos,
		},
	})
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.enqueue(core.EventContext{
		Type: core.EVENT_CODE_MOUSE_WHEEL,
		Data: &core.MouseEvent{
			ScrollX: xoff,
			ScrollY: yoff,
		},
	})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.enqueue(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{
			WindowWidth:  uint32(width),
			WindowHeight: uint32(height),
		},
	})
}

func (p *Platform) closeCallback(w *glfw.Window) {
	p.enqueue(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}
