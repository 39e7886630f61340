package core

// Mouse state structure
type MouseState struct {
	X       float64
	Y       float64
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// Input holds the current and previous-frame keyboard/mouse snapshots plus
// the pointer and scroll deltas accumulated since the last frame boundary.
// It is owned by the engine and mutated only by the ingester and by the
// end-of-frame Update call; queries are read-only.
type Input struct {
	keyboardCurrent  KeyboardState
	keyboardPrevious KeyboardState
	mouseCurrent     MouseState
	mousePrevious    MouseState

	mouseDeltaX  float64
	mouseDeltaY  float64
	scrollDeltaX float64
	scrollDeltaY float64

	mods ModifierKey
}

func NewInput() *Input {
	return &Input{}
}

// Update copies the current states over the previous states and zeroes the
// per-frame deltas. It must run exactly once per loop iteration, after the
// application callbacks have observed the just-this-frame values. Calling it
// again without intervening input is a no-op.
func (in *Input) Update() {
	in.keyboardPrevious = in.keyboardCurrent
	in.mousePrevious = in.mouseCurrent

	in.mouseDeltaX = 0
	in.mouseDeltaY = 0
	in.scrollDeltaX = 0
	in.scrollDeltaY = 0
}

// keyboard input
func (in *Input) IsKeyDown(key KeyCode) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return in.keyboardCurrent.Keys[key]
}

func (in *Input) IsKeyUp(key KeyCode) bool {
	return !in.IsKeyDown(key)
}

func (in *Input) WasKeyDown(key KeyCode) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return in.keyboardPrevious.Keys[key]
}

// KeyJustPressed reports whether the key went down this frame.
func (in *Input) KeyJustPressed(key KeyCode) bool {
	return in.IsKeyDown(key) && !in.WasKeyDown(key)
}

// KeyJustReleased reports whether the key went up this frame.
func (in *Input) KeyJustReleased(key KeyCode) bool {
	return !in.IsKeyDown(key) && in.WasKeyDown(key)
}

// ProcessKey records a key transition. Duplicate press events for an
// already-down key (e.g. OS auto-repeat) leave the state untouched, so
// just-pressed semantics fire for exactly one frame.
func (in *Input) ProcessKey(key KeyCode, pressed bool) {
	if key >= KEYS_MAX_KEYS {
		LogWarn("ignoring out of range key code %d", key)
		return
	}
	in.keyboardCurrent.Keys[key] = pressed
}

// ProcessModifiers records the currently held modifier keys.
func (in *Input) ProcessModifiers(mods ModifierKey) {
	in.mods = mods
}

// Modifiers returns the currently held modifier keys as a bitmask.
func (in *Input) Modifiers() ModifierKey {
	return in.mods
}

// mouse input
func (in *Input) IsButtonDown(button Button) bool {
	if button >= BUTTON_MAX_BUTTONS {
		return false
	}
	return in.mouseCurrent.Buttons[button]
}

func (in *Input) IsButtonUp(button Button) bool {
	return !in.IsButtonDown(button)
}

func (in *Input) WasButtonDown(button Button) bool {
	if button >= BUTTON_MAX_BUTTONS {
		return false
	}
	return in.mousePrevious.Buttons[button]
}

// ButtonJustPressed reports whether the button went down this frame.
func (in *Input) ButtonJustPressed(button Button) bool {
	return in.IsButtonDown(button) && !in.WasButtonDown(button)
}

// ButtonJustReleased reports whether the button went up this frame.
func (in *Input) ButtonJustReleased(button Button) bool {
	return !in.IsButtonDown(button) && in.WasButtonDown(button)
}

// ProcessButton records a mouse button transition. Duplicate events for the
// same state are no-ops, mirroring ProcessKey.
func (in *Input) ProcessButton(button Button, pressed bool) {
	if button >= BUTTON_MAX_BUTTONS {
		LogWarn("ignoring out of range mouse button %d", button)
		return
	}
	in.mouseCurrent.Buttons[button] = pressed
}

// ProcessMouseMove records a new pointer position in window coordinates and
// accumulates the movement delta for this frame.
func (in *Input) ProcessMouseMove(x, y float64) {
	in.mouseDeltaX += x - in.mouseCurrent.X
	in.mouseDeltaY += y - in.mouseCurrent.Y
	in.mouseCurrent.X = x
	in.mouseCurrent.Y = y
}

// ProcessScroll accumulates wheel movement for this frame.
func (in *Input) ProcessScroll(dx, dy float64) {
	in.scrollDeltaX += dx
	in.scrollDeltaY += dy
}

// MousePosition returns the pointer position in window coordinates.
func (in *Input) MousePosition() (float64, float64) {
	return in.mouseCurrent.X, in.mouseCurrent.Y
}

// PreviousMousePosition returns the pointer position as of the last frame boundary.
func (in *Input) PreviousMousePosition() (float64, float64) {
	return in.mousePrevious.X, in.mousePrevious.Y
}

// MouseDelta returns the pointer movement accumulated since the last frame boundary.
func (in *Input) MouseDelta() (float64, float64) {
	return in.mouseDeltaX, in.mouseDeltaY
}

// ScrollDelta returns the wheel movement accumulated since the last frame boundary.
func (in *Input) ScrollDelta() (float64, float64) {
	return in.scrollDeltaX, in.scrollDeltaY
}
