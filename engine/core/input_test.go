package core

import "testing"

func TestInputJustPressedLastsOneFrame(t *testing.T) {
	in := NewInput()

	in.ProcessKey(KEY_SPACE, true)

	if !in.IsKeyDown(KEY_SPACE) {
		t.Error("IsKeyDown = false after press")
	}
	if !in.KeyJustPressed(KEY_SPACE) {
		t.Error("KeyJustPressed = false in the frame of the press")
	}

	in.Update()

	if !in.IsKeyDown(KEY_SPACE) {
		t.Error("IsKeyDown = false after frame boundary while held")
	}
	if in.KeyJustPressed(KEY_SPACE) {
		t.Error("KeyJustPressed = true one frame after the press")
	}
}

func TestInputAutoRepeatIsIdempotent(t *testing.T) {
	in := NewInput()

	// A duplicate press (OS auto-repeat) must not re-trigger just-pressed.
	in.ProcessKey(KEY_A, true)
	in.ProcessKey(KEY_A, true)

	if !in.KeyJustPressed(KEY_A) {
		t.Error("KeyJustPressed = false in the press frame")
	}
	in.Update()
	in.ProcessKey(KEY_A, true)
	if in.KeyJustPressed(KEY_A) {
		t.Error("KeyJustPressed = true again after a repeat event")
	}
}

func TestInputJustReleased(t *testing.T) {
	in := NewInput()

	in.ProcessKey(KEY_W, true)
	in.Update()
	in.ProcessKey(KEY_W, false)

	if in.IsKeyDown(KEY_W) {
		t.Error("IsKeyDown = true after release")
	}
	if !in.KeyJustReleased(KEY_W) {
		t.Error("KeyJustReleased = false in the release frame")
	}

	in.Update()

	if in.KeyJustReleased(KEY_W) {
		t.Error("KeyJustReleased = true one frame after the release")
	}
}

func TestInputUpdateIsIdempotent(t *testing.T) {
	in := NewInput()

	in.ProcessKey(KEY_E, true)
	in.ProcessMouseMove(10, 20)
	in.ProcessScroll(0, 1)
	in.Update()
	in.Update()

	if in.KeyJustPressed(KEY_E) {
		t.Error("KeyJustPressed survived two Update calls")
	}
	if !in.IsKeyDown(KEY_E) {
		t.Error("IsKeyDown lost by double Update")
	}
	if dx, dy := in.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("MouseDelta = (%v, %v) after Update, want zero", dx, dy)
	}
	if dx, dy := in.ScrollDelta(); dx != 0 || dy != 0 {
		t.Errorf("ScrollDelta = (%v, %v) after Update, want zero", dx, dy)
	}
}

func TestInputMouseDeltaAccumulates(t *testing.T) {
	in := NewInput()

	in.ProcessMouseMove(10, 10)
	in.ProcessMouseMove(15, 8)
	in.ProcessMouseMove(20, 12)

	if x, y := in.MousePosition(); x != 20 || y != 12 {
		t.Errorf("MousePosition = (%v, %v), want (20, 12)", x, y)
	}
	if dx, dy := in.MouseDelta(); dx != 20 || dy != 12 {
		t.Errorf("MouseDelta = (%v, %v), want (20, 12)", dx, dy)
	}

	in.Update()
	in.ProcessMouseMove(25, 12)

	if dx, dy := in.MouseDelta(); dx != 5 || dy != 0 {
		t.Errorf("MouseDelta after frame = (%v, %v), want (5, 0)", dx, dy)
	}
	if x, y := in.PreviousMousePosition(); x != 20 || y != 12 {
		t.Errorf("PreviousMousePosition = (%v, %v), want (20, 12)", x, y)
	}
}

func TestInputScrollDeltaAccumulates(t *testing.T) {
	in := NewInput()

	in.ProcessScroll(0, 1)
	in.ProcessScroll(1, 2)

	if dx, dy := in.ScrollDelta(); dx != 1 || dy != 3 {
		t.Errorf("ScrollDelta = (%v, %v), want (1, 3)", dx, dy)
	}
}

func TestInputButtons(t *testing.T) {
	in := NewInput()

	in.ProcessButton(BUTTON_LEFT, true)

	if !in.ButtonJustPressed(BUTTON_LEFT) {
		t.Error("ButtonJustPressed = false in the press frame")
	}
	if in.ButtonJustPressed(BUTTON_RIGHT) {
		t.Error("ButtonJustPressed = true for an untouched button")
	}

	in.Update()
	in.ProcessButton(BUTTON_LEFT, false)

	if !in.ButtonJustReleased(BUTTON_LEFT) {
		t.Error("ButtonJustReleased = false in the release frame")
	}
}

func TestInputModifiers(t *testing.T) {
	in := NewInput()

	in.ProcessModifiers(MOD_SHIFT | MOD_CONTROL)

	mods := in.Modifiers()
	if mods&MOD_SHIFT == 0 || mods&MOD_CONTROL == 0 {
		t.Errorf("Modifiers = %#x, want shift+control", mods)
	}
	if mods&MOD_ALT != 0 {
		t.Errorf("Modifiers = %#x, alt unexpectedly set", mods)
	}
}

func TestInputOutOfRangeIdsAreIgnored(t *testing.T) {
	in := NewInput()

	in.ProcessKey(KEYS_MAX_KEYS, true)
	in.ProcessButton(BUTTON_MAX_BUTTONS, true)

	if in.IsKeyDown(KEYS_MAX_KEYS) {
		t.Error("IsKeyDown = true for out of range key")
	}
	if in.IsButtonDown(BUTTON_MAX_BUTTONS) {
		t.Error("IsButtonDown = true for out of range button")
	}
}
