package core

import "testing"

func TestIngestKeyEvents(t *testing.T) {
	in := NewInput()
	ig := NewIngester(in)

	consumed := ig.Ingest(EventContext{
		Type: EVENT_CODE_KEY_PRESSED,
		Data: &KeyEvent{KeyCode: KEY_SPACE, Mods: MOD_SHIFT},
	})
	if !consumed {
		t.Fatal("key press not consumed")
	}
	if !in.IsKeyDown(KEY_SPACE) {
		t.Error("key press not recorded")
	}
	if in.Modifiers()&MOD_SHIFT == 0 {
		t.Error("modifiers not recorded")
	}

	consumed = ig.Ingest(EventContext{
		Type: EVENT_CODE_KEY_RELEASED,
		Data: &KeyEvent{KeyCode: KEY_SPACE},
	})
	if !consumed {
		t.Fatal("key release not consumed")
	}
	if in.IsKeyDown(KEY_SPACE) {
		t.Error("key release not recorded")
	}
}

func TestIngestButtonEvents(t *testing.T) {
	in := NewInput()
	ig := NewIngester(in)

	ig.Ingest(EventContext{
		Type: EVENT_CODE_BUTTON_PRESSED,
		Data: &MouseEvent{Button: BUTTON_MIDDLE},
	})
	if !in.IsButtonDown(BUTTON_MIDDLE) {
		t.Error("button press not recorded")
	}

	ig.Ingest(EventContext{
		Type: EVENT_CODE_BUTTON_RELEASED,
		Data: &MouseEvent{Button: BUTTON_MIDDLE},
	})
	if in.IsButtonDown(BUTTON_MIDDLE) {
		t.Error("button release not recorded")
	}
}

func TestIngestPointerAndScroll(t *testing.T) {
	in := NewInput()
	ig := NewIngester(in)

	// Applied in arrival order: two moves accumulate one delta.
	ig.Ingest(EventContext{Type: EVENT_CODE_MOUSE_MOVED, Data: &MouseEvent{PosX: 100, PosY: 50}})
	ig.Ingest(EventContext{Type: EVENT_CODE_MOUSE_MOVED, Data: &MouseEvent{PosX: 110, PosY: 45}})
	ig.Ingest(EventContext{Type: EVENT_CODE_MOUSE_WHEEL, Data: &MouseEvent{ScrollY: -1}})

	if x, y := in.MousePosition(); x != 110 || y != 45 {
		t.Errorf("MousePosition = (%v, %v), want (110, 45)", x, y)
	}
	if dx, dy := in.MouseDelta(); dx != 110 || dy != 45 {
		t.Errorf("MouseDelta = (%v, %v), want (110, 45)", dx, dy)
	}
	if _, dy := in.ScrollDelta(); dy != -1 {
		t.Errorf("ScrollDelta y = %v, want -1", dy)
	}
}

func TestIngestLeavesControlEventsAlone(t *testing.T) {
	in := NewInput()
	ig := NewIngester(in)

	if ig.Ingest(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}) {
		t.Error("quit event consumed by the ingester")
	}
	if ig.Ingest(EventContext{
		Type: EVENT_CODE_RESIZED,
		Data: &SystemEvent{WindowWidth: 800, WindowHeight: 600},
	}) {
		t.Error("resize event consumed by the ingester")
	}
}

func TestIngestBadPayloadIsDropped(t *testing.T) {
	in := NewInput()
	ig := NewIngester(in)

	// A malformed payload is consumed (logged) without mutating state.
	if !ig.Ingest(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: "not a key event"}) {
		t.Error("malformed key event not consumed")
	}
	for key := KeyCode(0); key < KEYS_MAX_KEYS; key++ {
		if in.IsKeyDown(key) {
			t.Fatalf("key %d down after malformed event", key)
		}
	}
}
