package core

// Ingester folds platform events into an Input snapshot. Events are applied
// in arrival order; pointer and scroll deltas accumulate naturally across
// multiple events within the same frame.
type Ingester struct {
	input *Input
}

func NewIngester(input *Input) *Ingester {
	return &Ingester{input: input}
}

// Ingest applies a single event to the input state and reports whether the
// event was consumed. Resize and quit events are not input state; they are
// left for the loop driver to handle as control signals.
func (ig *Ingester) Ingest(event EventContext) bool {
	switch event.Type {
	case EVENT_CODE_KEY_PRESSED, EVENT_CODE_KEY_RELEASED:
		ke, ok := event.Data.(*KeyEvent)
		if !ok {
			LogError("wrong payload associated with the event type `%d`", event.Type)
			return true
		}
		ig.input.ProcessKey(ke.KeyCode, event.Type == EVENT_CODE_KEY_PRESSED)
		ig.input.ProcessModifiers(ke.Mods)
		return true
	case EVENT_CODE_BUTTON_PRESSED, EVENT_CODE_BUTTON_RELEASED:
		me, ok := event.Data.(*MouseEvent)
		if !ok {
			LogError("wrong payload associated with the event type `%d`", event.Type)
			return true
		}
		ig.input.ProcessButton(me.Button, event.Type == EVENT_CODE_BUTTON_PRESSED)
		return true
	case EVENT_CODE_MOUSE_MOVED:
		me, ok := event.Data.(*MouseEvent)
		if !ok {
			LogError("wrong payload associated with the event type `%d`", event.Type)
			return true
		}
		ig.input.ProcessMouseMove(me.PosX, me.PosY)
		return true
	case EVENT_CODE_MOUSE_WHEEL:
		me, ok := event.Data.(*MouseEvent)
		if !ok {
			LogError("wrong payload associated with the event type `%d`", event.Type)
			return true
		}
		ig.input.ProcessScroll(me.ScrollX, me.ScrollY)
		return true
	}
	return false
}
