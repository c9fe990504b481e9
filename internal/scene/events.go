package scene

type EventType int

const (
	EventModeChanged EventType = iota
	EventBubbleSelected
	EventRecordSelected
	EventPulse // intro heartbeat peak
)

type Event struct {
	Type  EventType
	Mode  Mode // mode after the event
	Prev  Mode
	Index int     // bubble or record index for selections
	Level float64 // smoothed loudness at emit time
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
