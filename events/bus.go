package events

// Sink receives change events. Delivery is best-effort: a slow or failing
// sink must not block the request that produced the event.
type Sink interface {
	Publish(ev Event)
}

// Bus fans one event out to every registered sink.
type Bus struct {
	sinks []Sink
}

func NewBus(sinks ...Sink) *Bus {
	return &Bus{sinks: sinks}
}

func (b *Bus) Add(s Sink) {
	b.sinks = append(b.sinks, s)
}

func (b *Bus) Publish(ev Event) {
	for _, s := range b.sinks {
		s.Publish(ev)
	}
}
