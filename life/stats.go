package life

import "math"

// Stats summarises one generation.
type Stats struct {
	Generation int
	Live       int
	Total      int
	Percent    float64 // rounded to two decimals
	Entropy    float64 // binary entropy of the live fraction, 0..1
}

// Measure computes Stats for g at the given generation.
func Measure(g *Grid, generation int) Stats {
	s := Stats{
		Generation: generation,
		Live:       g.Alive(),
		Total:      g.Size(),
		Percent:    g.Population(),
	}
	if s.Total > 0 {
		p := float64(s.Live) / float64(s.Total)
		if p > 0 && p < 1 {
			s.Entropy = -p*math.Log2(p) - (1-p)*math.Log2(1-p)
		}
	}
	return s
}

// EventKind labels an entry of the event log.
type EventKind string

const (
	EventReset  EventKind = "RESET"
	EventResize EventKind = "RESIZE"
	EventDraw   EventKind = "DRAW"
	EventJump   EventKind = "JUMP"
	EventEdit   EventKind = "EDIT"
	EventPlay   EventKind = "PLAY"
	EventPause  EventKind = "PAUSE"
)

type Event struct {
	Generation int
	Kind       EventKind
	Message    string
}

const maxEvents = 10

// EventLog keeps the most recent events.
type EventLog struct {
	events []Event
}

func (l *EventLog) Add(generation int, kind EventKind, message string) {
	l.events = append(l.events, Event{Generation: generation, Kind: kind, Message: message})
	if len(l.events) > maxEvents {
		l.events = l.events[1:]
	}
}

// Recent returns up to n events, newest first.
func (l *EventLog) Recent(n int) []Event {
	out := make([]Event, 0, n)
	for i := len(l.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.events[i])
	}
	return out
}

func (l *EventLog) Len() int { return len(l.events) }
