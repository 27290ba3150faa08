// Package noise implements acoustic event detection with a night-watch
// window that lowers the trigger threshold during configured wall-clock
// hours.
package noise

import (
	"math"
	"time"
)

// Event classification tags.
const (
	TypeNightWatch = "night_watch"
	TypeDaytime    = "daytime"
)

// Watch describes the detection threshold and the night window. The
// window runs from NightStart through midnight to NightEnd and is
// evaluated on wall-clock hour.
type Watch struct {
	Base       float64 // daytime threshold in dB
	Reduction  float64 // subtracted from Base at night
	NightStart int     // hour, inclusive
	NightEnd   int     // hour, exclusive
}

// Night reports whether now falls inside the night-watch window.
func (w Watch) Night(now time.Time) bool {
	h := now.Hour()
	return h >= w.NightStart || h < w.NightEnd
}

// Effective returns the detection threshold in force at now.
func (w Watch) Effective(now time.Time) float64 {
	if w.Night(now) {
		return w.Base - w.Reduction
	}
	return w.Base
}

// Event is one detected noise excursion. Events are never mutated after
// creation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	DB        float64   `json:"db"`
	Type      string    `json:"type"`
}

// EventLog is a bounded FIFO of detected events: once the cap is
// reached, appending drops the oldest entry.
type EventLog struct {
	watch  Watch
	limit  int
	events []Event
}

// NewEventLog creates a log retaining at most limit events.
func NewEventLog(w Watch, limit int) *EventLog {
	return &EventLog{watch: w, limit: limit}
}

// Observe checks a measured level against the night-adjusted threshold.
// Levels below it produce no event; otherwise the event is appended and
// returned.
func (l *EventLog) Observe(level float64, now time.Time) (Event, bool) {
	if level < l.watch.Effective(now) {
		return Event{}, false
	}

	typ := TypeDaytime
	if l.watch.Night(now) {
		typ = TypeNightWatch
	}

	ev := Event{
		Timestamp: now,
		DB:        math.Round(level*10) / 10,
		Type:      typ,
	}
	l.events = append(l.events, ev)
	if len(l.events) > l.limit {
		l.events = l.events[len(l.events)-l.limit:]
	}
	return ev, true
}

// Events returns the retained events, oldest first.
func (l *EventLog) Events() []Event { return l.events }

// Len returns the number of retained events.
func (l *EventLog) Len() int { return len(l.events) }
