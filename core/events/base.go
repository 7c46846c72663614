package events

import "time"

// Kind identifies an event category, namespaced by source: "transcript.*"
// for entry mutations, "session.*" for conversation state changes,
// "user_input.*" for speech activity and "assistant_response.*" for reply
// side effects.
type Kind string

// Event is implemented by every conversation notification.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the kind and emission time shared by all conversation events.
type Base struct {
	kind      Kind
	timestamp time.Time
}

// NewBase stamps a new event base with the current time.
func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}
