package orchestration

import (
	"time"

	"github.com/karvendhanm/FinSpeak/core/assistant"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

// Entry is a single turn in the conversation transcript. Entries are
// immutable once appended; the only removal is the pending verification
// challenge being filtered out when its session settles.
type Entry struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time

	// AudioCue is an opaque reference to a spoken rendition of the entry,
	// played by an external audio collaborator.
	AudioCue string

	Options      []assistant.Option
	Confirmation *assistant.Confirmation
	Records      assistant.Records

	// RequiresVerification marks the entry as the active passcode challenge.
	// VerificationToken is the session token the code must be resolved against.
	RequiresVerification bool
	VerificationToken    string

	// VerificationSucceeded marks the reply that completed a challenge, for
	// celebratory rendering.
	VerificationSucceeded bool
}

// HasStructuredPayload reports whether the entry carries anything beyond text.
func (e Entry) HasStructuredPayload() bool {
	return len(e.Options) > 0 || e.Confirmation != nil || !e.Records.IsZero() || e.RequiresVerification
}
