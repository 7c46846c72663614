package events

const (
	// KindSessionProcessingChanged identifies a change of the in-flight request flag.
	KindSessionProcessingChanged Kind = "session.processing_changed"
	// KindSessionVerificationRequested identifies a newly issued verification challenge.
	KindSessionVerificationRequested Kind = "session.verification_requested"
	// KindSessionVerificationResolved identifies the settlement of a verification challenge.
	KindSessionVerificationResolved Kind = "session.verification_resolved"
	// KindSessionLanguageChanged identifies a change of the active locale.
	KindSessionLanguageChanged Kind = "session.language_changed"
)

// SessionProcessingChanged carries the new value of the processing flag.
type SessionProcessingChanged struct {
	Base
	Processing bool
}

// NewSessionProcessingChanged creates a processing changed event.
func NewSessionProcessingChanged(processing bool) SessionProcessingChanged {
	return SessionProcessingChanged{Base: NewBase(KindSessionProcessingChanged), Processing: processing}
}

// SessionVerificationRequested carries the session token of a new challenge.
type SessionVerificationRequested struct {
	Base
	Token string
}

// NewSessionVerificationRequested creates a verification requested event.
func NewSessionVerificationRequested(token string) SessionVerificationRequested {
	return SessionVerificationRequested{Base: NewBase(KindSessionVerificationRequested), Token: token}
}

// SessionVerificationResolved marks the end of a challenge, successful or not.
type SessionVerificationResolved struct {
	Base
	Succeeded bool
}

// NewSessionVerificationResolved creates a verification resolved event.
func NewSessionVerificationResolved(succeeded bool) SessionVerificationResolved {
	return SessionVerificationResolved{Base: NewBase(KindSessionVerificationResolved), Succeeded: succeeded}
}

// SessionLanguageChanged carries the newly selected locale code.
type SessionLanguageChanged struct {
	Base
	Language string
}

// NewSessionLanguageChanged creates a language changed event.
func NewSessionLanguageChanged(language string) SessionLanguageChanged {
	return SessionLanguageChanged{Base: NewBase(KindSessionLanguageChanged), Language: language}
}
