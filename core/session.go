package orchestration

import (
	"sync"
	"time"
)

const (
	// DefaultLanguage is the locale used until SetLanguage selects another.
	DefaultLanguage = "en-IN"

	// defaultVerificationTTL bounds how long an unresolved challenge stays
	// actionable. Expiry is observed lazily on the next resolution attempt.
	defaultVerificationTTL = 5 * time.Minute
)

// session holds the transient conversation state owned by the orchestrator:
// the in-flight request flag, the pending verification challenge and the
// active locale. None of it is persisted.
type session struct {
	mu sync.Mutex

	processing bool

	pendingToken  string
	tokenIssuedAt time.Time

	language        string
	verificationTTL time.Duration
}

// setProcessing updates the in-flight flag and reports whether it changed.
func (s *session) setProcessing(processing bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processing == processing {
		return false
	}
	s.processing = processing
	return true
}

func (s *session) isProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.processing
}

func (s *session) setPendingToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingToken = token
	s.tokenIssuedAt = time.Now()
}

func (s *session) clearPendingToken() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingToken = ""
	s.tokenIssuedAt = time.Time{}
}

// pendingVerification returns the active challenge token. The second return
// distinguishes "no challenge" from an expired one: expired reports the token
// with expired = true so the caller can tear the stale challenge down.
func (s *session) pendingVerification() (token string, expired bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingToken == "" {
		return "", false, false
	}

	ttl := s.verificationTTL
	if ttl <= 0 {
		ttl = defaultVerificationTTL
	}
	if time.Since(s.tokenIssuedAt) > ttl {
		return s.pendingToken, true, true
	}

	return s.pendingToken, false, true
}

// setLanguage updates the active locale and reports whether it changed.
func (s *session) setLanguage(language string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if language == "" || s.language == language {
		return false
	}
	s.language = language
	return true
}

func (s *session) currentLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.language == "" {
		return DefaultLanguage
	}
	return s.language
}

func (s *session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processing = false
	s.pendingToken = ""
	s.tokenIssuedAt = time.Time{}
}
