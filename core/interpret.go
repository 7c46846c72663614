package orchestration

import (
	"strings"

	"github.com/karvendhanm/FinSpeak/core/assistant"
	"github.com/karvendhanm/FinSpeak/core/events"
)

// applyResponse turns a backend reply into transcript entries and session
// transitions. Rules, in order:
//
//  1. a standalone confirmation message distinct from the main text becomes
//     its own assistant entry, so confirmation prose stays visually separate
//  2. display text becomes one assistant entry carrying every structured
//     payload the reply included
//  3. a verification demand sets the session's pending token, independent of
//     whether the reply also carried text
//  4. a reply with neither text nor a verification demand is malformed and
//     surfaces as an error entry instead of being dropped
//
// A missing field means "not present this turn", never an error.
func (o *Orchestrator) applyResponse(response *assistant.QueryResponse) {
	if response == nil || response.IsEmpty() {
		messages := copyForLanguage(o.session.currentLanguage())
		o.appendEntry(Entry{Role: RoleError, Text: messages.malformedResponse})
		return
	}

	if confirmation := strings.TrimSpace(response.ConfirmationMessage); confirmation != "" &&
		confirmation != strings.TrimSpace(response.Text) {
		o.appendEntry(Entry{Role: RoleAssistant, Text: confirmation})
	}

	requiresVerification := response.RequiresVerification && response.SessionToken != ""
	if requiresVerification {
		// A fresh challenge supersedes any stale one still on screen.
		o.clearChallengeEntries()
	}

	if text := strings.TrimSpace(response.Text); text != "" {
		entry := Entry{
			Role:         RoleAssistant,
			Text:         response.Text,
			AudioCue:     response.AudioCue,
			Options:      response.Options,
			Confirmation: response.Confirmation,
			Records:      response.Records,
		}
		if requiresVerification {
			entry.RequiresVerification = true
			entry.VerificationToken = response.SessionToken
		}
		o.appendEntry(entry)
	}

	if requiresVerification {
		o.session.setPendingToken(response.SessionToken)
		o.emitEvent(events.NewSessionVerificationRequested(response.SessionToken))
	}

	if response.AudioCue != "" {
		o.emitEvent(events.NewAssistantAudioCue(response.AudioCue))
	}
}
