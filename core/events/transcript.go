package events

const (
	// KindTranscriptEntryAppended identifies a new transcript entry.
	KindTranscriptEntryAppended Kind = "transcript.entry_appended"
	// KindTranscriptChallengeCleared identifies removal of pending verification entries.
	KindTranscriptChallengeCleared Kind = "transcript.challenge_cleared"
)

// TranscriptEntryAppended carries the identity and body of an appended entry.
type TranscriptEntryAppended struct {
	Base
	EntryID string
	Role    string
	Text    string
}

// NewTranscriptEntryAppended creates a transcript entry appended event.
func NewTranscriptEntryAppended(entryID string, role string, text string) TranscriptEntryAppended {
	return TranscriptEntryAppended{Base: NewBase(KindTranscriptEntryAppended), EntryID: entryID, Role: role, Text: text}
}

// TranscriptChallengeCleared carries the IDs of verification entries removed
// from the transcript when a challenge is resolved or abandoned.
type TranscriptChallengeCleared struct {
	Base
	EntryIDs []string
}

// NewTranscriptChallengeCleared creates a challenge cleared event.
func NewTranscriptChallengeCleared(entryIDs []string) TranscriptChallengeCleared {
	return TranscriptChallengeCleared{Base: NewBase(KindTranscriptChallengeCleared), EntryIDs: entryIDs}
}
