package events

import "testing"

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "user speech started", event: NewUserSpeechStarted(), expected: KindUserSpeechStarted},
		{name: "user speech ended", event: NewUserSpeechEnded(), expected: KindUserSpeechEnded},
		{name: "user transcript final", event: NewUserTranscriptFinal("text"), expected: KindUserTranscriptFinal},
		{name: "user no speech", event: NewUserNoSpeech(), expected: KindUserNoSpeech},
		{name: "transcript entry appended", event: NewTranscriptEntryAppended("id", "user", "text"), expected: KindTranscriptEntryAppended},
		{name: "transcript challenge cleared", event: NewTranscriptChallengeCleared([]string{"id"}), expected: KindTranscriptChallengeCleared},
		{name: "session processing changed", event: NewSessionProcessingChanged(true), expected: KindSessionProcessingChanged},
		{name: "session verification requested", event: NewSessionVerificationRequested("token"), expected: KindSessionVerificationRequested},
		{name: "session verification resolved", event: NewSessionVerificationResolved(true), expected: KindSessionVerificationResolved},
		{name: "session language changed", event: NewSessionLanguageChanged("hi-IN"), expected: KindSessionLanguageChanged},
		{name: "assistant audio cue", event: NewAssistantAudioCue("http://example.com/audio.mp3"), expected: KindAssistantAudioCue},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestVerificationRequestedAndResolvedKindsAreDistinct(t *testing.T) {
	requested := NewSessionVerificationRequested("token")
	resolved := NewSessionVerificationResolved(true)

	if requested.Kind() == resolved.Kind() {
		t.Fatalf("expected verification requested and resolved kinds to differ, both were %q", requested.Kind())
	}
}
