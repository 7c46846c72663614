package deepgram

import (
	"fmt"
	"sync/atomic"
	"testing"

	api "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/websocket/interfaces"

	"github.com/karvendhanm/FinSpeak/core/speechtotext"
)

func resultsMessage(transcript string, isFinal bool, speechFinal bool) []byte {
	return fmt.Appendf(nil,
		`{"type":%q,"is_final":%t,"speech_final":%t,"channel":{"alternatives":[{"transcript":%q}]}}`,
		string(api.TypeMessageResponse), isFinal, speechFinal, transcript)
}

func speechStartedMessage() []byte {
	return fmt.Appendf(nil, `{"type":%q}`, string(api.TypeSpeechStartedResponse))
}

func utteranceEndMessage() []byte {
	return fmt.Appendf(nil, `{"type":%q}`, string(api.TypeUtteranceEndResponse))
}

func TestProcessMessageAccumulatesFinalsIntoOneUtterance(t *testing.T) {
	client := NewTranscriptionClient()

	utterances := []string{}
	noSpeechCalls := atomic.Int32{}
	options := speechtotext.TranscriptionOptions{
		UtteranceCallback: func(transcript string) { utterances = append(utterances, transcript) },
		NoSpeechCallback:  func() { noSpeechCalls.Add(1) },
	}

	client.processMessage(speechStartedMessage(), options)
	client.processMessage(resultsMessage("what is", true, false), options)
	client.processMessage(resultsMessage("my balance", true, true), options)

	if len(utterances) != 1 || utterances[0] != "what is my balance" {
		t.Fatalf("expected one joined utterance, got %v", utterances)
	}
	if got := noSpeechCalls.Load(); got != 0 {
		t.Fatalf("expected no no-speech callback, got %d", got)
	}
	if client.accumulatedTranscript != "" {
		t.Fatalf("expected the accumulator to reset after delivery, got %q", client.accumulatedTranscript)
	}
}

func TestProcessMessageReportsNoSpeechForEmptySegment(t *testing.T) {
	client := NewTranscriptionClient()

	utteranceCalls := atomic.Int32{}
	noSpeechCalls := atomic.Int32{}
	options := speechtotext.TranscriptionOptions{
		UtteranceCallback: func(string) { utteranceCalls.Add(1) },
		NoSpeechCallback:  func() { noSpeechCalls.Add(1) },
	}

	client.processMessage(speechStartedMessage(), options)
	client.processMessage(resultsMessage("", true, false), options)
	client.processMessage(utteranceEndMessage(), options)

	if got := utteranceCalls.Load(); got != 0 {
		t.Fatalf("expected no utterance for an empty segment, got %d", got)
	}
	if got := noSpeechCalls.Load(); got != 1 {
		t.Fatalf("expected one no-speech callback, got %d", got)
	}
}

func TestProcessMessageIgnoresUtteranceEndWithoutSegment(t *testing.T) {
	client := NewTranscriptionClient()

	noSpeechCalls := atomic.Int32{}
	options := speechtotext.TranscriptionOptions{
		NoSpeechCallback: func() { noSpeechCalls.Add(1) },
	}

	client.processMessage(utteranceEndMessage(), options)

	if got := noSpeechCalls.Load(); got != 0 {
		t.Fatalf("expected no callback without an open segment, got %d", got)
	}
}

func TestProcessMessageFiresSpeechLifecycleCallbacks(t *testing.T) {
	client := NewTranscriptionClient()

	startCalls := atomic.Int32{}
	endCalls := atomic.Int32{}
	options := speechtotext.TranscriptionOptions{
		SpeechStartedCallback: func() { startCalls.Add(1) },
		SpeechEndedCallback:   func() { endCalls.Add(1) },
		UtteranceCallback:     func(string) {},
	}

	client.processMessage(speechStartedMessage(), options)
	client.processMessage(resultsMessage("hello", true, true), options)

	if got := startCalls.Load(); got != 1 {
		t.Fatalf("expected one speech-start callback, got %d", got)
	}
	if got := endCalls.Load(); got != 1 {
		t.Fatalf("expected one speech-end callback, got %d", got)
	}
}
