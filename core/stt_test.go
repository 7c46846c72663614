package orchestration

import (
	"context"
	"testing"
	"time"

	"github.com/karvendhanm/FinSpeak/core/assistant"
	"github.com/karvendhanm/FinSpeak/core/audio"
	events "github.com/karvendhanm/FinSpeak/core/events"
	"github.com/karvendhanm/FinSpeak/core/speechtotext"
)

type speechToTextClientStub struct {
	transcribe func(opts speechtotext.TranscriptionOptions)
}

func (s *speechToTextClientStub) Transcribe(_ context.Context, opts ...speechtotext.TranscriptionOption) error {
	options := speechtotext.TranscriptionOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if s.transcribe != nil {
		s.transcribe(options)
	}
	return nil
}

func (s *speechToTextClientStub) SendAudio([]byte) error { return nil }

func TestSpeechToTextStartEmitsEvents(t *testing.T) {
	sttClient := &speechToTextClientStub{
		transcribe: func(opts speechtotext.TranscriptionOptions) {
			if opts.SpeechStartedCallback == nil {
				t.Fatalf("expected speech-start callback to be configured")
			}
			if opts.SpeechEndedCallback == nil {
				t.Fatalf("expected speech-end callback to be configured")
			}
			if opts.UtteranceCallback == nil {
				t.Fatalf("expected utterance callback to be configured")
			}
			if opts.NoSpeechCallback == nil {
				t.Fatalf("expected no-speech callback to be configured")
			}
			if opts.Language != "hi-IN" {
				t.Fatalf("expected language %q to be forwarded, got %q", "hi-IN", opts.Language)
			}

			opts.SpeechStartedCallback()
			opts.UtteranceCallback("check my balance")
			opts.SpeechEndedCallback()
			opts.NoSpeechCallback()
		},
	}

	runtime := newSpeechToText(sttClient)

	states := []bool{}
	utterances := []string{}
	noSpeech := 0

	runtime.SetEventEmitter(func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.UserSpeechStarted:
			states = append(states, true)
		case events.UserSpeechEnded:
			states = append(states, false)
		case events.UserTranscriptFinal:
			utterances = append(utterances, typedEvent.Transcript)
		case events.UserNoSpeech:
			noSpeech++
		}
	})

	encodingInfo := audio.GetDefaultEncodingInfo()
	if err := runtime.Start(context.Background(), &encodingInfo, "hi-IN"); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}

	if len(states) != 2 || !states[0] || states[1] {
		t.Fatalf("expected speaking states [true false], got %v", states)
	}
	if len(utterances) != 1 || utterances[0] != "check my balance" {
		t.Fatalf("expected utterance [\"check my balance\"], got %v", utterances)
	}
	if noSpeech != 1 {
		t.Fatalf("expected one no-speech event, got %d", noSpeech)
	}
}

func TestSpeechToTextUnconfiguredStartIsNoOp(t *testing.T) {
	runtime := newSpeechToText(nil)

	encodingInfo := audio.GetDefaultEncodingInfo()
	if err := runtime.Start(context.Background(), &encodingInfo, "en-IN"); err != nil {
		t.Fatalf("expected unconfigured start to be a no-op, got %v", err)
	}
	if err := runtime.SendAudio([]byte{1, 2, 3}); err != nil {
		t.Fatalf("expected unconfigured send to be a no-op, got %v", err)
	}
}

func TestSpokenUtteranceFlowsIntoSubmission(t *testing.T) {
	assistantClient := &assistantClientStub{
		responses: []*assistant.QueryResponse{{Text: "Your balance is 500."}},
	}
	sttClient := &speechToTextClientStub{
		transcribe: func(opts speechtotext.TranscriptionOptions) {
			go opts.UtteranceCallback("check my balance")
		},
	}

	o := NewOrchestrator(
		WithAssistantClient(assistantClient),
		WithSpeechToTextClient(sttClient),
	)
	defer o.Close()

	assistantEntries := make(chan Entry, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	o.Orchestrate(ctx,
		WithEntryAppendedCallback(func(entry Entry) {
			if entry.Role == RoleAssistant {
				select {
				case assistantEntries <- entry:
				default:
				}
			}
		}),
	)

	select {
	case entry := <-assistantEntries:
		if entry.Text != "Your balance is 500." {
			t.Fatalf("expected the spoken utterance to produce the balance reply, got %q", entry.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the spoken utterance to be submitted")
	}

	entries := o.Conversation().Entries
	if len(entries) < 2 || entries[0].Role != RoleUser || entries[0].Text != "check my balance" {
		t.Fatalf("expected the transcript to open with the spoken user entry, got %v", entries)
	}
}

func TestNoSpeechFlowsIntoErrorEntry(t *testing.T) {
	sttClient := &speechToTextClientStub{
		transcribe: func(opts speechtotext.TranscriptionOptions) {
			go opts.NoSpeechCallback()
		},
	}

	o := NewOrchestrator(
		WithAssistantClient(&assistantClientStub{}),
		WithSpeechToTextClient(sttClient),
	)
	defer o.Close()

	errorEntries := make(chan Entry, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	o.Orchestrate(ctx,
		WithEntryAppendedCallback(func(entry Entry) {
			if entry.Role == RoleError {
				select {
				case errorEntries <- entry:
				default:
				}
			}
		}),
	)

	select {
	case entry := <-errorEntries:
		if entry.Text != "No speech detected. Please try again." {
			t.Fatalf("expected the fixed no-speech entry, got %q", entry.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the no-speech entry")
	}
}
