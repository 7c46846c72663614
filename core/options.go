package orchestration

import (
	"context"
	"time"

	"github.com/karvendhanm/FinSpeak/core/assistant"
	"github.com/karvendhanm/FinSpeak/core/audio"
	"github.com/karvendhanm/FinSpeak/core/speechtotext"
)

type OrchestratorOption func(*Orchestrator)

// AssistantClient is the outbound contract to the banking assistant backend.
type AssistantClient interface {
	Query(ctx context.Context, text string, opts ...assistant.QueryOption) (*assistant.QueryResponse, error)
	VerifyCode(ctx context.Context, code string, sessionToken string) (*assistant.VerificationResult, error)
}

func WithAssistantClient(client AssistantClient) OrchestratorOption {
	return func(o *Orchestrator) {
		o.assistant.set(client)
	}
}

type SpeechToText interface {
	Transcribe(ctx context.Context, opts ...speechtotext.TranscriptionOption) error
	SendAudio(audio []byte) error
}

func WithSpeechToTextClient(client SpeechToText) OrchestratorOption {
	return func(o *Orchestrator) {
		o.speechToText.set(client)
	}
}

type AudioInput interface {
	audioInputBase
}

type AudioInputFine interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
}

func WithAudioInput(client AudioInput) OrchestratorOption {
	return func(o *Orchestrator) { o.audioInput.Set(client) }
}

// WithLanguage selects the initial locale used for outbound requests and
// locally produced copy.
func WithLanguage(language string) OrchestratorOption {
	return func(o *Orchestrator) { o.session.setLanguage(language) }
}

// WithVerificationTTL bounds how long an unresolved passcode challenge stays
// actionable. Zero or negative keeps the default.
func WithVerificationTTL(ttl time.Duration) OrchestratorOption {
	return func(o *Orchestrator) { o.session.verificationTTL = ttl }
}

type OrchestrateOptions struct {
	onEntryAppended         func(entry Entry)
	onChallengeCleared      func(entryIDs []string)
	onProcessingChanged     func(processing bool)
	onVerificationRequested func(token string)
	onVerificationResolved  func(succeeded bool)
	onLanguageChanged       func(language string)
	onAudioCue              func(url string)
	onTranscription         func(transcript string)
	onSpeakingStateChanged  func(isSpeaking bool)
}

type OrchestrateOption func(*OrchestrateOptions)

// WithEntryAppendedCallback registers a callback for every transcript entry
// the orchestrator appends, user, assistant and error entries alike.
func WithEntryAppendedCallback(callback func(entry Entry)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onEntryAppended = callback
	}
}

// WithChallengeClearedCallback registers a callback for pending verification
// entries being filtered out of the transcript.
func WithChallengeClearedCallback(callback func(entryIDs []string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onChallengeCleared = callback
	}
}

// WithProcessingChangedCallback registers a callback for changes of the
// in-flight request flag. Callers typically disable input capture while the
// flag is true.
func WithProcessingChangedCallback(callback func(processing bool)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onProcessingChanged = callback
	}
}

// WithVerificationRequestedCallback registers a callback for newly issued
// passcode challenges, carrying the backend session token.
func WithVerificationRequestedCallback(callback func(token string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onVerificationRequested = callback
	}
}

// WithVerificationResolvedCallback registers a callback for challenge
// settlement, successful or abandoned.
func WithVerificationResolvedCallback(callback func(succeeded bool)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onVerificationResolved = callback
	}
}

func WithLanguageChangedCallback(callback func(language string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onLanguageChanged = callback
	}
}

// WithAudioCueCallback registers a callback for playable audio references
// attached to assistant replies.
func WithAudioCueCallback(callback func(url string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onAudioCue = callback
	}
}

// WithTranscriptionCallback registers a callback for final transcriptions
// produced by the configured speech-to-text client.
//
// Utterances submitted directly through [Orchestrator.Submit] do not trigger
// this callback.
func WithTranscriptionCallback(callback func(transcript string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onTranscription = callback
	}
}

// WithSpeakingStateChangedCallback registers a callback for speaking-state
// updates produced by the configured speech-to-text client.
func WithSpeakingStateChangedCallback(callback func(isSpeaking bool)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.onSpeakingStateChanged = callback
	}
}

type audioInputBase interface {
	EncodingInfo() audio.EncodingInfo
	Stream(ctx context.Context, onAudio func(audio []byte)) error
	Close()
}
