// Package speechtotext defines the boundary contract for live
// speech-to-text clients used as utterance capture adapters.
package speechtotext

import "github.com/karvendhanm/FinSpeak/core/audio"

type TranscriptionOptions struct {
	// UtteranceCallback receives the complete transcript once the speaker
	// finishes an utterance.
	UtteranceCallback func(transcript string)

	// NoSpeechCallback fires when a speech segment ends without yielding any
	// transcript, so callers can distinguish "nothing to send" from silence.
	NoSpeechCallback func()

	SpeechStartedCallback func()
	SpeechEndedCallback   func()

	EncodingInfo audio.EncodingInfo

	// Language is the locale hint passed to the transcription service.
	Language string
}

type TranscriptionOption func(*TranscriptionOptions)

func WithUtteranceCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.UtteranceCallback = callback
	}
}

func WithNoSpeechCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.NoSpeechCallback = callback
	}
}

func WithSpeechStartedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechStartedCallback = callback
	}
}

func WithSpeechEndedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechEndedCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.EncodingInfo = encodingInfo
	}
}

func WithLanguage(language string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Language = language
	}
}
