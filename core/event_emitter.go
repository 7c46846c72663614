package orchestration

import events "github.com/karvendhanm/FinSpeak/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts OrchestrateOptions, entryByID func(id string) (Entry, bool)) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.TranscriptEntryAppended:
			if opts.onEntryAppended != nil {
				if entry, ok := entryByID(typedEvent.EntryID); ok {
					opts.onEntryAppended(entry)
				}
			}
		case events.TranscriptChallengeCleared:
			if opts.onChallengeCleared != nil {
				opts.onChallengeCleared(typedEvent.EntryIDs)
			}
		case events.SessionProcessingChanged:
			if opts.onProcessingChanged != nil {
				opts.onProcessingChanged(typedEvent.Processing)
			}
		case events.SessionVerificationRequested:
			if opts.onVerificationRequested != nil {
				opts.onVerificationRequested(typedEvent.Token)
			}
		case events.SessionVerificationResolved:
			if opts.onVerificationResolved != nil {
				opts.onVerificationResolved(typedEvent.Succeeded)
			}
		case events.SessionLanguageChanged:
			if opts.onLanguageChanged != nil {
				opts.onLanguageChanged(typedEvent.Language)
			}
		case events.AssistantAudioCue:
			if opts.onAudioCue != nil {
				opts.onAudioCue(typedEvent.URL)
			}
		case events.UserSpeechStarted:
			if opts.onSpeakingStateChanged != nil {
				opts.onSpeakingStateChanged(true)
			}
		case events.UserSpeechEnded:
			if opts.onSpeakingStateChanged != nil {
				opts.onSpeakingStateChanged(false)
			}
		case events.UserTranscriptFinal:
			if opts.onTranscription != nil {
				opts.onTranscription(typedEvent.Transcript)
			}
		}
	}
}
