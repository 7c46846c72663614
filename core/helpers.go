package orchestration

import "github.com/karvendhanm/FinSpeak/core/events"

func (o *Orchestrator) appendEntry(entry Entry) Entry {
	appended := o.transcript.append(entry)
	o.emitEvent(events.NewTranscriptEntryAppended(appended.ID, string(appended.Role), appended.Text))
	return appended
}

func (o *Orchestrator) setProcessing(processing bool) {
	if o.session.setProcessing(processing) {
		o.emitEvent(events.NewSessionProcessingChanged(processing))
	}
}

func (o *Orchestrator) clearChallengeEntries() {
	if removed := o.transcript.removePendingChallenge(); len(removed) > 0 {
		o.emitEvent(events.NewTranscriptChallengeCleared(removed))
	}
}
