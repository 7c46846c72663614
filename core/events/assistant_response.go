package events

const (
	// KindAssistantAudioCue identifies a playable audio rendition of a reply.
	KindAssistantAudioCue Kind = "assistant_response.audio_cue"
)

// AssistantAudioCue carries an opaque reference to audio for a reply.
type AssistantAudioCue struct {
	Base
	URL string
}

// NewAssistantAudioCue creates an audio cue event.
func NewAssistantAudioCue(url string) AssistantAudioCue {
	return AssistantAudioCue{Base: NewBase(KindAssistantAudioCue), URL: url}
}
