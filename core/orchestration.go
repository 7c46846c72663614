package orchestration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/karvendhanm/FinSpeak/core/assistant"
	"github.com/karvendhanm/FinSpeak/core/events"
	"github.com/karvendhanm/FinSpeak/internal/utils"
)

var (
	ErrNoPendingVerification = errors.New("no pending verification challenge")
	ErrVerificationExpired   = errors.New("verification challenge expired")
)

type Orchestrator struct {
	IsRecording bool

	transcript transcript
	session    session

	closeOnce sync.Once
	closed    atomic.Bool

	// assistant is the backend facade used to handle optional client wiring.
	assistant assistantService
	// speechToText is the STT facade used to handle optional client wiring.
	speechToText speechToText
	// audioInput is the input facade used to normalize capture behavior.
	audioInput audioInput

	emitEvent          eventEmitter
	orchestrateOptions OrchestrateOptions
	baseContext        context.Context
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		IsRecording: false,
		baseContext: context.Background(),
		emitEvent:   noopEventEmitter,
	}

	o.speechToText = *newSpeechToText(nil)
	o.audioInput = *newAudioInput(nil, func(audio []byte) {
		o.speechToText.SendAudio(audio)
	})

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		o.closed.Store(true)

		if err := o.audioInput.Close(); err != nil {
			recordedErr := fmt.Errorf("failed to close audio input: %w", err)
			span := trace.SpanFromContext(o.baseContext)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}

		if err := o.speechToText.Close(o.baseContext); err != nil {
			recordedErr := fmt.Errorf("failed to close speech-to-text client: %w", err)
			span := trace.SpanFromContext(o.baseContext)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}
	})
}

// Orchestrate starts the conversation loop: it wires the configured
// speech-to-text and audio-input clients into the submission pipeline and
// registers the caller's observation callbacks.
//
// ctx is used as a base context for all backend calls, allowing for
// cancellation.
//
// Contract: call Orchestrate at most once per orchestrator instance.
// Repeated or concurrent calls are unsupported and may race while
// callbacks/options are being reconfigured.
func (o *Orchestrator) Orchestrate(ctx context.Context, opts ...OrchestrateOption) {
	if o.closed.Load() {
		logger.Warn("orchestrator already closed, skipping Orchestrate")
		return
	}

	o.orchestrateOptions = OrchestrateOptions{}
	for _, opt := range opts {
		opt(&o.orchestrateOptions)
	}

	o.baseContext = ctx
	callbackEmitter := newCallbackEventEmitter(o.orchestrateOptions, o.transcript.entryByID)
	o.emitEvent = func(event events.Event) {
		callbackEmitter(event)

		// Capture results are dropped while a request is in flight so a
		// transcript finalized mid-request cannot start a concurrent
		// submission.
		switch typedEvent := event.(type) {
		case events.UserTranscriptFinal:
			if !o.session.isProcessing() {
				go o.SubmitSpokenUtterance(o.baseContext, typedEvent.Transcript)
			}
		case events.UserNoSpeech:
			if !o.session.isProcessing() {
				go o.SubmitSpokenUtterance(o.baseContext, "")
			}
		}
	}
	o.speechToText.SetEventEmitter(o.emitEvent)

	go func() {
		<-ctx.Done()
		o.Close()
	}()

	if err := o.speechToText.Start(
		o.baseContext,
		utils.Ptr(o.audioInput.EncodingInfo()),
		o.session.currentLanguage(),
	); err != nil {
		recordedErr := fmt.Errorf("failed to initialize speech-to-text: %w", err)
		span := trace.SpanFromContext(o.baseContext)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
	}
	o.audioInput.Start(o.baseContext)
}

// Conversation is a point-in-time view of the transcript and session state.
type Conversation struct {
	Entries                  []Entry
	Processing               bool
	PendingVerificationToken string
	Language                 string
}

// Conversation returns a point-in-time snapshot of conversation state.
func (o *Orchestrator) Conversation() Conversation {
	token, _, _ := o.session.pendingVerification()
	return Conversation{
		Entries:                  o.transcript.Entries(),
		Processing:               o.session.isProcessing(),
		PendingVerificationToken: token,
		Language:                 o.session.currentLanguage(),
	}
}

// Submit sends an utterance to the assistant backend and applies the reply
// to the transcript. Blank input is a no-op.
//
// Failures never propagate to the caller: transport and service errors are
// converted to error transcript entries, and the processing flag is cleared
// on every path before reply entries are appended.
func (o *Orchestrator) Submit(ctx context.Context, text string, opts ...assistant.QueryOption) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	ctx, span := tracer.Start(ctx, "submit utterance")
	defer span.End()

	language := o.session.currentLanguage()
	o.appendEntry(Entry{Role: RoleUser, Text: text})
	o.setProcessing(true)

	queryOptions := append([]assistant.QueryOption{assistant.WithLanguage(language)}, opts...)
	response, err := o.assistant.Query(ctx, text, queryOptions...)
	o.setProcessing(false)
	if err != nil {
		recordedErr := fmt.Errorf("assistant query failed: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		logger.ErrorContext(ctx, "assistant query failed", "error", err)

		messages := copyForLanguage(language)
		o.appendEntry(Entry{Role: RoleError, Text: messages.errorPrefix + err.Error()})
		return
	}

	o.applyResponse(response)
}

// SubmitSpokenUtterance is Submit for transcribed speech: blank input means
// the capture yielded nothing, which surfaces as a fixed no-speech error
// entry without contacting the backend.
func (o *Orchestrator) SubmitSpokenUtterance(ctx context.Context, text string, opts ...assistant.QueryOption) {
	if strings.TrimSpace(text) == "" {
		messages := copyForLanguage(o.session.currentLanguage())
		o.appendEntry(Entry{Role: RoleError, Text: messages.noSpeech})
		return
	}

	o.Submit(ctx, text, opts...)
}

// SelectOption re-enters the submission pipeline with the option's display
// value, indistinguishable from freshly typed text.
func (o *Orchestrator) SelectOption(ctx context.Context, option assistant.Option) {
	o.Submit(ctx, option.Value())
}

// ResolveVerification sends a passcode against the pending challenge.
//
// On success the challenge entry is filtered out and replaced with the
// verification reply. A rejected code leaves the token and the challenge
// entry untouched so the user can retry without restarting the transaction;
// the rejection surfaces only as an error transcript entry.
func (o *Orchestrator) ResolveVerification(ctx context.Context, code string) error {
	token, expired, ok := o.session.pendingVerification()
	if !ok {
		return ErrNoPendingVerification
	}

	messages := copyForLanguage(o.session.currentLanguage())
	if expired {
		o.session.clearPendingToken()
		o.clearChallengeEntries()
		o.appendEntry(Entry{Role: RoleError, Text: messages.verificationExpired})
		o.emitEvent(events.NewSessionVerificationResolved(false))
		return ErrVerificationExpired
	}

	ctx, span := tracer.Start(ctx, "resolve verification")
	defer span.End()

	o.setProcessing(true)
	result, err := o.assistant.VerifyCode(ctx, code, token)
	o.setProcessing(false)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		o.appendEntry(Entry{Role: RoleError, Text: messages.invalidCode})
		return nil
	}

	o.clearChallengeEntries()
	o.session.clearPendingToken()

	entry := Entry{Role: RoleAssistant}
	if result != nil {
		entry.Text = result.Text
		entry.AudioCue = result.AudioCue
		entry.VerificationSucceeded = result.Celebratory
	}
	o.appendEntry(entry)
	o.emitEvent(events.NewSessionVerificationResolved(true))
	if entry.AudioCue != "" {
		o.emitEvent(events.NewAssistantAudioCue(entry.AudioCue))
	}

	return nil
}

// AbandonVerification drops the pending challenge without contacting the
// backend: the token is cleared and the challenge entry filtered out.
func (o *Orchestrator) AbandonVerification() {
	if _, _, ok := o.session.pendingVerification(); !ok {
		return
	}

	o.session.clearPendingToken()
	o.clearChallengeEntries()
	o.emitEvent(events.NewSessionVerificationResolved(false))
}

// SetLanguage changes the locale used for subsequent submissions and locally
// produced copy. Entries already in the transcript are not translated.
func (o *Orchestrator) SetLanguage(language string) {
	if o.session.setLanguage(language) {
		o.emitEvent(events.NewSessionLanguageChanged(language))
	}
}

func (o *Orchestrator) Language() string { return o.session.currentLanguage() }

// Reset clears the transcript and session, client and server side.
func (o *Orchestrator) Reset(ctx context.Context) error {
	o.transcript.clear()
	o.session.reset()

	if err := o.assistant.Reset(ctx); err != nil {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (o *Orchestrator) SendAudio(audio []byte) error { return o.speechToText.SendAudio(audio) }

func (o *Orchestrator) StartRecording() error {
	o.IsRecording = true
	return o.audioInput.RequestCapture(o.baseContext)
}

func (o *Orchestrator) StopRecording() error {
	o.IsRecording = false
	return o.audioInput.ReleaseCapture(o.baseContext)
}

func (o *Orchestrator) IsOpenMic() bool { return o.audioInput.IsOpenMic() }
func (o *Orchestrator) SetOpenMic(openMic bool) {
	var err error
	if openMic {
		err = o.audioInput.EnableOpenMic(o.baseContext)
	} else {
		err = o.audioInput.DisableOpenMic(o.baseContext)
	}

	if err != nil {
		recordedErr := fmt.Errorf("failed to set open mic to %t: %w", openMic, err)
		span := trace.SpanFromContext(o.baseContext)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
	}
}
