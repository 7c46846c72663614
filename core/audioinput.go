package orchestration

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/karvendhanm/FinSpeak/core/audio"
)

type audioInput struct {
	// base stores the configured input client used for streaming audio.
	base audioInputBase
	// fineCaptureControl is set when the input client supports explicit capture controls.
	fineCaptureControl AudioInputFine

	// connected reports whether a concrete input client is currently configured.
	connected atomic.Bool
	// isCapturing reports whether the input client is currently capturing audio.
	isCapturing atomic.Bool

	// openMic keeps capture running continuously instead of push-to-talk.
	openMic atomic.Bool
	// captureRequested reports whether a push-to-talk capture is active.
	captureRequested atomic.Bool

	// onInputAudio is called when input audio is received
	onInputAudio func(audio []byte)
}

func newAudioInput(client audioInputBase, onInputAudio func(audio []byte)) *audioInput {
	if onInputAudio == nil {
		onInputAudio = func(audio []byte) {}
	}

	audioInput := audioInput{onInputAudio: onInputAudio}
	audioInput.Set(client)
	return &audioInput
}

func (a *audioInput) Set(client audioInputBase) {
	if a == nil {
		return
	}

	a.base = client
	a.fineCaptureControl = nil
	a.connected.Store(false)
	a.isCapturing.Store(false)

	if client == nil {
		return
	}

	a.connected.Store(true)
	if fine, ok := client.(AudioInputFine); ok {
		a.fineCaptureControl = fine
	}
}

func (a *audioInput) IsConfigured() bool            { return a != nil && a.connected.Load() }
func (a *audioInput) SupportsCaptureControls() bool { return a != nil && a.fineCaptureControl != nil }
func (a *audioInput) IsOpenMic() bool               { return a != nil && a.openMic.Load() }
func (a *audioInput) IsCapturing() bool             { return a != nil && a.isCapturing.Load() }
func (a *audioInput) CaptureRequested() bool        { return a != nil && a.captureRequested.Load() }

func (a *audioInput) EnableOpenMic(ctx context.Context) error {
	if a == nil {
		return nil
	}

	a.openMic.Store(true)
	return a.Capture(ctx)
}

func (a *audioInput) DisableOpenMic(context.Context) error {
	if a == nil {
		return nil
	}

	a.openMic.Store(false)
	return a.StopCapture()
}

func (a *audioInput) RequestCapture(ctx context.Context) error {
	if a == nil {
		return nil
	}

	a.captureRequested.Store(true)
	return a.Capture(ctx)
}

func (a *audioInput) ReleaseCapture(context.Context) error {
	if a == nil {
		return nil
	}

	a.captureRequested.Store(false)
	return a.StopCapture()
}

func (a *audioInput) Start(ctx context.Context) {
	if a.IsConfigured() && a.IsOpenMic() {
		a.Capture(ctx)
	}
}

func (a *audioInput) Capture(ctx context.Context) error {
	if a == nil {
		return nil
	}

	if !a.isCapturing.CompareAndSwap(false, true) {
		return nil
	}

	if a.SupportsCaptureControls() {
		if a.IsOpenMic() || a.CaptureRequested() {
			go func() {
				if err := a.fineCaptureControl.StartCapture(ctx, a.onAudio); err != nil {
					a.isCapturing.Store(false)
					// TODO: Find a way to propagate this error
					log.Printf("Failed to start audio input: %v", err)
				}
			}()
			return nil
		}

		a.isCapturing.Store(false)
		return nil
	}

	if a.base != nil {
		go func() {
			if err := a.base.Stream(ctx, a.onAudio); err != nil {
				a.isCapturing.Store(false)
				// TODO: Find a way to propagate this error
				log.Printf("Failed to start audio input: %v", err)
			}
		}()
		return nil
	}

	a.isCapturing.Store(false)
	return nil
}

func (a *audioInput) Close() error {
	var errs error
	if a.base != nil && a.IsConfigured() {
		if a.fineCaptureControl != nil {
			if err := a.fineCaptureControl.StopCapture(); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		a.base.Close()
	}
	a.isCapturing.Store(false)

	return errs
}

func (a *audioInput) StopCapture() error {
	if a.SupportsCaptureControls() {
		if a.IsOpenMic() || a.CaptureRequested() {
			return nil
		}

		if err := a.fineCaptureControl.StopCapture(); err != nil {
			return err
		}
		a.isCapturing.Store(false)
		return nil
	}

	return nil
}

func (a *audioInput) EncodingInfo() audio.EncodingInfo {
	if a == nil || a.base == nil {
		return audio.GetDefaultEncodingInfo()
	}

	return a.base.EncodingInfo()
}

func (a *audioInput) onAudio(audio []byte) {
	if !a.IsOpenMic() && !a.CaptureRequested() {
		return
	}

	a.onInputAudio(audio)
}
