package orchestration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/karvendhanm/FinSpeak/core/audio"
)

type audioInputClientStub struct {
	mu sync.Mutex

	startCalls int
	stopCalls  int
	onAudio    func(audio []byte)
}

func (a *audioInputClientStub) EncodingInfo() audio.EncodingInfo {
	return audio.GetDefaultEncodingInfo()
}

func (a *audioInputClientStub) Stream(_ context.Context, onAudio func(audio []byte)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.onAudio = onAudio
	return nil
}

func (a *audioInputClientStub) StartCapture(_ context.Context, onAudio func(audio []byte)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.startCalls++
	a.onAudio = onAudio
	return nil
}

func (a *audioInputClientStub) StopCapture() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopCalls++
	return nil
}

func (a *audioInputClientStub) Close() {}

func (a *audioInputClientStub) emit(chunk []byte) {
	a.mu.Lock()
	onAudio := a.onAudio
	a.mu.Unlock()

	if onAudio != nil {
		onAudio(chunk)
	}
}

func (a *audioInputClientStub) counts() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.startCalls, a.stopCalls
}

func awaitCondition(t *testing.T, condition func() bool, message string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("%s", message)
}

func TestAudioInputPushToTalkGatesCapture(t *testing.T) {
	client := &audioInputClientStub{}

	var mu sync.Mutex
	received := 0
	input := newAudioInput(client, func([]byte) {
		mu.Lock()
		defer mu.Unlock()
		received++
	})

	if err := input.RequestCapture(context.Background()); err != nil {
		t.Fatalf("expected capture request to succeed, got %v", err)
	}
	awaitCondition(t, func() bool {
		starts, _ := client.counts()
		return starts == 1
	}, "timed out waiting for capture to start")

	client.emit([]byte{1})
	mu.Lock()
	count := received
	mu.Unlock()
	if count != 1 {
		t.Fatalf("expected audio to flow while capture is requested, got %d chunks", count)
	}

	if err := input.ReleaseCapture(context.Background()); err != nil {
		t.Fatalf("expected capture release to succeed, got %v", err)
	}
	awaitCondition(t, func() bool {
		_, stops := client.counts()
		return stops == 1
	}, "timed out waiting for capture to stop")

	client.emit([]byte{2})
	mu.Lock()
	count = received
	mu.Unlock()
	if count != 1 {
		t.Fatalf("expected audio to be dropped after release, got %d chunks", count)
	}
}

func TestAudioInputStartWithoutOpenMicDoesNotCapture(t *testing.T) {
	client := &audioInputClientStub{}
	input := newAudioInput(client, nil)

	input.Start(context.Background())

	time.Sleep(20 * time.Millisecond)
	starts, _ := client.counts()
	if starts != 0 {
		t.Fatalf("expected no capture before a request, got %d starts", starts)
	}
	if input.IsCapturing() {
		t.Fatalf("expected input to be idle before a request")
	}
}

func TestAudioInputOpenMicStartsCapture(t *testing.T) {
	client := &audioInputClientStub{}
	input := newAudioInput(client, nil)

	if err := input.EnableOpenMic(context.Background()); err != nil {
		t.Fatalf("expected open mic to start, got %v", err)
	}

	awaitCondition(t, func() bool {
		starts, _ := client.counts()
		return starts == 1
	}, "timed out waiting for open mic capture to start")
}

func TestAudioInputUnconfiguredIsNilSafe(t *testing.T) {
	input := newAudioInput(nil, nil)

	if input.IsConfigured() {
		t.Fatalf("expected unconfigured input")
	}
	if err := input.RequestCapture(context.Background()); err != nil {
		t.Fatalf("expected unconfigured capture request to be a no-op, got %v", err)
	}
	if got := input.EncodingInfo(); got != audio.GetDefaultEncodingInfo() {
		t.Fatalf("expected default encoding info, got %+v", got)
	}
}
