package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	orchestration "github.com/karvendhanm/FinSpeak/core"
	"github.com/karvendhanm/FinSpeak/core/assistant/finspeak"
	"github.com/karvendhanm/FinSpeak/core/audio/miniaudio"
	"github.com/karvendhanm/FinSpeak/core/audio/portaudio"
	"github.com/karvendhanm/FinSpeak/core/speechtotext/deepgram"
)

const portaudioBufferSize = 480

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "finspeak:", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := finspeak.NewClient(cfg.backendURL, finspeak.WithUserID(cfg.userID))

	orchestratorOptions := []orchestration.OrchestratorOption{
		orchestration.WithAssistantClient(client),
		orchestration.WithLanguage(cfg.language),
	}

	if cfg.voiceEnabled {
		orchestratorOptions = append(orchestratorOptions,
			orchestration.WithSpeechToTextClient(deepgram.NewTranscriptionClient()),
		)

		switch cfg.audioBackend {
		case "miniaudio":
			audioClient, err := miniaudio.NewClient()
			if err != nil {
				return fmt.Errorf("failed to initialize miniaudio capture: %w", err)
			}
			orchestratorOptions = append(orchestratorOptions, orchestration.WithAudioInput(audioClient))
		case "portaudio":
			audioClient, err := portaudio.NewClient(portaudioBufferSize)
			if err != nil {
				return fmt.Errorf("failed to initialize portaudio capture: %w", err)
			}
			orchestratorOptions = append(orchestratorOptions, orchestration.WithAudioInput(audioClient))
		}
	}

	orchestrator := orchestration.NewOrchestrator(orchestratorOptions...)
	defer orchestrator.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan tea.Msg, 64)
	notify := func(msg tea.Msg) {
		select {
		case updates <- msg:
		default:
		}
	}

	orchestrator.Orchestrate(ctx,
		orchestration.WithEntryAppendedCallback(func(orchestration.Entry) {
			notify(conversationUpdatedMsg{})
		}),
		orchestration.WithChallengeClearedCallback(func([]string) {
			notify(conversationUpdatedMsg{})
		}),
		orchestration.WithProcessingChangedCallback(func(processing bool) {
			notify(processingChangedMsg(processing))
		}),
		orchestration.WithVerificationRequestedCallback(func(string) {
			notify(conversationUpdatedMsg{})
		}),
		orchestration.WithVerificationResolvedCallback(func(bool) {
			notify(conversationUpdatedMsg{})
		}),
		orchestration.WithSpeakingStateChangedCallback(func(isSpeaking bool) {
			notify(speakingChangedMsg(isSpeaking))
		}),
	)

	program := tea.NewProgram(
		newModel(ctx, orchestrator, cfg, updates),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
