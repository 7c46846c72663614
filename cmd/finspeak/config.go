package main

import (
	"fmt"
	"os"
	"strings"
)

type config struct {
	backendURL string
	userID     string
	language   string

	// audioBackend selects the microphone capture implementation:
	// "miniaudio", "portaudio" or "off".
	audioBackend string

	// voiceEnabled is derived from the presence of a Deepgram key; without it
	// the client runs text-only.
	voiceEnabled bool
}

func loadConfig() (config, error) {
	cfg := config{
		backendURL:   envOr("BACKEND_URL", "http://localhost:8000"),
		userID:       envOr("FINSPEAK_USER_ID", "demo_user"),
		language:     envOr("FINSPEAK_LANGUAGE", "en-IN"),
		audioBackend: strings.ToLower(envOr("FINSPEAK_AUDIO", "off")),
	}

	switch cfg.audioBackend {
	case "miniaudio", "portaudio", "off":
	default:
		return config{}, fmt.Errorf("invalid FINSPEAK_AUDIO value %q, expected miniaudio, portaudio or off", cfg.audioBackend)
	}

	_, hasDeepgramKey := os.LookupEnv("DEEPGRAM_API_KEY")
	cfg.voiceEnabled = hasDeepgramKey && cfg.audioBackend != "off"
	if cfg.audioBackend != "off" && !hasDeepgramKey {
		return config{}, fmt.Errorf("FINSPEAK_AUDIO is %q but DEEPGRAM_API_KEY is not set", cfg.audioBackend)
	}

	return cfg, nil
}

func envOr(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
