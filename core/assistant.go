package orchestration

import (
	"context"
	"errors"
	"fmt"

	"github.com/karvendhanm/FinSpeak/core/assistant"
)

var ErrAssistantNotConfigured = errors.New("assistant client not configured")

// assistantService wraps the configured backend client so the orchestrator
// never has to nil-check it at call sites.
type assistantService struct {
	// client stores the configured assistant backend implementation.
	client AssistantClient
}

func (s *assistantService) set(client AssistantClient) {
	if s != nil {
		s.client = client
	}
}

func (s *assistantService) isConfigured() bool {
	return s != nil && s.client != nil
}

func (s *assistantService) Query(ctx context.Context, text string, opts ...assistant.QueryOption) (*assistant.QueryResponse, error) {
	if !s.isConfigured() {
		return nil, ErrAssistantNotConfigured
	}

	return s.client.Query(ctx, text, opts...)
}

func (s *assistantService) VerifyCode(ctx context.Context, code string, sessionToken string) (*assistant.VerificationResult, error) {
	if !s.isConfigured() {
		return nil, ErrAssistantNotConfigured
	}

	return s.client.VerifyCode(ctx, code, sessionToken)
}

// Reset clears server-side conversation state when the configured client
// supports it.
func (s *assistantService) Reset(ctx context.Context) error {
	if !s.isConfigured() {
		return nil
	}

	switch c := s.client.(type) {
	case interface{ Reset(context.Context) error }:
		if err := c.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset assistant session: %w", err)
		}
	case interface{ Reset(context.Context) }:
		c.Reset(ctx)
	}

	return nil
}
