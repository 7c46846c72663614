package finspeak

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/karvendhanm/FinSpeak/core/assistant"
)

// ErrCodeRejected marks a passcode the backend refused. Callers treat it as
// an invalid code the user may retry, not as a transport fault.
var ErrCodeRejected = errors.New("verification code rejected")

// VerifyCode submits a one-time passcode against a pending verification
// session.
func (c *Client) VerifyCode(ctx context.Context, code string, sessionToken string) (*assistant.VerificationResult, error) {
	ctx, span := tracer.Start(ctx, "verify code")
	defer span.End()

	params := url.Values{}
	params.Set("otp", code)
	params.Set("sessionId", sessionToken)

	endpoint := c.baseURL + "/api/verify-otp?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		err = fmt.Errorf("error creating HTTP request: %w", err)
		span.RecordError(err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The backend answers every rejected or unknown code with a non-OK
		// status. There is no retryable transport distinction to make here.
		err := fmt.Errorf("%w: %s", ErrCodeRejected, readErrorDetail(resp.Body))
		span.RecordError(err)
		return nil, err
	}

	var wire struct {
		Text             string `json:"text"`
		AudioURL         string `json:"audioUrl"`
		WorkflowStatus   string `json:"workflowStatus"`
		ShowSuccessModal bool   `json:"showSuccessModal"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		err = fmt.Errorf("error unmarshalling JSON: %w", err)
		span.RecordError(err)
		return nil, err
	}

	return &assistant.VerificationResult{
		Text:        wire.Text,
		AudioCue:    wire.AudioURL,
		Celebratory: wire.ShowSuccessModal,
	}, nil
}
