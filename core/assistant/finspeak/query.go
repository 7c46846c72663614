package finspeak

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jinzhu/copier"
	"go.opentelemetry.io/otel/attribute"

	"github.com/karvendhanm/FinSpeak/core/assistant"
)

// Query submits a user utterance to the assistant and returns its structured
// reply. The backend accepts its inputs as query parameters.
func (c *Client) Query(ctx context.Context, text string, opts ...assistant.QueryOption) (*assistant.QueryResponse, error) {
	options := assistant.QueryOptions{UserID: c.userID}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, span := tracer.Start(ctx, "query assistant")
	defer span.End()
	span.SetAttributes(attribute.String("request.language", options.Language))

	params := url.Values{}
	params.Set("text", text)
	if options.UserID != "" {
		params.Set("userId", options.UserID)
	}
	if options.Language != "" {
		params.Set("lang", options.Language)
	}

	var wire wireQueryResponse
	if err := c.post(ctx, "/api/text", params, &wire); err != nil {
		span.RecordError(err)
		return nil, err
	}

	response := assistant.QueryResponse{
		UserText:             wire.UserText,
		Text:                 wire.Text,
		ConfirmationMessage:  wire.ConfirmationMessage,
		AudioCue:             wire.AudioURL,
		RequiresVerification: wire.RequiresOTP,
		SessionToken:         wire.SessionID,
		WorkflowStatus:       wire.WorkflowStatus,
	}

	if err := errors.Join(
		copier.Copy(&response.Options, wire.Options),
		copier.Copy(&response.Records.Transactions, wire.Transactions),
		copier.Copy(&response.Records.Payments, wire.Payments),
		copier.Copy(&response.Records.Loans, wire.Loans),
		copier.Copy(&response.Records.Cards, wire.Cards),
	); err != nil {
		span.RecordError(err)
		logger.ErrorContext(ctx, "failed to map structured reply payloads", "error", err)
	}

	if wire.Confirmation != nil {
		response.Confirmation = &assistant.Confirmation{
			Amount:            wire.Confirmation.Amount,
			FromAccount:       wire.Confirmation.FromAccount,
			ToBeneficiary:     wire.Confirmation.ToBeneficiary,
			Mode:              wire.Confirmation.Mode,
			NeedsConfirmation: wire.Confirmation.NeedsConfirmation,
		}
	}

	return &response, nil
}

// Reset discards the backend-side conversation for the configured user.
func (c *Client) Reset(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "reset assistant session")
	defer span.End()

	params := url.Values{}
	params.Set("userId", c.userID)

	var wire struct {
		Status string `json:"status"`
	}
	if err := c.post(ctx, "/api/reset", params, &wire); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-OK HTTP status: %s: %s", resp.Status, readErrorDetail(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error unmarshalling JSON: %w", err)
	}

	return nil
}

// readErrorDetail extracts the backend's error message from a non-OK body,
// falling back to the raw body when it is not the usual {"error": ...} shape.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}

	var wire struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &wire); err == nil && wire.Error != "" {
		return wire.Error
	}

	return string(raw)
}

type wireQueryResponse struct {
	UserText            string            `json:"userText"`
	Text                string            `json:"text"`
	ConfirmationMessage string            `json:"confirmationMessage"`
	AudioURL            string            `json:"audioUrl"`
	RequiresOTP         bool              `json:"requiresOTP"`
	SessionID           string            `json:"sessionId"`
	WorkflowStatus      string            `json:"workflowStatus"`
	Options             []wireOption      `json:"options"`
	Confirmation        *wireConfirmation `json:"confirmation"`
	Transactions        []wireTransaction `json:"transactions"`
	Payments            []wirePayment     `json:"payments"`
	Loans               []wireLoan        `json:"loans"`
	Cards               []wireCard        `json:"cards"`
}

type wireOption struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Text    string `json:"text"`
}

type wireConfirmation struct {
	Amount            float64 `json:"amount"`
	FromAccount       string  `json:"from_account"`
	ToBeneficiary     string  `json:"to_beneficiary"`
	Mode              string  `json:"mode"`
	NeedsConfirmation bool    `json:"needs_confirmation"`
}

type wireTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
}

type wirePayment struct {
	DueDate string  `json:"due_date"`
	Payee   string  `json:"payee"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

type wireLoan struct {
	Type        string  `json:"type"`
	Outstanding float64 `json:"outstanding"`
	EMI         float64 `json:"emi"`
	NextDueDate string  `json:"next_due_date"`
}

type wireCard struct {
	Type           string  `json:"type"`
	LastFour       string  `json:"last_four"`
	Outstanding    float64 `json:"outstanding"`
	DueDate        string  `json:"due_date"`
	AvailableLimit float64 `json:"available_limit"`
}
