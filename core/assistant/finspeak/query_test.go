package finspeak

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/karvendhanm/FinSpeak/core/assistant"
)

func TestQueryMapsStructuredResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/text" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("text"); got != "transfer 500 to Kumar" {
			t.Fatalf("unexpected text param %q", got)
		}
		if got := r.URL.Query().Get("userId"); got != "tester" {
			t.Fatalf("unexpected userId param %q", got)
		}
		if got := r.URL.Query().Get("lang"); got != "hi-IN" {
			t.Fatalf("unexpected lang param %q", got)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"text":        "Send ₹500 from Savings to Kumar via IMPS?",
			"audioUrl":    "data:audio/mp3;base64,AAA",
			"requiresOTP": true,
			"sessionId":   "session-42",
			"options": []map[string]string{
				{"id": "yes", "display": "Yes, confirm", "text": "Yes"},
				{"id": "no", "display": "No", "text": "No"},
			},
			"confirmation": map[string]any{
				"amount":             500,
				"from_account":       "Savings (XXXX7890)",
				"to_beneficiary":     "Kumar",
				"mode":               "IMPS",
				"needs_confirmation": true,
			},
			"transactions": []map[string]any{
				{"date": "15/01/2025", "description": "Grocery", "type": "debit", "amount": 1200},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithUserID("tester"))
	response, err := client.Query(context.Background(), "transfer 500 to Kumar", assistant.WithLanguage("hi-IN"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Text != "Send ₹500 from Savings to Kumar via IMPS?" {
		t.Fatalf("unexpected text %q", response.Text)
	}
	if !response.RequiresVerification || response.SessionToken != "session-42" {
		t.Fatalf("expected verification with token session-42, got %+v", response)
	}
	if len(response.Options) != 2 || response.Options[0].Value() != "Yes, confirm" {
		t.Fatalf("unexpected options %+v", response.Options)
	}
	if response.Confirmation == nil || !response.Confirmation.NeedsConfirmation {
		t.Fatalf("expected confirmation payload, got %+v", response.Confirmation)
	}
	if len(response.Records.Transactions) != 1 || response.Records.Transactions[0].Type != "debit" {
		t.Fatalf("unexpected transactions %+v", response.Records.Transactions)
	}
	if response.AudioCue == "" {
		t.Fatalf("expected audio cue to be carried through")
	}
}

func TestQuerySurfacesBackendErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "agent unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Query(context.Background(), "balance")
	if err == nil {
		t.Fatalf("expected an error for a non-OK status")
	}
	if got := err.Error(); !containsAll(got, "non-OK HTTP status", "agent unavailable") {
		t.Fatalf("expected status and backend detail in error, got %q", got)
	}
}

func TestVerifyCodeRejectionIsErrCodeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/verify-otp" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("otp"); got != "000000" {
			t.Fatalf("unexpected otp param %q", got)
		}
		if got := r.URL.Query().Get("sessionId"); got != "abc" {
			t.Fatalf("unexpected sessionId param %q", got)
		}

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid OTP"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.VerifyCode(context.Background(), "000000", "abc")
	if !errors.Is(err, ErrCodeRejected) {
		t.Fatalf("expected ErrCodeRejected, got %v", err)
	}
}

func TestVerifyCodeSuccessCarriesCelebratoryFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"text":             "Transfer successful! 500 rupees sent to Kumar.",
			"workflowStatus":   "COMPLETED",
			"showSuccessModal": true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.VerifyCode(context.Background(), "123456", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Celebratory {
		t.Fatalf("expected celebratory result, got %+v", result)
	}
	if result.Text == "" {
		t.Fatalf("expected resolution text")
	}
}

func TestResetHitsResetEndpoint(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"status": "reset"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/api/reset" {
		t.Fatalf("expected reset endpoint, got %q", path)
	}
}

func containsAll(s string, substrings ...string) bool {
	for _, substring := range substrings {
		if !strings.Contains(s, substring) {
			return false
		}
	}
	return true
}
