package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lightwave-leds/lightwave/internal/client"
	"github.com/lightwave-leds/lightwave/internal/protocol"
)

func TestExitErrorImplementsError(t *testing.T) {
	err := &ExitError{Code: 1, Message: "something failed"}

	got := err.Error()
	want := "something failed"

	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrEffectNotFound(t *testing.T) {
	err := errEffectNotFound("sparkle")

	if err.Code != exitAPIError {
		t.Errorf("Code = %d, want %d", err.Code, exitAPIError)
	}
	if err.Message != "Effect 'sparkle' not found." {
		t.Errorf("Message = %q, want %q", err.Message, "Effect 'sparkle' not found.")
	}
}

func TestClassify(t *testing.T) {
	reqErr := &client.RequestError{Method: "GET", URL: "http://pi/api/status", Err: errors.New("connection refused")}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"exit error passes through", &ExitError{Code: 7, Message: "custom"}, 7, "custom"},
		{"validation", &protocol.ValidationError{Field: "brightness", Message: "brightness must be between 0.0 and 1.0"}, exitUsage, "brightness must be between"},
		{"request", reqErr, exitConnection, "connection refused"},
		{"wrapped request", fmt.Errorf("status: %w", reqErr), exitConnection, "Is the LightWave server running?"},
		{"api", &client.APIError{StatusCode: 503, Message: "busy"}, exitAPIError, "API error (503): busy"},
		{"decode", &client.DecodeError{Err: errors.New("bad")}, exitBadResponse, "Failed to parse response"},
		{"canceled", &client.RequestError{Method: "GET", URL: "x", Err: context.Canceled}, exitError, "Interrupted."},
		{"other", errors.New("load config: boom"), exitError, "load config: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			if got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantCode)
			}
			if !strings.Contains(got.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want to contain %q", got.Message, tt.wantMsg)
			}
		})
	}
}
