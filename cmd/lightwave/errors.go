package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/lightwave-leds/lightwave/internal/client"
	"github.com/lightwave-leds/lightwave/internal/config"
	"github.com/lightwave-leds/lightwave/internal/protocol"
	"github.com/lightwave-leds/lightwave/internal/ui"
)

// Exit codes for CLI commands.
const (
	exitSuccess     = 0
	exitError       = 1
	exitUsage       = 2
	exitConnection  = 3
	exitAPIError    = 4
	exitBadResponse = 5
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func usageError(err error) *ExitError {
	msg := err.Error()
	if negativeNumberFlag.MatchString(msg) {
		msg += "\nNegative numbers need -- in front, e.g. lightwave leds brightness -- -0.5"
	}
	return &ExitError{
		Code:    exitUsage,
		Message: msg + "\nRun: lightwave --help",
	}
}

// negativeNumberFlag matches kong's error for an argument like "-0.5",
// which it scans as a short flag.
var negativeNumberFlag = regexp.MustCompile(`unknown flag -[0-9.]`)

func errEffectNotFound(name string) *ExitError {
	return &ExitError{
		Code:    exitAPIError,
		Message: fmt.Sprintf("Effect '%s' not found.", name),
	}
}

func errServerUnreachable(err *client.RequestError) *ExitError {
	return &ExitError{
		Code:    exitConnection,
		Message: fmt.Sprintf("%v\nIs the LightWave server running? Set the URL with --base-url or $%s.", err, config.EnvBaseURL),
	}
}

// classify maps an error to an ExitError.
func classify(err error) *ExitError {
	var (
		exitErr    *ExitError
		reqErr     *client.RequestError
		apiErr     *client.APIError
		decErr     *client.DecodeError
		invalidErr *protocol.ValidationError
	)

	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, context.Canceled):
		return &ExitError{Code: exitError, Message: "Interrupted."}
	case errors.As(err, &invalidErr):
		return &ExitError{Code: exitUsage, Message: invalidErr.Error()}
	case errors.As(err, &reqErr):
		return errServerUnreachable(reqErr)
	case errors.As(err, &apiErr):
		return &ExitError{Code: exitAPIError, Message: apiErr.Error()}
	case errors.As(err, &decErr):
		return &ExitError{Code: exitBadResponse, Message: decErr.Error()}
	default:
		return &ExitError{Code: exitError, Message: err.Error()}
	}
}

// reportError prints err in red on stderr and returns its exit code.
func reportError(err error) int {
	e := classify(err)
	if e.Message != "" {
		ui.PrintError(e.Message)
	}
	return e.Code
}
