package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/lightwave-leds/lightwave/internal/config"
)

// newSlowServer answers after delay, or gives up when the client hangs up.
func newSlowServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"running":false}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRun_TimeoutFlag(t *testing.T) {
	isolate(t)
	srv := newSlowServer(t, 2*time.Second)

	code, _, stderr := runCLI(t, "-u", srv.URL, "--timeout", "100ms", "status")

	if code != exitConnection {
		t.Errorf("exit code = %d, want %d", code, exitConnection)
	}
	if !strings.Contains(stderr, "Request failed") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_ConfigFileBaseURL(t *testing.T) {
	// Arrange
	isolate(t)
	srv := newFakeServer(t)
	path := writeConfigFile(t, "base_url: "+srv.URL+"/api\n")

	// Act
	code, _, stderr := runCLI(t, "--config", path, "status")

	// Assert
	if code != exitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr)
	}
	if reqs := srv.recorded(); len(reqs) != 1 || reqs[0].Path != "/api/status" {
		t.Errorf("requests = %+v, want GET /api/status", reqs)
	}
}

func TestRun_ConfigFileTimeout(t *testing.T) {
	isolate(t)
	srv := newSlowServer(t, 2*time.Second)
	t.Setenv(config.EnvConfig, writeConfigFile(t, "base_url: "+srv.URL+"\ntimeout: 50ms\n"))

	code, _, stderr := runCLI(t, "status")

	if code != exitConnection {
		t.Errorf("exit code = %d, want %d (stderr: %s)", code, exitConnection, stderr)
	}
}

func TestRun_TimeoutFlagOverridesConfig(t *testing.T) {
	isolate(t)
	srv := newSlowServer(t, 300*time.Millisecond)
	path := writeConfigFile(t, "base_url: "+srv.URL+"\ntimeout: 50ms\n")

	code, _, stderr := runCLI(t, "--config", path, "--timeout", "5s", "status")

	if code != exitSuccess {
		t.Errorf("exit code = %d, want 0 (stderr: %s)", code, stderr)
	}
}

func TestRun_BaseURLFlagOverridesConfig(t *testing.T) {
	isolate(t)
	flagSrv := newFakeServer(t)
	cfgSrv := newFakeServer(t)
	path := writeConfigFile(t, "base_url: "+cfgSrv.URL+"\n")

	code, _, _ := runCLI(t, "--config", path, "-u", flagSrv.URL, "leds", "clear")

	if code != exitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if len(flagSrv.recorded()) != 1 || len(cfgSrv.recorded()) != 0 {
		t.Errorf("flag server got %d requests, config server got %d", len(flagSrv.recorded()), len(cfgSrv.recorded()))
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestRun_LogFile(t *testing.T) {
	isolate(t)
	srv := newFakeServer(t)
	logPath := filepath.Join(t.TempDir(), "logs", "lightwave.log")

	code, _, _ := runCLI(t, "-u", srv.URL, "--log-file", logPath, "status")

	if code != exitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	logs := readLog(t, logPath)
	for _, want := range []string{"msg=request", "msg=response", "url=" + srv.URL + "/status"} {
		if !strings.Contains(logs, want) {
			t.Errorf("log should contain %q, got: %s", want, logs)
		}
	}
}

func TestRun_LogFileFlagOverridesConfig(t *testing.T) {
	isolate(t)
	srv := newFakeServer(t)
	dir := t.TempDir()
	cfgLog := filepath.Join(dir, "config.log")
	flagLog := filepath.Join(dir, "flag.log")
	path := writeConfigFile(t, "base_url: "+srv.URL+"\nlog_file: "+cfgLog+"\n")

	// Config file alone.
	if code, _, _ := runCLI(t, "--config", path, "status"); code != exitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(readLog(t, cfgLog), "msg=request") {
		t.Errorf("config log_file should receive request logs")
	}

	// Flag wins.
	if code, _, _ := runCLI(t, "--config", path, "--log-file", flagLog, "status"); code != exitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(readLog(t, flagLog), "msg=request") {
		t.Errorf("--log-file should receive request logs")
	}
	if n := strings.Count(readLog(t, cfgLog), "msg=request"); n != 1 {
		t.Errorf("config log has %d request lines, want 1", n)
	}
}

func TestRun_NoColor(t *testing.T) {
	isolate(t)
	srv := newFakeServer(t)
	srv.handle(http.MethodGet, "/status", http.StatusOK, `{"running":true}`)

	color.NoColor = false
	_, colored, _ := runCLI(t, "-u", srv.URL, "status")

	color.NoColor = false
	_, plain, _ := runCLI(t, "-u", srv.URL, "--no-color", "status")

	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("output without --no-color should be colored, got %q", colored)
	}
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("--no-color output has ANSI codes: %q", plain)
	}
}

func TestRun_NegativeBrightness(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"scanned as a flag", []string{"leds", "brightness", "-0.5"}, "lightwave leds brightness -- -0.5"},
		{"after --", []string{"leds", "brightness", "--", "-0.5"}, "brightness must be between 0.0 and 1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			srv := newFakeServer(t)
			args := append([]string{"-u", srv.URL}, tt.args...)

			code, _, stderr := runCLI(t, args...)

			if code != exitUsage {
				t.Errorf("exit code = %d, want %d", code, exitUsage)
			}
			if len(srv.recorded()) != 0 {
				t.Errorf("server received %d requests, want none", len(srv.recorded()))
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr should contain %q, got %q", tt.want, stderr)
			}
		})
	}
}

func TestRun_EffectNotFoundLookupFailureWarns(t *testing.T) {
	isolate(t)
	srv := newFakeServer(t)
	srv.handle(http.MethodGet, "/effects/nope", http.StatusNotFound, `{"detail":"Effect not found"}`)
	srv.handle(http.MethodGet, "/effects", http.StatusInternalServerError, `{"detail":"boom"}`)

	code, stdout, stderr := runCLI(t, "-u", srv.URL, "-o", "text", "effects", "info", "nope")

	if code != exitAPIError {
		t.Errorf("exit code = %d, want %d", code, exitAPIError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "⚠ Could not list available effects.") {
		t.Errorf("stderr should warn about the lookup, got %q", stderr)
	}
	if !strings.Contains(stderr, "Effect 'nope' not found.") {
		t.Errorf("stderr = %q", stderr)
	}
}
