package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lightwave-leds/lightwave/internal/client"
	"github.com/lightwave-leds/lightwave/internal/config"
	"github.com/lightwave-leds/lightwave/internal/logging"
	"github.com/lightwave-leds/lightwave/internal/protocol"
	"github.com/lightwave-leds/lightwave/internal/ui"
)

// App carries what a command needs to talk to the server and render output.
type App struct {
	Ctx    context.Context
	Client *client.Client
	Logger *slog.Logger
	Text   bool

	closer io.Closer
}

func newApp(ctx context.Context, g *Globals, stderr io.Writer) (*App, error) {
	cfgPath, err := config.ConfigPath(g.Config)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	baseURL, err := config.ResolveBaseURL(g.BaseURL, cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if g.Timeout > 0 {
		timeout = g.Timeout
	}

	logFile := g.LogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	logger, closer, err := logging.Setup(logFile, g.Debug, stderr)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	cl := client.New(baseURL,
		client.WithTimeout(timeout),
		client.WithLogger(logger),
		client.WithUserAgent("lightwave/"+version),
	)
	return &App{
		Ctx:    ctx,
		Client: cl,
		Logger: logger,
		Text:   g.Output == "text",
		closer: closer,
	}, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// do sends req to the server.
func (a *App) do(req *protocol.Request) (*client.Response, error) {
	return a.Client.Do(a.Ctx, req)
}

// show prints a response body as colorized JSON, or calls text in text mode.
func (a *App) show(resp *client.Response, text func() error) error {
	if resp.Empty() {
		return &client.DecodeError{Err: errors.New("empty response body")}
	}
	if a.Text {
		return text()
	}
	return ui.PrintJSON(resp.Body)
}

// confirm prints the response body, or message when the body is empty or
// the output mode is text.
func (a *App) confirm(resp *client.Response, message string) error {
	if a.Text || resp.Empty() {
		ui.PrintSuccess(message)
		return nil
	}
	return ui.PrintJSON(resp.Body)
}

// effectNotFound adds the list of available effects to a 404 in text mode.
// A failed follow-up lookup only produces a warning.
func (a *App) effectNotFound(name string, err error) error {
	if !a.Text || !client.IsNotFound(err) {
		return err
	}

	resp, lerr := a.do(protocol.ListEffects())
	if lerr != nil {
		a.Logger.Debug("effect list lookup failed", "error", lerr)
		ui.PrintWarning("Could not list available effects.")
		return errEffectNotFound(name)
	}
	var list protocol.EffectList
	if resp.Decode(&list) == nil && len(list.Effects) > 0 {
		ui.PrintEffectNames(list)
	}
	return errEffectNotFound(name)
}
