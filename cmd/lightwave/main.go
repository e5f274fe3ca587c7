package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/willabides/kongplete"

	"github.com/lightwave-leds/lightwave/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
)

// Globals are flags accepted by every command.
type Globals struct {
	BaseURL string        `name:"base-url" short:"u" placeholder:"URL" help:"LED server API URL (env: LIGHTWAVE_URL, default: http://localhost:8000/api)"`
	Config  string        `type:"path" placeholder:"PATH" help:"Config file (env: LIGHTWAVE_CONFIG, default: ~/.lightwave/config.yaml)"`
	Output  string        `short:"o" enum:"json,text" default:"json" help:"Output format: json or text"`
	Timeout time.Duration `help:"Request timeout (e.g. 5s)"`
	LogFile string        `name:"log-file" type:"path" placeholder:"PATH" help:"Write request logs to this file"`
	Debug   bool          `help:"Write debug logs to stderr"`
	NoColor bool          `name:"no-color" help:"Disable colored output"`
}

type CLI struct {
	Globals

	Effects EffectsCmd `cmd:"" help:"Manage LED effects"`
	Leds    LedsCmd    `cmd:"" help:"Control the LEDs directly"`
	Status  StatusCmd  `cmd:"" help:"Show the current system status"`

	Version            VersionCmd                   `cmd:"" help:"Show version"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ui.Output, ui.ErrOutput = stdout, stderr

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("lightwave"),
		kong.Description("Command-line client for the LightWave LED server"),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		ui.PrintError(err.Error())
		return exitError
	}

	kongplete.Complete(parser, kongplete.WithPredictor("effects", newEffectPredictor()))

	kctx, err := parser.Parse(args)
	if err != nil {
		return reportError(usageError(err))
	}

	if cli.NoColor {
		color.NoColor = true
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The app is only built for commands that talk to the server, so a
	// broken config does not break "version".
	var app *App
	defer func() {
		if app != nil {
			app.Close()
		}
	}()
	err = kctx.BindToProvider(func() (*App, error) {
		a, err := newApp(sigCtx, &cli.Globals, stderr)
		app = a
		return a, err
	})
	if err != nil {
		ui.PrintError(err.Error())
		return exitError
	}

	if err := kctx.Run(); err != nil {
		return reportError(err)
	}
	return exitSuccess
}
