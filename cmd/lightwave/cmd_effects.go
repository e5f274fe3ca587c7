package main

import (
	"fmt"

	"github.com/lightwave-leds/lightwave/internal/protocol"
	"github.com/lightwave-leds/lightwave/internal/ui"
)

type EffectsCmd struct {
	List    EffectsListCmd    `cmd:"" help:"List all available effects"`
	Info    EffectsInfoCmd    `cmd:"" help:"Show details about an effect"`
	Start   EffectsStartCmd   `cmd:"" help:"Start an effect"`
	Stop    EffectsStopCmd    `cmd:"" help:"Stop the running effect"`
	Running EffectsRunningCmd `cmd:"" help:"Show the running effect"`
}

type EffectsListCmd struct{}

func (c *EffectsListCmd) Run(app *App) error {
	resp, err := app.do(protocol.ListEffects())
	if err != nil {
		return err
	}
	return app.show(resp, func() error {
		var list protocol.EffectList
		if err := resp.Decode(&list); err != nil {
			return err
		}
		ui.PrintEffectList(list)
		return nil
	})
}

type EffectsInfoCmd struct {
	Name string `arg:"" predictor:"effects" help:"Effect name"`
}

func (c *EffectsInfoCmd) Run(app *App) error {
	resp, err := app.do(protocol.EffectInfo(c.Name))
	if err != nil {
		return app.effectNotFound(c.Name, err)
	}
	return app.show(resp, func() error {
		var details protocol.EffectDetails
		if err := resp.Decode(&details); err != nil {
			return err
		}
		ui.PrintEffectDetails(details)
		return nil
	})
}

type EffectsStartCmd struct {
	Name  string   `arg:"" predictor:"effects" help:"Effect name"`
	Param []string `short:"p" sep:"none" placeholder:"KEY=VALUE" help:"Effect parameter; repeat for more than one"`
}

func (c *EffectsStartCmd) Run(app *App) error {
	params, err := protocol.ParseParams(c.Param)
	if err != nil {
		return err
	}

	resp, err := app.do(protocol.StartEffect(c.Name, params))
	if err != nil {
		return app.effectNotFound(c.Name, err)
	}
	return app.confirm(resp, fmt.Sprintf("Started effect %s", ui.Bold(ui.Cyan(c.Name))))
}

type EffectsStopCmd struct{}

func (c *EffectsStopCmd) Run(app *App) error {
	resp, err := app.do(protocol.StopEffect())
	if err != nil {
		return err
	}
	return app.confirm(resp, "Effect stopped successfully.")
}

type EffectsRunningCmd struct{}

func (c *EffectsRunningCmd) Run(app *App) error {
	resp, err := app.do(protocol.RunningEffect())
	if err != nil {
		return err
	}
	return app.show(resp, func() error {
		var status protocol.EffectStatus
		if err := resp.Decode(&status); err != nil {
			return err
		}
		ui.PrintRunningEffect(status)
		return nil
	})
}
