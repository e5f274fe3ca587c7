package main

import (
	"github.com/lightwave-leds/lightwave/internal/protocol"
	"github.com/lightwave-leds/lightwave/internal/ui"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(app *App) error {
	resp, err := app.do(protocol.Status())
	if err != nil {
		return err
	}
	return app.show(resp, func() error {
		var status protocol.EffectStatus
		if err := resp.Decode(&status); err != nil {
			return err
		}
		ui.PrintStatus(status)
		return nil
	})
}
