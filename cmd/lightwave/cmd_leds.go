package main

import (
	"fmt"

	"github.com/lightwave-leds/lightwave/internal/protocol"
	"github.com/lightwave-leds/lightwave/internal/ui"
)

type LedsCmd struct {
	Color      LedsColorCmd      `cmd:"" help:"Set the LED color"`
	Brightness LedsBrightnessCmd `cmd:"" help:"Set the LED brightness (0.0 - 1.0)"`
	Clear      LedsClearCmd      `cmd:"" help:"Turn off all LEDs"`
}

type LedsColorCmd struct {
	Color string `arg:"" help:"Color in any format the server understands (hex, rgb, hsl, hsv, name)"`
}

func (c *LedsColorCmd) Run(app *App) error {
	req, err := protocol.SetColor(c.Color)
	if err != nil {
		return err
	}

	resp, err := app.do(req)
	if err != nil {
		return err
	}
	return app.confirm(resp, fmt.Sprintf("LED color set to %s successfully.", ui.Cyan(c.Color)))
}

type LedsBrightnessCmd struct {
	Brightness float64 `arg:"" help:"Brightness between 0.0 and 1.0 (put -- before a negative value)"`
}

func (c *LedsBrightnessCmd) Run(app *App) error {
	req, err := protocol.SetBrightness(c.Brightness)
	if err != nil {
		return err
	}

	resp, err := app.do(req)
	if err != nil {
		return err
	}
	pct := fmt.Sprintf("%.1f%%", c.Brightness*100)
	return app.confirm(resp, fmt.Sprintf("LED brightness set to %s successfully.", ui.Cyan(pct)))
}

type LedsClearCmd struct{}

func (c *LedsClearCmd) Run(app *App) error {
	resp, err := app.do(protocol.ClearLEDs())
	if err != nil {
		return err
	}
	return app.confirm(resp, "LEDs cleared successfully.")
}
