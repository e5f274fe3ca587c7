package main

import (
	"fmt"

	"github.com/lightwave-leds/lightwave/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "lightwave version %s (%s)\n", version, commit)
	return nil
}
