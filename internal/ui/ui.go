// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/lightwave-leds/lightwave/internal/protocol"
)

// Color functions for consistent styling.
var (
	Green   = color.New(color.FgGreen).SprintFunc()
	Red     = color.New(color.FgRed).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Cyan    = color.New(color.FgCyan).SprintFunc()
	Dim     = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold    = color.New(color.Bold).SprintFunc()
	Heading = color.New(color.Bold, color.Underline).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// ErrOutput is the destination for error messages.
var ErrOutput io.Writer = os.Stderr

// StatusBadge returns a colored effect state indicator.
func StatusBadge(running bool) string {
	if running {
		return Green("● Running")
	}
	return Yellow("○ Idle")
}

// FormatRuntime formats a duration in seconds as "12.3s", "2m 5.0s" or "1h 2m 3.0s".
func FormatRuntime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		minutes := math.Floor(seconds / 60)
		return fmt.Sprintf("%dm %.1fs", int(minutes), seconds-minutes*60)
	default:
		hours := math.Floor(seconds / 3600)
		minutes := math.Floor((seconds - hours*3600) / 60)
		secs := seconds - hours*3600 - minutes*60
		return fmt.Sprintf("%dh %dm %.1fs", int(hours), int(minutes), secs)
	}
}

// PrintEffectList prints the available effects.
func PrintEffectList(list protocol.EffectList) {
	if len(list.Effects) == 0 {
		fmt.Fprintln(Output, Yellow("No effects available."))
		return
	}

	fmt.Fprintf(Output, "\n%s\n\n", Heading("Available Effects:"))
	for _, e := range list.Effects {
		fmt.Fprintf(Output, "• %s - %s\n", Bold(Green(e.Name)), strings.TrimSpace(e.Description))
	}
	fmt.Fprintf(Output, "\n%s %s\n\n", Bold("Total:"), Cyan(len(list.Effects)))
}

// PrintEffectNames prints a compact list of effect names.
func PrintEffectNames(list protocol.EffectList) {
	fmt.Fprintf(Output, "\n%s\n\n", Bold("Available effects:"))
	for _, e := range list.Effects {
		fmt.Fprintf(Output, "• %s\n", Green(e.Name))
	}
	fmt.Fprintln(Output)
}

// PrintEffectDetails prints an effect and its parameters.
func PrintEffectDetails(d protocol.EffectDetails) {
	fmt.Fprintf(Output, "\n%s: %s\n\n", Heading("Effect"), Bold(Green(d.Name)))
	fmt.Fprintf(Output, "• %s: %s\n", Bold("Description"), d.Description)

	if len(d.Parameters) == 0 {
		fmt.Fprintf(Output, "\n%s\n\n", Yellow("No parameters available."))
		return
	}

	fmt.Fprintf(Output, "\n%s\n\n", Heading("Parameters:"))
	for _, p := range d.Parameters {
		fmt.Fprintf(Output, "• %s: %s\n", Bold(Green(p.Name)), p.Description)
		fmt.Fprintf(Output, "  - %s: %s\n", Bold("Type"), Cyan(p.Type))
		fmt.Fprintf(Output, "  - %s: %s\n", Bold("Default"), FormatValue(p.Default))
		if p.MinValue != nil {
			fmt.Fprintf(Output, "  - %s: %s\n", Bold("Min Value"), FormatValue(p.MinValue))
		}
		if p.MaxValue != nil {
			fmt.Fprintf(Output, "  - %s: %s\n", Bold("Max Value"), FormatValue(p.MaxValue))
		}
		if len(p.Options) > 0 {
			opts := make([]string, len(p.Options))
			for i, o := range p.Options {
				opts[i] = Yellow(o)
			}
			fmt.Fprintf(Output, "  - %s: %s\n", Bold("Options"), strings.Join(opts, ", "))
		}
		fmt.Fprintln(Output)
	}
}

// PrintRunningEffect prints the currently running effect, if any.
func PrintRunningEffect(s protocol.EffectStatus) {
	if !s.Running {
		fmt.Fprintf(Output, "\n%s\n\n", Yellow("No effect is currently running."))
		return
	}

	fmt.Fprintf(Output, "\n%s\n\n", Heading("Running Effect:"))
	fmt.Fprintf(Output, "• %s: %s\n", Bold("Name"), Green(s.Name))
	fmt.Fprintf(Output, "• %s: %s\n", Bold("Description"), s.Description)
	if len(s.Parameters) > 0 {
		fmt.Fprintf(Output, "• %s:\n", Bold("Parameters"))
		printParams(s.Parameters)
	}
	if s.StartTime != "" {
		fmt.Fprintf(Output, "• %s: %s\n", Bold("Started"), s.StartTime)
	}
	if s.Runtime != nil {
		fmt.Fprintf(Output, "• %s: %s\n", Bold("Runtime"), Cyan(FormatRuntime(*s.Runtime)))
	}
	fmt.Fprintln(Output)
}

// PrintStatus prints the system status.
func PrintStatus(s protocol.EffectStatus) {
	fmt.Fprintf(Output, "\n%s\n\n", Heading("LightWave Status:"))
	fmt.Fprintf(Output, "• %s: %s\n", Bold("Status"), StatusBadge(s.Running))

	if !s.Running {
		fmt.Fprintf(Output, "• %s: %s\n\n", Bold("Effect"), Dim("None"))
		return
	}

	fmt.Fprintf(Output, "• %s: %s\n", Bold("Effect"), Bold(Green(s.Name)))
	if s.Runtime != nil {
		fmt.Fprintf(Output, "• %s: %s\n", Bold("Runtime"), Cyan(FormatRuntime(*s.Runtime)))
	}
	if len(s.Parameters) > 0 {
		fmt.Fprintf(Output, "\n%s\n\n", Bold("Parameters:"))
		printParams(s.Parameters)
	}
	fmt.Fprintln(Output)
}

func printParams(params map[string]any) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(Output, "  - %s: %s\n", Cyan(k), FormatValue(params[k]))
	}
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message in red to ErrOutput.
func PrintError(message string) {
	fmt.Fprintf(ErrOutput, "%s %s\n", Red("✗"), Red(message))
}

// PrintWarning prints a warning message with yellow exclamation to ErrOutput.
func PrintWarning(message string) {
	fmt.Fprintf(ErrOutput, "%s %s\n", Yellow("⚠"), Yellow(message))
}
