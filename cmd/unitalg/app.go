package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c360studio/unitalg/config"
	"github.com/c360studio/unitalg/units"
)

// App holds the CLI's configuration and output sink.
type App struct {
	cfg *config.Config
	out io.Writer
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, out io.Writer) *App {
	return &App{cfg: cfg, out: out}
}

// Print renders a unit according to the configured output format,
// normalizing first when configured to.
func (a *App) Print(u units.Unit) error {
	return a.print(u, a.cfg.Output.Normalize)
}

func (a *App) print(u units.Unit, normalize bool) error {
	if normalize {
		u = u.Normalize()
	}

	switch a.cfg.Output.Format {
	case config.FormatJSON:
		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("marshal unit: %w", err)
		}
		fmt.Fprintln(a.out, string(data))
	default:
		fmt.Fprintln(a.out, u.String())
	}
	return nil
}

// RunREPL runs the interactive read-eval-print loop. Input lines are unit
// expressions for units.Eval: whitespace-separated tags and the operators
// *, / and ^.
func (a *App) RunREPL() error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(a.out, "unitalg> ")

		if !scanner.Scan() {
			// EOF (Ctrl+D)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			return nil
		}

		if strings.HasPrefix(input, "/") {
			a.handleCommand(input)
			continue
		}

		result, err := units.Eval(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := a.Print(result); err != nil {
			return err
		}
	}
}

func (a *App) handleCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "/help":
		fmt.Fprintln(a.out, "Enter a unit expression: whitespace-separated tags and * / ^ operators.")
		fmt.Fprintln(a.out, "Examples:")
		fmt.Fprintln(a.out, "  kHz/Hz^1/2 * s")
		fmt.Fprintln(a.out, "  m/s ^ 2")
		fmt.Fprintln(a.out, "Commands:")
		fmt.Fprintln(a.out, "  /help      - Show this help")
		fmt.Fprintln(a.out, "  /prefixes  - List supported SI prefixes")
		fmt.Fprintln(a.out, "  /derived   - List known derived units")
		fmt.Fprintln(a.out, "  /config    - Show current configuration")
		fmt.Fprintln(a.out, "  quit/exit  - Leave the session")

	case "/prefixes":
		for _, letter := range units.PrefixLetters() {
			power, _ := units.PrefixPower(letter)
			fmt.Fprintf(a.out, "  %s = 10^%d\n", letter, power)
		}

	case "/derived":
		for _, glyph := range units.DerivedGlyphs() {
			equivalent, _ := units.DerivedEquivalent(glyph)
			fmt.Fprintf(a.out, "  %s = %s\n", glyph, equivalent)
		}

	case "/config":
		fmt.Fprintf(a.out, "Output:\n")
		fmt.Fprintf(a.out, "  Format: %s\n", a.cfg.Output.Format)
		fmt.Fprintf(a.out, "  Normalize: %v\n", a.cfg.Output.Normalize)
		fmt.Fprintf(a.out, "Log:\n")
		fmt.Fprintf(a.out, "  Level: %s\n", a.cfg.Log.Level)

	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", parts[0])
		fmt.Fprintln(a.out, "Type /help for available commands.")
	}
}
