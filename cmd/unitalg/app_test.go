package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/c360studio/unitalg/config"
	"github.com/c360studio/unitalg/units"
)

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp(config.DefaultConfig(), &buf)

	if err := app.Print(units.MustParse("kHz^1/2")); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "kHz^1/2" {
		t.Errorf("Print() wrote %q, want %q", got, "kHz^1/2")
	}
}

func TestPrintJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = config.FormatJSON

	var buf bytes.Buffer
	app := NewApp(cfg, &buf)

	if err := app.Print(units.MustParse("kB/MB")); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	var decoded struct {
		Terms              map[string]any `json:"terms"`
		ResidualPowerOfTen string         `json:"residual_power_of_ten"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded.Terms) != 0 {
		t.Errorf("expected no terms, got %v", decoded.Terms)
	}
	if decoded.ResidualPowerOfTen != "-3" {
		t.Errorf("residual = %q, want %q", decoded.ResidualPowerOfTen, "-3")
	}
}

func TestPrintNormalizes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Normalize = true

	var buf bytes.Buffer
	app := NewApp(cfg, &buf)

	if err := app.Print(units.MustParse("Hz")); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "s^-1" {
		t.Errorf("Print() wrote %q, want %q", got, "s^-1")
	}
}

func TestHandleCommandDerived(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp(config.DefaultConfig(), &buf)

	app.handleCommand("/derived")
	if !strings.Contains(buf.String(), "Hz") {
		t.Errorf("/derived output missing Hz: %q", buf.String())
	}
}

func TestRootCmdParse(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"parse", "m/s"})

	// The subcommand writes to the app's stdout sink; executing checks
	// wiring and the error path only.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRootCmdParseError(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"parse", "/s"})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() should fail on a malformed tag")
	}
}
