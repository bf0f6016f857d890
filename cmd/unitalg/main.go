// Package main provides the unitalg binary entry point.
// Unitalg parses physical-unit tags into canonical form, performs exact
// unit algebra on them, and renders results with automatic SI prefixes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/unitalg/config"
	"github.com/c360studio/unitalg/units"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "unitalg"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		format     string
		normalize  bool
	)

	cmd := &cobra.Command{
		Use:   "unitalg",
		Short: "Exact physical-unit algebra",
		Long: `Unitalg parses textual unit tags like "V/Hz^1/2" or "s*kg/ns" into a
canonical algebraic form, supports exact multiplication, division and
exponentiation on that form, and renders results back to tags, choosing
SI prefixes automatically.

Run without a subcommand for an interactive session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(configPath, logLevel, format, normalize)
			if err != nil {
				return err
			}
			return app.RunREPL()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&format, "format", "", "Output format (text, json)")
	cmd.PersistentFlags().BoolVar(&normalize, "normalize", false, "Substitute derived glyphs (Hz -> s^-1) before rendering")

	newApp := func() (*App, error) {
		return setup(configPath, logLevel, format, normalize)
	}

	cmd.AddCommand(
		parseCmd(newApp),
		binaryCmd(newApp, "mul", "Multiply two unit tags", units.Unit.Mul),
		binaryCmd(newApp, "div", "Divide one unit tag by another", units.Unit.Div),
		powCmd(newApp),
		eqCmd(newApp),
		normalizeCmd(newApp),
		versionCmd(),
	)

	return cmd
}

// setup loads layered configuration, applies flag overrides and wires the
// application.
func setup(configPath, logLevel, format string, normalize bool) (*App, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg = config.DefaultConfig()
		override, loadErr := config.LoadFromFile(configPath)
		if loadErr != nil {
			return nil, loadErr
		}
		cfg.Merge(override)
	} else {
		cfg, err = config.NewLoader(logger).Load()
		if err != nil {
			return nil, err
		}
	}

	// Flags take precedence over every config layer.
	if format != "" {
		cfg.Output.Format = format
	}
	if normalize {
		cfg.Output.Normalize = true
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return NewApp(cfg, os.Stdout), nil
}

func parseCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <tag>",
		Short: "Parse a unit tag and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			u, err := units.Parse(args[0])
			if err != nil {
				return err
			}
			return app.Print(u)
		},
	}
}

func binaryCmd(newApp func() (*App, error), use, short string, op func(units.Unit, units.Unit) units.Unit) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <tag> <tag>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			a, err := units.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := units.Parse(args[1])
			if err != nil {
				return err
			}
			return app.Print(op(a, b))
		},
	}
}

func powCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "pow <tag> <exponent>",
		Short: "Raise a unit tag to a rational or real exponent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			u, err := units.Eval(args[0] + " ^ " + args[1])
			if err != nil {
				return err
			}
			return app.Print(u)
		},
	}
}

func eqCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "eq <tag> <tag>",
		Short: "Compare two unit tags for canonical equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			a, err := units.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := units.Parse(args[1])
			if err != nil {
				return err
			}
			if app.cfg.Output.Normalize {
				a = a.Normalize()
				b = b.Normalize()
			}
			fmt.Fprintln(app.out, a.Equal(b))
			return nil
		},
	}
}

func normalizeCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <tag>",
		Short: "Substitute derived glyphs by their primitive equivalents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			u, err := units.Parse(args[0])
			if err != nil {
				return err
			}
			return app.print(u.Normalize(), false)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
