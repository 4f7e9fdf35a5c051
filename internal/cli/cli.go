package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/flashkit/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// moleFracFlag collects repeated -x comp=frac arguments.
type moleFracFlag map[string]float64

func (m moleFracFlag) String() string {
	var parts []string
	for comp, x := range m {
		parts = append(parts, fmt.Sprintf("%s=%g", comp, x))
	}
	return strings.Join(parts, ",")
}

func (m moleFracFlag) Set(s string) error {
	comp, frac, ok := strings.Cut(s, "=")
	if !ok || comp == "" {
		return fmt.Errorf("expected component=fraction, got %q", s)
	}
	x, err := strconv.ParseFloat(frac, 64)
	if err != nil {
		return fmt.Errorf("invalid mole fraction for %s: %w", comp, err)
	}
	if _, dup := m[comp]; dup {
		return fmt.Errorf("mole fraction of %s given twice", comp)
	}
	m[comp] = x
	return nil
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("flashkit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
flashkit - bubble and dew point estimates for a declarative property package.

Usage:
  flashkit [options] [PACKAGE_PATH]

Arguments:
  PACKAGE_PATH
    Path to a property package .hcl file.

Options:
`)
		flagSet.PrintDefaults()
	}

	packageFlag := flagSet.String("package", "", "Path to the property package file.")
	pFlag := flagSet.String("p", "", "Path to the property package file (shorthand).")
	pressureFlag := flagSet.Float64("pressure", 101325, "System pressure in Pa.")
	temperatureFlag := flagSet.Float64("temperature", 298.15, "System temperature in K.")
	liquidFlag := flagSet.String("liquid-phase", "", "Liquid phase name. Defaults to the first liquid phase of the package.")
	vaporFlag := flagSet.String("vapor-phase", "", "Vapor phase name. Defaults to the first vapor phase of the package.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	moleFracs := moleFracFlag{}
	flagSet.Var(moleFracs, "x", "Overall mole fraction as component=fraction. Repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *packageFlag != "" {
		path = *packageFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Package path determined.", "path", path)

	if path == "" {
		slog.Debug("No package path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PackagePath: path,
		Pressure:    *pressureFlag,
		Temperature: *temperatureFlag,
		MoleFracs:   moleFracs,
		LiquidPhase: *liquidFlag,
		VaporPhase:  *vaporFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
