package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gatesim/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gatesim", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gatesim - Gate-level netlist simulator with TMR hardening.

Usage:
  gatesim [options] [NETLIST_PATH]

Arguments:
  NETLIST_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	netlistFlag := flagSet.String("netlist", "", "Path to the netlist file or directory.")
	nFlag := flagSet.String("n", "", "Path to the netlist file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Also write JSON logs to this file.")
	workersFlag := flagSet.Int("workers", 1, "Number of goroutines evaluating each simulation pass.")
	dotFlag := flagSet.String("dot", "", "Write the final graph as Graphviz DOT to this file.")
	adjacencyFlag := flagSet.Bool("adjacency", false, "Print the final graph as an adjacency list.")

	inputs := make(map[string]bool)
	flagSet.Func("input", "Set a primary input, NAME=0|1. May be repeated.", func(s string) error {
		name, level, err := parseAssignment(s)
		if err != nil {
			return err
		}
		inputs[name] = level
		return nil
	})
	var harden []string
	flagSet.Func("harden", "Comma-separated instances to triplicate. May be repeated.", func(s string) error {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				harden = append(harden, name)
			}
		}
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *netlistFlag != "" {
		path = *netlistFlag
	} else if *nFlag != "" {
		path = *nFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Netlist path determined.", "path", path)

	if path == "" {
		slog.Debug("No netlist path provided, printing usage and exiting.")
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

	cfg := app.Config{
		NetlistPath: path,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		LogFile:     *logFileFlag,
		Workers:     *workersFlag,
		Harden:      harden,
		DotPath:     *dotFlag,
		Adjacency:   *adjacencyFlag,
	}
	if len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseAssignment reads NAME=0|1 (true and false are accepted too).
func parseAssignment(s string) (string, bool, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", false, fmt.Errorf("want NAME=0|1, got %q", s)
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false":
		return name, false, nil
	case "1", "true":
		return name, true, nil
	}
	return "", false, fmt.Errorf("input %s: %q is not a bit", name, value)
}
