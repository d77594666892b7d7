package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/hexdump/internal/app"
	"github.com/specialistvlad/hexdump/internal/profile"
)

// UsageExitCode is the process exit code for every usage error.
const UsageExitCode = 1

const usageHeader = `Usage: hexdump [-n LEN] FILE

Print FILE as little-endian 16-bit hex words, 16 bytes per line.

Options:
`

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

var errInvalidLength = errors.New("invalid length argument")

// lengthValue is a flag.Value accepting only base-10 non-negative integers.
type lengthValue struct {
	n *uint64
}

func (v *lengthValue) String() string {
	if v == nil || v.n == nil {
		return ""
	}
	return strconv.FormatUint(*v.n, 10)
}

func (v *lengthValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errInvalidLength
	}
	v.n = &n
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Usage text goes to errW. Flags are accepted both before and after FILE.
func Parse(args []string, errW io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hexdump", flag.ContinueOnError)
	// The flag package would print errors and usage on its own; Parse does it
	// once, below, so the diagnostic is not duplicated.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	var limit lengthValue
	flagSet.Var(&limit, "n", "Dump at most `LEN` bytes from the start of FILE.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"warn\")")
	profileFlag := flagSet.String("profile", "", "Path to an HCL profile providing defaults for the log options.")

	usageErr := func(msg string) error {
		printUsage(errW, flagSet)
		return &ExitError{Code: UsageExitCode, Message: msg}
	}

	var positional []string
	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				printUsage(errW, flagSet)
				return nil, true, nil
			}
			return nil, false, usageErr(err.Error())
		}
		remaining := flagSet.Args()
		if len(remaining) == 0 {
			break
		}
		// After "--" everything is positional.
		if endedByTerminator(flagSet, rest[:len(rest)-len(remaining)]) {
			positional = append(positional, remaining...)
			break
		}
		positional = append(positional, remaining[0])
		rest = remaining[1:]
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	switch {
	case len(positional) == 0:
		return nil, false, usageErr("missing FILE argument")
	case len(positional) > 1:
		return nil, false, usageErr(fmt.Sprintf("unexpected argument %q", positional[1]))
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	logLevel, logFormat := *logLevelFlag, *logFormatFlag
	if *profileFlag != "" {
		p, err := profile.Load(context.Background(), *profileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
		}
		if !explicit["log-level"] {
			logLevel = p.LogLevel
		}
		if !explicit["log-format"] {
			logFormat = p.LogFormat
		}
	}

	config, err := app.NewConfig(app.Config{
		FilePath:    positional[0],
		Limit:       limit.n,
		ProfilePath: *profileFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, usageErr(err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// endedByTerminator reports whether the tokens consumed by one
// flagSet.Parse call ended with a "--" terminator rather than with "--"
// given as the value of a flag.
func endedByTerminator(flagSet *flag.FlagSet, consumed []string) bool {
	for i := 0; i < len(consumed); i++ {
		tok := consumed[i]
		if tok == "--" {
			return true
		}
		name := strings.TrimLeft(tok, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := flagSet.Lookup(name); f != nil {
			if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
				continue
			}
		}
		// Skip the flag's value.
		i++
	}
	return false
}

func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprint(w, usageHeader)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
	flagSet.SetOutput(io.Discard)
}
