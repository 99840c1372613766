/*
Oporder evaluates arithmetic expressions made of integers, `+`, `*` and
parentheses, one expression per line.

Two precedence regimes are available. In flat mode `+` and `*` have the same
precedence and are applied left to right. In precedence mode `+` binds tighter
than `*`.

Usage:

	oporder [flags]

The flags are:

	-i/--input FILE
		Evaluate every line of FILE and print the sum for each mode. Without
		it, an interactive prompt is started.

	-c/--config FILE
		Read settings from FILE instead of $XDG_CONFIG_HOME/oporder/config.yaml.

	-m/--mode MODE
		Evaluate in MODE (flat or precedence). May be repeated.

	--lenient
		Close parentheses left open at the end of a line instead of failing.

	-j/--jobs N
		Evaluate at most N lines at once.

	--log-level LEVEL
		One of debug, info, warn, error.

At the prompt, `:tokens EXPR` prints the tokens of EXPR.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"
	"github.com/takoeight0821/oporder/config"
	"github.com/takoeight0821/oporder/driver"
	"github.com/takoeight0821/oporder/eval"
	"github.com/takoeight0821/oporder/lexer"
	"github.com/takoeight0821/oporder/logs"
)

func main() {
	var (
		inputPath  string
		configPath string
		modes      []string
		lenient    bool
		jobs       int
		logLevel   string
	)
	pflag.StringVarP(&inputPath, "input", "i", "", "input file path")
	pflag.StringVarP(&configPath, "config", "c", "", "config file path")
	pflag.StringSliceVarP(&modes, "mode", "m", nil, "evaluation mode: flat or precedence")
	pflag.BoolVar(&lenient, "lenient", false, "close parentheses left open at the end of a line")
	pflag.IntVarP(&jobs, "jobs", "j", 0, "number of lines evaluated at once")
	pflag.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	pflag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("mode") {
		cfg.Modes = modes
	}
	if pflag.CommandLine.Changed("lenient") {
		cfg.Lenient = lenient
	}
	if pflag.CommandLine.Changed("jobs") {
		cfg.Jobs = jobs
	}
	if pflag.CommandLine.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, closer, err := logs.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if inputPath == "" {
		err = RunPrompt(cfg, logger)
	} else {
		err = RunFile(ctx, cfg, logger, inputPath, os.Stdout)
	}
	if err != nil {
		printError(err)
		closer.Close()
		os.Exit(1)
	}
}

func printError(err error) {
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			printError(err)
		}

		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func newRunner(cfg config.Config, logger *slog.Logger) (*driver.Runner, error) {
	evaluators, err := cfg.Evaluators()
	if err != nil {
		return nil, err
	}
	r := driver.NewRunner(logger)
	r.Jobs = cfg.Jobs
	for _, ev := range evaluators {
		r.AddEvaluator(ev)
	}

	return r, nil
}

// RunFile evaluates every line of the file at path and prints one sum per mode.
func RunFile(ctx context.Context, cfg config.Config, logger *slog.Logger, path string, out io.Writer) error {
	r, err := newRunner(cfg, logger)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	results, err := r.RunReader(ctx, f)
	if err != nil {
		return err
	}
	for _, result := range results {
		fmt.Fprintf(out, "%v: %d\n", result.Mode, result.Sum)
	}

	return nil
}

func RunPrompt(cfg config.Config, logger *slog.Logger) error {
	evaluators, err := cfg.Evaluators()
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(cfg.History), os.ModePerm); err != nil {
			logger.Warn("create history directory", "error", err)
		}
		if f, err := os.Create(cfg.History); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				logger.Warn("write history", "error", err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(cfg.History); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			logger.Warn("read history", "error", err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		respond(os.Stdout, evaluators, input)
	}
}

// respond prints the answer to one line entered at the prompt.
func respond(out io.Writer, evaluators []eval.Evaluator, input string) {
	if source, ok := strings.CutPrefix(strings.TrimSpace(input), ":tokens"); ok {
		tokens, err := lexer.Lex(source)
		for _, t := range tokens {
			fmt.Fprintln(out, t)
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}

		return
	}

	for _, ev := range evaluators {
		value, err := ev.Eval(input)
		if err != nil {
			fmt.Fprintf(out, "%v: Error: %v\n", ev.Mode, err)

			continue
		}
		fmt.Fprintf(out, "%v: %d\n", ev.Mode, value)
	}
}
