package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/takoeight0821/oporder/eval"
	"golang.org/x/sync/errgroup"
)

// Line is one non-blank input line. Number is 1-based.
type Line struct {
	Number int
	Source string
}

// ReadLines reads every non-blank line of r.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		lines = append(lines, Line{Number: number, Source: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	return lines, nil
}

type LineError struct {
	Line   int
	Source string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Source, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result is the sum of every line evaluated in one mode.
type Result struct {
	Mode  eval.Mode
	Sum   int64
	Lines int
}

type Runner struct {
	evaluators []eval.Evaluator
	logger     *slog.Logger

	// Jobs bounds the number of lines evaluated at once. Zero means GOMAXPROCS.
	Jobs int
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{logger: logger}
}

// AddEvaluator adds an evaluator to the end of the evaluator list.
func (r *Runner) AddEvaluator(ev eval.Evaluator) {
	r.evaluators = append(r.evaluators, ev)
}

// Run evaluates every line with every evaluator and sums the values.
// Results are in the order evaluators were added. If any line fails, Run
// returns all line errors joined in line order and no results.
func (r *Runner) Run(ctx context.Context, lines []Line) ([]Result, error) {
	results := make([]Result, 0, len(r.evaluators))
	var errs []error
	for _, ev := range r.evaluators {
		result, err := r.run(ctx, ev, lines)
		if err != nil {
			errs = append(errs, err)

			continue
		}
		results = append(results, result)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return results, nil
}

// RunReader reads lines from input and runs them.
func (r *Runner) RunReader(ctx context.Context, input io.Reader) ([]Result, error) {
	lines, err := ReadLines(input)
	if err != nil {
		return nil, err
	}

	return r.Run(ctx, lines)
}

func (r *Runner) jobs() int {
	if r.Jobs > 0 {
		return r.Jobs
	}

	return runtime.GOMAXPROCS(0)
}

func (r *Runner) run(ctx context.Context, ev eval.Evaluator, lines []Line) (Result, error) {
	values := make([]int64, len(lines))
	lineErrs := make([]error, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs())
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			value, err := ev.Eval(line.Source)
			if err != nil {
				lineErrs[i] = &LineError{Line: line.Number, Source: line.Source, Err: err}

				return nil
			}
			values[i] = value
			r.logger.DebugContext(gctx, "evaluated line", "mode", ev.Mode, "line", line.Number, "value", value)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%v: %w", ev.Mode, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%v: %w", ev.Mode, err)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return Result{}, err
	}

	var sum int64
	for _, value := range values {
		sum += value
	}
	r.logger.InfoContext(ctx, "evaluated input", "mode", ev.Mode, "lines", len(lines), "sum", sum)

	return Result{Mode: ev.Mode, Sum: sum, Lines: len(lines)}, nil
}
