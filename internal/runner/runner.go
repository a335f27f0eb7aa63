// Package runner executes generation routines as independent child processes,
// one after another, and reports what each printed.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrPartial is returned by Result.Err when at least one task failed.
var ErrPartial = errors.New("runner: some routines failed")

// Task is one child process to run.
type Task struct {
	Name string
	// Command builds the child process. Its stdout and stderr are replaced
	// by the runner.
	Command func(ctx context.Context) *exec.Cmd
}

// Outcome is the captured result of one task.
type Outcome struct {
	Name     string
	Stdout   string
	Stderr   string
	Err      error
	Duration time.Duration
}

// Result collects the outcomes of a run in task order.
type Result struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that did not exit cleanly.
func (r Result) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Err is nil when every task succeeded.
func (r Result) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, o := range failed {
		names[i] = o.Name
	}
	return fmt.Errorf("%w: %s", ErrPartial, strings.Join(names, ", "))
}

// Runner runs tasks sequentially, writing the report to Out.
type Runner struct {
	Out    io.Writer
	Logger *log.Logger
	// Files are listed after the run, relative to Dir.
	Dir   string
	Files []string
}

// Run executes every task in order. A failing task is reported and the
// next one still runs; the run only stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, tasks []Task) Result {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	var res Result
	fmt.Fprintln(r.Out, "Generating all visualizations...")
	fmt.Fprintln(r.Out)

	for _, t := range tasks {
		if ctx.Err() != nil {
			res.Outcomes = append(res.Outcomes, Outcome{Name: t.Name, Err: ctx.Err()})
			continue
		}

		fmt.Fprintf(r.Out, "Running %s...\n", t.Name)
		o := run(ctx, t)
		res.Outcomes = append(res.Outcomes, o)

		if o.Err != nil {
			logger.Debug("routine failed", "name", t.Name, "err", o.Err, "elapsed", o.Duration)
			fmt.Fprintf(r.Out, "Error running %s:\n", t.Name)
			fmt.Fprintln(r.Out, o.Stderr)
		} else {
			logger.Debug("routine finished", "name", t.Name, "elapsed", o.Duration)
			fmt.Fprintln(r.Out, o.Stdout)
		}
		fmt.Fprintln(r.Out)
	}

	fmt.Fprintln(r.Out, "All visualizations generated!")
	if len(r.Files) > 0 {
		fmt.Fprintf(r.Out, "\nGenerated files in '%s':\n", r.Dir)
		for _, f := range r.Files {
			fmt.Fprintf(r.Out, "  - %s\n", f)
		}
	}
	return res
}

func run(ctx context.Context, t Task) Outcome {
	var stdout, stderr bytes.Buffer
	cmd := t.Command(ctx)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	return Outcome{
		Name:     t.Name,
		Stdout:   strings.TrimRight(stdout.String(), "\n"),
		Stderr:   strings.TrimRight(stderr.String(), "\n"),
		Err:      err,
		Duration: time.Since(start),
	}
}
