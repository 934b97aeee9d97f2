// Package runner invokes external programs and reports how they exited.
//
// Every higher-level step (package installs, preference writes, activation
// directives, nix builds) goes through the Runner interface, so the steps can
// be exercised in tests with runnertest.Recorder instead of real processes.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"nix-config/internal/logger"
)

// Result is the outcome of a single external process.
// It lives only for the duration of the step that produced it.
type Result struct {
	Program  string
	Args     []string
	ExitCode int
	Stderr   string
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// String renders the command line, e.g. "brew install --cask zed".
func (r Result) String() string {
	return strings.TrimSpace(r.Program + " " + strings.Join(r.Args, " "))
}

// Runner starts a program, waits for it to exit and returns its Result.
//
// A non-zero exit is not an error: callers inspect the Result and decide
// whether it is a failure, an ignorable failure or a warning. The error is
// reserved for processes that could not be started at all.
type Runner interface {
	Run(program string, args ...string) (Result, error)
}

// Exec is the Runner backed by os/exec.
// There is no timeout and no retry; each call spawns exactly one process.
type Exec struct{}

// NewExec creates an Exec runner.
func NewExec() *Exec {
	return &Exec{}
}

// Run executes program with args. Standard output is only surfaced in debug
// logs; standard error is captured into the Result.
func (e *Exec) Run(program string, args ...string) (Result, error) {
	cmd := exec.Command(program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{Program: program, Args: args}
	logger.Debug("[DEBUG] Running command: %s\n", res.String())

	err := cmd.Run()
	res.Stderr = stderr.String()
	if stdout.Len() > 0 {
		logger.Debug("[DEBUG] %s output: %s\n", program, stdout.String())
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("failed to execute %s: %w", res.String(), err)
	}
	return res, nil
}

// CommandError reports a command that exited unsuccessfully.
// Its message carries the command line and the captured standard error.
type CommandError struct {
	Result Result
}

func (e *CommandError) Error() string {
	stderr := strings.TrimSpace(e.Result.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.Result.String(), e.Result.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Result.String(), e.Result.ExitCode, stderr)
}

// Check runs program and turns an unsuccessful exit into a *CommandError.
// It is the plain hard-fail policy; steps with their own classification call
// Run directly.
func Check(r Runner, program string, args ...string) (Result, error) {
	res, err := r.Run(program, args...)
	if err != nil {
		return res, err
	}
	if !res.Success() {
		return res, &CommandError{Result: res}
	}
	return res, nil
}
