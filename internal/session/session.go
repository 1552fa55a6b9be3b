// Package session implements the menu control loop: present the manifest,
// collect a selection, collect and validate arguments where permitted,
// delegate execution, and record every decision to the audit trail.
package session

import (
	"errors"
	"io"
	"os"

	"github.com/menush/menush/internal/audit"
	"github.com/menush/menush/internal/executor"
	"github.com/menush/menush/internal/manifest"
	"github.com/menush/menush/internal/sanitize"
	"github.com/menush/menush/internal/terminal"
)

const exitChoice = "Exit"

// Prompter is the interactive front end the session drives. Implementations
// must return terminal.ErrCancelled when input is interrupted or closed.
type Prompter interface {
	Clear()
	Notice(msg string)
	Select(choices []string) (int, error)
	ReadArgs(valid func(string) bool) (string, error)
	Pause() error
}

// Termination is the outcome of a session: the process exit code and the
// reason it was reached. Every exit path, graceful or fatal, produces one
// and hands it to the single shutdown point in main.
type Termination struct {
	Code   int
	Reason string
}

// Session runs the interactive loop over an immutable manifest. It holds
// no state across runs beyond the current iteration.
type Session struct {
	manifest *manifest.Manifest
	prompter Prompter
	runner   executor.Runner
	checker  *sanitize.ArgChecker
	audit    *audit.Logger
	errW     io.Writer
}

// New creates a session. errW receives fatal messages so the user sees why
// the program is exiting; nil defaults to stderr.
func New(m *manifest.Manifest, p Prompter, r executor.Runner, log *audit.Logger, errW io.Writer) *Session {
	if errW == nil {
		errW = os.Stderr
	}
	return &Session{
		manifest: m,
		prompter: p,
		runner:   r,
		checker:  sanitize.NewArgChecker(),
		audit:    log,
		errW:     errW,
	}
}

// Run loops Presenting -> Selecting -> Executing until the user exits or
// input is cancelled. A non-zero child exit status is recorded and the
// loop continues; only cancellation ends the session through the fatal
// path. Explicit user exit terminates with code 0, cancellation with 1.
func (s *Session) Run() Termination {
	choices := append(s.manifest.Prompts(), exitChoice)

	for {
		s.prompter.Clear()

		idx, err := s.prompter.Select(choices)
		if err != nil {
			return s.failInput(err)
		}
		if idx == len(s.manifest.Entries) {
			return Termination{Code: 0, Reason: "user exit"}
		}

		entry := s.manifest.Entries[idx]

		args := ""
		if entry.AllowArgs {
			args, err = s.prompter.ReadArgs(s.checker.Valid)
			if err != nil {
				return s.failInput(err)
			}
		}

		line := entry.CommandLine(args)
		s.audit.CommandRun(line)

		s.prompter.Clear()
		s.prompter.Notice("Running: " + line)

		// A nonzero status (or spawn failure) is recorded, not an
		// error: the loop continues either way.
		res := s.runner.Run(entry.Argv(args))
		if res.Err != nil || res.ExitCode != 0 {
			s.audit.CommandExit(line, res.ExitCode)
		}

		if err := s.prompter.Pause(); err != nil {
			return s.failInput(err)
		}
	}
}

// failInput maps an interrupted read to the conventional "Exiting." abort;
// anything else surfaces its own message.
func (s *Session) failInput(err error) Termination {
	if errors.Is(err, terminal.ErrCancelled) {
		return s.fail(1, "Exiting.")
	}
	return s.fail(1, err.Error())
}

// fail is the single fatal path: write the message where the user can see
// it, record it at error level, and produce the termination outcome. It
// never returns control to the loop.
func (s *Session) fail(code int, msg string) Termination {
	_, _ = io.WriteString(s.errW, msg+"\n")
	s.audit.Fatal(msg)
	return Termination{Code: code, Reason: msg}
}
