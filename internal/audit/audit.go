// Package audit provides the append-only trail of menu loads, command
// invocations and fatal errors. The sink is fail-open: a logging failure
// is never allowed to abort the session it is recording.
package audit

import (
	"io"
	"log/syslog"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Tag is the program name attached to every record and to the syslog
// connection.
const Tag = "menush"

// Options configures the audit logger.
type Options struct {
	// Output overrides the sink. When nil the logger writes to syslog
	// (auth facility) and falls back to stderr if syslog is unreachable.
	Output io.Writer
	// Identity is the authenticated user every record is tagged with.
	Identity string
}

// Logger records session events. A single Logger is opened at process
// start and closed exactly once at shutdown.
type Logger struct {
	hc     hclog.Logger
	closer io.Closer
}

// New opens the audit trail. Every record carries the program tag, pid,
// identity and a per-process session id.
func New(opts Options) *Logger {
	out := opts.Output
	var closer io.Closer
	if out == nil {
		if w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_AUTH, Tag); err == nil {
			out = w
			closer = w
		} else {
			out = os.Stderr
		}
	}

	hc := hclog.New(&hclog.LoggerOptions{
		Name:   Tag,
		Level:  hclog.Info,
		Output: out,
	}).With(
		"pid", os.Getpid(),
		"user", opts.Identity,
		"session", uuid.NewString(),
	)

	return &Logger{hc: hc, closer: closer}
}

// MenuLoaded records which menu definition was chosen at startup.
func (l *Logger) MenuLoaded(path string) {
	l.hc.Info("menu loaded", "menu", path)
}

// CommandRun records the fully composed command line about to execute.
func (l *Logger) CommandRun(line string) {
	l.hc.Info("running command", "command", line)
}

// CommandExit records a completed command's non-zero exit status.
func (l *Logger) CommandExit(line string, status int) {
	l.hc.Info("command exited nonzero", "command", line, "status", status)
}

// Fatal records the message of a fatal abort.
func (l *Logger) Fatal(msg string) {
	l.hc.Error(msg)
}

// Close releases the sink. Safe to call when the sink needs no release.
func (l *Logger) Close() {
	if l.closer != nil {
		_ = l.closer.Close()
	}
}
