// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor that streams process output to logger.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation's argv directly, without a shell.
//
// Standard output is logged at info level and standard error at warn level, one record
// per line. When ctx carries a telemetry vertex both streams are also copied to it.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation) error {
	if len(inv.Args) == 0 {
		return nil
	}

	name := inv.Args[0]
	cmd := exec.CommandContext(ctx, name, inv.Args[1:]...) //nolint:gosec // argv is built by the driver
	cmd.Dir = inv.Dir

	stdout := newLineWriter(e.logger.Info)
	stderr := newLineWriter(e.logger.Warn)
	defer stdout.Flush()
	defer stderr.Flush()

	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(stderr, v.Stderr())
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(err, "command", name)
	}

	return nil
}

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// No newline yet; keep the fragment for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(trimEOL(line))
	}
	return len(p), nil
}

// Flush emits any trailing fragment that was not newline-terminated.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(trimEOL(w.buf.String()))
		w.buf.Reset()
	}
}

func trimEOL(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}
