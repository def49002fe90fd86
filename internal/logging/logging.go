// Package logging sets up the structured logger: records fan out to a log
// file and to an in-memory ring whose tail the TUI can display.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

// New builds the logger. When logFile is empty, records go only to the
// ring. The returned closer flushes and closes the file handler.
func New(logFile string, ring *Ring) (*slog.Logger, io.Closer, error) {
	handlers := []slog.Handler{ring.Handler()}

	var closer io.Closer = nopCloser{}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, nil))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Ring keeps the last N formatted log lines for display inside the TUI.
type Ring struct {
	mu    sync.Mutex
	lines []string
	size  int
}

// NewRing creates a ring holding up to size lines.
func NewRing(size int) *Ring {
	return &Ring{size: size}
}

// Tail returns up to n of the most recent lines, oldest first.
func (r *Ring) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(r.lines) {
		n = len(r.lines)
	}
	out := make([]string, n)
	copy(out, r.lines[len(r.lines)-n:])
	return out
}

func (r *Ring) append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	if len(r.lines) > r.size {
		r.lines = r.lines[len(r.lines)-r.size:]
	}
}

// Handler returns a slog.Handler writing formatted lines into the ring.
func (r *Ring) Handler() slog.Handler {
	return ringHandler{ring: r}
}

type ringHandler struct {
	ring  *Ring
	attrs []slog.Attr
}

func (h ringHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h ringHandler) Handle(_ context.Context, rec slog.Record) error {
	line := rec.Level.String() + " " + rec.Message
	emit := func(a slog.Attr) {
		line += " " + a.Key + "=" + a.Value.String()
	}
	for _, a := range h.attrs {
		emit(a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		emit(a)
		return true
	})
	h.ring.append(line)
	return nil
}

func (h ringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return ringHandler{ring: h.ring, attrs: merged}
}

func (h ringHandler) WithGroup(string) slog.Handler { return h }
