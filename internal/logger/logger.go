// SPDX-License-Identifier: MIT
// Package logger implements the CLI logging adapter on top of log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// messager describes an error that can report its own message without the
// chain, as zerr.Error does.
type messager interface {
	Message() string
}

// Logger writes human-readable records to a swappable destination. The
// *slog.Logger from Slog stays valid across SetOutput and SetLevel calls.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	out    *switchWriter
}

// New creates a Logger writing to w (stderr when nil) at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	lv := new(slog.LevelVar)
	lv.Set(level)
	out := &switchWriter{w: w}

	return &Logger{
		logger: slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lv})),
		level:  lv,
		out:    out,
	}
}

// Slog exposes the underlying structured logger for libraries that accept one.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// SetOutput redirects all future records. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.out.set(w)
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs err with its cause chain flattened into "a -> b -> c".
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.logger.Error(Chain(err))
}

// Chain renders the messages along err's unwrap chain. zerr errors contribute
// their own message only; the first standard error ends the walk with its
// full text.
func Chain(err error) string {
	var parts []string
	for cur := err; cur != nil; {
		m, ok := cur.(messager)
		if !ok {
			parts = append(parts, cur.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			parts = append(parts, msg)
		}
		cur = errors.Unwrap(cur)
	}

	return strings.Join(parts, " -> ")
}

// switchWriter serializes writes and lets the destination change at runtime.
type switchWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}
