package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpango/glg"
)

// Logger appends timestamped lines to .planmorph/logs/planmorph.log so a run
// can be inspected after the viewer closes. Nothing is written to stdout.
type Logger struct {
	file *os.File
	glg  *glg.Glg
}

// New creates (or reuses) the log file at path.
func New(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	g := glg.New().
		SetMode(glg.WRITER).
		AddWriter(f).
		DisableColor()
	return &Logger{file: f, glg: g}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Info writes an informational line.
func (l *Logger) Info(format string, args ...any) {
	if l == nil || l.glg == nil {
		return
	}
	_ = l.glg.Infof(trim(format), args...)
}

// Warn writes a warning line.
func (l *Logger) Warn(format string, args ...any) {
	if l == nil || l.glg == nil {
		return
	}
	_ = l.glg.Warnf(trim(format), args...)
}

// Error writes an error line.
func (l *Logger) Error(format string, args ...any) {
	if l == nil || l.glg == nil {
		return
	}
	_ = l.glg.Errorf(trim(format), args...)
}

func trim(format string) string {
	return strings.TrimRight(format, "\n")
}
