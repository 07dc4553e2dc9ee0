package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
)

func init() {
	// Nothing may write to the terminal while the TUI owns it.
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
}

// Init opens the log file at ~/.config/dualpane/dualpane.log, rotating it
// when it has grown past maxLogSize.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".config", "dualpane")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "dualpane.log")

	// Rotate by renaming to .old when the file grew too big
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	log.SetOutput(file)
	return nil
}

// Close detaches and closes the log output. Safe to call without a prior Init.
func Close() {
	if closer, ok := log.Out.(io.Closer); ok {
		closer.Close()
	}
	log.SetOutput(io.Discard)
}

// Disable silences logging (useful for tests)
func Disable() {
	log.SetOutput(io.Discard)
}

// Error logs an error message
func Error(format string, args ...any) {
	log.Errorf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

// Info logs an informational message
func Info(format string, args ...any) {
	log.Infof(format, args...)
}
