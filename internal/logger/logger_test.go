package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel logrus.Level
	}{
		{"debug level", "debug", logrus.DebugLevel},
		{"info level", "info", logrus.InfoLevel},
		{"warn level", "warn", logrus.WarnLevel},
		{"error level", "error", logrus.ErrorLevel},
		{"invalid level defaults to info", "verbose", logrus.InfoLevel},
		{"empty level defaults to info", "", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, "")
			if log == nil {
				t.Fatal("New() returned nil")
			}

			impl := log.(*implLogger)
			if impl.logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", impl.logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info", "")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestNewWithLogFile(t *testing.T) {
	path := t.TempDir() + "/run.log"

	log := New("info", path)
	log.Info(context.Background(), "hello from test")
}
