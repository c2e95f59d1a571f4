package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// Tests in this package mutate the package logger and must not run in parallel.

func TestSetLoggerRoutesOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Info("engine ready", "lib", "linux/lib64")

	if !strings.Contains(buf.String(), "engine ready") {
		t.Errorf("output %q does not contain the logged message", buf.String())
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	SetLogger(nil)

	if got := Logger(); got == custom {
		t.Error("Logger() still returns the custom logger after SetLogger(nil)")
	}
	if Logger() == nil {
		t.Error("Logger() returned nil")
	}
}

func TestLoggerConcurrent(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				SetLogger(nil)
			}
			if Logger() == nil {
				t.Error("Logger() returned nil")
			}
		}()
	}
	wg.Wait()
}
