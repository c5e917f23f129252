package d2d

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/d2d/internal/com"
)

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelError) {
		t.Error("Enabled(LevelError) = true, want false")
	}
	if err := h.Handle(ctx, slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	for name, derived := range map[string]slog.Handler{
		"WithAttrs": h.WithAttrs([]slog.Attr{slog.String("engine", "software")}),
		"WithGroup": h.WithGroup("d2d"),
	} {
		if _, ok := derived.(nopHandler); !ok {
			t.Errorf("%s() returned %T, want nopHandler", name, derived)
		}
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SetLogger(custom)

	got := Logger()
	if got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	// Verify output is captured.
	got.Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	// First set a real logger.
	SetLogger(slog.Default())

	// Then set nil to restore silence.
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestSetLoggerPropagatesToCom(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)

	if com.Logger() != custom {
		t.Error("SetLogger did not propagate to the ownership layer")
	}
}

func TestEngineLoggerFollowsSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	if engineLogger.Enabled(context.Background(), slog.LevelError) {
		t.Error("engine logger enabled with the default silent logger")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	engineLogger.Info("factory created", "type", "single")
	if !strings.Contains(buf.String(), "factory created") {
		t.Errorf("expected engine output after SetLogger, got: %s", buf.String())
	}

	buf.Reset()
	engineLogger.With("engine", "software").Info("device created")
	if !strings.Contains(buf.String(), "engine=software") {
		t.Errorf("expected attrs to be kept, got: %s", buf.String())
	}
}

func TestFactoryLogsThroughSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	f, err := NewFactory(WithDebugLevel(DebugLevelInformation))
	if err != nil {
		t.Fatalf("NewFactory() = %v", err)
	}
	f.Release()
	if !strings.Contains(buf.String(), "factory created") {
		t.Errorf("expected factory diagnostics, got: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			l.Debug("concurrent read")
		}()
	}

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
			if com.Logger() == nil {
				t.Error("com.Logger() returned nil during concurrent SetLogger")
			}
		}()
	}

	wg.Wait()
}

func BenchmarkDisabledLogger(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("handle released", "type", "RectangleGeometry")
	}
}
