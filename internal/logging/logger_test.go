package logging

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when LOADMON_LOG_LEVEL is unset")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogRegistered(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogRegistered("Fan", 75, 8, 1)

	entries := logs.FilterMessage("Appliance registered").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["name"] != "Fan" || fields["power_watts"] != float64(75) || fields["store_size"] != int64(1) {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestLogRejectedInput_Truncates(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	LogRejectedInput("power_rating", string(long), errors.New("bad"))

	entries := logs.FilterMessage("Input rejected").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	input, _ := entries[0].ContextMap()["input"].(string)
	if len(input) != 259 {
		t.Errorf("input length = %d, want 259", len(input))
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// "é" is two bytes and straddles the cut.
	s := strings.Repeat("a", 255) + "é" + strings.Repeat("b", 10)

	got := truncate(s)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("a", 255) + "..."; got != want {
		t.Errorf("truncate() = %q, want %q", got, want)
	}

	if short := "冷蔵庫"; truncate(short) != short {
		t.Errorf("short input changed: %q", truncate(short))
	}
}

func TestLogSearch_InfoLevelHidesDebug(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	LogSearch("frig", 1, 3)
	LogStateChange("awaiting_choice", "searching")

	if logs.Len() != 1 {
		t.Errorf("got %d entries, want only the search entry", logs.Len())
	}
}
