package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("k", "v"), "k", "v"},
		{"Int", Int("count", 42), "count", 42},
		{"Int64", Int64("n", -7), "n", int64(-7)},
		{"Uint64", Uint64("big", 18446744073709551615), "big", uint64(18446744073709551615)},
		{"Float64", Float64("ratio", 0.5), "ratio", 0.5},
		{"Bool", Bool("ok", true), "ok", true},
		{"Dur", Dur("took", time.Second), "took", time.Second},
		{"Err", Err(boom), "error", boom},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "engine")

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "engine") || !strings.Contains(out, "hello") {
		t.Errorf("output missing component or message: %s", out)
	}
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	adapter.Info("wrapped")
	if !strings.Contains(buf.String(), "wrapped") {
		t.Errorf("adapter did not write, output: %s", buf.String())
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	adapter.Debug("probe", String("k", "v"))
	adapter.Info("status", Int("limbs", 12))
	adapter.Error("failed", errors.New("division by zero"), String("op", "quo"))
	adapter.Error("failed without cause", nil)

	out := buf.String()
	for _, want := range []string{
		"debug", "probe",
		"info", "limbs", "12",
		"error", "failed", "division by zero", "quo",
		"failed without cause",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestZerologAdapterFieldTypes drives applyFields through every dynamic
// type it dispatches on.
func TestZerologAdapterFieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, "hello"},
		{"int", Field{Key: "i", Value: 42}, "42"},
		{"int64", Field{Key: "i64", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "u64", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "f", Value: 3.14}, "3.14"},
		{"bool", Field{Key: "b", Value: true}, "true"},
		{"error", Field{Key: "e", Value: errors.New("oops")}, "oops"},
		{"fallback", Field{Key: "v", Value: struct{ X int }{X: 1}}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("typed", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output missing %q: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestZerologAdapterPrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("parsed %d digits", 30)
	logger.Println("a", "b")

	out := buf.String()
	if !strings.Contains(out, "parsed 30 digits") {
		t.Errorf("Printf output wrong: %s", out)
	}
	if !strings.Contains(out, "a b") {
		t.Errorf("Println output wrong: %s", out)
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Debug("trace", Int("line", 42))
	adapter.Info("running", String("mode", "repl"))
	adapter.Error("bad input", errors.New("invalid digit"), String("input", "12x"))
	adapter.Printf("value is %d", 123)
	adapter.Println("x", "y")

	out := buf.String()
	for _, want := range []string{
		"[DEBUG]", "trace", "line=42",
		"[INFO]", "running", "mode=repl",
		"[ERROR]", "bad input", "invalid digit", "input=12x",
		"value is 123",
		"x y",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
