package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/ui"
)

// noColors forces the colorless theme for deterministic output assertions.
func noColors(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func mustInt(t *testing.T, s string) *bigint.Int {
	t.Helper()
	v, err := bigint.ParseInt(s, 10)
	if err != nil {
		t.Fatalf("ParseInt(%q): %v", s, err)
	}
	return v
}

func TestFormatTruncated(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("9", 150)
	cases := []struct {
		name  string
		in    string
		limit int
		edges int
		want  string
	}{
		{"short string untouched", "12345", 100, 25, "12345"},
		{"limit disabled", long, 0, 25, long},
		{"negative limit untouched", long, -1, 25, long},
		{"truncated", long, 100, 3, "999...999"},
		{"exactly at limit", strings.Repeat("7", 100), 100, 25, strings.Repeat("7", 100)},
	}
	for _, tc := range cases {
		if got := FormatTruncated(tc.in, tc.limit, tc.edges); got != tc.want {
			t.Errorf("%s: FormatTruncated = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDisplayResult(t *testing.T) {
	noColors(t)
	res := orchestration.Result{
		Op:       "mul",
		Value:    mustInt(t, "246913578024691357802469135780"),
		Duration: 420 * time.Microsecond,
	}

	var buf strings.Builder
	DisplayResult(&buf, res, OutputConfig{Base: 10})
	out := buf.String()

	if !strings.Contains(out, "mul = 246,913,578,024,691,357,802,469,135,780") {
		t.Errorf("missing grouped result:\n%s", out)
	}
	if !strings.Contains(out, "420µs") {
		t.Errorf("missing duration:\n%s", out)
	}
	if !strings.Contains(out, "30 digits") {
		t.Errorf("missing digit count:\n%s", out)
	}
}

func TestDisplayResultTruncatesLongValues(t *testing.T) {
	noColors(t)
	// 10^150, printed as 1 followed by 150 zeros.
	res := orchestration.Result{Op: "modpow", Value: mustInt(t, "1"+strings.Repeat("0", 150))}

	var buf strings.Builder
	DisplayResult(&buf, res, OutputConfig{Base: 10})
	out := buf.String()

	if !strings.Contains(out, "...") {
		t.Errorf("long value should be truncated:\n%s", out)
	}
	if !strings.Contains(out, "truncated") {
		t.Errorf("missing truncation hint:\n%s", out)
	}

	buf.Reset()
	DisplayResult(&buf, res, OutputConfig{Base: 10, Verbose: true})
	if strings.Contains(buf.String(), "...") {
		t.Error("verbose display should not truncate")
	}
}

func TestDisplayResultDivmod(t *testing.T) {
	noColors(t)
	res := orchestration.Result{Op: "divmod", Value: mustInt(t, "14"), Rem: mustInt(t, "2")}

	var buf strings.Builder
	DisplayResult(&buf, res, OutputConfig{Base: 10})
	if !strings.Contains(buf.String(), "rem = 2") {
		t.Errorf("missing remainder line:\n%s", buf.String())
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()
	res := orchestration.Result{Value: mustInt(t, "255"), Rem: mustInt(t, "-10")}
	if got := FormatQuietResult(res, 16); got != "ff -a" {
		t.Errorf("FormatQuietResult = %q, want %q", got, "ff -a")
	}
	res.Rem = nil
	if got := FormatQuietResult(res, 10); got != "255" {
		t.Errorf("FormatQuietResult = %q, want %q", got, "255")
	}
}

func TestWriteResultToFile(t *testing.T) {
	noColors(t)
	path := filepath.Join(t.TempDir(), "nested", "result.txt")
	res := orchestration.Result{
		Op:       "mul",
		Value:    mustInt(t, "123456"),
		Duration: time.Millisecond,
	}

	if err := WriteResultToFile(res, "mul 123 1003", OutputConfig{Base: 10, OutputFile: path}); err != nil {
		t.Fatalf("WriteResultToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	for _, want := range []string{"# Expression: mul 123 1003", "# Base: 10", "\n123456\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("file missing %q:\n%s", want, content)
		}
	}
}

func TestWriteResultToFileNoPath(t *testing.T) {
	t.Parallel()
	err := WriteResultToFile(orchestration.Result{Value: bigint.NewInt(1)}, "add 0 1", OutputConfig{})
	if err != nil {
		t.Errorf("empty OutputFile should be a no-op, got %v", err)
	}
}
