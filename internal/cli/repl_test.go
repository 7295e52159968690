package cli

import (
	"context"
	"strings"
	"testing"
	"time"
)

// runSession feeds a scripted command sequence to a fresh REPL and returns
// the combined output.
func runSession(t *testing.T, cfg REPLConfig, lines ...string) string {
	t.Helper()
	noColors(t)
	if cfg.Backend == "" {
		cfg.Backend = "native"
	}

	repl, err := NewREPL(cfg)
	if err != nil {
		t.Fatalf("NewREPL: %v", err)
	}
	var out strings.Builder
	repl.SetInput(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	repl.SetOutput(&out)

	if err := repl.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return out.String()
}

func TestREPLEvaluatesExpressions(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"add 2 3",
		"mul 123456789012345678901234567890 2",
		"divmod -100 7",
		"exit",
	)

	for _, want := range []string{
		"add = 5",
		"mul = 246,913,578,024,691,357,802,469,135,780",
		"divmod = -14",
		"rem = -2",
		"Goodbye.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output missing %q:\n%s", want, out)
		}
	}
}

func TestREPLAnsSubstitution(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"add 2 3",
		"mul ans 10",
		"exit",
	)
	if !strings.Contains(out, "mul = 50") {
		t.Errorf("ans substitution failed:\n%s", out)
	}
}

func TestREPLAnsWithoutHistory(t *testing.T) {
	out := runSession(t, REPLConfig{}, "add ans 1", "exit")
	if !strings.Contains(out, "no previous result") {
		t.Errorf("expected an error about missing history:\n%s", out)
	}
}

func TestREPLBaseSwitching(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"base 16",
		"add ff 1",
		"base 37",
		"base",
		"exit",
	)
	if !strings.Contains(out, "add = 100") {
		t.Errorf("hex input not honored:\n%s", out)
	}
	if !strings.Contains(out, "base must be 0 or between 2 and 36") {
		t.Errorf("invalid base not rejected:\n%s", out)
	}
	if !strings.Contains(out, "Input base is 16") {
		t.Errorf("bare base command should report the current radix:\n%s", out)
	}
}

func TestREPLHexToggle(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"hex",
		"add 255 1",
		"exit",
	)
	if !strings.Contains(out, "Hexadecimal output enabled.") {
		t.Errorf("missing toggle confirmation:\n%s", out)
	}
	if !strings.Contains(out, "add = 100") { // 256 in hex
		t.Errorf("hex output not applied:\n%s", out)
	}
}

func TestREPLArithmeticErrorsKeepSessionAlive(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"div 1 0",
		"add 1 1",
		"exit",
	)
	if !strings.Contains(out, "division by zero") {
		t.Errorf("missing division error:\n%s", out)
	}
	if !strings.Contains(out, "add = 2") {
		t.Errorf("session should continue after an error:\n%s", out)
	}
}

func TestREPLUnknownOperation(t *testing.T) {
	out := runSession(t, REPLConfig{}, "frobnicate 1 2", "exit")
	if !strings.Contains(out, "unknown operation") {
		t.Errorf("expected unknown operation error:\n%s", out)
	}
}

func TestREPLBackendCommand(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"backend",
		"backend no-such",
		"backend native",
		"exit",
	)
	if !strings.Contains(out, "Registered backends: ") {
		t.Errorf("bare backend command should list backends:\n%s", out)
	}
	if !strings.Contains(out, `unknown backend "no-such"`) {
		t.Errorf("bad backend not rejected:\n%s", out)
	}
	if !strings.Contains(out, "Backend switched to") {
		t.Errorf("backend switch not confirmed:\n%s", out)
	}
}

func TestREPLCompare(t *testing.T) {
	out := runSession(t, REPLConfig{}, "compare gcd 48 36", "exit")
	if !strings.Contains(out, "Backend Comparison") {
		t.Errorf("missing comparison table:\n%s", out)
	}
	if !strings.Contains(out, "All backends agree.") {
		t.Errorf("missing verdict:\n%s", out)
	}
	if !strings.Contains(out, "gcd = 12") {
		t.Errorf("missing agreed result:\n%s", out)
	}
}

func TestREPLStatusAndHelp(t *testing.T) {
	out := runSession(t, REPLConfig{Timeout: 30 * time.Second},
		"add 1 2",
		"status",
		"help",
		"exit",
	)
	for _, want := range []string{
		"Backend:    native",
		"Timeout:    30s",
		"Heap in use:",
		"Last result: 3",
		"modpow x y m",
		"base <0|2..36>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in status/help output:\n%s", want, out)
		}
	}
}

func TestREPLEOFEndsSession(t *testing.T) {
	noColors(t)
	repl, err := NewREPL(REPLConfig{Backend: "native"})
	if err != nil {
		t.Fatalf("NewREPL: %v", err)
	}
	var out strings.Builder
	repl.SetInput(strings.NewReader("")) // immediate EOF
	repl.SetOutput(&out)
	if err := repl.Start(context.Background()); err != nil {
		t.Errorf("EOF should end the session cleanly, got %v", err)
	}
}

func TestNewREPLUnknownBackend(t *testing.T) {
	if _, err := NewREPL(REPLConfig{Backend: "missing"}); err == nil {
		t.Error("unknown backend should fail construction")
	}
}

func TestREPLParseCommand(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"parse ff 16",
		"add ans 1",
		"parse zz 99",
		"parse",
		"exit",
	)

	for _, want := range []string{
		"parse = 255",
		"add = 256",
		"Error:",
		"Usage: parse <literal> [base]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output missing %q:\n%s", want, out)
		}
	}
}

func TestREPLFormatCommand(t *testing.T) {
	out := runSession(t, REPLConfig{},
		"format 255 16",
		"add 9 1",
		"format ans 2",
		"format 255 37",
		"exit",
	)

	for _, want := range []string{
		"format = ff (base 16)",
		"format = 1010 (base 2)",
		"base must be between 2 and 36",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output missing %q:\n%s", want, out)
		}
	}
}
