package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/ui"
)

// maxLineBytes bounds a single REPL input line. Operands of several million
// digits are legitimate input, so the limit is generous.
const maxLineBytes = 64 << 20

// REPLConfig holds the initial settings of an interactive session. All of
// them can be changed from within the session.
type REPLConfig struct {
	// Base is the input radix; 0 infers it from 0x/0o/0b prefixes.
	Base int
	// Backend is the registry key of the arithmetic backend.
	Backend string
	// TruncateDigits caps displayed digits; 0 applies the default limit.
	TruncateDigits int
	// Timeout bounds each evaluation.
	Timeout time.Duration
}

// REPL is the interactive calculator loop. Input and output default to the
// standard streams and can be redirected for testing via SetInput and
// SetOutput.
type REPL struct {
	cfg     REPLConfig
	backend bigint.Backend
	last    *bigint.Int
	hexOut  bool
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a REPL bound to the configured backend.
func NewREPL(cfg REPLConfig) (*REPL, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	backend, ok := bigint.NewBackend(cfg.Backend)
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (registered: %s)",
			cfg.Backend, strings.Join(bigint.BackendKeys(), ", "))
	}
	return &REPL{
		cfg:     cfg,
		backend: backend,
		in:      os.Stdin,
		out:     os.Stdout,
	}, nil
}

// SetInput redirects the REPL's input stream. Intended for tests.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput redirects the REPL's output stream. Intended for tests.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the read-eval-print loop until EOF, an "exit" command, or
// context cancellation.
func (r *REPL) Start(ctx context.Context) error {
	r.printBanner()

	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()
		default:
		}

		fmt.Fprintf(r.out, "%sbig>%s ", ui.ColorBlue(), ui.ColorReset())
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if !r.processCommand(ctx, strings.TrimSpace(scanner.Text())) {
			return nil
		}
	}
}

// processCommand handles one input line. It returns false when the session
// should end.
func (r *REPL) processCommand(ctx context.Context, line string) bool {
	if line == "" {
		return true
	}
	tokens := strings.Fields(line)

	switch strings.ToLower(tokens[0]) {
	case "exit", "quit":
		fmt.Fprintf(r.out, "Goodbye.\n")
		return false
	case "help", "?":
		r.printHelp()
	case "status":
		r.printStatus()
	case "hex":
		r.hexOut = !r.hexOut
		if r.hexOut {
			fmt.Fprintf(r.out, "Hexadecimal output enabled.\n")
		} else {
			fmt.Fprintf(r.out, "Hexadecimal output disabled.\n")
		}
	case "base":
		r.cmdBase(tokens[1:])
	case "backend":
		r.cmdBackend(tokens[1:])
	case "compare":
		r.cmdCompare(ctx, tokens[1:])
	case "parse":
		r.cmdParse(tokens[1:])
	case "format":
		r.cmdFormat(tokens[1:])
	default:
		r.cmdEvaluate(ctx, tokens)
	}
	return true
}

// cmdBase switches the input radix.
func (r *REPL) cmdBase(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "Input base is %s. Usage: base <0|2..36>\n", describeBase(r.cfg.Base))
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || (n != 0 && (n < 2 || n > bigint.MaxBase)) {
		r.printError(fmt.Errorf("base must be 0 or between 2 and %d", bigint.MaxBase))
		return
	}
	r.cfg.Base = n
	fmt.Fprintf(r.out, "Input base set to %s.\n", describeBase(n))
}

// cmdBackend lists or switches the arithmetic backend.
func (r *REPL) cmdBackend(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "Registered backends: %s (current: %s)\n",
			strings.Join(bigint.BackendKeys(), ", "), r.cfg.Backend)
		return
	}
	backend, ok := bigint.NewBackend(args[0])
	if !ok {
		r.printError(fmt.Errorf("unknown backend %q", args[0]))
		return
	}
	r.cfg.Backend = args[0]
	r.backend = backend
	fmt.Fprintf(r.out, "Backend switched to %s%s%s.\n", ui.ColorCyan(), backend.Name(), ui.ColorReset())
}

// cmdCompare runs one request on every registered backend and verifies that
// the results agree.
func (r *REPL) cmdCompare(ctx context.Context, tokens []string) {
	req, err := r.parseRequest(tokens)
	if err != nil {
		r.printError(err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	runs := orchestration.CompareBackends(ctx, bigint.BackendKeys(), req)
	PresentComparisonTable(runs, r.out)
	if PresentComparisonVerdict(runs, r.out) {
		for _, run := range runs {
			if run.Err == nil {
				r.displayResult(run.Result)
				r.last = run.Result.Value
				break
			}
		}
	}
}

// cmdParse reads an integer literal in an explicit radix, shows its decimal
// value and stores it as the previous result.
func (r *REPL) cmdParse(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(r.out, "Usage: parse <literal> [base]\n")
		return
	}
	base := r.cfg.Base
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			r.printError(fmt.Errorf("bad base %q", args[1]))
			return
		}
		base = n
	}
	x, err := bigint.ParseInt(args[0], base)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "parse = %s%s%s (%d bits)\n",
		ui.ColorGreen(), FormatTruncated(x.String(), TruncationLimit, DisplayEdges), ui.ColorReset(), x.BitLen())
	r.last = x
}

// cmdFormat renders an operand (parsed in the current input base) in an
// explicit radix.
func (r *REPL) cmdFormat(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(r.out, "Usage: format <operand> [base]\n")
		return
	}
	base := r.outputBase()
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 2 || n > bigint.MaxBase {
			r.printError(fmt.Errorf("base must be between 2 and %d", bigint.MaxBase))
			return
		}
		base = n
	}
	tok := args[0]
	var x *bigint.Int
	if strings.EqualFold(tok, "ans") && r.last != nil {
		x = r.last
	} else {
		var err error
		x, err = bigint.ParseInt(tok, r.cfg.Base)
		if err != nil {
			r.printError(err)
			return
		}
	}
	fmt.Fprintf(r.out, "format = %s%s%s (base %d)\n",
		ui.ColorGreen(), FormatTruncated(x.Text(base), TruncationLimit, DisplayEdges), ui.ColorReset(), base)
}

// cmdEvaluate parses and evaluates an ordinary expression line.
func (r *REPL) cmdEvaluate(ctx context.Context, tokens []string) {
	req, err := r.parseRequest(tokens)
	if err != nil {
		r.printError(err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	res, err := orchestration.Evaluate(ctx, r.backend, req)
	if err != nil {
		r.printError(err)
		return
	}
	r.displayResult(res)
	r.last = res.Value
}

// parseRequest resolves "ans" operand references and parses the tokens.
func (r *REPL) parseRequest(tokens []string) (orchestration.Request, error) {
	resolved := make([]string, len(tokens))
	for i, tok := range tokens {
		if i > 0 && strings.EqualFold(tok, "ans") {
			if r.last == nil {
				return orchestration.Request{}, fmt.Errorf("no previous result to substitute for %q", tok)
			}
			resolved[i] = r.last.Text(r.inputBase())
			continue
		}
		resolved[i] = tok
	}
	return orchestration.ParseRequest(resolved, r.cfg.Base)
}

// inputBase returns the radix used to render "ans" back into operand text.
func (r *REPL) inputBase() int {
	if r.cfg.Base < 2 || r.cfg.Base > bigint.MaxBase {
		return 10
	}
	return r.cfg.Base
}

// outputBase returns the radix for displaying results.
func (r *REPL) outputBase() int {
	if r.hexOut {
		return 16
	}
	return r.inputBase()
}

func (r *REPL) displayResult(res orchestration.Result) {
	DisplayResult(r.out, res, OutputConfig{
		Base:           r.outputBase(),
		TruncateDigits: r.cfg.TruncateDigits,
	})
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "%s--- bigcalc interactive mode ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "Backend: %s%s%s, input base: %s.\n",
		ui.ColorCyan(), r.backend.Name(), ui.ColorReset(), describeBase(r.cfg.Base))
	fmt.Fprintf(r.out, "Type %shelp%s for commands, %sexit%s to leave.\n\n",
		ui.ColorGreen(), ui.ColorReset(), ui.ColorGreen(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "Operations (operands in the current input base):\n")
	fmt.Fprintf(r.out, "  add x y        sum                     sub x y       difference\n")
	fmt.Fprintf(r.out, "  mul x y        product                 div x y       truncating quotient\n")
	fmt.Fprintf(r.out, "  rem x y        remainder               divmod x y    quotient and remainder\n")
	fmt.Fprintf(r.out, "  gcd x y        greatest common divisor cmp x y       -1, 0 or 1\n")
	fmt.Fprintf(r.out, "  modpow x y m   x**y mod m\n")
	fmt.Fprintf(r.out, "The token %sans%s stands for the previous result.\n\n", ui.ColorGreen(), ui.ColorReset())
	fmt.Fprintf(r.out, "Session commands:\n")
	fmt.Fprintf(r.out, "  base <0|2..36>  set the input radix (0 = infer from prefixes)\n")
	fmt.Fprintf(r.out, "  hex             toggle hexadecimal output\n")
	fmt.Fprintf(r.out, "  backend [key]   list or switch arithmetic backends\n")
	fmt.Fprintf(r.out, "  compare op ...  run one operation on every backend and cross-check\n")
	fmt.Fprintf(r.out, "  parse s [base]  read a literal in the given radix, show it in decimal\n")
	fmt.Fprintf(r.out, "  format x [base] render an operand in the given radix\n")
	fmt.Fprintf(r.out, "  status          show current session settings\n")
	fmt.Fprintf(r.out, "  exit            leave the session\n")
}

func (r *REPL) printStatus() {
	fmt.Fprintf(r.out, "Backend:    %s (%s)\n", r.cfg.Backend, r.backend.Name())
	fmt.Fprintf(r.out, "Input base: %s\n", describeBase(r.cfg.Base))
	fmt.Fprintf(r.out, "Hex output: %v\n", r.hexOut)
	fmt.Fprintf(r.out, "Timeout:    %s\n", r.cfg.Timeout)
	limit := r.cfg.TruncateDigits
	if limit == 0 {
		limit = TruncationLimit
	}
	fmt.Fprintf(r.out, "Truncation: %d digits\n", limit)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Fprintf(r.out, "Heap in use: %s\n", format.FormatBytes(ms.HeapInuse))
	if r.last != nil {
		fmt.Fprintf(r.out, "Last result: %s (%d bits)\n",
			FormatTruncated(r.last.Text(r.outputBase()), TruncationLimit, DisplayEdges), r.last.BitLen())
	}
}
