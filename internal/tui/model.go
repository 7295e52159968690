package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/cli"
	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/sysmon"
)

const (
	// statHistory is the sample capacity of the CPU/memory strips.
	statHistory = 60
	// maxHistoryEntries bounds the result scrollback.
	maxHistoryEntries = 200
	// sampleInterval is the system stats refresh period.
	sampleInterval = time.Second
)

// historyEntry is one evaluated line of the session.
type historyEntry struct {
	expr     string
	display  string
	err      error
	duration time.Duration
}

// tickMsg delivers a periodic system load sample.
type tickMsg sysmon.Stats

// evalDoneMsg delivers the outcome of an asynchronous evaluation.
type evalDoneMsg struct {
	expr string
	res  orchestration.Result
	err  error
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	ctx    context.Context
	cfg    config.AppConfig
	keymap KeyMap
	styles Styles

	input       textinput.Model
	history     []historyEntry
	backendKeys []string
	backendIdx  int
	backend     bigint.Backend
	hexOut      bool
	evaluating  bool

	cpu *RingBuffer
	mem *RingBuffer

	width  int
	height int
}

// NewModel creates the dashboard model bound to the configured backend.
func NewModel(ctx context.Context, cfg config.AppConfig) (Model, error) {
	keys := bigint.BackendKeys()
	idx := 0
	for i, k := range keys {
		if k == cfg.Backend {
			idx = i
		}
	}
	backend, ok := bigint.NewBackend(keys[idx])
	if !ok {
		return Model{}, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	input := textinput.New()
	input.Placeholder = "add 123 456   (help: op x y [m] — " + strings.Join(orchestration.OpNames(), ", ") + ")"
	input.Prompt = "big> "
	input.Focus()

	return Model{
		ctx:         ctx,
		cfg:         cfg,
		keymap:      DefaultKeyMap(),
		styles:      NewStyles(),
		input:       input,
		backendKeys: keys,
		backendIdx:  idx,
		backend:     backend,
		cpu:         NewRingBuffer(statHistory),
		mem:         NewRingBuffer(statHistory),
	}, nil
}

// Init starts the system sampling loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// tickCmd schedules the next system load sample.
func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(time.Time) tea.Msg {
		return tickMsg(sysmon.Sample())
	})
}

// evalCmd evaluates an expression asynchronously so the UI stays live.
func evalCmd(ctx context.Context, backend bigint.Backend, timeout time.Duration, expr string, base int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		req, err := orchestration.ParseRequest(strings.Fields(expr), base)
		if err != nil {
			return evalDoneMsg{expr: expr, err: err}
		}
		res, err := orchestration.Evaluate(ctx, backend, req)
		return evalDoneMsg{expr: expr, res: res, err: err}
	}
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10
		m.cpu.Resize(max(8, msg.Width/3))
		m.mem.Resize(max(8, msg.Width/3))
		return m, nil

	case tickMsg:
		m.cpu.Push(msg.CPUPercent)
		m.mem.Push(msg.MemPercent)
		return m, tickCmd()

	case evalDoneMsg:
		m.evaluating = false
		m.history = append(m.history, m.entryFor(msg))
		if len(m.history) > maxHistoryEntries {
			m.history = m.history[len(m.history)-maxHistoryEntries:]
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.CycleBackend):
			m.backendIdx = (m.backendIdx + 1) % len(m.backendKeys)
			if backend, ok := bigint.NewBackend(m.backendKeys[m.backendIdx]); ok {
				m.backend = backend
			}
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHex):
			m.hexOut = !m.hexOut
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.history = nil
			return m, nil
		case key.Matches(msg, m.keymap.Submit):
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" || m.evaluating {
				return m, nil
			}
			m.input.SetValue("")
			m.evaluating = true
			return m, evalCmd(m.ctx, m.backend, m.cfg.Timeout, expr, m.cfg.Base)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// entryFor renders an evaluation outcome into a history entry.
func (m Model) entryFor(msg evalDoneMsg) historyEntry {
	entry := historyEntry{expr: msg.expr, err: msg.err, duration: msg.res.Duration}
	if msg.err != nil {
		return entry
	}
	base := m.outputBase()
	display := cli.FormatTruncated(msg.res.Value.Text(base), m.truncateLimit(), cli.DisplayEdges)
	if msg.res.Rem != nil {
		display += "  rem " + cli.FormatTruncated(msg.res.Rem.Text(base), m.truncateLimit(), cli.DisplayEdges)
	}
	entry.display = display
	return entry
}

func (m Model) outputBase() int {
	if m.hexOut {
		return 16
	}
	if m.cfg.Base >= 2 && m.cfg.Base <= bigint.MaxBase {
		return m.cfg.Base
	}
	return 10
}

func (m Model) truncateLimit() int {
	if m.cfg.TruncateDigits != 0 {
		return m.cfg.TruncateDigits
	}
	return cli.TruncationLimit
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "starting..."
	}

	header := m.styles.Header.Render(fmt.Sprintf("bigcalc — backend: %s — base: %d — hex: %v",
		m.backendKeys[m.backendIdx], m.outputBase(), m.hexOut))

	var history strings.Builder
	visible := m.visibleHistory()
	for _, entry := range visible {
		history.WriteString(m.styles.Expr.Render("big> "+entry.expr) + "\n")
		if entry.err != nil {
			history.WriteString(m.styles.Error.Render("error: "+entry.err.Error()) + "\n")
			continue
		}
		history.WriteString(m.styles.Result.Render(entry.display))
		history.WriteString(m.styles.Dim.Render("  ("+format.FormatExecutionDuration(entry.duration)+")") + "\n")
	}
	if len(visible) == 0 {
		history.WriteString(m.styles.Dim.Render("no results yet"))
	}
	historyPanel := m.styles.Panel.Width(m.width - 2).Render(strings.TrimRight(history.String(), "\n"))

	inputLine := m.input.View()
	if m.evaluating {
		inputLine += m.styles.Dim.Render("  evaluating...")
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.StatLabel.Render(fmt.Sprintf("CPU %5.1f%% ", m.cpu.Last())),
		m.styles.Spark.Render(RenderSparkline(m.cpu.Slice())),
		m.styles.StatLabel.Render(fmt.Sprintf("   MEM %5.1f%% ", m.mem.Last())),
		m.styles.Spark.Render(RenderSparkline(m.mem.Slice())),
	)

	var help []string
	for _, b := range m.keymap.ShortHelp() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	footer := m.styles.Footer.Render(strings.Join(help, "  ·  "))

	return lipgloss.JoinVertical(lipgloss.Left, header, historyPanel, inputLine, stats, footer)
}

// visibleHistory limits the scrollback to what fits the terminal height.
func (m Model) visibleHistory() []historyEntry {
	rows := (m.height - 8) / 2
	if rows < 1 {
		rows = 1
	}
	if len(m.history) <= rows {
		return m.history
	}
	return m.history[len(m.history)-rows:]
}
