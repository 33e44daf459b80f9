package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/growwithdv/Modern-Calculator/internal/calculator"
	"github.com/growwithdv/Modern-Calculator/internal/config"
	"github.com/growwithdv/Modern-Calculator/internal/symbol"
	"github.com/growwithdv/Modern-Calculator/internal/ui/components"
)

// ViewState represents the current view in the calculator
type ViewState int

const (
	ViewCalculator ViewState = iota
	ViewHistory
	ViewHelp
)

// keyHighlight is how long a pressed keypad cell stays lit.
const keyHighlight = 150 * time.Millisecond

// Model is the main calculator TUI model
type Model struct {
	acc     *calculator.Accumulator
	cfg     *config.Config
	history *components.HistoryList

	currentView ViewState
	width       int
	height      int
	ready       bool
	quitting    bool

	// pressed is the keypad cell currently lit. pressSeq invalidates the
	// release timer of a superseded press during rapid typing.
	pressed  string
	pressSeq int

	// calcErr is the error currently flashed on the display. While it is
	// set, calculator keys are swallowed until the flash timer resets the
	// state, so at most one clear timer is ever outstanding.
	calcErr *calculator.Error

	footnote string
}

// NewModel creates the calculator model and applies the configured theme
// and symbol mode.
func NewModel(cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	SetThemeByName(cfg.Theme.Name)
	symbol.SetASCIIOnly(cfg.Display.ASCII)

	return &Model{
		acc:     calculator.New(),
		cfg:     cfg,
		history: components.NewHistoryList(symbol.Get("history") + " History"),
	}
}

// NewProgram builds the bubbletea program for the calculator. The returned
// handle lets callers push messages, such as config reloads, into the
// running UI.
func NewProgram(cfg *config.Config) *tea.Program {
	return tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
}

// Run starts the interactive calculator and blocks until exit.
func Run(cfg *config.Config) error {
	_, err := NewProgram(cfg).Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case errorClearMsg:
		return m.handleErrorClear()
	case keyReleaseMsg:
		return m.handleKeyRelease(msg)
	case themeSavedMsg:
		return m.handleThemeSaved(msg)
	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}
	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	listWidth := msg.Width - 12
	if listWidth > 56 {
		listWidth = 56
	}
	if listWidth < 20 {
		listWidth = 20
	}
	listHeight := msg.Height - 6
	if listHeight < 6 {
		listHeight = 6
	}
	m.history.SetSize(listWidth, listHeight)
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A flashed error swallows everything except quitting until the flash
	// timer resets the calculator.
	if m.calcErr != nil {
		if key == "q" || key == "ctrl+c" {
			return m.handleQuit()
		}
		return m, nil
	}

	switch m.currentView {
	case ViewHistory:
		return m.handleHistoryKeys(key)
	case ViewHelp:
		return m.handleHelpKeys(key)
	default:
		return m.handleCalculatorKeys(key)
	}
}

func (m *Model) handleCalculatorKeys(key string) (tea.Model, tea.Cmd) {
	b := Translate(key)
	m.footnote = ""

	var cmds []tea.Cmd
	if id := keyID(b); id != "" {
		cmds = append(cmds, m.pressKey(id))
	}

	switch b.Kind {
	case BindQuit:
		return m.handleQuit()
	case BindDigit:
		cmds = append(cmds, m.applyInput(m.acc.AppendDigit(b.Digit)))
	case BindOperator:
		cmds = append(cmds, m.applyInput(m.acc.AppendOperator(b.Op)))
	case BindCalculate:
		cmds = append(cmds, m.applyInput(m.acc.Calculate()))
	case BindBackspace:
		m.acc.Backspace()
	case BindClearEntry:
		m.acc.ClearEntry()
	case BindClearAll:
		m.acc.ClearAll()
	case BindHistoryView:
		m.history.SetEntries(m.acc.History())
		m.currentView = ViewHistory
	case BindHelpView:
		m.currentView = ViewHelp
	case BindThemeCycle:
		cmds = append(cmds, m.cycleTheme())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleHistoryKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m.handleQuit()
	case "esc", "h", "tab":
		m.currentView = ViewCalculator
	case "up", "k":
		m.history.MoveUp()
	case "down", "j":
		m.history.MoveDown()
	case "enter":
		if entry, ok := m.history.SelectedEntry(); ok {
			m.acc.Recall(entry)
			m.pressed = ""
			m.currentView = ViewCalculator
		}
	case "x", "delete":
		m.acc.ClearHistory()
		m.history.SetEntries(nil)
	default:
		// Typing a digit or operator resumes the calculation.
		if b := Translate(key); b.Kind == BindDigit || b.Kind == BindOperator {
			m.currentView = ViewCalculator
			return m.handleCalculatorKeys(key)
		}
	}
	return m, nil
}

func (m *Model) handleHelpKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m.handleQuit()
	case "esc", "?", "enter":
		m.currentView = ViewCalculator
	}
	return m, nil
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// pressKey lights a keypad cell and schedules its release.
func (m *Model) pressKey(id string) tea.Cmd {
	m.pressed = id
	m.pressSeq++
	seq := m.pressSeq
	return tea.Tick(keyHighlight, func(time.Time) tea.Msg {
		return keyReleaseMsg{seq: seq}
	})
}

func (m *Model) handleKeyRelease(msg keyReleaseMsg) (tea.Model, tea.Cmd) {
	if msg.seq == m.pressSeq {
		m.pressed = ""
	}
	return m, nil
}

// applyInput records a rejected calculator operation and schedules the
// error flash to clear. Successful operations pass through unchanged.
func (m *Model) applyInput(err error) tea.Cmd {
	if err == nil {
		return nil
	}

	calcErr, ok := calculator.AsError(err)
	if !ok {
		calcErr = &calculator.Error{Kind: calculator.ErrKindInvalidNumber, Message: err.Error()}
	}
	m.calcErr = calcErr

	return tea.Tick(m.cfg.Display.ErrorFlash, func(time.Time) tea.Msg {
		return errorClearMsg{}
	})
}

func (m *Model) handleErrorClear() (tea.Model, tea.Cmd) {
	if m.calcErr == nil {
		return m, nil
	}
	m.calcErr = nil
	m.acc.ClearAll()
	return m, nil
}

func (m *Model) cycleTheme() tea.Cmd {
	next := NextThemeName()
	SetThemeByName(next)
	m.cfg.Theme.Name = next
	m.footnote = "theme: " + next

	cfg := m.cfg
	return func() tea.Msg {
		return themeSavedMsg{theme: next, err: config.Save(cfg, config.SavePath())}
	}
}

func (m *Model) handleThemeSaved(msg themeSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.footnote = "theme: " + msg.theme + " (not saved)"
	}
	return m, nil
}

func (m *Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	m.cfg = msg.Config
	SetThemeByName(m.cfg.Theme.Name)
	symbol.SetASCIIOnly(m.cfg.Display.ASCII)
	m.history.Title = symbol.Get("history") + " History"
	m.footnote = "config reloaded"
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	switch m.currentView {
	case ViewHistory:
		return m.renderHistoryView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderCalculatorView()
	}
}

func (m *Model) renderCalculatorView() string {
	styles := GetStyles()

	var sections []string

	header := styles.Title.Render(symbol.Get("calculator")+" modcalc") +
		styles.Muted.Render(m.cfg.Theme.Name)
	sections = append(sections, header, "")

	if m.cfg.Display.ShowExpression {
		expr := symbol.Render(m.acc.Expression())
		if expr == "" {
			expr = " "
		}
		sections = append(sections,
			styles.Expression.Width(keypadWidth).Align(lipgloss.Right).Render(expr))
	}

	if m.calcErr != nil {
		banner := symbol.Get("error") + " " + m.calcErr.Message
		sections = append(sections,
			styles.ErrorBanner.Width(keypadWidth).Align(lipgloss.Right).Render(banner))
	} else {
		sections = append(sections,
			styles.Display.Width(keypadWidth).Align(lipgloss.Right).Render(m.acc.Display()))
	}

	if m.showKeypad() {
		sections = append(sections, "", renderKeypad(styles, m.pressed))
	}

	sections = append(sections, "")
	if m.footnote != "" {
		sections = append(sections, styles.Muted.Render(m.footnote))
	}
	sections = append(sections, styles.StatusBar.Render("h history • t theme • ? help • q quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.place(styles.Box.Render(content))
}

func (m *Model) renderHistoryView() string {
	styles := GetStyles()
	theme := GetTheme()

	palette := components.Palette{
		Primary:  theme.Primary,
		Muted:    theme.Muted,
		Border:   theme.Border,
		Selected: theme.Selected,
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.history.Render(palette),
		"",
		styles.StatusBar.Render("↑/↓ select • enter recall • x clear • esc back"),
	)
	return m.place(styles.Box.Render(content))
}

func (m *Model) renderHelpView() string {
	styles := GetStyles()

	var b strings.Builder
	b.WriteString(styles.Title.Render(symbol.Get("help") + " Help"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		lines []string
	}{
		{"Entry", []string{
			"0-9 .        type a number",
			"+ - * /      choose an operation (x also multiplies)",
			"enter or =   calculate",
		}},
		{"Editing", []string{
			"backspace    delete the last character",
			"c            clear the current entry",
			"esc          clear the whole calculation",
		}},
		{"Views", []string{
			"h or tab     calculation history",
			"t            cycle color themes",
			"?            this help",
		}},
		{"Exit", []string{
			"q or ctrl+c  quit",
		}},
	}

	for _, s := range sections {
		b.WriteString(styles.Header.Render(s.title))
		b.WriteString("\n")
		for _, line := range s.lines {
			b.WriteString(styles.Muted.Render("  " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.StatusBar.Render("esc back"))

	return m.place(styles.Box.Render(b.String()))
}

func (m *Model) showKeypad() bool {
	if !m.cfg.Display.ShowKeypad {
		return false
	}
	// The grid needs vertical room; small terminals get display-only mode.
	return m.height == 0 || m.height >= 22
}

func (m *Model) place(content string) string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
