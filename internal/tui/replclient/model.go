// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     replclient
// Description: Main Bubbletea model for the full-screen REPL
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package replclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/msto63/intp/foundation/core/config"
	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/parser"
	"github.com/msto63/intp/internal/repl"
)

// Config holds replclient configuration
type Config struct {
	Mode        string
	Prompt      string
	Color       bool
	HistoryFile string
	HistorySize int
	Parser      parser.Options
	Logger      *intplog.Logger
	Version     string
}

// ConfigFrom builds the client configuration from the loaded settings
func ConfigFrom(cfg *config.Config, logger *intplog.Logger) Config {
	return Config{
		Mode:        cfg.REPL.Mode,
		Prompt:      cfg.REPL.Prompt,
		Color:       cfg.REPL.Color,
		HistoryFile: cfg.REPL.HistoryPath(),
		HistorySize: cfg.REPL.HistorySize,
		Parser: parser.Options{
			MaxInputLength: cfg.Parser.MaxInputLength,
			Trace:          cfg.Parser.Trace,
		},
		Logger: logger,
	}
}

// Model is the main Bubbletea model for the REPL client
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	evaluating bool

	// Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Session
	entries []Entry
	mode    string
	history *History
	styles  Styles
	logger  *intplog.Logger
	cfg     Config
}

// New creates a new REPL client model
func New(cfg Config) Model {
	if !repl.ValidMode(cfg.Mode) {
		cfg.Mode = config.ModeAST
	}
	if cfg.Prompt == "" {
		cfg.Prompt = repl.DefaultPrompt
	}
	if cfg.Logger == nil {
		cfg.Logger = intplog.GetDefault()
	}

	logger := cfg.Logger.WithName("replclient").WithSessionID(uuid.New().String())
	cfg.Parser.Logger = logger
	styles := NewStyles(cfg.Color)

	ta := textarea.New()
	ta.Placeholder = "Enter Monkey source... (Enter to evaluate, Alt+Enter for a new line)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Prompt = cfg.Prompt
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Prompt = styles.Prompt

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		textarea: ta,
		spinner:  sp,
		mode:     cfg.Mode,
		history:  LoadHistory(cfg.HistoryFile, cfg.HistorySize),
		styles:   styles,
		logger:   logger,
		cfg:      cfg,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	m.logger.Info("Session started", intplog.Field("mode", m.mode))
	return tea.Batch(
		textarea.Blink,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Logo + blank line
		footerHeight := 9 // Input box + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.evaluating {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case evalResultMsg:
		m.evaluating = false
		kind := EntryOutput
		if msg.failed {
			kind = EntryError
		}
		m.entries = append(m.entries, Entry{
			Kind:      kind,
			Content:   strings.TrimRight(msg.output, "\n"),
			Timestamp: time.Now(),
			Mode:      msg.mode,
			Duration:  msg.duration,
		})
		m.updateViewportContent()
		m.viewport.GotoBottom()
		m.textarea.Focus()
	}

	if !m.evaluating {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m, m.quit()

	case "ctrl+t":
		m.mode = repl.NextMode(m.mode)
		m.addSystem("mode: " + m.mode)
		return m, nil

	case "ctrl+l":
		m.entries = nil
		m.updateViewportContent()
		return m, nil
	}

	if m.evaluating {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.textarea.Value())
		if input == "" {
			return m, nil
		}
		if input == ":quit" || input == ":q" {
			return m, m.quit()
		}

		m.history.Add(input)
		m.textarea.Reset()

		m.entries = append(m.entries, Entry{
			Kind:      EntryInput,
			Content:   input,
			Timestamp: time.Now(),
		})
		m.updateViewportContent()
		m.viewport.GotoBottom()

		m.evaluating = true
		return m, tea.Batch(
			m.spinner.Tick,
			m.evaluate(input, m.mode),
		)

	case tea.KeyUp:
		if entry, ok := m.history.Prev(m.textarea.Value()); ok {
			m.textarea.SetValue(entry)
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if entry, ok := m.history.Next(); ok {
			m.textarea.SetValue(entry)
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	// Pass other keys to textarea
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// evaluate lexes and parses input off the update loop
func (m Model) evaluate(input, mode string) tea.Cmd {
	opts := m.cfg.Parser
	return func() tea.Msg {
		start := time.Now()

		var out strings.Builder
		failed := false
		if mode == config.ModeTokens || mode == config.ModeBoth {
			out.WriteString(repl.FormatTokens(input))
		}
		if mode == config.ModeAST || mode == config.ModeBoth {
			result := parser.Parse(input, opts)
			failed = result.HasErrors()
			out.WriteString(repl.FormatResult(result))
		}

		return evalResultMsg{
			output:   out.String(),
			failed:   failed,
			mode:     mode,
			duration: time.Since(start),
		}
	}
}

// quit saves the history and ends the program
func (m Model) quit() tea.Cmd {
	if err := m.history.Save(); err != nil {
		m.logger.WarnWithErr("Saving history failed", err, intplog.Field("path", m.cfg.HistoryFile))
	}
	m.logger.Info("Session ended", intplog.Field("entries", len(m.entries)))
	return tea.Quit
}

func (m *Model) addSystem(content string) {
	m.entries = append(m.entries, Entry{
		Kind:      EntrySystem,
		Content:   content,
		Timestamp: time.Now(),
	})
	m.updateViewportContent()
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading intp REPL..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Logo.Render(Logo))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Panel.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderInputArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderInputArea() string {
	input := m.textarea.View()
	if m.evaluating {
		input = m.spinner.View() + m.styles.System.Render(" evaluating...")
	}
	return m.styles.InputBox.Width(m.width - 2).Render(input)
}

func (m Model) renderStatusBar() string {
	left := "mode: " + m.styles.Mode.Render(m.mode)
	right := fmt.Sprintf("%d entries", len(m.entries))
	if m.cfg.Version != "" {
		right += " | v" + m.cfg.Version
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}

	return m.styles.StatusBar.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderHelpBar() string {
	items := []string{
		m.styles.KeyHint("Enter", "evaluate"),
		m.styles.KeyHint("↑/↓", "history"),
		m.styles.KeyHint("Ctrl+T", "mode"),
		m.styles.KeyHint("Ctrl+L", "clear"),
		m.styles.KeyHint("Ctrl+C", "quit"),
	}
	return strings.Join(items, "  ")
}

// transcript renders all entries as plain styled text
func (m Model) transcript() string {
	var content strings.Builder

	for _, e := range m.entries {
		switch e.Kind {
		case EntryInput:
			content.WriteString(m.styles.Prompt.Render(m.cfg.Prompt))
			content.WriteString(m.styles.Input.Render(e.Content))
		case EntryOutput:
			content.WriteString(m.styles.Output.Render(e.Content))
		case EntryError:
			content.WriteString(m.styles.Error.Render(e.Content))
		case EntrySystem:
			content.WriteString(m.styles.System.Render("-- " + e.Content))
		}
		content.WriteString("\n")
	}

	return content.String()
}

func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.transcript())
}

// Mode returns the current evaluation mode
func (m Model) Mode() string {
	return m.mode
}

// Run starts the REPL client
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
