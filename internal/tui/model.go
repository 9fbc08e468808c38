// Package tui provides the Bubble Tea memory grid interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/gridmem/internal/alphabet"
	"github.com/verte-zerg/gridmem/internal/feedback"
	"github.com/verte-zerg/gridmem/internal/generator"
	"github.com/verte-zerg/gridmem/internal/model"
	"github.com/verte-zerg/gridmem/internal/settings"
	"github.com/verte-zerg/gridmem/internal/stats"
	"github.com/verte-zerg/gridmem/internal/trial"
)

// Machine is the trial state the UI drives.
type Machine interface {
	Start() error
	BeginInput() bool
	Submit() bool
	EnterSymbol(s string) bool
	Backspace() bool
	MoveBack() bool
	MoveForward() bool
	ToggleShowCorrect() bool
	Snapshot() trial.Snapshot
}

// Model implements the Bubble Tea game UI.
type Model struct {
	machine  Machine
	repo     *settings.Repository
	catalog  *alphabet.Catalog
	pulse    feedback.Pulser
	notifier *Notifier

	keys keyMap
	help help.Model

	width  int
	height int

	keyIndex int
	message  string
	form     *settingsForm
}

// NewModel constructs the game UI. notifier must be the one the machine reports to.
func NewModel(machine Machine, repo *settings.Repository, catalog *alphabet.Catalog, pulse feedback.Pulser, notifier *Notifier) *Model {
	if pulse == nil {
		pulse = feedback.Nop{}
	}
	return &Model{
		machine:  machine,
		repo:     repo,
		catalog:  catalog,
		pulse:    pulse,
		notifier: notifier,
		keys:     defaultKeys(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.notifier.wait()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case changedMsg:
		return m, m.notifier.wait()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.form != nil {
			return m, m.updateForm(msg)
		}
		return m.updateGame(msg)
	}
	return m, nil
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.machine.Snapshot()
	if snap.Phase == model.PhaseInput {
		if m.handleInput(msg, snap) {
			return m, nil
		}
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.handleSpace(snap)
	case key.Matches(msg, m.keys.Toggle):
		m.machine.ToggleShowCorrect()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Settings):
		if snap.Phase != model.PhaseMemorize && snap.Phase != model.PhaseInput {
			m.form = newSettingsForm(m.repo.Current(), m.catalog)
		}
	}
	return m, nil
}

// handleInput reports whether msg was consumed by the input phase.
func (m *Model) handleInput(msg tea.KeyMsg, snap trial.Snapshot) bool {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.machine.Submit() {
			m.pulse.Pulse()
		}
	case key.Matches(msg, m.keys.Backspace):
		m.machine.Backspace()
	case key.Matches(msg, m.keys.Left):
		m.machine.MoveBack()
	case key.Matches(msg, m.keys.Right):
		m.machine.MoveForward()
	case key.Matches(msg, m.keys.Next):
		m.keyIndex = wrapIndex(m.keyIndex+1, len(snap.Pool))
	case key.Matches(msg, m.keys.Prev):
		m.keyIndex = wrapIndex(m.keyIndex-1, len(snap.Pool))
	case key.Matches(msg, m.keys.Enter):
		if m.keyIndex >= 0 && m.keyIndex < len(snap.Pool) {
			m.enter(snap.Pool[m.keyIndex])
		}
	case msg.Type == tea.KeyRunes:
		sym, ok := matchSymbol(snap.Pool, string(msg.Runes))
		if !ok {
			return false
		}
		m.enter(sym)
	default:
		return false
	}
	return true
}

func (m *Model) enter(sym string) {
	if m.machine.EnterSymbol(sym) {
		m.pulse.Pulse()
	}
}

func (m *Model) handleSpace(snap trial.Snapshot) {
	switch snap.Phase {
	case model.PhaseIdle, model.PhaseFinished:
		m.message = ""
		if err := m.machine.Start(); err != nil {
			m.message = startErrorMessage(err)
			return
		}
		m.keyIndex = 0
		m.pulse.Pulse()
	case model.PhaseMemorize:
		m.machine.BeginInput()
	}
}

func (m *Model) toggleTheme() {
	dark := !m.repo.Current().DarkTheme
	if _, err := m.repo.Set(context.Background(), settings.KeyDarkTheme, strconv.FormatBool(dark)); err != nil {
		m.message = err.Error()
	}
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	result, cmd := m.form.update(msg)
	switch result {
	case formSaved:
		if err := m.repo.Save(context.Background(), m.form.draft); err != nil {
			m.form.err = err.Error()
			return nil
		}
		m.form = nil
		m.message = ""
		m.keyIndex = 0
	case formCancelled:
		m.form = nil
	}
	return cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	th := newTheme(m.repo.Current().DarkTheme)
	var body string
	if m.form != nil {
		body = m.form.view(th)
	} else {
		body = m.renderGame(th)
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderGame(th theme) string {
	snap := m.machine.Snapshot()
	parts := []string{th.title.Render(title(snap.Config))}
	if grid := renderGrid(snap, th); grid != "" {
		parts = append(parts, grid)
	}
	parts = append(parts, th.status.Render(renderStatus(snap)))
	if snap.Phase == model.PhaseInput {
		parts = append(parts, renderKeyboard(keyboardRows(snap.Config.Mode, snap.Pool), m.keyIndex, th))
	}
	if m.message != "" {
		parts = append(parts, th.err.Render(m.message))
	}
	parts = append(parts, m.help.View(phaseKeys{bindings: m.bindingsFor(snap.Phase)}))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) bindingsFor(phase model.Phase) []key.Binding {
	k := m.keys
	switch phase {
	case model.PhaseMemorize:
		return []key.Binding{k.Start, k.Theme, k.Quit}
	case model.PhaseInput:
		return []key.Binding{k.Enter, k.Next, k.Left, k.Right, k.Backspace, k.Submit}
	case model.PhaseFinished:
		return []key.Binding{k.Start, k.Toggle, k.Settings, k.Theme, k.Quit}
	default:
		return []key.Binding{k.Start, k.Settings, k.Theme, k.Quit}
	}
}

func title(cfg model.TrialConfig) string {
	label := cfg.Mode.String()
	switch cfg.Mode {
	case model.ModeLetters:
		label = cfg.Language
	case model.ModeMixed:
		label = strings.Join(cfg.MixedLanguages, " + ")
	}
	return fmt.Sprintf("%s  %s", settings.FormatTableSize(cfg.Size), label)
}

// renderStatus describes the phase in a single line.
func renderStatus(snap trial.Snapshot) string {
	switch snap.Phase {
	case model.PhaseMemorize:
		if snap.Config.Timed() {
			return fmt.Sprintf("Memorize: %d", snap.Countdown)
		}
		return "Memorize, press space when ready"
	case model.PhaseInput:
		return fmt.Sprintf("Time %s  Cell %d of %d", stats.FormatElapsed(snap.Elapsed), snap.Cursor+1, snap.Total)
	case model.PhaseFinished:
		return fmt.Sprintf("Score %d of %d  Time %s  [v] %s", snap.Score, snap.Total, stats.FormatElapsed(snap.Elapsed), toggleLabel(snap.ShowCorrect))
	default:
		return "Press space to start"
	}
}

func toggleLabel(showCorrect bool) string {
	if showCorrect {
		return "Show your answers"
	}
	return "Show correct answers"
}

func startErrorMessage(err error) string {
	if errors.Is(err, generator.ErrEmptyPool) {
		return "Cannot start: no symbols available, pick at least one alphabet in settings"
	}
	return fmt.Sprintf("Cannot start: %v", err)
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i%n + n) % n
}
