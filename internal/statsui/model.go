// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/gridmem/internal/model"
	"github.com/verte-zerg/gridmem/internal/stats"
)

const (
	tabOverview = iota
	tabSymbols
	tabHardest
)

const hardestCount = 10

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	src stats.TrialSource
	cfg model.StatsConfig

	report stats.Report
	errMsg string

	tabs      []string
	activeTab int
	overview  viewport.Model
	hardest   viewport.Model
	symbols   table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a stats UI model.
func NewModel(src stats.TrialSource, cfg model.StatsConfig) *Model {
	m := &Model{
		src:      src,
		cfg:      cfg,
		tabs:     []string{"Overview", "Symbols", "Hardest"},
		overview: viewport.New(0, 0),
		hardest:  viewport.New(0, 0),
		symbols:  table.New(table.WithColumns(symbolColumns()), table.WithStyles(tableStyles())),
	}
	m.filterInputs = []textinput.Model{
		newFilterInput("Size (N): "),
		newFilterInput("Mode: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Window: "),
	}
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l":
			m.moveTab(1)
			return m, nil
		case "/":
			return m, m.startFilter()
		}
		var cmd tea.Cmd
		switch m.activeTab {
		case tabSymbols:
			m.symbols, cmd = m.symbols.Update(msg)
		case tabHardest:
			m.hardest, cmd = m.hardest.Update(msg)
		default:
			m.overview, cmd = m.overview.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderTabs() + "\n" + headerStyle.Render(m.filterSummary())
	var body string
	switch {
	case m.filterMode:
		body = m.renderFilterForm()
	case m.activeTab == tabSymbols:
		body = m.symbols.View()
	case m.activeTab == tabHardest:
		body = m.hardest.View()
	default:
		body = m.overview.View()
	}
	footer := headerStyle.Render("Nav: left/right  Scroll: up/down  Filter: /  Quit: q")
	if m.filterMode {
		footer = headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	if m.errMsg != "" {
		footer += "\n" + errorStyle.Render(m.errMsg)
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) bodyHeight() int {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	return max(1, m.height-tabsHeight-3)
}

func (m *Model) updateLayout() {
	h := m.bodyHeight()
	m.overview.Width, m.overview.Height = m.width, h
	m.hardest.Width, m.hardest.Height = m.width, h
	m.symbols.SetWidth(m.width)
	m.symbols.SetHeight(h)
	for i := range m.filterInputs {
		m.filterInputs[i].Width = max(10, m.width-lipgloss.Width(m.filterInputs[i].Prompt)-2)
	}
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
	if m.activeTab == tabSymbols {
		m.symbols.Focus()
	} else {
		m.symbols.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		style := inactiveNavStyle
		if i == m.activeTab {
			style = activeNavStyle
		}
		parts = append(parts, style.Render(tab))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) filterSummary() string {
	size := "any"
	if m.cfg.Size > 0 {
		size = fmt.Sprintf("%dx%d", m.cfg.Size, m.cfg.Size)
	}
	mode := m.cfg.Mode
	if mode == "" {
		mode = "any"
	}
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	return fmt.Sprintf("Filters: size=%s  mode=%s  since=%s  last=%s  window=%d", size, mode, since, last, m.cfg.Window)
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.src, m.cfg)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.report = report
	m.symbols.SetRows(symbolRows(report.SymbolsWindow))
	m.renderContents()
}

func (m *Model) renderContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(renderOverview(m.report, m.cfg.Window, width))
	m.hardest.SetContent(renderHardest(m.report.SymbolsWindow))
}

func renderOverview(report stats.Report, window, width int) string {
	trials := report.Trials
	if len(trials) == 0 {
		return "No trials found."
	}
	var totalAcc, totalSpeed, best float64
	for _, t := range trials {
		acc, speed := stats.TrialMetrics(t.Correct, t.Total, t.InputMs)
		totalAcc += acc
		totalSpeed += speed
		best = max(best, acc)
	}
	count := float64(len(trials))
	cards := []string{
		metricCard("Trials", strconv.Itoa(len(trials))),
		metricCard("Avg Acc", fmt.Sprintf("%.1f%%", totalAcc/count*100)),
		metricCard("Best Acc", fmt.Sprintf("%.1f%%", best*100)),
		metricCard("Symbols/s", fmt.Sprintf("%.2f", totalSpeed/count)),
	}
	summary := strings.Join(cards, "\n")
	if width >= 60 {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	var buf bytes.Buffer
	if err := stats.RenderCurve(&buf, "Accuracy", stats.AccuracySeries(trials, window), width); err != nil {
		return fmt.Sprintf("Failed to render curve: %v", err)
	}
	return strings.TrimRight(summary+"\n\n"+buf.String(), "\n")
}

func renderHardest(aggs []model.SymbolAggregate) string {
	hardest := stats.HardestSymbols(aggs, hardestCount)
	if len(hardest) == 0 {
		return "No symbol stats found."
	}
	byID := make(map[string]model.SymbolAggregate, len(aggs))
	for _, agg := range aggs {
		byID[agg.Symbol] = agg
	}
	lines := []string{"Hardest symbols (windowed)", ""}
	for i, sym := range hardest {
		agg := byID[sym]
		total := agg.Correct + agg.Incorrect
		lines = append(lines, fmt.Sprintf("%2d. %s  %d of %d recalled", i+1, sym, agg.Correct, total))
	}
	return strings.Join(lines, "\n")
}

func metricCard(label, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

func symbolColumns() []table.Column {
	return []table.Column{
		{Title: "Symbol", Width: 6},
		{Title: "Accuracy", Width: 9},
		{Title: "Correct", Width: 7},
		{Title: "Missed", Width: 7},
		{Title: "Total", Width: 6},
	}
}

func symbolRows(aggs []model.SymbolAggregate) []table.Row {
	rows := make([]table.Row, 0, len(aggs))
	for _, agg := range aggs {
		total := agg.Correct + agg.Incorrect
		acc := 0.0
		if total > 0 {
			acc = float64(agg.Correct) / float64(total) * 100
		}
		rows = append(rows, table.Row{
			agg.Symbol,
			fmt.Sprintf("%.2f%%", acc),
			strconv.Itoa(agg.Correct),
			strconv.Itoa(agg.Incorrect),
			strconv.Itoa(total),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) startFilter() tea.Cmd {
	m.filterMode = true
	m.filterError = ""
	values := []string{"", m.cfg.Mode, "", "", strconv.Itoa(m.cfg.Window)}
	if m.cfg.Size > 0 {
		values[0] = strconv.Itoa(m.cfg.Size)
	}
	if m.cfg.Since != nil {
		values[2] = m.cfg.Since.Format("2006-01-02")
	}
	if m.cfg.Last > 0 {
		values[3] = strconv.Itoa(m.cfg.Last)
	}
	for i, v := range values {
		m.filterInputs[i].SetValue(v)
	}
	return m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		return m, nil
	case tea.KeyEnter:
		cfg, err := parseFilter(m.inputValues())
		if err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.cfg = cfg
		m.filterMode = false
		m.refreshReport()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) inputValues() []string {
	out := make([]string, len(m.filterInputs))
	for i, input := range m.filterInputs {
		out[i] = strings.TrimSpace(input.Value())
	}
	return out
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	m.filterIndex = (idx + count) % count
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filters (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

// parseFilter reads size, mode, since, last and window inputs.
func parseFilter(values []string) (model.StatsConfig, error) {
	var cfg model.StatsConfig
	if values[0] != "" {
		n, err := strconv.Atoi(strings.SplitN(strings.ToLower(values[0]), "x", 2)[0])
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid size (use N or NxN)")
		}
		cfg.Size = n
	}
	if values[1] != "" {
		mode, ok := model.ParseMode(values[1])
		if !ok {
			return cfg, fmt.Errorf("invalid mode (Digits, Letters or MixedAlphabets)")
		}
		cfg.Mode = mode.String()
	}
	if values[2] != "" {
		parsed, err := time.ParseInLocation("2006-01-02", values[2], time.Local)
		if err != nil {
			return cfg, fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		cfg.Since = &parsed
	}
	if values[3] != "" {
		n, err := strconv.Atoi(values[3])
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		cfg.Last = n
	}
	cfg.Window = 1
	if values[4] != "" {
		n, err := strconv.Atoi(values[4])
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid window (use integer >= 1)")
		}
		cfg.Window = n
	}
	return cfg, nil
}
