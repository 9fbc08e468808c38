package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/gridmem/internal/alphabet"
	"github.com/verte-zerg/gridmem/internal/model"
	"github.com/verte-zerg/gridmem/internal/settings"
)

const (
	fieldSize = iota
	fieldMode
	fieldLanguage
	fieldMixed
	fieldMemorize
	fieldNoTimer
	fieldVibration
	fieldDarkTheme
	fieldCount
)

const maxMemorizeSeconds = 60

var fieldLabels = [fieldCount]string{
	"Table size",
	"Mode",
	"Language",
	"Mixed alphabets",
	"Memorize seconds",
	"No timer",
	"Vibration",
	"Dark theme",
}

type formResult int

const (
	formEditing formResult = iota
	formSaved
	formCancelled
)

// settingsForm edits a draft copy of the settings.
type settingsForm struct {
	draft     model.Settings
	catalog   *alphabet.Catalog
	languages []string
	index     int
	mixed     textinput.Model
	err       string
}

func newSettingsForm(s model.Settings, catalog *alphabet.Catalog) *settingsForm {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Thai, Lao"
	input.Cursor.SetMode(cursor.CursorStatic)
	input.SetValue(strings.Join(s.MixedAlphabets, ", "))
	return &settingsForm{
		draft:     s,
		catalog:   catalog,
		languages: catalog.Identifiers(),
		mixed:     input,
	}
}

func (f *settingsForm) update(msg tea.KeyMsg) (formResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancelled, nil
	case "enter":
		if err := f.commit(); err != nil {
			f.err = err.Error()
			return formEditing, nil
		}
		return formSaved, nil
	case "up", "shift+tab":
		return formEditing, f.focus(f.index - 1)
	case "down", "tab":
		return formEditing, f.focus(f.index + 1)
	}
	if f.index == fieldMixed {
		var cmd tea.Cmd
		f.mixed, cmd = f.mixed.Update(msg)
		return formEditing, cmd
	}
	switch msg.String() {
	case "left", "h", "-":
		f.step(-1)
	case "right", "l", "+", "=", " ":
		f.step(1)
	}
	return formEditing, nil
}

func (f *settingsForm) focus(idx int) tea.Cmd {
	f.index = (idx + fieldCount) % fieldCount
	if f.index == fieldMixed {
		return f.mixed.Focus()
	}
	f.mixed.Blur()
	return nil
}

func (f *settingsForm) step(delta int) {
	f.err = ""
	switch f.index {
	case fieldSize:
		f.draft.TableSize = clamp(f.draft.TableSize+delta, settings.MinTableSize, settings.MaxTableSize)
	case fieldMode:
		modes := model.Modes()
		f.draft.Mode = modes[(indexOfMode(modes, f.draft.Mode)+delta+len(modes))%len(modes)]
	case fieldLanguage:
		if len(f.languages) == 0 {
			return
		}
		pos := 0
		for i, id := range f.languages {
			if strings.EqualFold(id, f.draft.Language) {
				pos = i
			}
		}
		f.draft.Language = f.languages[(pos+delta+len(f.languages))%len(f.languages)]
	case fieldMemorize:
		f.draft.MemorizeSeconds = clamp(f.draft.MemorizeSeconds+delta, 1, maxMemorizeSeconds)
	case fieldNoTimer:
		f.draft.NoTimer = !f.draft.NoTimer
	case fieldVibration:
		f.draft.Vibration = !f.draft.Vibration
	case fieldDarkTheme:
		f.draft.DarkTheme = !f.draft.DarkTheme
	}
}

// commit validates the mixed alphabet list into the draft.
func (f *settingsForm) commit() error {
	var mixed []string
	seen := map[string]bool{}
	for _, part := range strings.Split(f.mixed.Value(), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !f.catalog.Has(part) {
			return fmt.Errorf("unknown alphabet %q", part)
		}
		id := f.catalog.Canonical(part)
		if !seen[id] {
			seen[id] = true
			mixed = append(mixed, id)
		}
	}
	f.draft.MixedAlphabets = mixed
	return nil
}

func (f *settingsForm) view(th theme) string {
	lines := []string{th.title.Render("Settings"), ""}
	for i := 0; i < fieldCount; i++ {
		marker := "  "
		label := th.muted
		if i == f.index {
			marker = "> "
			label = th.status.Bold(true)
		}
		lines = append(lines, marker+label.Render(fmt.Sprintf("%-17s", fieldLabels[i]))+" "+f.value(i))
	}
	lines = append(lines, "", th.muted.Render("up/down: field  left/right: change  enter: save  esc: cancel"))
	if f.err != "" {
		lines = append(lines, th.err.Render(f.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (f *settingsForm) value(i int) string {
	switch i {
	case fieldSize:
		return settings.FormatTableSize(f.draft.TableSize)
	case fieldMode:
		return f.draft.Mode.String()
	case fieldLanguage:
		return f.draft.Language
	case fieldMixed:
		return f.mixed.View()
	case fieldMemorize:
		return strconv.Itoa(f.draft.MemorizeSeconds)
	case fieldNoTimer:
		return onOff(f.draft.NoTimer)
	case fieldVibration:
		return onOff(f.draft.Vibration)
	case fieldDarkTheme:
		return onOff(f.draft.DarkTheme)
	}
	return ""
}

func indexOfMode(modes []model.Mode, m model.Mode) int {
	for i, mode := range modes {
		if mode == m {
			return i
		}
	}
	return 0
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
