package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/gridmem/internal/model"
	"github.com/verte-zerg/gridmem/internal/trial"
)

const lettersPerRow = 6

// keyboardRows lays out the on-screen keyboard for the current pool.
func keyboardRows(mode model.Mode, pool []string) [][]string {
	if len(pool) == 0 {
		return nil
	}
	perRow := lettersPerRow
	if mode == model.ModeDigits {
		perRow = 3
	}
	var rows [][]string
	for start := 0; start < len(pool); start += perRow {
		end := min(start+perRow, len(pool))
		rows = append(rows, pool[start:end])
	}
	return rows
}

// cellWidth is the display width every grid cell is padded to.
func cellWidth(symbols []string) int {
	w := 1
	for _, s := range symbols {
		w = max(w, runewidth.StringWidth(s))
	}
	return w
}

func padCenter(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}

// renderGrid draws the visible cells of snap as a bordered square table.
func renderGrid(snap trial.Snapshot, th theme) string {
	size := snap.Config.Size
	cells := snap.Visible()
	if size <= 0 || len(cells) != size*size {
		return ""
	}
	width := cellWidth(append(append([]string{}, snap.Pool...), cells...))
	rows := make([]string, 0, size)
	for r := 0; r < size; r++ {
		parts := make([]string, 0, size)
		for c := 0; c < size; c++ {
			i := r*size + c
			text := cells[i]
			if text == "" {
				text = "·"
			}
			parts = append(parts, cellStyle(snap, i, th).Render(padCenter(text, width)))
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(th.border).Padding(0, 1)
	return box.Render(strings.Join(rows, "\n"))
}

func cellStyle(snap trial.Snapshot, i int, th theme) lipgloss.Style {
	switch snap.Phase {
	case model.PhaseInput:
		if i == snap.Cursor {
			return th.cursor
		}
	case model.PhaseFinished:
		if snap.CellCorrect(i) {
			return th.correct
		}
		return th.incorrect
	}
	return th.cell
}

// renderKeyboard draws the keyboard rows with the highlighted key at active.
func renderKeyboard(rows [][]string, active int, th theme) string {
	width := 1
	for _, row := range rows {
		width = max(width, cellWidth(row))
	}
	lines := make([]string, 0, len(rows))
	idx := 0
	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for _, sym := range row {
			style := th.key
			if idx == active {
				style = th.keyActive
			}
			keys = append(keys, style.Render(padCenter(sym, width)))
			idx++
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// matchSymbol resolves typed text to a pool symbol, ignoring case.
func matchSymbol(pool []string, typed string) (string, bool) {
	for _, s := range pool {
		if s == typed {
			return s, true
		}
	}
	for _, s := range pool {
		if strings.EqualFold(s, typed) {
			return s, true
		}
	}
	return "", false
}
