package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	curveHeight      = 8
	minCurveWidth    = 10
	fallbackTermWide = 80
	curveAxis        = "100% ┤"
)

var curveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// RenderCurve draws a percentage series (0..100) as a braille line chart.
// width is the total output width; 0 uses the terminal width.
func RenderCurve(w io.Writer, title string, values []float64, width int) error {
	if len(values) == 0 {
		return nil
	}
	if width <= 0 {
		width = terminalWidth()
	}
	plotWidth := max(minCurveWidth, width-len([]rune(curveAxis)))
	points := resample(values, plotWidth*2)

	cells := make([][]uint8, curveHeight)
	for y := range cells {
		cells[y] = make([]uint8, plotWidth)
	}
	dotRows := curveHeight * 4
	prevX, prevY := -1, -1
	for x, v := range points {
		y := percentToRow(v, dotRows)
		if prevX >= 0 {
			line(prevX, prevY, x, y, func(px, py int) { setDot(cells, px, py) })
		} else {
			setDot(cells, x, y)
		}
		prevX, prevY = x, y
	}

	colored := shouldColor(w)
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for y, row := range cells {
		label := "     │"
		switch y {
		case 0:
			label = "100% ┤"
		case curveHeight / 2:
			label = " 50% ┤"
		case curveHeight - 1:
			label = "  0% ┤"
		}
		var b strings.Builder
		for _, mask := range row {
			b.WriteRune(rune(0x2800 + int(mask)))
		}
		body := b.String()
		if colored {
			body = curveStyle.Render(body)
		}
		if _, err := fmt.Fprintln(w, label+body); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func percentToRow(v float64, rows int) int {
	v = math.Max(0, math.Min(100, v))
	return int(math.Round((1 - v/100) * float64(rows-1)))
}

// resample stretches or averages values onto n points.
func resample(values []float64, n int) []float64 {
	out := make([]float64, n)
	if len(values) == 1 || n == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	if len(values) > n {
		for i := 0; i < n; i++ {
			start := i * len(values) / n
			end := max(start+1, (i+1)*len(values)/n)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	for i := 0; i < n; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(n-1)
		idx := int(pos)
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// setDot sets one braille dot; each cell is 2 dots wide and 4 tall.
func setDot(cells [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if x < 0 || y < 0 || cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	masks := [2][4]uint8{{0x01, 0x02, 0x04, 0x40}, {0x08, 0x10, 0x20, 0x80}}
	cells[cy][cx] |= masks[x%2][y%4]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWide
	}
	return width
}

func shouldColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
