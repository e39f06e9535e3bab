// Package terminal runs a loom application in a terminal with bubbletea.
// One layout unit is one character cell.
package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/loom/pkg/graphics"
)

// Measurer measures text in character cells.
type Measurer struct{}

// Measure returns the cell width and line count of text.
func (Measurer) Measure(text string) graphics.Size {
	return graphics.Size{
		Width:  float64(lipgloss.Width(text)),
		Height: float64(lipgloss.Height(text)),
	}
}

type cell struct {
	r      rune
	fg, bg graphics.Color
}

// Canvas is a grid of character cells implementing graphics.Canvas.
type Canvas struct {
	width, height int
	cells         []cell
}

// NewCanvas returns a blank canvas of the given size in cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.cells = make([]cell, c.width*c.height)
	c.Clear()
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// span converts a rect to the half-open cell range it covers.
func span(r graphics.Rect) (x0, y0, x1, y1 int) {
	return int(math.Floor(r.Left)), int(math.Floor(r.Top)), int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom))
}

func (c *Canvas) FillRect(r graphics.Rect, color graphics.Color) {
	x0, y0, x1, y1 := span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if p := c.at(x, y); p != nil {
				*p = cell{r: ' ', bg: color}
			}
		}
	}
}

func (c *Canvas) put(x, y int, r rune, fg graphics.Color) {
	if p := c.at(x, y); p != nil {
		p.r = r
		p.fg = fg
	}
}

// StrokeRect draws a single-line box on the outermost cells of r. The
// stroke width is ignored.
func (c *Canvas) StrokeRect(r graphics.Rect, color graphics.Color, _ float64) {
	x0, y0, x1, y1 := span(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0; x < x1; x++ {
		c.put(x, y0, '─', color)
		c.put(x, y1-1, '─', color)
	}
	for y := y0; y < y1; y++ {
		c.put(x0, y, '│', color)
		c.put(x1-1, y, '│', color)
	}
	c.put(x0, y0, '┌', color)
	c.put(x1-1, y0, '┐', color)
	c.put(x0, y1-1, '└', color)
	c.put(x1-1, y1-1, '┘', color)
}

// DrawText writes text starting at the cell containing at. Wide runes
// take two cells.
func (c *Canvas) DrawText(text string, at graphics.Point, color graphics.Color) {
	x, y := int(math.Floor(at.X)), int(math.Floor(at.Y))
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if w == 0 {
			continue
		}
		c.put(x, y, r, color)
		for i := 1; i < w; i++ {
			c.put(x+i, y, 0, color)
		}
		x += w
	}
}

// Plain returns the grid as text without styles, one line per row with
// trailing spaces removed.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := range c.height {
		var b strings.Builder
		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			if cl.r != 0 {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func style(fg, bg graphics.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg.Alpha() > 0 {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Alpha() > 0 {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	return s
}

// Render returns the grid with colors applied, grouping runs of cells that
// share a style.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := range c.height {
		var line, run strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]
		for i, cl := range row {
			if cl.r != 0 {
				run.WriteRune(cl.r)
			}
			last := i == len(row)-1
			if last || row[i+1].fg != cl.fg || row[i+1].bg != cl.bg {
				line.WriteString(style(cl.fg, cl.bg).Render(run.String()))
				run.Reset()
			}
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
