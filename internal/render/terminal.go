// Package render draws the watch face: color helpers and a terminal
// rasterizer for scene documents.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/jwulff/neatface-go/internal/domain"
	"github.com/jwulff/neatface-go/internal/scene"
)

// Pixels covered by one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Line glyphs.
const (
	GlyphHorizontal = '━'
	GlyphVertical   = '┃'
	GlyphDiagonal   = '•'
)

// widths measures glyphs with ambiguous-width runes (box drawing) as narrow,
// whatever the terminal locale.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// continuation marks the cell covered by the right half of a wide glyph.
const continuation rune = 0

// Cell is one character position of the canvas.
type Cell struct {
	Rune rune
	FG   domain.RGB
	BG   domain.RGB
}

// Canvas is a grid of cells rasterized from a document.
type Canvas struct {
	Cols  int
	Rows  int
	cells []Cell
}

// NewCanvas creates a blank canvas (spaces, white on black).
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, cells: make([]Cell, cols*rows)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: Palette["white"], BG: Palette["black"]}
	}
	return c
}

// Cell returns the cell at the position, or nil if out of bounds.
func (c *Canvas) Cell(col, row int) *Cell {
	if col < 0 || col >= c.Cols || row < 0 || row >= c.Rows {
		return nil
	}
	return &c.cells[row*c.Cols+col]
}

// Rasterize paints every visible element of the document in order.
func Rasterize(doc *scene.Document) *Canvas {
	canvas := NewCanvas(doc.Width/CellWidth, doc.Height/CellHeight)
	for _, e := range doc.Elements() {
		if !e.Visible() {
			continue
		}
		color, ok := ResolveColor(e.Style.Fill)
		if !ok {
			color = Palette["white"]
		}
		switch e.Kind {
		case scene.KindRect:
			canvas.fillRect(e, color)
		case scene.KindText:
			canvas.drawText(e, color)
		case scene.KindLine:
			canvas.drawLine(e, color)
		}
	}
	return canvas
}

func (c *Canvas) fillRect(e *scene.Element, color domain.RGB) {
	x0, y0 := e.X/CellWidth, e.Y/CellHeight
	x1, y1 := (e.X+e.Width)/CellWidth, (e.Y+e.Height)/CellHeight
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			if cell := c.Cell(col, row); cell != nil {
				cell.BG = blend(color, cell.BG, e.Style.Opacity)
			}
		}
	}
}

// drawText lays text out by display width, so wide glyphs take two cells.
func (c *Canvas) drawText(e *scene.Element, color domain.RGB) {
	width := widths.StringWidth(e.Text)
	col := e.X / CellWidth
	switch e.Anchor {
	case scene.AnchorMiddle:
		col -= width / 2
	case scene.AnchorEnd:
		col -= width
	}
	row := e.Y / CellHeight
	for _, r := range e.Text {
		w := widths.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.plot(col, row, r, color, e.Style.Opacity)
		col += w
	}
}

// drawLine walks the cells between the endpoints using Bresenham's algorithm.
// Zero-length lines paint nothing.
func (c *Canvas) drawLine(e *scene.Element, color domain.RGB) {
	if e.X1 == e.X2 && e.Y1 == e.Y2 {
		return
	}
	glyph := GlyphDiagonal
	switch {
	case e.Y1 == e.Y2:
		glyph = GlyphHorizontal
	case e.X1 == e.X2:
		glyph = GlyphVertical
	}

	x0, y0 := e.X1/CellWidth, e.Y1/CellHeight
	x1, y1 := e.X2/CellWidth, e.Y2/CellHeight
	if glyph == GlyphHorizontal && x1 > x0 {
		// The end coordinate is exclusive, matching pixel extents.
		x1 = (e.X2 - 1) / CellWidth
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.plot(x0, y0, glyph, color, e.Style.Opacity)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// plot writes one glyph. A wide glyph also claims the next cell and is
// dropped when that cell is off the canvas.
func (c *Canvas) plot(col, row int, r rune, color domain.RGB, opacity float64) {
	cell := c.Cell(col, row)
	if cell == nil {
		return
	}
	wide := widths.RuneWidth(r) == 2
	var next *Cell
	if wide {
		if next = c.Cell(col+1, row); next == nil {
			return
		}
	}

	c.release(col, row)
	cell.Rune = r
	cell.FG = blend(color, cell.BG, opacity)
	if wide {
		c.release(col+1, row)
		next.Rune = continuation
		next.FG = cell.FG
	}
}

// release blanks the other half of a wide glyph overlapping the cell.
func (c *Canvas) release(col, row int) {
	cell := c.Cell(col, row)
	switch {
	case cell.Rune == continuation:
		if prev := c.Cell(col-1, row); prev != nil {
			prev.Rune = ' '
		}
	case widths.RuneWidth(cell.Rune) == 2:
		if next := c.Cell(col+1, row); next != nil && next.Rune == continuation {
			next.Rune = ' '
		}
	}
}

// blend composites fg over bg at the given opacity.
func blend(fg, bg domain.RGB, opacity float64) domain.RGB {
	if opacity >= 1 {
		return fg
	}
	if opacity <= 0 {
		return bg
	}
	r, g, b := toColorful(bg).BlendRgb(toColorful(fg), opacity).Clamped().RGB255()
	return domain.NewRGB(r, g, b)
}

func toColorful(c domain.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// PlainText returns the canvas characters without styling, right-trimmed.
func (c *Canvas) PlainText() string {
	lines := make([]string, c.Rows)
	for row := 0; row < c.Rows; row++ {
		var sb strings.Builder
		for col := 0; col < c.Cols; col++ {
			if r := c.Cell(col, row).Rune; r != continuation {
				sb.WriteRune(r)
			}
		}
		lines[row] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the canvas as terminal text, one lipgloss style per run of
// equally colored cells.
func (c *Canvas) Render() string {
	lines := make([]string, c.Rows)
	for row := 0; row < c.Rows; row++ {
		var sb strings.Builder
		start := 0
		for col := 1; col <= c.Cols; col++ {
			if col < c.Cols && (c.Cell(col, row).Rune == continuation || sameStyle(c.Cell(col, row), c.Cell(start, row))) {
				continue
			}
			sb.WriteString(c.renderRun(row, start, col))
			start = col
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) renderRun(row, from, to int) string {
	var text strings.Builder
	for col := from; col < to; col++ {
		if r := c.Cell(col, row).Rune; r != continuation {
			text.WriteRune(r)
		}
	}
	first := c.Cell(from, row)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(first.FG.Hex())).
		Background(lipgloss.Color(first.BG.Hex())).
		Render(text.String())
}

func sameStyle(a, b *Cell) bool {
	return a.FG.Equals(b.FG) && a.BG.Equals(b.BG)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Render rasterizes the document and returns styled terminal text.
func Render(doc *scene.Document) string {
	return Rasterize(doc).Render()
}
