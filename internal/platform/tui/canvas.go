package tui

import (
	"strings"
	"unicode/utf8"
)

// Color is a foreground color for a canvas cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorCyan
	ColorMagenta
	ColorBrown
	ColorGray
	ColorBrightWhite
)

// Cell is one character on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D colored character buffer. The garden scene is drawn into it
// and RenderCanvas turns it into styled terminal output.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize reallocates the canvas. Content is discarded since every frame is
// redrawn from scratch.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([][]Cell, height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, width)
	}
	c.Clear()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the position, or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes text starting at (x, y), clipped at the edges.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered writes text centered horizontally on row y.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	c.DrawText((c.width-utf8.RuneCountInString(text))/2, y, text, color)
}

// DrawHLine draws a horizontal run of r.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := range length {
		c.Set(x+i, y, r, color)
	}
}

// DrawBar draws a fill bar of the given width for a 0..1 fraction.
func (c *Canvas) DrawBar(x, y, width int, fraction float64, color Color) {
	filled := int(fraction*float64(width) + 0.5)
	for i := range width {
		if i < filled {
			c.Set(x+i, y, '█', color)
		} else {
			c.Set(x+i, y, '░', ColorGray)
		}
	}
}

// Row returns the runes of row y without colors.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the canvas without colors, one line per row.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := range c.height {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}
