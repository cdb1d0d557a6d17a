package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid. Each cell carries the colour of the last
// pen that touched it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string

	pen    string
	styles map[string]lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
		styles: make(map[string]lipgloss.Style),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// PixelWidth and PixelHeight are the canvas size in sub-pixels.
func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// SetPen selects the colour for subsequent drawing. Empty means the
// terminal default.
func (c *Canvas) SetPen(color string) { c.pen = color }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = c.pen
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// Resize reallocates the grid when the size changes.
func (c *Canvas) Resize(w, h int) {
	if w == c.Width && h == c.Height {
		return
	}
	styles := c.styles
	*c = *NewCanvas(w, h)
	c.styles = styles
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills every sub-pixel whose centre lies inside the circle. A
// circle smaller than one sub-pixel still sets the pixel under its centre.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	if r < 0.75 {
		c.Set(int(math.Floor(cx)), int(math.Floor(cy)))
		return
	}
	x0, x1, ok := c.span(cx, r, c.PixelWidth())
	if !ok {
		return
	}
	y0, y1, ok := c.span(cy, r, c.PixelHeight())
	if !ok {
		return
	}
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.Set(x, y)
			}
		}
	}
}

// StrokeCircle draws a one sub-pixel ring.
func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	if r < 1 {
		c.FillCircle(cx, cy, r)
		return
	}
	// about one sample per sub-pixel of circumference, capped so huge zooms
	// stay cheap
	n := int(math.Min(2*math.Pi*r, 4096))
	if n < 8 {
		n = 8
	}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		c.Set(int(math.Floor(cx+r*math.Cos(a))), int(math.Floor(cy+r*math.Sin(a))))
	}
}

// span clips [center-r, center+r] to [0, limit).
func (c *Canvas) span(center, r float64, limit int) (int, int, bool) {
	lo := int(math.Floor(center - r))
	hi := int(math.Ceil(center + r))
	if hi < 0 || lo >= limit {
		return 0, 0, false
	}
	return max(lo, 0), min(hi, limit-1), true
}

// String renders the grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the grid, grouping runs of equally coloured cells into one
// styled span.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		colors := c.Colors[i]
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && colors[j] == colors[start] {
				continue
			}
			b.WriteString(c.paint(colors[start], string(row[start:j])))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) paint(color, s string) string {
	if color == "" {
		return s
	}
	st, ok := c.styles[color]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		c.styles[color] = st
	}
	return st.Render(s)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
