package viz

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/storycards/internal/dynamo"
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

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string

	logicalW, logicalH float64
	scale              float64
}

// NewCanvas creates a canvas of w x h cells at one dot per logical pixel.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{scale: 1}
	c.alloc(w, h)
	c.logicalW, c.logicalH = float64(w*2), float64(h*4)
	return c
}

func (c *Canvas) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]string, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Resize sets the logical size; the backing store holds
// floor(w*scale) x floor(h*scale) dots.
func (c *Canvas) Resize(w, h, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.logicalW, c.logicalH, c.scale = w, h, scale
	dotsW := int(math.Floor(w * scale))
	dotsH := int(math.Floor(h * scale))
	c.alloc((dotsW+1)/2, (dotsH+3)/4)
}

// Size returns the logical size.
func (c *Canvas) Size() (float64, float64) { return c.logicalW, c.logicalH }

// Scale returns the number of dots per logical pixel.
func (c *Canvas) Scale() float64 { return c.scale }

// Set sets a dot at (x, y) in dot coordinates.
// The canvas size in dots is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.setColored(x, y, "")
}

func (c *Canvas) setColored(x, y int, hex string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if hex != "" {
		c.Colors[row][col] = hex
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// Empty reports whether no dot is set.
func (c *Canvas) Empty() bool {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != blank {
				return false
			}
		}
	}
	return true
}

// FillSquare rasterizes a rotated square given in logical coordinates. A
// dot is set when its center falls inside the square; squares smaller than
// a dot still set the dot under their center.
func (c *Canvas) FillSquare(x, y, half, rot float64, fill color.Color) {
	hex := hexOf(fill)
	cx, cy, hs := x*c.scale, y*c.scale, half*c.scale
	c.setColored(int(math.Floor(cx)), int(math.Floor(cy)), hex)

	sin, cos := dynamo.FastSinCos(rot)
	bound := hs * math.Sqrt2
	for py := int(math.Floor(cy - bound)); py <= int(math.Ceil(cy+bound)); py++ {
		for px := int(math.Floor(cx - bound)); px <= int(math.Ceil(cx+bound)); px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			u := dx*cos + dy*sin
			v := -dx*sin + dy*cos
			if math.Abs(u) <= hs && math.Abs(v) <= hs {
				c.setColored(px, py, hex)
			}
		}
	}
}

// String renders the canvas with one foreground color per cell.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for start < len(row) {
			end := start + 1
			for end < len(row) && c.Colors[i][end] == c.Colors[i][start] {
				end++
			}
			run := string(row[start:end])
			if hex := c.Colors[i][start]; hex != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(run)
			}
			b.WriteString(run)
			start = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hexOf(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
