package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size cell grid composed line by line. Blocks are
// overlaid at absolute positions, later blocks painting over earlier
// ones.
type canvas struct {
	width  int
	height int
	lines  []string
}

func newCanvas(width, height int) *canvas {
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{width: width, height: height, lines: lines}
}

// overlay paints a multi-line block with its top-left at (x, y). Lines
// falling outside the canvas are clipped. Styled content is spliced
// with ANSI-aware cuts so escape sequences in the underlying line stay
// balanced.
func (c *canvas) overlay(block string, x, y int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height || x < 0 || x >= c.width {
			continue
		}

		w := ansi.StringWidth(line)
		if x+w > c.width {
			line = ansi.Truncate(line, c.width-x, "")
			w = c.width - x
		}

		left := ansi.Truncate(c.lines[row], x, "")
		right := ansi.TruncateLeft(c.lines[row], x+w, "")
		c.lines[row] = left + line + right
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
