package console

import (
	"github.com/lixenwraith/salvo/render"
)

// draw repaints board, log tail and prompt
func (c *Console) draw() {
	c.screen.Clear()
	width, height := c.screen.Size()

	y := 0
	if c.grid != nil {
		y = 1 + render.Paint(c.screen, marginX, 1, *c.grid) + 1
	}

	// Log fills the rows between board and prompt, newest at the bottom
	promptY := height - 1
	avail := promptY - y
	if avail > 0 {
		start := len(c.lines) - avail
		if start < 0 {
			start = 0
		}
		for _, l := range c.lines[start:] {
			c.drawLine(marginX, y, width, l)
			y++
		}
	}

	if c.prompt != "" && promptY >= 0 {
		x := render.DrawText(c.screen, marginX, promptY, c.prompt, stylePrompt)
		x = render.DrawText(c.screen, x, promptY, string(c.input), styleText)
		c.screen.SetContent(x, promptY, ' ', nil, styleCursor)
	}

	c.screen.Show()
}

func (c *Console) drawLine(x, y, width int, l line) {
	for _, seg := range l {
		if x >= width {
			return
		}
		if seg.cell != nil {
			x = render.PaintCell(c.screen, x, y, *seg.cell)
			continue
		}
		x = render.DrawText(c.screen, x, y, seg.text, seg.style)
	}
}
