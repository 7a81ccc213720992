package console

import (
	"github.com/gdamore/tcell/v2"
)

// readKey blocks until a printable key arrives.
// Resizes redraw; Esc and Ctrl-C abort.
func (c *Console) readKey() (rune, error) {
	c.draw()
	for {
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return 0, ErrInterrupted
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, ErrInterrupted
			case tcell.KeyRune:
				return ev.Rune(), nil
			}
		}
	}
}

// readLine edits c.input until Enter
func (c *Console) readLine() (string, error) {
	c.input = c.input[:0]
	c.draw()

	for {
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return "", ErrInterrupted
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrInterrupted
			case tcell.KeyEnter:
				return string(c.input), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(c.input) > 0 {
					c.input = c.input[:len(c.input)-1]
				}
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
			}
		}
		c.draw()
	}
}
