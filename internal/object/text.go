package object

import (
	"fmt"
	"io"
)

// Text is a drawable text overlay at a 1-based terminal position.
type Text struct {
	X     int
	Y     int
	Value string
}

// Draw writes the text using ANSI cursor positioning.
func (t Text) Draw(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	x := t.X
	y := t.Y
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	_, err := fmt.Fprintf(w, "\033[%d;%dH%s", y, x, t.Value)
	return err
}
