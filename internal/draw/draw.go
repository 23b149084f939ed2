// Package draw renders game shapes to a terminal using ANSI escapes and
// half-block characters for doubled vertical resolution.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point is a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) error {
	_, err := fmt.Fprint(w, "\033[H\033[2J")
	return err
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) error {
	_, err := fmt.Fprint(w, "\033[?25l")
	return err
}

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) error {
	_, err := fmt.Fprint(w, "\033[?25h")
	return err
}

// MoveCursor positions the cursor at a 1-based terminal coordinate.
func MoveCursor(w io.Writer, x, y int) error {
	_, err := fmt.Fprintf(w, "\033[%d;%dH", y, x)
	return err
}

// TermSizeFunc reports current terminal dimensions. Abstracted so SSH
// sessions can track window-change events instead of querying a local fd.
type TermSizeFunc func() (width, height int, err error)

// StdoutTermSize is the TermSizeFunc for a local terminal.
var StdoutTermSize TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
