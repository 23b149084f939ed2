package draw

import (
	"errors"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write: broken pipe")
}

func TestCanvasSetFloatScales(t *testing.T) {
	// 10x5 terminal, logical 20x20: scaleX=0.5, scaleY=0.5
	c := NewCanvas(10, 5, 20, 20)
	c.SetFloat(10, 10) // pixel (5,5)

	var out strings.Builder
	c.Render(&out)
	// Pixel row 5 is the lower half of terminal row 3
	if !strings.Contains(out.String(), "\033[3;6H▄") {
		t.Errorf("render output %q missing lower half block at row 3 col 6", out.String())
	}
}

func TestCanvasFullBlockWhenBothHalvesSet(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	c.SetFloat(1, 2)
	c.SetFloat(1, 3)

	var out strings.Builder
	c.Render(&out)
	if !strings.Contains(out.String(), string(BlockFull)) {
		t.Errorf("expected a full block when both sub-pixels are set, got %q", out.String())
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	c.SetFloat(1, 1)
	c.Clear()

	var out strings.Builder
	c.Render(&out)
	if out.Len() != 0 {
		t.Errorf("render after Clear produced output %q", out.String())
	}
}

func TestCanvasDrawPolygonFill(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	square := []Point{{X: 4, Y: 4}, {X: 16, Y: 4}, {X: 16, Y: 16}, {X: 4, Y: 16}}
	c.DrawPolygon(square, true)

	var out strings.Builder
	c.Render(&out)
	// A filled 12x12 logical square renders plenty of full blocks
	if strings.Count(out.String(), string(BlockFull)) < 10 {
		t.Errorf("filled polygon rendered too few full blocks: %q", out.String())
	}
}

func TestCanvasResizeKeepsLogicalSpace(t *testing.T) {
	c := NewCanvas(10, 5, 20, 20)
	c.Resize(40, 20)

	if c.TerminalWidth() != 40 || c.TerminalHeight() != 20 {
		t.Fatalf("dimensions after resize = %dx%d, want 40x20", c.TerminalWidth(), c.TerminalHeight())
	}

	// Same logical point, larger terminal: pixel position scales up
	c.SetFloat(10, 10)
	var out strings.Builder
	c.Render(&out)
	if !strings.Contains(out.String(), "\033[11;21H") {
		t.Errorf("render output %q missing scaled pixel at row 11 col 21", out.String())
	}
}

func TestCanvasOffsetsApplyToRender(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	c.SetOffset(10, 5)
	c.SetFloat(0, 0)

	var out strings.Builder
	c.Render(&out)
	if !strings.Contains(out.String(), "\033[6;11H") {
		t.Errorf("render output %q missing offset cursor move", out.String())
	}
}

// A canvas writing to a closed terminal must report it instead of
// swallowing the error; the game loop uses this to end dead sessions.
func TestCanvasRenderReportsWriteError(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	c.SetFloat(1, 1)

	if err := c.Render(failingWriter{}); err == nil {
		t.Error("Render on a failing writer returned nil")
	}

	var out strings.Builder
	c2 := NewCanvas(4, 4, 4, 8)
	c2.SetFloat(1, 1)
	if err := c2.Render(&out); err != nil {
		t.Errorf("Render on a working writer: %v", err)
	}
}

func TestCanvasRenderBorderReportsWriteError(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	c.SetOffset(3, 2) // Border has something to draw

	if err := c.RenderBorder(failingWriter{}); err == nil {
		t.Error("RenderBorder on a failing writer returned nil")
	}
	if err := c.RenderBorder(&strings.Builder{}); err != nil {
		t.Errorf("RenderBorder on a working writer: %v", err)
	}
}

func TestBorrowPointsReuse(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	a := c.BorrowPoints(8)
	if len(a) != 8 {
		t.Fatalf("len = %d, want 8", len(a))
	}
	b := c.BorrowPoints(4)
	if len(b) != 4 {
		t.Fatalf("len = %d, want 4", len(b))
	}
	if &a[0] != &b[0] {
		t.Error("expected BorrowPoints to reuse the backing array")
	}
}
