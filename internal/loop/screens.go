package loop

import (
	"fmt"
	"io"

	"github.com/spacerocks/spacerocks/internal/draw"
	"github.com/spacerocks/spacerocks/internal/object"
)

// startGame resets the world for a fresh run: clear the field, spawn the
// wave spawner and a centered ship, and enter Playing.
func startGame(w *World) {
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	w.Objects = w.Objects[:0]
	w.toSpawn = w.toSpawn[:0]
	w.Score = 0
	w.Events.Reset()

	w.waves = object.NewWaveSpawner(InitialWaveSize, MaxWaveSize, SafeSpawnDistance)
	w.AddObject(w.waves)

	ship := object.NewShip(float64(WorldWidth)/2, float64(WorldHeight)/2)
	w.Ship = ship
	w.AddObject(ship)

	w.State = StatePlaying
	w.RestartTimer = 0
}

// drawUI draws the HUD and any state overlay on top of the rendered canvas.
// Positions are shifted by the canvas offsets so text stays inside a
// centered render area. Write errors surface so the loop can count them.
func drawUI(w *World, out io.Writer, canvas *draw.Canvas) error {
	termWidth := canvas.TerminalWidth()
	centerX := canvas.OffsetCol() + termWidth/2
	centerY := canvas.OffsetRow() + canvas.TerminalHeight()/2

	if err := drawHUD(w, out, canvas); err != nil {
		return err
	}

	switch w.State {
	case StatePaused:
		return drawPausedOverlay(out, centerX, centerY)
	case StateGameOver:
		return drawGameOverOverlay(w, out, centerX, centerY)
	}
	return nil
}

// drawHUD shows score and wave in the top corners of the render area.
func drawHUD(w *World, out io.Writer, canvas *draw.Canvas) error {
	left := canvas.OffsetCol() + 2
	top := canvas.OffsetRow() + 1

	score := object.Text{X: left, Y: top, Value: fmt.Sprintf("Score: %d", w.Score)}
	if err := score.Draw(out); err != nil {
		return err
	}

	if w.waves != nil {
		wave := fmt.Sprintf("Wave: %d", w.waves.Wave())
		return object.Text{X: canvas.OffsetCol() + canvas.TerminalWidth() - len(wave) - 1, Y: top, Value: wave}.Draw(out)
	}
	return nil
}

func drawPausedOverlay(out io.Writer, centerX, centerY int) error {
	if err := centered(out, centerX, centerY, "P A U S E D"); err != nil {
		return err
	}
	return centered(out, centerX, centerY+2, "Press P to resume")
}

func drawGameOverOverlay(w *World, out io.Writer, centerX, centerY int) error {
	if err := centered(out, centerX, centerY-2, "GAME OVER"); err != nil {
		return err
	}
	if err := centered(out, centerX, centerY, fmt.Sprintf("Score: %d", w.Score)); err != nil {
		return err
	}

	secs := int(w.RestartTimer + 0.999)
	if secs < 0 {
		secs = 0
	}
	return centered(out, centerX, centerY+2, fmt.Sprintf("Press R to restart (auto in %ds)", secs))
}

func centered(out io.Writer, centerX, y int, value string) error {
	return object.Text{X: centerX - len(value)/2, Y: y, Value: value}.Draw(out)
}
