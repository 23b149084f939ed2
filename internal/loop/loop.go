// Package loop runs the game: the frame cycle, the state machine, and
// collision resolution.
package loop

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spacerocks/spacerocks/internal/audio"
	"github.com/spacerocks/spacerocks/internal/draw"
	"github.com/spacerocks/spacerocks/internal/input"
	"github.com/spacerocks/spacerocks/internal/object"
)

// maxFrameErrors aborts the session when this many frames fail in a row,
// which usually means the terminal is gone.
const maxFrameErrors = 120

// Options configures a game session.
type Options struct {
	Source   input.Source      // Required: per-frame intent source
	Sink     audio.Sink        // Playback sink; nil plays nothing
	Bank     *audio.Bank       // Pre-generated effects; nil disables audio
	TermSize draw.TermSizeFunc // Terminal dimensions; nil uses stdout
	Logger   *log.Logger       // nil uses the default logger
	Rand     *rand.Rand        // Gameplay randomness; nil seeds from time
}

// Run drives the input → update → collide → audio → render cycle at a
// fixed frame rate until the player quits. Frame failures are logged and
// the loop continues; only a dead terminal ends the session with an error.
func Run(out io.Writer, opts Options) error {
	if opts.Source == nil {
		return errors.New("loop: input source required")
	}
	if opts.Sink == nil {
		opts.Sink = audio.NopSink{}
	}
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutTermSize
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := NewWorld(opts.Rand)
	startGame(w)

	draw.HideCursor(out)
	defer draw.ShowCursor(out)
	draw.ClearScreen(out)

	termW, termH, err := opts.TermSize()
	if err != nil {
		opts.Logger.Warn("terminal size unavailable, using fallback", "err", err)
		termW, termH = 80, 24
	}
	renderW, renderH, offsetCol, offsetRow := clampTermSize(termW, termH)
	canvas := draw.NewCanvas(renderW, renderH, WorldWidth, WorldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	var thrustCooldown float64
	frameErrors := 0
	lastTime := time.Now()

	for w.Running {
		frameStart := time.Now()
		w.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		w.Input = opts.Source.Poll()
		if w.Input.Quit {
			w.Running = false
			continue
		}

		if tw, th, sizeErr := opts.TermSize(); sizeErr == nil {
			rw, rh, oc, or := clampTermSize(tw, th)
			canvas.Resize(rw, rh)
			canvas.SetOffset(oc, or)
		}

		w.Events.Reset()
		if err := step(w); err != nil {
			opts.Logger.Error("frame update failed", "state", w.State, "err", err)
			frameErrors++
		} else {
			thrustCooldown -= w.Delta.Seconds()
			playEffects(w, opts.Sink, opts.Bank, &thrustCooldown)

			if err := drawFrame(w, out, canvas); err != nil {
				opts.Logger.Error("frame render failed", "err", err)
				frameErrors++
			} else {
				frameErrors = 0
			}
		}

		// Both failure paths land here so a dead session cannot dodge the
		// cap or the pacing sleep.
		if frameErrors > maxFrameErrors {
			return fmt.Errorf("loop: %d consecutive frame failures, giving up", frameErrors)
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(out)
	return nil
}

// playEffects turns the frame's events into sound triggers. Overlapping
// explosions collapse into one playback; the thrust drone is re-triggered
// only after the previous buffer has run its length.
func playEffects(w *World, sink audio.Sink, bank *audio.Bank, thrustCooldown *float64) {
	if bank == nil {
		return
	}
	if w.Events.Fired {
		sink.Play(bank.Buffer(audio.EffectFire))
	}
	if w.Events.Explosions > 0 {
		sink.Play(bank.Buffer(audio.EffectExplosion))
	}
	if w.Events.Thrusting && *thrustCooldown <= 0 {
		sink.Play(bank.Buffer(audio.EffectThrust))
		*thrustCooldown = bank.Seconds(audio.EffectThrust)
	}
}

// drawFrame renders all objects to the canvas, flushes it to the terminal,
// and overlays the UI. Any write error comes back so the loop can detect a
// session whose terminal is gone.
func drawFrame(w *World, out io.Writer, canvas *draw.Canvas) error {
	if err := draw.ClearScreen(out); err != nil {
		return err
	}
	canvas.Clear()

	ctx := object.DrawContext{Canvas: canvas, Writer: out}
	for _, obj := range w.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	if err := canvas.Render(out); err != nil {
		return err
	}
	if err := canvas.RenderBorder(out); err != nil {
		return err
	}
	return drawUI(w, out, canvas)
}

// clampTermSize caps terminal dimensions at the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > MaxTermWidth {
		renderWidth = MaxTermWidth
	}
	if renderHeight > MaxTermHeight {
		renderHeight = MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
