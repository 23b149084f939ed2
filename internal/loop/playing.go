package loop

import "github.com/spacerocks/spacerocks/internal/object"

// step advances the game state machine by one frame. Pause and restart
// intents are edge-triggered so a held key toggles once.
func step(w *World) error {
	pauseEdge := w.Input.PauseToggle && !w.pauseHeld
	w.pauseHeld = w.Input.PauseToggle
	restartEdge := w.Input.Restart && !w.restartHeld
	w.restartHeld = w.Input.Restart

	switch w.State {
	case StatePlaying:
		if pauseEdge {
			w.State = StatePaused
			return nil
		}
		return updatePlaying(w)

	case StatePaused:
		// Physics and collisions are frozen; only unpause is accepted.
		if pauseEdge {
			w.State = StatePlaying
		}
		return nil

	case StateGameOver:
		// Pause intents are ignored here. The countdown runs on frame
		// time; expiry or an explicit restart brings the game back.
		w.RestartTimer -= w.Delta.Seconds()
		updateDebris(w)
		if w.RestartTimer <= 0 || restartEdge {
			startGame(w)
		}
		return nil
	}
	return nil
}

// updatePlaying runs one full Playing-state frame: advance every object,
// admit spawned ones, then resolve collisions.
func updatePlaying(w *World) error {
	ctx := w.UpdateContext()

	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	w.Objects = kept
	w.FlushSpawned()

	checkCollisions(w)
	return nil
}

// updateDebris keeps explosion particles animating on the game-over screen
// while everything else stays frozen.
func updateDebris(w *World) {
	ctx := w.UpdateContext()

	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		p, isParticle := obj.(*object.Particle)
		if !isParticle {
			kept = append(kept, obj)
			continue
		}
		remove, _ := p.Update(ctx)
		if remove {
			p.Release()
			continue
		}
		kept = append(kept, obj)
	}
	w.Objects = kept
	w.FlushSpawned()
}
