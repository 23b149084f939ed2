package loop

import "time"

// Frame pacing.
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Logical resolution. Objects live in this fixed coordinate space; the
// canvas scales it to the actual terminal. Height is in sub-pixels, so 80
// renders as 40 terminal rows.
const (
	WorldWidth  = 120
	WorldHeight = 80
)

// Render area cap. Larger terminals get a centered, bordered play field at
// this size instead of a stretched one.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)

// Scoring per destroyed asteroid tier. Smaller rocks are harder to hit.
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Wave spawning.
const (
	InitialWaveSize   = 5
	MaxWaveSize       = 12
	SafeSpawnDistance = 25.0
)

// RestartCountdownSeconds is how long the game-over screen lingers before
// the game restarts on its own.
const RestartCountdownSeconds = 15.0

// Broad-phase cell size. Must cover the largest asteroid pair interaction
// distance (two large radii).
const collisionCellSize = 12.0
