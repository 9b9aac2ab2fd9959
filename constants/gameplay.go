// @focus: #constants { gameplay }
package constants

import "math"

// Skier Movement
const (
	// StartingSpeed is the skier speed on start and after crash recovery; also the fixed step
	// for horizontal and uphill nudges
	StartingSpeed = 10.0

	// DiagonalSpeedReducer scales both axes of diagonal travel so the resulting speed matches
	// straight travel
	DiagonalSpeedReducer = math.Sqrt2

	// StartingLives is the number of lives a new skier starts with
	StartingLives = 4
)

// Jump Mechanics
const (
	// JumpScoreBonus is added to the score on every tick spent in the air
	JumpScoreBonus = 2

	// JumpFrameCount is the number of frames in the jump animation
	JumpFrameCount = 5

	// RampBonus is awarded once per ramp cleared while airborne
	RampBonus = 25
)

// Difficulty Scaling
const (
	// DefaultLevelStep is the score required to advance one level
	DefaultLevelStep = 100

	// SpeedPerLevel is the speed added to skier and rhino for each level above the first
	SpeedPerLevel = 5.0
)

// Obstacle Placement
const (
	// InitialObstacleCount is how many obstacles are scattered before the first tick
	InitialObstacleCount = 50

	// StartAreaRadius keeps initial obstacles away from the skier spawn point
	StartAreaRadius = 100.0

	// NewObstacleChance is the base 1-in-N chance of placing an obstacle when the window moves
	NewObstacleChance = 8

	// MinObstacleChance caps how likely placement can become at high levels
	MinObstacleChance = 2

	// ObstacleSpacing is the minimum distance between two obstacle centers
	ObstacleSpacing = 50.0

	// RecycleDistance is how far above the window an obstacle may drift before it is dropped
	RecycleDistance = 400.0

	// PlacementAttempts bounds the retries for finding a free placement spot
	PlacementAttempts = 10
)

// Rhino Chaser
const (
	// RhinoStartX is the rhino spawn x coordinate
	RhinoStartX = -500.0

	// RhinoStartY is the rhino spawn y coordinate, far uphill of the skier
	RhinoStartY = -2000.0

	// RhinoEatFrames is the number of frames in the eat animation before celebrating
	RhinoEatFrames = 4
)
