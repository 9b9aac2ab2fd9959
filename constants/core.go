package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the default game logic update interval (one skier tick)
	GameUpdateInterval = 50 * time.Millisecond

	// AnimationFrameInterval is how long one frame of a time-paced animation (rhino) is shown
	AnimationFrameInterval = 250 * time.Millisecond
)

// World To Terminal Mapping
const (
	// CellWidth is the world width covered by one terminal column
	CellWidth = 8.0

	// CellHeight is the world height covered by one terminal row
	CellHeight = 16.0

	// HUDRows is the number of rows reserved at the bottom of the screen for the status bar
	HUDRows = 1
)

// Event Channel Sizing
const (
	// EventQueueSize is the capacity of the terminal event channel between poller and loop
	EventQueueSize = 256
)
