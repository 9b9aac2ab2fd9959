package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 250 * time.Millisecond
	CrashSoundFreq     = 110.0
)

// Jump Sound Timing
const (
	JumpSoundDuration = 180 * time.Millisecond
	JumpSoundFreqLow  = 330.0
	JumpSoundFreqHigh = 660.0
)

// Death Sound Timing
const (
	DeathSoundDuration = 700 * time.Millisecond
)

// Level Up Sound Timing
const (
	LevelUpNote1Duration = 80 * time.Millisecond
	LevelUpNote2Duration = 200 * time.Millisecond
	LevelUpNote1Freq     = 987.77
	LevelUpNote2Freq     = 1318.51
)
