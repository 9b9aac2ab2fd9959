package audio

import (
	"errors"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/ski-rush/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// ErrNotInitialized is returned by Play before Initialize succeeds
var ErrNotInitialized = errors.New("audio: sound manager not initialized")

// Sound identifies a game sound effect
type Sound int

const (
	SoundCrash Sound = iota
	SoundJump
	SoundDeath
	SoundLevelUp
)

func (s Sound) String() string {
	switch s {
	case SoundCrash:
		return "crash"
	case SoundJump:
		return "jump"
	case SoundDeath:
		return "death"
	case SoundLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager; volume is clamped to 0..1
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  clampVolume(volume),
	}
}

// Initialize opens the speaker; a disabled manager stays silent and never touches the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer plays silence
	sm.initialized = false
}

// Enabled reports whether sounds are played at all
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Play queues a sound on the mixer
// A disabled manager drops the sound and returns nil
func (sm *SoundManager) Play(s Sound) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		return nil
	}
	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer, err := build(s)
	if err != nil {
		return err
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, sm.volume))
	speaker.Unlock()
	return nil
}

// PlayCrash plays the low buzz of hitting an obstacle
func (sm *SoundManager) PlayCrash() { _ = sm.Play(SoundCrash) }

// PlayJump plays the rising chirp of a take-off
func (sm *SoundManager) PlayJump() { _ = sm.Play(SoundJump) }

// PlayDeath plays the long rumble of being eaten
func (sm *SoundManager) PlayDeath() { _ = sm.Play(SoundDeath) }

// PlayLevelUp plays the two-note level jingle
func (sm *SoundManager) PlayLevelUp() { _ = sm.Play(SoundLevelUp) }

// build creates a finite streamer for the sound
func build(s Sound) (beep.Streamer, error) {
	switch s {
	case SoundCrash:
		return beep.Take(sampleRate.N(constants.CrashSoundDuration), newBuzzGenerator(sampleRate, constants.CrashSoundFreq)), nil
	case SoundJump:
		n := sampleRate.N(constants.JumpSoundDuration)
		return beep.Take(n, newSweepGenerator(sampleRate, constants.JumpSoundFreqLow, constants.JumpSoundFreqHigh, n)), nil
	case SoundDeath:
		return beep.Take(sampleRate.N(constants.DeathSoundDuration), newRumbleGenerator(sampleRate)), nil
	case SoundLevelUp:
		first, err := generators.SineTone(sampleRate, constants.LevelUpNote1Freq)
		if err != nil {
			return nil, err
		}
		second, err := generators.SineTone(sampleRate, constants.LevelUpNote2Freq)
		if err != nil {
			return nil, err
		}
		return beep.Seq(
			beep.Take(sampleRate.N(constants.LevelUpNote1Duration), first),
			beep.Take(sampleRate.N(constants.LevelUpNote2Duration), second),
		), nil
	default:
		return nil, errors.New("audio: unknown sound " + s.String())
	}
}

// withVolume scales a streamer by a linear volume in 0..1
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
