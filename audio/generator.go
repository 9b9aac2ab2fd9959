package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// buzzGenerator generates a harsh low buzz with a short fade-in
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzzGenerator(sr beep.SampleRate, freq float64) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// sweepGenerator glides linearly from low to high over length samples
type sweepGenerator struct {
	sr        beep.SampleRate
	low, high float64
	length    int
	pos       int
	phase     float64
}

func newSweepGenerator(sr beep.SampleRate, low, high float64, length int) *sweepGenerator {
	return &sweepGenerator{sr: sr, low: low, high: high, length: max(length, 1)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.low + (g.high-g.low)*progress

		// Phase accumulation keeps the glide click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.25 * (1 - progress*0.5) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// rumbleGenerator generates decaying noise over a low rumble
type rumbleGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newRumbleGenerator(sr beep.SampleRate) *rumbleGenerator {
	return &rumbleGenerator{sr: sr, seed: 1}
}

func (g *rumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 4)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.2*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumbleGenerator) Err() error {
	return nil
}
