package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ChimeGenerator steps from one tone to a second one halfway through
type ChimeGenerator struct {
	sr        beep.SampleRate
	low, high float64
	switchAt  int
	pos       int
}

// NewChimeGenerator creates a two-tone chime
func NewChimeGenerator(sr beep.SampleRate, low, high float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:       sr,
		low:      low,
		high:     high,
		switchAt: sr.N(120 * time.Millisecond),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.low
		if g.pos >= g.switchAt {
			freq = g.high
		}

		envelope := math.Exp(-t * 6)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ClankGenerator mixes inharmonic partials with a fast decay
type ClankGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewClankGenerator creates a metallic clank generator
func NewClankGenerator(sr beep.SampleRate) *ClankGenerator {
	return &ClankGenerator{sr: sr}
}

func (g *ClankGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 18)
		sample := 0.2 * math.Sin(2*math.Pi*523*t)
		sample += 0.15 * math.Sin(2*math.Pi*1307*t)
		sample += 0.1 * math.Sin(2*math.Pi*2213*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClankGenerator) Err() error {
	return nil
}

// SplashGenerator is filtered noise over a low rumble
type SplashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	last float64
}

// NewSplashGenerator creates a splash generator with a fixed seed so the cue sounds the same every time
func NewSplashGenerator(sr beep.SampleRate) *SplashGenerator {
	return &SplashGenerator{sr: sr, seed: 1}
}

func (g *SplashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low-pass
		g.last += 0.1 * (noise - g.last)

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.4*g.last + rumble) * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplashGenerator) Err() error {
	return nil
}
