package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/firewall/internal/core"
)

// waveform shapes a phase in [0, 1) into a sample in [-1, 1].
type waveform func(phase float64) float64

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// sweep is one tone gliding from one frequency to another.
type sweep struct {
	from, to float64
	length   time.Duration
	wave     waveform
	volume   float64
}

// cues lists the tones of each sound, played back to back.
var cues = map[core.Sound][]sweep{
	core.SoundHit: {
		{from: 988, to: 988, length: 50 * time.Millisecond, wave: square, volume: 0.15},
		{from: 1319, to: 1319, length: 90 * time.Millisecond, wave: square, volume: 0.15},
	},
	core.SoundCollect: {
		{from: 660, to: 1320, length: 200 * time.Millisecond, wave: sine, volume: 0.3},
	},
	core.SoundFire: {
		{from: 1800, to: 1200, length: 30 * time.Millisecond, wave: square, volume: 0.1},
	},
	core.SoundGameOver: {
		{from: 440, to: 110, length: 600 * time.Millisecond, wave: sine, volume: 0.35},
	},
}

// Cue returns a finite streamer for s, or nil for an unknown sound.
func Cue(s core.Sound) beep.Streamer {
	parts, ok := cues[s]
	if !ok {
		return nil
	}
	streamers := make([]beep.Streamer, 0, len(parts))
	for _, p := range parts {
		streamers = append(streamers, beep.Take(sampleRate.N(p.length), newSweepGenerator(sampleRate, p)))
	}
	return beep.Seq(streamers...)
}

// Length returns the playing time of s.
func Length(s core.Sound) time.Duration {
	var d time.Duration
	for _, p := range cues[s] {
		d += p.length
	}
	return d
}

// sweepGenerator streams a sweep with a short linear fade at both ends to
// avoid clicks.
type sweepGenerator struct {
	sr    beep.SampleRate
	sw    sweep
	total int
	fade  int
	pos   int
	phase float64
}

func newSweepGenerator(sr beep.SampleRate, sw sweep) *sweepGenerator {
	total := sr.N(sw.length)
	return &sweepGenerator{
		sr:    sr,
		sw:    sw,
		total: total,
		fade:  min(sr.N(5*time.Millisecond), total/2),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(max(g.total, 1))
		freq := g.sw.from + (g.sw.to-g.sw.from)*math.Min(progress, 1)

		sample := g.sw.volume * g.sw.wave(g.phase) * g.envelope()
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) envelope() float64 {
	if g.fade == 0 {
		return 1
	}
	if g.pos < g.fade {
		return float64(g.pos) / float64(g.fade)
	}
	if tail := g.total - g.pos; tail < g.fade {
		return math.Max(float64(tail), 0) / float64(g.fade)
	}
	return 1
}

func (g *sweepGenerator) Err() error {
	return nil
}
