package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/tilefolio/constants"
)

// chimeNotes are C6, E6, G6
var chimeNotes = [...]float64{1046.50, 1318.51, 1567.98}

// NewChime returns a finite three-note arpeggio
func NewChime(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, freq := range chimeNotes {
		notes = append(notes, newNote(sr, freq))
	}
	return beep.Seq(notes...)
}

func newNote(sr beep.SampleRate, freq float64) beep.Streamer {
	n := sr.N(constants.ChimeNoteDuration)
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		// Above Nyquist for this rate, keep the timing
		return beep.Silence(n)
	}
	return &Envelope{
		Streamer: beep.Take(n, tone),
		Total:    n,
		Attack:   sr.N(constants.ChimeAttack),
		Release:  sr.N(constants.ChimeRelease),
		Volume:   constants.ChimeVolume,
	}
}

// Envelope applies a linear attack and release to a finite streamer
type Envelope struct {
	Streamer beep.Streamer
	Total    int
	Attack   int
	Release  int
	Volume   float64

	pos int
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos) * e.Volume
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *Envelope) gain(pos int) float64 {
	g := 1.0
	if e.Attack > 0 && pos < e.Attack {
		g = float64(pos) / float64(e.Attack)
	}
	if left := e.Total - pos; e.Release > 0 && left < e.Release {
		g = math.Min(g, float64(left)/float64(e.Release))
	}
	return math.Max(g, 0)
}

func (e *Envelope) Err() error {
	return e.Streamer.Err()
}

// SweepGenerator glides a sine from SweepLowHz to SweepHighHz and fades out
type SweepGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

// NewSweep returns a finite gate sweep
func NewSweep(sr beep.SampleRate) beep.Streamer {
	return &SweepGenerator{
		sr:      sr,
		samples: sr.N(constants.SweepDuration),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)

		// Exponential glide sounds even across octaves
		freq := constants.SweepLowHz * math.Pow(constants.SweepHighHz/constants.SweepLowHz, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		amplitude := constants.SweepVolume * math.Sin(progress*math.Pi)
		sample := amplitude * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
