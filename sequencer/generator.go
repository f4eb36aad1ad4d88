package sequencer

import (
	"math/rand/v2"

	"go-melody/debug"
	"go-melody/midi"
)

// Defaults: five minutes at 120 bpm with 480 ticks per beat.
const (
	DefaultTotalTicks   = 288000
	DefaultTicksPerNote = 600
	DefaultVelocityMin  = 60
	DefaultVelocityMax  = 90
	DefaultOnDelta      = 200
	DefaultOffDelta     = 400
)

// DefaultPitches is the allowed pitch set (C D F G A C').
var DefaultPitches = []uint8{60, 62, 65, 67, 69, 72}

// Note is one generated pitch/velocity draw.
type Note struct {
	Key      uint8
	Velocity uint8
}

// Params controls the shape of a generated track.
type Params struct {
	TotalTicks   uint32
	TicksPerNote uint32
	Pitches      []uint8
	VelocityMin  uint8
	VelocityMax  uint8
	OnDelta      uint32 // ticks before each note-on
	OffDelta     uint32 // ticks before each note-off
	Program      uint8
	Channel      uint8
}

// DefaultParams returns the built-in generation constants.
func DefaultParams() Params {
	return Params{
		TotalTicks:   DefaultTotalTicks,
		TicksPerNote: DefaultTicksPerNote,
		Pitches:      append([]uint8(nil), DefaultPitches...),
		VelocityMin:  DefaultVelocityMin,
		VelocityMax:  DefaultVelocityMax,
		OnDelta:      DefaultOnDelta,
		OffDelta:     DefaultOffDelta,
	}
}

// NumNotes is floor(TotalTicks / TicksPerNote).
func (p Params) NumNotes() int {
	if p.TicksPerNote == 0 {
		return 0
	}
	return int(p.TotalTicks / p.TicksPerNote)
}

// Generator draws notes independently and uniformly at random.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator creates a generator reading from src. A nil src uses a fresh
// randomly seeded source, so output differs between runs.
func NewGenerator(params Params, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{
		params: params,
		rng:    rand.New(src),
	}
}

// NewSeededGenerator creates a generator whose output is fixed by seed.
func NewSeededGenerator(params Params, seed uint64) *Generator {
	return NewGenerator(params, rand.NewPCG(seed, seed))
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Next draws a single note. Pitches must be non-empty and VelocityMin <=
// VelocityMax.
func (g *Generator) Next() Note {
	p := g.params
	key := p.Pitches[g.rng.IntN(len(p.Pitches))]
	span := int(p.VelocityMax) - int(p.VelocityMin) + 1
	vel := uint8(int(p.VelocityMin) + g.rng.IntN(span))
	return Note{Key: key, Velocity: vel}
}

// Generate builds a full track of NumNotes notes.
func (g *Generator) Generate() *Track {
	p := g.params
	n := p.NumNotes()

	t := NewTrack("melody", p.Channel, p.Program)
	t.Events = append(make([]midi.Event, 0, 1+2*n), t.Events...)
	for i := 0; i < n; i++ {
		t.AddNote(g.Next(), p.OnDelta, p.OffDelta)
	}

	debug.Log("generator", "generated %d notes (%d ticks / %d per note)", n, p.TotalTicks, p.TicksPerNote)
	return t
}
