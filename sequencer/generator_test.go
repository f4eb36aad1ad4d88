package sequencer

import (
	"reflect"
	"slices"
	"testing"

	"go-melody/midi"
)

func TestParams_NumNotes(t *testing.T) {
	tests := []struct {
		total, perNote uint32
		want           int
	}{
		{288000, 600, 480},
		{1000, 600, 1},
		{599, 600, 0},
		{1200, 600, 2},
		{288000, 0, 0},
	}

	for _, tt := range tests {
		p := Params{TotalTicks: tt.total, TicksPerNote: tt.perNote}
		if got := p.NumNotes(); got != tt.want {
			t.Errorf("NumNotes(%d/%d) = %d, want %d", tt.total, tt.perNote, got, tt.want)
		}
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.NumNotes() != 480 {
		t.Errorf("NumNotes = %d, want 480", p.NumNotes())
	}
	if !slices.Equal(p.Pitches, []uint8{60, 62, 65, 67, 69, 72}) {
		t.Errorf("Pitches = %v", p.Pitches)
	}

	// callers may not alias the package default
	p.Pitches[0] = 0
	if DefaultPitches[0] != 60 {
		t.Error("DefaultParams shares the DefaultPitches backing array")
	}
}

func TestGenerate_Shape(t *testing.T) {
	p := DefaultParams()
	track := NewGenerator(p, nil).Generate()

	if got, want := len(track.Events), 1+2*480; got != want {
		t.Fatalf("got %d events, want %d", got, want)
	}

	first := track.Events[0]
	if first.Type != midi.ProgramChange || first.Program != 0 || first.Delta != 0 {
		t.Errorf("first event = %v, want program change 0 at delta 0", first)
	}

	for i := 1; i < len(track.Events); i += 2 {
		on, off := track.Events[i], track.Events[i+1]
		if on.Type != midi.NoteOn || on.Delta != 200 {
			t.Fatalf("event %d = %v, want note_on at +200", i, on)
		}
		if off.Type != midi.NoteOff || off.Delta != 400 || off.Velocity != 0 {
			t.Fatalf("event %d = %v, want note_off vel 0 at +400", i+1, off)
		}
		if off.Note != on.Note {
			t.Fatalf("event %d releases %d, want %d", i+1, off.Note, on.Note)
		}
	}

	if got := track.Duration(); got != 288000 {
		t.Errorf("Duration = %d, want 288000", got)
	}
}

func TestGenerate_ValuesInRange(t *testing.T) {
	p := DefaultParams()
	notes := NewSeededGenerator(p, 7).Generate().Notes()

	if len(notes) != 480 {
		t.Fatalf("got %d notes, want 480", len(notes))
	}

	seenKey := make(map[uint8]bool)
	seenVel := make(map[uint8]bool)
	for i, n := range notes {
		if !slices.Contains(p.Pitches, n.Key) {
			t.Errorf("note %d: pitch %d not in %v", i, n.Key, p.Pitches)
		}
		if n.Velocity < 60 || n.Velocity > 90 {
			t.Errorf("note %d: velocity %d outside [60, 90]", i, n.Velocity)
		}
		seenKey[n.Key] = true
		seenVel[n.Velocity] = true
	}

	// 480 uniform draws cover every pitch and both velocity bounds
	if len(seenKey) != len(p.Pitches) {
		t.Errorf("saw %d distinct pitches, want %d", len(seenKey), len(p.Pitches))
	}
	if !seenVel[60] || !seenVel[90] {
		t.Errorf("velocity bounds not drawn (60: %v, 90: %v)", seenVel[60], seenVel[90])
	}
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	p := DefaultParams()
	a := NewSeededGenerator(p, 42).Generate()
	b := NewSeededGenerator(p, 42).Generate()
	if !reflect.DeepEqual(a.Events, b.Events) {
		t.Error("same seed produced different tracks")
	}

	c := NewSeededGenerator(p, 43).Generate()
	if reflect.DeepEqual(a.Events, c.Events) {
		t.Error("different seeds produced identical tracks")
	}
}

func TestGenerate_UnseededSameShape(t *testing.T) {
	p := DefaultParams()
	a := NewGenerator(p, nil).Generate()
	b := NewGenerator(p, nil).Generate()

	if len(a.Events) != len(b.Events) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Events), len(b.Events))
	}
	for i := range a.Events {
		if a.Events[i].Type != b.Events[i].Type || a.Events[i].Delta != b.Events[i].Delta {
			t.Fatalf("event %d shape differs: %v vs %v", i, a.Events[i], b.Events[i])
		}
	}
}

func TestGenerate_CustomParams(t *testing.T) {
	p := Params{
		TotalTicks:   4800,
		TicksPerNote: 480,
		Pitches:      []uint8{48},
		VelocityMin:  100,
		VelocityMax:  100,
		OnDelta:      0,
		OffDelta:     480,
		Program:      24,
		Channel:      9,
	}
	track := NewSeededGenerator(p, 1).Generate()

	if track.Events[0].Program != 24 || track.Events[0].Channel != 9 {
		t.Errorf("first event = %v", track.Events[0])
	}
	notes := track.Notes()
	if len(notes) != 10 {
		t.Fatalf("got %d notes, want 10", len(notes))
	}
	for _, n := range notes {
		if n != (Note{Key: 48, Velocity: 100}) {
			t.Errorf("note = %+v", n)
		}
	}
	for _, ev := range track.Events {
		if ev.Channel != 9 {
			t.Errorf("event on channel %d, want 9", ev.Channel)
		}
	}
	if got := track.Duration(); got != 4800 {
		t.Errorf("Duration = %d, want 4800", got)
	}
}

func TestTrack_PitchCounts(t *testing.T) {
	track := NewTrack("t", 0, 0)
	track.AddNote(Note{Key: 60, Velocity: 70}, 200, 400)
	track.AddNote(Note{Key: 62, Velocity: 70}, 200, 400)
	track.AddNote(Note{Key: 60, Velocity: 80}, 200, 400)

	got := track.PitchCounts()
	want := map[uint8]int{60: 2, 62: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PitchCounts = %v, want %v", got, want)
	}
}
