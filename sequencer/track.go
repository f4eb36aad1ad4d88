package sequencer

import "go-melody/midi"

// Track is the single output track: one program change followed by
// note-on/note-off pairs. It is built once by a Generator and handed to the
// encoder as-is.
type Track struct {
	Name    string
	Channel uint8 // MIDI channel (0-15)
	Program uint8
	Events  []midi.Event
}

// NewTrack creates a track whose first event selects program.
func NewTrack(name string, channel, program uint8) *Track {
	return &Track{
		Name:    name,
		Channel: channel,
		Program: program,
		Events:  []midi.Event{midi.ProgramChangeEvent(channel, program, 0)},
	}
}

// AddNote appends a note-on after onDelta ticks and its note-off after a
// further offDelta ticks.
func (t *Track) AddNote(n Note, onDelta, offDelta uint32) {
	t.Events = append(t.Events,
		midi.NoteOnEvent(t.Channel, n.Key, n.Velocity, onDelta),
		midi.NoteOffEvent(t.Channel, n.Key, offDelta),
	)
}

// Notes returns the generated notes in order.
func (t *Track) Notes() []Note {
	var notes []Note
	for _, ev := range t.Events {
		if ev.Type == midi.NoteOn {
			notes = append(notes, Note{Key: ev.Note, Velocity: ev.Velocity})
		}
	}
	return notes
}

// Duration returns the total length of the track in ticks.
func (t *Track) Duration() uint64 {
	var total uint64
	for _, ev := range t.Events {
		total += uint64(ev.Delta)
	}
	return total
}

// PitchCounts returns how many times each pitch was drawn.
func (t *Track) PitchCounts() map[uint8]int {
	counts := make(map[uint8]int)
	for _, n := range t.Notes() {
		counts[n.Key]++
	}
	return counts
}
