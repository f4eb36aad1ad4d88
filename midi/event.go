package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// MIDI message types
const (
	NoteOn        uint8 = 0x90
	NoteOff       uint8 = 0x80
	ProgramChange uint8 = 0xC0
)

// Event is a single channel message in a track, positioned by its delta
// time (ticks since the previous event).
type Event struct {
	Type     uint8 // NoteOn, NoteOff, ProgramChange
	Channel  uint8 // 0-15
	Note     uint8
	Velocity uint8
	Program  uint8 // ProgramChange only
	Delta    uint32
}

// NoteOnEvent starts a sounding pitch after delta ticks.
func NoteOnEvent(channel, note, velocity uint8, delta uint32) Event {
	return Event{Type: NoteOn, Channel: channel, Note: note, Velocity: velocity, Delta: delta}
}

// NoteOffEvent stops a pitch after delta ticks. Velocity is always 0.
func NoteOffEvent(channel, note uint8, delta uint32) Event {
	return Event{Type: NoteOff, Channel: channel, Note: note, Delta: delta}
}

// ProgramChangeEvent selects the instrument for subsequent notes.
func ProgramChangeEvent(channel, program uint8, delta uint32) Event {
	return Event{Type: ProgramChange, Channel: channel, Program: program, Delta: delta}
}

// Message converts the event to its wire representation.
func (e Event) Message() (gomidi.Message, error) {
	switch e.Type {
	case NoteOn:
		return gomidi.NoteOn(e.Channel, e.Note, e.Velocity), nil
	case NoteOff:
		return gomidi.NoteOff(e.Channel, e.Note), nil
	case ProgramChange:
		return gomidi.ProgramChange(e.Channel, e.Program), nil
	}
	return nil, fmt.Errorf("unknown event type 0x%02X", e.Type)
}

func (e Event) String() string {
	switch e.Type {
	case NoteOn:
		return fmt.Sprintf("+%d note_on ch=%d note=%d vel=%d", e.Delta, e.Channel, e.Note, e.Velocity)
	case NoteOff:
		return fmt.Sprintf("+%d note_off ch=%d note=%d", e.Delta, e.Channel, e.Note)
	case ProgramChange:
		return fmt.Sprintf("+%d program_change ch=%d program=%d", e.Delta, e.Channel, e.Program)
	}
	return fmt.Sprintf("+%d unknown(0x%02X)", e.Delta, e.Type)
}
