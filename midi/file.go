package midi

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2/smf"

	"go-melody/debug"
)

// DefaultResolution is the number of ticks per quarter note.
const DefaultResolution uint16 = 480

// Build encodes each event list as one SMF track. A single track gives a
// format 0 file.
func Build(resolution uint16, tracks ...[]Event) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(resolution)

	for i, events := range tracks {
		var tr smf.Track
		for j, ev := range events {
			msg, err := ev.Message()
			if err != nil {
				return nil, fmt.Errorf("track %d event %d: %w", i, j, err)
			}
			tr.Add(ev.Delta, msg)
		}
		tr.Close(0)

		if err := s.Add(tr); err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		debug.Log("smf", "track %d: %d events", i, len(events))
	}

	return s, nil
}

// Encode writes the tracks as a standard MIDI file to w.
func Encode(w io.Writer, resolution uint16, tracks ...[]Event) error {
	s, err := Build(resolution, tracks...)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("encode smf: %w", err)
	}
	return nil
}

// WriteFile writes the tracks to path, replacing any existing file.
func WriteFile(path string, resolution uint16, tracks ...[]Event) error {
	s, err := Build(resolution, tracks...)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	debug.Log("smf", "wrote %s (%d tracks)", path, len(s.Tracks))
	return nil
}
