package widgets

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go-melody/theme"
)

// DefaultTempo is the SMF default of 120 bpm (500000 us per beat).
const DefaultTempo = 500 * time.Millisecond

// Summary describes one generation run
type Summary struct {
	Output      string
	Notes       int
	Ticks       uint64
	Resolution  uint16 // ticks per beat
	Seed        *uint64
	PitchCounts map[uint8]int
}

// Duration converts Ticks to wall time at the default tempo
func (s Summary) Duration() time.Duration {
	if s.Resolution == 0 {
		return 0
	}
	return time.Duration(s.Ticks) * DefaultTempo / time.Duration(s.Resolution)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName formats a MIDI key as scientific pitch, e.g. 60 -> C4
func NoteName(key uint8) string {
	return fmt.Sprintf("%s%d", noteNames[key%12], int(key)/12-1)
}

// RenderSummary renders the run summary followed by the pitch histogram
func RenderSummary(th *theme.Theme, s Summary) string {
	seed := "random"
	if s.Seed != nil {
		seed = fmt.Sprintf("%d", *s.Seed)
	}

	rows := []struct{ key, val string }{
		{"output", s.Output},
		{"notes", fmt.Sprintf("%d", s.Notes)},
		{"ticks", fmt.Sprintf("%d @ %d/beat", s.Ticks, s.Resolution)},
		{"length", s.Duration().String()},
		{"seed", seed},
	}

	val := lipgloss.NewStyle().Foreground(th.FG())

	var out strings.Builder
	out.WriteString(th.Title().Render("go-melody"))
	out.WriteString("\n\n")
	for _, r := range rows {
		out.WriteString(th.Label().Render(r.key))
		out.WriteString(val.Render(r.val))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(RenderPitchHistogram(th, s.PitchCounts, 40))
	return out.String()
}

// RenderPitchHistogram renders one bar per pitch, lowest first. The longest
// bar is width cells.
func RenderPitchHistogram(th *theme.Theme, counts map[uint8]int, width int) string {
	if len(counts) == 0 {
		return ""
	}

	keys := make([]int, 0, len(counts))
	peak := 0
	for k, c := range counts {
		keys = append(keys, int(k))
		peak = max(peak, c)
	}
	sort.Ints(keys)

	var lines []string
	for i, k := range keys {
		c := counts[uint8(k)]
		n := 0
		if peak > 0 {
			n = c * width / peak
		}

		norm := 0.0
		if len(keys) > 1 {
			norm = float64(i) / float64(len(keys)-1)
		}
		bar := lipgloss.NewStyle().Foreground(th.Color(norm)).Render(strings.Repeat(string(th.Bar), n))

		lines = append(lines, fmt.Sprintf("  %-4s %s %d", NoteName(uint8(k)), bar, c))
	}
	return strings.Join(lines, "\n")
}
