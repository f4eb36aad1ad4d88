package widgets

import (
	"strings"
	"testing"
	"time"

	"go-melody/theme"
)

func TestNoteName(t *testing.T) {
	tests := []struct {
		key  uint8
		want string
	}{
		{60, "C4"},
		{62, "D4"},
		{65, "F4"},
		{67, "G4"},
		{69, "A4"},
		{72, "C5"},
		{61, "C#4"},
		{0, "C-1"},
		{127, "G9"},
	}
	for _, tt := range tests {
		if got := NoteName(tt.key); got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSummary_Duration(t *testing.T) {
	s := Summary{Ticks: 288000, Resolution: 480}
	if got := s.Duration(); got != 5*time.Minute {
		t.Errorf("Duration = %v, want 5m", got)
	}
	if got := (Summary{Ticks: 100}).Duration(); got != 0 {
		t.Errorf("Duration with zero resolution = %v, want 0", got)
	}
}

func TestRenderPitchHistogram(t *testing.T) {
	th := theme.New(nil)
	counts := map[uint8]int{72: 10, 60: 20, 65: 5}

	out := RenderPitchHistogram(th, counts, 20)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	order := []string{"C4", "F4", "C5"}
	for i, name := range order {
		if !strings.Contains(lines[i], name) {
			t.Errorf("line %d = %q, want %s", i, lines[i], name)
		}
	}
	if !strings.HasSuffix(lines[0], " 20") {
		t.Errorf("line 0 = %q, want count 20", lines[0])
	}

	if RenderPitchHistogram(th, nil, 20) != "" {
		t.Error("empty counts should render nothing")
	}
}

func TestRenderSummary(t *testing.T) {
	seed := uint64(5)
	out := RenderSummary(theme.New(nil), Summary{
		Output:      "midi_output.mid",
		Notes:       480,
		Ticks:       288000,
		Resolution:  480,
		Seed:        &seed,
		PitchCounts: map[uint8]int{60: 480},
	})

	for _, want := range []string{"midi_output.mid", "480", "5m0s", "C4"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
