package main

import (
	"fmt"
	"os"

	"go-melody/config"
	"go-melody/debug"
	"go-melody/midi"
	"go-melody/sequencer"
	"go-melody/theme"
	"go-melody/widgets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Warning: debug log unavailable: %v\n", err)
		}
		defer debug.Disable()
	}

	summary, err := run(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		debug.Disable()
		os.Exit(1)
	}

	// Summary palette is cosmetic; fall back to the built-in one
	palette := theme.DefaultPalette()
	if cfg.Palette != "" {
		if p, err := theme.LoadGPL(cfg.Palette); err == nil {
			palette = p
		} else {
			debug.Log("main", "palette: %v", err)
		}
	}
	fmt.Println(widgets.RenderSummary(theme.New(palette), summary))
}

// run generates one track and writes it to cfg.Output.
func run(cfg *config.Config) (widgets.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return widgets.Summary{}, err
	}

	var gen *sequencer.Generator
	if cfg.Seed != nil {
		gen = sequencer.NewSeededGenerator(cfg.Params(), *cfg.Seed)
	} else {
		gen = sequencer.NewGenerator(cfg.Params(), nil)
	}

	track := gen.Generate()
	if err := midi.WriteFile(cfg.Output, cfg.Resolution, track.Events); err != nil {
		return widgets.Summary{}, err
	}
	debug.Log("main", "wrote %d events to %s", len(track.Events), cfg.Output)

	return widgets.Summary{
		Output:      cfg.Output,
		Notes:       len(track.Notes()),
		Ticks:       track.Duration(),
		Resolution:  cfg.Resolution,
		Seed:        cfg.Seed,
		PitchCounts: track.PitchCounts(),
	}, nil
}
