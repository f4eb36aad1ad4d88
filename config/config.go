package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-melody/midi"
	"go-melody/sequencer"
)

// DefaultOutput is written relative to the working directory.
const DefaultOutput = "midi_output.mid"

// Config is the main configuration structure
type Config struct {
	Output       string  `json:"output"`
	Resolution   uint16  `json:"resolution"` // ticks per quarter note
	TotalTicks   uint32  `json:"totalTicks"`
	TicksPerNote uint32  `json:"ticksPerNote"`
	Pitches      []int   `json:"pitches"`
	VelocityMin  int     `json:"velocityMin"`
	VelocityMax  int     `json:"velocityMax"`
	OnDelta      uint32  `json:"onDelta"`
	OffDelta     uint32  `json:"offDelta"`
	Program      int     `json:"program"`
	Seed         *uint64 `json:"seed,omitempty"` // nil = unseeded
	Debug        bool    `json:"debug,omitempty"`
	Palette      string  `json:"palette,omitempty"` // GPL file for the summary
}

// DefaultConfig returns a config with the built-in generation constants
func DefaultConfig() *Config {
	p := sequencer.DefaultParams()
	pitches := make([]int, len(p.Pitches))
	for i, k := range p.Pitches {
		pitches[i] = int(k)
	}
	return &Config{
		Output:       DefaultOutput,
		Resolution:   midi.DefaultResolution,
		TotalTicks:   p.TotalTicks,
		TicksPerNote: p.TicksPerNote,
		Pitches:      pitches,
		VelocityMin:  int(p.VelocityMin),
		VelocityMax:  int(p.VelocityMax),
		OnDelta:      p.OnDelta,
		OffDelta:     p.OffDelta,
		Program:      int(p.Program),
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-melody"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. Fields absent from the file keep their
// default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the generation parameters
func (c *Config) Validate() error {
	var errs []error

	if c.Output == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	if c.Resolution == 0 {
		errs = append(errs, errors.New("resolution must be positive"))
	}
	if c.TicksPerNote == 0 {
		errs = append(errs, errors.New("ticksPerNote must be positive"))
	}
	if len(c.Pitches) == 0 {
		errs = append(errs, errors.New("pitches must not be empty"))
	}
	for _, k := range c.Pitches {
		if !inMIDIRange(k) {
			errs = append(errs, fmt.Errorf("pitch %d out of range 0-127", k))
		}
	}
	if !inMIDIRange(c.VelocityMin) || !inMIDIRange(c.VelocityMax) {
		errs = append(errs, fmt.Errorf("velocity range %d-%d out of range 0-127", c.VelocityMin, c.VelocityMax))
	} else if c.VelocityMin > c.VelocityMax {
		errs = append(errs, fmt.Errorf("velocityMin %d > velocityMax %d", c.VelocityMin, c.VelocityMax))
	}
	if !inMIDIRange(c.Program) {
		errs = append(errs, fmt.Errorf("program %d out of range 0-127", c.Program))
	}

	return errors.Join(errs...)
}

// Params converts the config to generator parameters. Call Validate first.
func (c *Config) Params() sequencer.Params {
	p := sequencer.DefaultParams()
	p.TotalTicks = c.TotalTicks
	p.TicksPerNote = c.TicksPerNote
	p.Pitches = make([]uint8, len(c.Pitches))
	for i, k := range c.Pitches {
		p.Pitches[i] = uint8(k)
	}
	p.VelocityMin = uint8(c.VelocityMin)
	p.VelocityMax = uint8(c.VelocityMax)
	p.OnDelta = c.OnDelta
	p.OffDelta = c.OffDelta
	p.Program = uint8(c.Program)
	return p
}

func inMIDIRange(v int) bool {
	return v >= 0 && v <= 127
}
