package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-gol/model"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Width != 5 || c.Height != 5 || c.Generations != 1 || c.Pattern != PatternDemo {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"width": 8,
		"height": 6,
		"pattern": "none",
		"cells": [{"row": 1, "col": 2}, {"row": 3, "col": 3}],
		"frame_rate": 1000000,
		"stop_on_stagnation": true
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 8 || c.Height != 6 || c.Pattern != PatternNone || !c.StopOnStagnation {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.FrameRate != time.Millisecond {
		t.Fatalf("frame rate = %s, want 1ms", c.FrameRate)
	}
	want := []model.Cell{{Row: 1, Col: 2}, {Row: 3, Col: 3}}
	if len(c.Cells) != len(want) || c.Cells[0] != want[0] || c.Cells[1] != want[1] {
		t.Fatalf("cells = %+v, want %+v", c.Cells, want)
	}
	// Unset fields keep their defaults
	if c.Generations != 1 || c.Seed != 42 {
		t.Fatalf("defaults not kept: %+v", c)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
	if c.Pattern != PatternDemo {
		t.Fatal("defaults not returned with error")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{width: 5"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if c.Width != 5 || c.Pattern != PatternDemo {
		t.Fatalf("defaults not returned with error: %+v", c)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 4, "use_parallel": true}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestBindOverridesConfig(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)

	args := []string{"-width", "7", "-pattern", "glider", "-generations", "12", "-strict-columns", "-frame-rate", "50ms"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if c.Width != 7 || c.Height != 5 || c.Pattern != PatternGlider || c.Generations != 12 || !c.StrictColumns {
		t.Fatalf("unexpected config after flags: %+v", c)
	}
	if c.FrameRate != 50*time.Millisecond {
		t.Fatalf("frame rate = %s", c.FrameRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }},
		{"negative generations", func(c *Config) { c.Generations = -1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
