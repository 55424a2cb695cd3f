package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-gol/model"
)

const (
	PatternDemo    = "demo"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternRandom  = "random"
	PatternNone    = "none"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	Generations      int           `json:"generations"`
	FrameRate        time.Duration `json:"frame_rate"`
	Pattern          string        `json:"pattern"`
	Cells            []model.Cell  `json:"cells"`
	RandomDensity    float64       `json:"random_density"`
	Seed             int64         `json:"seed"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	ClearScreen      bool          `json:"clear_screen"`
	StrictColumns    bool          `json:"strict_columns"`
}

// DefaultConfig returns the classic 5x5 demo that runs a single generation
func DefaultConfig() Config {
	return Config{
		Width:         5,
		Height:        5,
		Generations:   1,
		Pattern:       PatternDemo,
		RandomDensity: 0.3,
		Seed:          42,
	}
}

// LoadConfig reads a JSON config over DefaultConfig. Fields missing from the
// file keep their defaults and unknown fields are rejected. On error the
// defaults are returned alongside it.
func LoadConfig(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to open %s", filename)
	}
	defer f.Close()

	config := DefaultConfig()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to decode %s", filename)
	}
	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width (1-10)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height (1-10)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to advance")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: demo, glider, blinker, block, random or none")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "alive density for the random pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.BoolVar(&c.StopOnStagnation, "stop-on-stagnation", c.StopOnStagnation, "stop once the grid is extinct or cycling")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal between generations")
	fs.BoolVar(&c.StrictColumns, "strict-columns", c.StrictColumns, "validate columns against the width instead of the height")
}

// Validate checks the settings that the grid constructor does not
func (c Config) Validate() error {
	switch c.Pattern {
	case PatternDemo, PatternGlider, PatternBlinker, PatternBlock, PatternRandom, PatternNone:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative generations: %d", c.Generations)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate: %s", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density %v outside [0, 1]", c.RandomDensity)
	}
	return nil
}
