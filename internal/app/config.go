package app

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Config represents the parameters of one console run.
type Config struct {
	Sim    string            `json:"sim"`
	Steps  int               `json:"steps"`
	Seed   int64             `json:"seed"`
	TPS    int               `json:"tps"`
	Emoji  bool              `json:"emoji"`
	PNG    string            `json:"png"`
	Scale  int               `json:"scale"`
	Params map[string]string `json:"params"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "elementary",
		Steps:  50,
		Emoji:  true,
		Scale:  4,
		Params: map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to simulate after the initial one")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the sim's configured seed)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (0 runs unpaced)")
	fs.BoolVar(&c.Emoji, "emoji", c.Emoji, "render with emoji glyphs where available")
	fs.StringVar(&c.PNG, "png", c.PNG, "write the final generation to this PNG file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for -png")
	fs.Func("param", "simulation parameter as key=value (repeatable)", c.setParam)
}

func (c *Config) setParam(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return errors.Errorf("parameter %q is not key=value", kv)
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	c.Params[key] = value
	return nil
}

// Validate checks the run-level settings. Simulation parameters are
// validated by the simulation factory.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return errors.New("sim must be set")
	}
	if c.Steps < 0 {
		return errors.Errorf("steps %d must not be negative", c.Steps)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
