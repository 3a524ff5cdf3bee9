package forestfire

import (
	"strconv"

	"github.com/pkg/errors"

	"gridca/internal/core"
)

// Params holds the stochastic parameters of the fire model. Probabilities
// and winds are integer percentages.
type Params struct {
	// Neighborhood is the number of adjacent cells inspected: 4, 6 or 8.
	Neighborhood int `json:"neighborhood"`
	// Density is the percent chance that a cell starts as forest.
	Density int `json:"density"`
	// Spread is the base percent chance that fire jumps to a forest cell.
	Spread int `json:"spread"`
	// WestWind biases horizontal spread. Negative values model an east wind.
	WestWind int `json:"west_wind"`
	// SouthWind biases vertical spread. Negative values model a north wind.
	SouthWind int `json:"south_wind"`
}

// Config controls the forest dimensions and fire model.
type Config struct {
	Width  int   `json:"w"`
	Height int   `json:"h"`
	Seed   int64 `json:"seed"`

	Params Params `json:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  40,
		Height: 20,
		Seed:   1337,
		Params: Params{
			Neighborhood: 4,
			Density:      60,
			Spread:       50,
		},
	}
}

// Validate reports whether c describes a constructible forest.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrConfigOutOfRange, "grid %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Params.Neighborhood {
	case 4, 6, 8:
	default:
		return errors.Wrapf(core.ErrConfigOutOfRange, "neighborhood %d not in {4,6,8}", c.Params.Neighborhood)
	}
	if c.Params.Density < 0 || c.Params.Density > 100 {
		return errors.Wrapf(core.ErrConfigOutOfRange, "density %d outside [0,100]", c.Params.Density)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.Width},
		{"h", &c.Height},
		{"neighborhood", &c.Params.Neighborhood},
		{"density", &c.Params.Density},
		{"spread", &c.Params.Spread},
		{"west_wind", &c.Params.WestWind},
		{"south_wind", &c.Params.SouthWind},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] %s %q", f.key, v)
		}
		*f.dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] seed %q", v)
		}
		c.Seed = parsed
	}
	return c, c.Validate()
}
