// Package config resolves session options from defaults, an optional TOML file and flags
package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/halflife/constants"
	"github.com/lixenwraith/halflife/grid"
	"github.com/lixenwraith/halflife/render"
)

// Config represents the resolved session options
type Config struct {
	Fidelity    string        `toml:"fidelity"`
	Palette     string        `toml:"palette"`
	Tick        time.Duration `toml:"tick"`
	PollTimeout time.Duration `toml:"poll_timeout"`
	Seed        int64         `toml:"seed"`
	Sound       bool          `toml:"sound"`
	Debug       bool          `toml:"debug"`
}

// ErrInvalid is the cause of every validation failure
var ErrInvalid = errors.New("config: invalid value")

// Default returns the built-in options
func Default() Config {
	return Config{
		Fidelity:    grid.Doubled.String(),
		Palette:     render.PaletteCyan.Name(),
		Tick:        constants.TickInterval,
		PollTimeout: constants.PollTimeout,
	}
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Fidelity, "fidelity", c.Fidelity, "row mapping: doubled (half-blocks) or one")
	fs.StringVar(&c.Palette, "palette", c.Palette, "starting color: cyan, pink, green, white")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "pause after each generation")
	fs.DurationVar(&c.PollTimeout, "poll", c.PollTimeout, "maximum wait for a key press per generation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a tone on every reseed")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log under "+constants.LogDir+"/")
}

// LoadFile overlays values from a TOML file; unknown keys are rejected
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Wrapf(ErrInvalid, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Parse resolves defaults, then the file named by -config, then the remaining flags
func Parse(name string, args []string, output io.Writer) (Config, error) {
	// First pass only locates -config
	probe := Default()
	var path string
	fs := newFlagSet(name, &probe, &path, io.Discard)
	if err := fs.Parse(args); err != nil {
		// Report usage through the real flag set below
		fs = newFlagSet(name, &probe, &path, output)
		return Config{}, fs.Parse(args)
	}

	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	fs = newFlagSet(name, &cfg, &path, output)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Wrapf(ErrInvalid, "unexpected arguments %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func newFlagSet(name string, c *Config, path *string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	c.Bind(fs)
	fs.StringVar(path, "config", "", "TOML file with default options")
	return fs
}

// Validate checks names and duration bounds
func (c Config) Validate() error {
	if _, err := c.FidelityMode(); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if _, err := c.PaletteIndex(); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if err := checkInterval("tick", c.Tick); err != nil {
		return err
	}
	return checkInterval("poll", c.PollTimeout)
}

func checkInterval(name string, d time.Duration) error {
	if d < constants.MinInterval || d > constants.MaxInterval {
		return errors.Wrapf(ErrInvalid, "%s %v outside [%v, %v]", name, d, constants.MinInterval, constants.MaxInterval)
	}
	return nil
}

// FidelityMode parses the fidelity name
func (c Config) FidelityMode() (grid.FidelityMode, error) {
	return grid.ParseFidelity(c.Fidelity)
}

// PaletteIndex parses the palette name
func (c Config) PaletteIndex() (render.PaletteIndex, error) {
	return render.ParsePalette(c.Palette)
}
