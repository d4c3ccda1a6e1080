package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
	"github.com/rs/zerolog"
	"github.com/trim21/errgo"
)

type Application struct {
	InputDir     string `toml:"input_dir"`
	MaxInputSize string `toml:"max_input_size"`
	LogLevel     string `toml:"log_level"`
	Workers      int    `toml:"workers"`
	TopBasins    int    `toml:"top_basins"`
	Render       bool   `toml:"render"`
	JSON         bool   `toml:"json"`
}

type Config struct {
	App Application `toml:"application"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		App: Application{
			InputDir:     "input",
			MaxInputSize: "16MiB",
			LogLevel:     "info",
			Workers:      runtime.GOMAXPROCS(0),
			TopBasins:    3,
		},
	}
}

// LoadFromFile decodes path over the defaults. An empty path returns the
// defaults unchanged.
func LoadFromFile(path string) (Config, error) {
	var cfg = Default()

	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, errgo.Wrap(err, fmt.Sprintf("config file %s does not exist", path))
		}

		return cfg, errgo.Wrap(err, "failed to parse config file")
	}

	return cfg, cfg.Validate()
}

// Validate rejects values no run could use.
func (c Config) Validate() error {
	if c.App.TopBasins < 1 {
		return fmt.Errorf("invalid `application.top_basins` %d, must be at least 1", c.App.TopBasins)
	}

	if c.App.Workers < 0 {
		return fmt.Errorf("invalid `application.workers` %d, must not be negative", c.App.Workers)
	}

	if _, err := c.MaxInputBytes(); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// MaxInputBytes parses max_input_size, e.g. "16MiB" or "512k".
func (c Config) MaxInputBytes() (int64, error) {
	n, err := units.RAMInBytes(c.App.MaxInputSize)
	if err != nil {
		return 0, errgo.Wrap(err, fmt.Sprintf("invalid `application.max_input_size` %q", c.App.MaxInputSize))
	}

	if n <= 0 {
		return 0, fmt.Errorf("invalid `application.max_input_size` %q, must be positive", c.App.MaxInputSize)
	}

	return n, nil
}

// Level parses log_level with zerolog's level names.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.App.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, errgo.Wrap(err, fmt.Sprintf("invalid `application.log_level` %q", c.App.LogLevel))
	}

	return lvl, nil
}
