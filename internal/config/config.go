// Package config loads the solver configuration from defaults, an optional
// TOML file, KEYPAD_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-ricrob/keypadsolver/solver"
)

// Config holds the solver configuration.
type Config struct {
	Input   string    `mapstructure:"input"`
	Layers  []int     `mapstructure:"layers"`
	Workers int       `mapstructure:"workers"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultLayers are the layer counts solved when nothing else is configured.
var DefaultLayers = []int{2, 25}

// flag names by config key
var flagNames = map[string]string{
	"layers":     "layers",
	"workers":    "workers",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// Load reads the configuration. A config file is taken from the --config
// flag, then KEYPAD_CONFIG, then keypad.toml in the working directory if
// present. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("input", "")
	v.SetDefault("layers", DefaultLayers)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KEYPAD_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("keypad")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("KEYPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if len(c.Layers) == 0 {
		return errors.New("no layer counts configured")
	}
	for _, layers := range c.Layers {
		if layers < 1 || layers > solver.MaxLayers {
			return fmt.Errorf("layer count %d: %w", layers, solver.ErrLayers)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid number of workers %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Logger returns a logger writing to w as configured by c.
func (c LogConfig) Logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	if c.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log, nil
}
