// Package config loads viewdump settings from defaults, a YAML file and
// VIEWDUMP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rawbytedev/bufview"
	"github.com/rawbytedev/bufview/pkg/packed"
	"github.com/spf13/viper"
)

// Config is the full viewdump configuration.
type Config struct {
	View    ViewConfig    `mapstructure:"view"`
	Output  OutputConfig  `mapstructure:"output"`
	Packed  PackedConfig  `mapstructure:"packed"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ViewConfig struct {
	Order   string `mapstructure:"order"`
	Lens    string `mapstructure:"lens"`
	Columns int    `mapstructure:"columns"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type PackedConfig struct {
	Level   string `mapstructure:"level"`
	MaxSize uint64 `mapstructure:"max_size"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

var (
	Lenses  = []string{"byte", "int16", "float32"}
	Formats = []string{"table", "yaml"}
	levels  = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		View: ViewConfig{
			Order:   "big",
			Lens:    "byte",
			Columns: 8,
		},
		Output: OutputConfig{Format: "table"},
		Packed: PackedConfig{
			Level:   "better",
			MaxSize: packed.DefaultMaxSize,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Console: true,
		},
	}
}

// Load reads cfgFile, or .viewdump.yaml from the home directory or the
// working directory when cfgFile is empty. A missing default file is not
// an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".viewdump")
	}

	v.SetEnvPrefix("VIEWDUMP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks every enumerated and ranged field.
func (c *Config) Validate() error {
	if _, err := bufview.ParseByteOrder(c.View.Order); err != nil {
		return fmt.Errorf("view.order: %w", err)
	}
	if !slices.Contains(Lenses, c.View.Lens) {
		return fmt.Errorf("view.lens must be one of: %v", Lenses)
	}
	if c.View.Columns < 1 || c.View.Columns > 64 {
		return errors.New("view.columns must be between 1 and 64")
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of: %v", Formats)
	}
	if _, err := packed.ParseLevel(c.Packed.Level); err != nil {
		return fmt.Errorf("packed.level: %w", err)
	}
	if !slices.Contains(levels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", levels)
	}
	return nil
}

// ByteOrder returns the parsed view.order.
func (c *Config) ByteOrder() bufview.ByteOrder {
	o, _ := bufview.ParseByteOrder(c.View.Order)
	return o
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("view.order", cfg.View.Order)
	v.SetDefault("view.lens", cfg.View.Lens)
	v.SetDefault("view.columns", cfg.View.Columns)

	v.SetDefault("output.format", cfg.Output.Format)

	v.SetDefault("packed.level", cfg.Packed.Level)
	v.SetDefault("packed.max_size", cfg.Packed.MaxSize)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
