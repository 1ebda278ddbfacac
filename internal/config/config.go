// Package config loads bytegram settings from an optional YAML file,
// BYTEGRAM_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wbrown/bytegram/imageutil"
	"github.com/wbrown/bytegram/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. BYTEGRAM_OUTPUT_DIR.
const EnvPrefix = "BYTEGRAM"

// MaxScale bounds the output upscale factor.
const MaxScale = 16

// Config represents the complete application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Preview PreviewConfig `mapstructure:"preview"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls the image written for each input.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	Format   string `mapstructure:"format"`
	Scale    int    `mapstructure:"scale"`
	Colormap string `mapstructure:"colormap"`
	Caption  bool   `mapstructure:"caption"`
}

// PreviewConfig controls the terminal preview. Width 0 means use the
// terminal width.
type PreviewConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Width   int  `mapstructure:"width"`
}

// ReportConfig controls the YAML sidecar written next to the image.
type ReportConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment overrides
// registered. Flags can be bound to it with BindFlags before Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into a Config. An empty path skips the config
// file and uses defaults, environment and flags only.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Output.Format = imageutil.NormalizeFormat(cfg.Output.Format)
	return &cfg, nil
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"out-dir":       "output.dir",
	"format":        "output.format",
	"scale":         "output.scale",
	"colormap":      "output.colormap",
	"caption":       "output.caption",
	"preview":       "preview.enabled",
	"preview-width": "preview.width",
	"report":        "report.enabled",
	"log-level":     "logging.level",
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("out-dir", "o", ".", "directory to write the image to")
	fs.StringP("format", "f", "png", "image format: "+strings.Join(imageutil.Formats, ", "))
	fs.IntP("scale", "s", 1, "enlarge each cell to scale x scale pixels")
	fs.String("colormap", "gray", colormapUsage())
	fs.Bool("caption", false, "draw the input file name under the image")
	fs.BoolP("preview", "p", false, "print an ANSI preview to stdout")
	fs.Int("preview-width", 0, "preview width in columns (0 = terminal width)")
	fs.Bool("report", false, "write a YAML report next to the image")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
}

// colormapUsage lists the built-in colormaps and, in OpenCV builds, the
// OpenCV ones.
func colormapUsage() string {
	usage := "colormap: " + strings.Join(imageutil.ColormapNames(), ", ")
	if imageutil.OpenCVAvailable {
		usage += "; OpenCV: " + strings.Join(imageutil.CVColormapNames(), ", ")
	}
	return usage
}

// BindFlags binds the flags defined by RegisterFlags into v so that flags
// given on the command line take precedence over file and environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", "png")
	v.SetDefault("output.scale", 1)
	v.SetDefault("output.colormap", imageutil.ColormapGray.Name)
	v.SetDefault("output.caption", false)

	v.SetDefault("preview.enabled", false)
	v.SetDefault("preview.width", 0)

	v.SetDefault("report.enabled", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "plain")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %s",
			c.Output.Format, strings.Join(imageutil.Formats, ", "))
	}
	if c.Output.Scale < 1 || c.Output.Scale > MaxScale {
		return fmt.Errorf("output.scale must be between 1 and %d", MaxScale)
	}
	if !imageutil.IsCVColormap(c.Output.Colormap) {
		if _, err := imageutil.LookupColormap(c.Output.Colormap); err != nil {
			return fmt.Errorf("output.colormap: %w", err)
		}
	}
	if c.Preview.Width < 0 {
		return fmt.Errorf("preview.width must not be negative")
	}
	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error",
			c.Logging.Level)
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range imageutil.Formats {
		if f == format {
			return true
		}
	}
	return false
}
