// Package config loads the data mapper settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"datamapper/internal/parse"
	"datamapper/mapper"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. DATAMAPPER_LOG_LEVEL.
const EnvPrefix = "DATAMAPPER_"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the config file:
//
//	log_level: info
//	date_time:
//	  location: Europe/Amsterdam
//	  standard_layout: "2006/01/02 15:04:05.000"
//	  formats: ["02/01/2006", "2006-01-02"]
//	bool:
//	  true_values: [true, yes, ja]
//	  false_values: [false, no, nee]
//	image:
//	  jpeg_quality: 90
type Config struct {
	LogLevel string         `yaml:"log_level"`
	DateTime DateTimeConfig `yaml:"date_time"`
	Bool     BoolConfig     `yaml:"bool"`
	Image    ImageConfig    `yaml:"image"`
}

type DateTimeConfig struct {
	Location       string   `yaml:"location,omitempty"`
	StandardLayout string   `yaml:"standard_layout,omitempty"`
	Formats        []string `yaml:"formats,omitempty"`
}

type BoolConfig struct {
	TrueValues  []string `yaml:"true_values,omitempty"`
	FalseValues []string `yaml:"false_values,omitempty"`
}

type ImageConfig struct {
	JPEGQuality int `yaml:"jpeg_quality,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	opts := parse.DefaultOptions()

	return &Config{
		LogLevel: logrus.InfoLevel.String(),
		DateTime: DateTimeConfig{
			StandardLayout: parse.StandardLayout,
			Formats:        opts.Layouts,
		},
		Bool: BoolConfig{
			TrueValues:  opts.TrueValues,
			FalseValues: opts.FalseValues,
		},
		Image: ImageConfig{JPEGQuality: 75},
	}
}

// Load reads the YAML file at path (optional, "" skips it), then the .env
// file at envFile (optional), then applies DATAMAPPER_* overrides.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "LOCATION"); ok {
		c.DateTime.Location = v
	}
	if v, ok := lookup(EnvPrefix + "STANDARD_LAYOUT"); ok {
		c.DateTime.StandardLayout = v
	}
	if v, ok := lookup(EnvPrefix + "DATE_FORMATS"); ok {
		c.DateTime.Formats = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "TRUE_VALUES"); ok {
		c.Bool.TrueValues = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "FALSE_VALUES"); ok {
		c.Bool.FalseValues = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "JPEG_QUALITY"); ok {
		q, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sJPEG_QUALITY: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Image.JPEGQuality = q
	}

	return nil
}

// splitList splits on "|" since layouts may contain commas and spaces.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Validate checks the values that cannot be checked while decoding.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	if _, err := c.location(); err != nil {
		return fmt.Errorf("%w: date_time.location: %w", ErrInvalidConfig, err)
	}

	if q := c.Image.JPEGQuality; q < 1 || q > 100 {
		return fmt.Errorf("%w: image.jpeg_quality %d not in 1..100", ErrInvalidConfig, q)
	}

	return nil
}

func (c *Config) location() (*time.Location, error) {
	if c.DateTime.Location == "" {
		return time.Local, nil
	}

	return time.LoadLocation(c.DateTime.Location)
}

// Level returns the configured log level, info if invalid.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// ParseOptions converts the config into parser options.
func (c *Config) ParseOptions() parse.Options {
	opts := parse.DefaultOptions()
	opts.Layouts = c.DateTime.Formats
	opts.TrueValues = c.Bool.TrueValues
	opts.FalseValues = c.Bool.FalseValues

	if loc, err := c.location(); err == nil {
		opts.Location = loc
	}

	return opts
}

// MapperOptions converts the config into factory options.
func (c *Config) MapperOptions(log logrus.FieldLogger) []mapper.Option {
	return []mapper.Option{
		mapper.WithParseOptions(c.ParseOptions()),
		mapper.WithStandardLayout(c.DateTime.StandardLayout),
		mapper.WithJPEGQuality(c.Image.JPEGQuality),
		mapper.WithLogger(log),
	}
}
