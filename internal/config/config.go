package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/datekit/pkg/dateutil"
)

// Output formats for list commands.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents application configuration
type Config struct {
	Locale  LocaleConfig  `mapstructure:"locale"`
	Formats FormatsConfig `mapstructure:"formats"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// LocaleConfig holds the weekday names used for the Mon/Monday tokens
type LocaleConfig struct {
	ShortWeekdays []string `mapstructure:"short_weekdays"` // Sunday first, exactly 7
	DaySuffix     string   `mapstructure:"day_suffix"`
}

// FormatsConfig holds the default Go layouts
type FormatsConfig struct {
	Monday string `mapstructure:"monday"`
	Label  string `mapstructure:"label"`
}

// OutputConfig controls how list commands print
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json or yaml
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration. An explicit configPath must exist; with an
// empty path the usual locations are searched and a missing file means
// defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("datekit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datekit")
		v.AddConfigPath("/etc/datekit")
	}

	// DATEKIT_LOG_LEVEL overrides log.level, and so on
	v.SetEnvPrefix("datekit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale.short_weekdays", dateutil.Japanese.ShortWeekdays[:])
	v.SetDefault("locale.day_suffix", dateutil.Japanese.DaySuffix)
	v.SetDefault("formats.monday", dateutil.DefaultMondayLayout)
	v.SetDefault("formats.label", dateutil.DefaultLabelLayout)
	v.SetDefault("output.format", OutputText)
	v.SetDefault("log.level", "warn")
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Locale: LocaleConfig{
			ShortWeekdays: append([]string(nil), dateutil.Japanese.ShortWeekdays[:]...),
			DaySuffix:     dateutil.Japanese.DaySuffix,
		},
		Formats: FormatsConfig{
			Monday: dateutil.DefaultMondayLayout,
			Label:  dateutil.DefaultLabelLayout,
		},
		Output: OutputConfig{Format: OutputText},
		Log:    LogConfig{Level: "warn"},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if n := len(c.Locale.ShortWeekdays); n != 7 {
		return fmt.Errorf("locale.short_weekdays must list 7 names starting with Sunday, got %d", n)
	}
	for i, name := range c.Locale.ShortWeekdays {
		if name == "" {
			return fmt.Errorf("locale.short_weekdays[%d] is empty", i)
		}
	}

	if err := ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	return nil
}

// ValidateOutputFormat checks a list output format name. Empty means text.
func ValidateOutputFormat(format string) error {
	switch format {
	case "", OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("must be '%s', '%s' or '%s', got '%s'", OutputText, OutputJSON, OutputYAML, format)
	}
}

// WeekdayLocale returns the configured weekday names
func (c *Config) WeekdayLocale() dateutil.Locale {
	var loc dateutil.Locale
	copy(loc.ShortWeekdays[:], c.Locale.ShortWeekdays)
	loc.DaySuffix = c.Locale.DaySuffix
	return loc
}

// GetMondayLayout returns the layout for the monday command
func (c *FormatsConfig) GetMondayLayout() string {
	if c.Monday == "" {
		return dateutil.DefaultMondayLayout
	}
	return c.Monday
}

// GetLabelLayout returns the layout for the label command
func (c *FormatsConfig) GetLabelLayout() string {
	if c.Label == "" {
		return dateutil.DefaultLabelLayout
	}
	return c.Label
}

// GetFormat returns the output format, text by default
func (c *OutputConfig) GetFormat() string {
	if c.Format == "" {
		return OutputText
	}
	return c.Format
}
