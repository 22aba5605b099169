package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Chart modes.
const (
	ChartText  = "text"
	ChartImage = "image"
	ChartNone  = "none"
)

// EnvPrefix is prepended to every environment variable, e.g. DCF_LOG_LEVEL.
const EnvPrefix = "DCF"

// Config holds the CLI settings.
type Config struct {
	LogLevel       string      `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CurrencySymbol string      `mapstructure:"currency_symbol"`
	Chart          ChartConfig `mapstructure:"chart"`
}

// ChartConfig controls how the cash flow chart is rendered.
type ChartConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=text image none"`
	// Path is the image file written in image mode. Extension picks the format.
	Path string `mapstructure:"path" validate:"required_if=Mode image"`
	// Width is the maximum bar length in characters for the text chart.
	Width int `mapstructure:"width" validate:"gt=0,lte=200"`
}

var validate = validator.New()

// Load reads configuration from defaults, an optional dcf.yaml and DCF_*
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	return load(viper.New(), true)
}

func load(v *viper.Viper, readFile bool) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if readFile {
		v.SetConfigName("dcf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dcf")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Chart.Mode = strings.ToLower(strings.TrimSpace(cfg.Chart.Mode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("currency_symbol", "$")
	v.SetDefault("chart.mode", ChartText)
	v.SetDefault("chart.path", "cash_flows.png")
	v.SetDefault("chart.width", 50)
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
