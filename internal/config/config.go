package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Content  ContentConfig
	Reveal   RevealConfig
	Carousel CarouselConfig
	Submit   SubmitConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig points at the logbook file.
type LogConfig struct {
	Path string
}

// ContentConfig selects the page copy. An empty path uses the built-in
// catalog.
type ContentConfig struct {
	Path string
}

// RevealConfig holds the stagger steps for sections with children.
type RevealConfig struct {
	StepAbout     time.Duration `mapstructure:"step_about"`
	StepAmenities time.Duration `mapstructure:"step_amenities"`
}

// CarouselConfig holds the suite slider settings.
type CarouselConfig struct {
	Transition time.Duration
}

// SubmitConfig holds the form submission settings.
type SubmitConfig struct {
	Delay time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Frame         time.Duration
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

// Load reads configuration from file and env. Env var overrides use prefix VIENNASUITES_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VIENNASUITES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "viennasuites"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VIENNASUITES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file means defaults; a broken one is an error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "viennasuites")
	v.SetDefault("database.path", filepath.Join(dataDir, "viennasuites.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "viennasuites.log"))
	v.SetDefault("content.path", "")
	v.SetDefault("reveal.step_about", 150*time.Millisecond)
	v.SetDefault("reveal.step_amenities", 100*time.Millisecond)
	v.SetDefault("carousel.transition", 500*time.Millisecond)
	v.SetDefault("submit.delay", 1500*time.Millisecond)
	v.SetDefault("ui.frame", 16*time.Millisecond)
	v.SetDefault("ui.toast_duration", 5*time.Second)
}

// Validate rejects durations the interaction layer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Carousel.Transition <= 0:
		return fmt.Errorf("config: carousel.transition must be positive, got %s", c.Carousel.Transition)
	case c.UI.Frame <= 0:
		return fmt.Errorf("config: ui.frame must be positive, got %s", c.UI.Frame)
	case c.Reveal.StepAbout < 0 || c.Reveal.StepAmenities < 0:
		return fmt.Errorf("config: reveal steps must not be negative")
	case c.Submit.Delay < 0:
		return fmt.Errorf("config: submit.delay must not be negative")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("VIENNASUITES_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "viennasuites", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("content.path", cfg.Content.Path)
	v.Set("reveal.step_about", cfg.Reveal.StepAbout.String())
	v.Set("reveal.step_amenities", cfg.Reveal.StepAmenities.String())
	v.Set("carousel.transition", cfg.Carousel.Transition.String())
	v.Set("submit.delay", cfg.Submit.Delay.String())
	v.Set("ui.frame", cfg.UI.Frame.String())
	v.Set("ui.toast_duration", cfg.UI.ToastDuration.String())

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
