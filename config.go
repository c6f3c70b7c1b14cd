package sprig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// RunConfig holds the window and host settings used by Run.
type RunConfig struct {
	Title         string  `mapstructure:"title"`
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	Resizable     bool    `mapstructure:"resizable"`
	ClearColor    string  `mapstructure:"clear_color"` // "#RRGGBB"
	FontSize      float64 `mapstructure:"font_size"`
	ShowFPS       bool    `mapstructure:"show_fps"`
	Debug         bool    `mapstructure:"debug"`
	ScreenshotDir string  `mapstructure:"screenshot_dir"`
	Script        string  `mapstructure:"script"` // optional YAML script path
}

// DefaultRunConfig returns the settings used when nothing is configured.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Draw Rectangle",
		Width:         600,
		Height:        600,
		Resizable:     true,
		ClearColor:    "#FFFFFF",
		FontSize:      DefaultFontSize,
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig reads configuration from path (YAML, TOML or JSON, chosen by
// extension) and the environment. An empty path reads sprig.{yaml,toml,json}
// from the working directory if present. Env overrides use prefix SPRIG_,
// e.g. SPRIG_WIDTH=800.
func LoadRunConfig(path string) (RunConfig, error) {
	v := viper.New()

	def := DefaultRunConfig()
	v.SetDefault("title", def.Title)
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("resizable", def.Resizable)
	v.SetDefault("clear_color", def.ClearColor)
	v.SetDefault("font_size", def.FontSize)
	v.SetDefault("show_fps", def.ShowFPS)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("screenshot_dir", def.ScreenshotDir)
	v.SetDefault("script", def.Script)

	v.SetEnvPrefix("SPRIG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return RunConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("sprig")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return RunConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c RunConfig
	if err := v.Unmarshal(&c); err != nil {
		return RunConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return RunConfig{}, err
	}
	return c, nil
}

// Validate checks the window size and clear color.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("invalid font size %v", c.FontSize)
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return fmt.Errorf("clear_color: %w", err)
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "RRGGBB" into an opaque Color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return ColorHex(uint32(v)), nil
}
