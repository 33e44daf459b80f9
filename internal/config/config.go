package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Theme   ThemeConfig   `yaml:"theme" json:"theme"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// ThemeConfig configures the interactive calculator's appearance
type ThemeConfig struct {
	Name       string `yaml:"name" json:"name"`               // default|high-contrast|minimal
	AutoReload bool   `yaml:"auto_reload" json:"auto_reload"` // re-apply when the config file changes
}

// DisplayConfig configures the interactive calculator's layout and behavior
type DisplayConfig struct {
	ErrorFlash     time.Duration `yaml:"error_flash" json:"error_flash"`         // how long input errors stay on screen
	ShowKeypad     bool          `yaml:"show_keypad" json:"show_keypad"`         // render the keypad under the display
	ShowExpression bool          `yaml:"show_expression" json:"show_expression"` // show the pending expression line
	ASCII          bool          `yaml:"ascii" json:"ascii"`                     // ASCII symbols instead of Unicode glyphs
}

// OutputConfig configures output formatting for eval and history export
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // component logging on stderr
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Theme: ThemeConfig{
			Name:       "default",
			AutoReload: false,
		},
		Display: DisplayConfig{
			ErrorFlash:     1500 * time.Millisecond,
			ShowKeypad:     true,
			ShowExpression: true,
			ASCII:          false,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateThemeConfig(); err != nil {
		return err
	}
	if err := c.validateDisplayConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateThemeConfig validates theme-related configuration
func (c *Config) validateThemeConfig() error {
	if c.Theme.Name != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Theme.Name] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Theme.Name)
		}
	}
	return nil
}

// validateDisplayConfig validates display-related configuration
func (c *Config) validateDisplayConfig() error {
	if c.Display.ErrorFlash < 0 {
		return fmt.Errorf("error_flash must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
