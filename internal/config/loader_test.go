package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary config file
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	configContent := `version: "1.0"
theme:
  name: "high-contrast"
  auto_reload: true
display:
  error_flash: 2s
  ascii: true
output:
  default_format: "json"
  verbose: true
`

	err := os.WriteFile(configPath, []byte(configContent), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	// Verify the config was loaded correctly
	if cfg.Theme.Name != "high-contrast" {
		t.Errorf("Expected theme high-contrast, got %s", cfg.Theme.Name)
	}
	if !cfg.Theme.AutoReload {
		t.Error("Expected auto reload to be true")
	}
	if cfg.Display.ErrorFlash != 2*time.Second {
		t.Errorf("Expected error flash 2s, got %v", cfg.Display.ErrorFlash)
	}
	if !cfg.Display.ASCII {
		t.Error("Expected ASCII mode to be true")
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.Verbose {
		t.Error("Expected verbose to be true")
	}

	// Keys absent from the file keep their defaults
	if !cfg.Display.ShowKeypad {
		t.Error("Expected show_keypad to keep its default")
	}
	if !cfg.Display.ShowExpression {
		t.Error("Expected show_expression to keep its default")
	}
}

func TestLoadConfigPreservesAbsentKeys(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "partial.yaml")

	// A file that only changes the theme must not disturb anything else.
	err := os.WriteFile(configPath, []byte("theme:\n  name: minimal\n"), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Theme.Name != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.Theme.Name)
	}
	want := DefaultConfig()
	if cfg.Display != want.Display {
		t.Errorf("Expected display defaults %+v, got %+v", want.Display, cfg.Display)
	}
	if cfg.Output != want.Output {
		t.Errorf("Expected output defaults %+v, got %+v", want.Output, cfg.Output)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid-config.yaml")

	invalidConfigContent := `version: "1.0"
theme:
  # Invalid YAML - missing closing quote
  name: "default
output:
  verbose: true
`

	err := os.WriteFile(configPath, []byte(invalidConfigContent), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	_, err = loader.LoadConfig(configPath)
	if err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "bad-theme.yaml")

	err := os.WriteFile(configPath, []byte("theme:\n  name: neon\n"), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	_, err = loader.LoadConfig(configPath)
	if err == nil || !strings.Contains(err.Error(), "invalid theme") {
		t.Errorf("Expected theme validation error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"MODCALC_THEME_NAME":          "minimal",
		"MODCALC_DISPLAY_ERROR_FLASH": "3s",
		"MODCALC_DISPLAY_ASCII":       "true",
		"MODCALC_OUTPUT_VERBOSE":      "true",
	}

	// Set environment variables
	for key, value := range envVars {
		_ = os.Setenv(key, value)
	}

	// Clean up environment variables after test
	defer func() {
		for key := range envVars {
			_ = os.Unsetenv(key)
		}
	}()

	loader := NewLoader()
	cfg := DefaultConfig()

	err := loader.applyEnvOverrides(cfg)
	if err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	// Check that environment variables were applied
	if cfg.Theme.Name != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.Theme.Name)
	}
	if cfg.Display.ErrorFlash != 3*time.Second {
		t.Errorf("Expected error flash 3s, got %v", cfg.Display.ErrorFlash)
	}
	if !cfg.Display.ASCII {
		t.Error("Expected ASCII mode to be true")
	}
	if !cfg.Output.Verbose {
		t.Error("Expected verbose to be true")
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid bool", "MODCALC_OUTPUT_VERBOSE", "not-a-bool"},
		{"invalid duration", "MODCALC_DISPLAY_ERROR_FLASH", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Setenv(tt.envVar, tt.value)
			defer func() { _ = os.Unsetenv(tt.envVar) }()

			loader := NewLoader()
			cfg := DefaultConfig()

			err := loader.applyEnvOverrides(cfg)
			if err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "saved", "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme.Name = "high-contrast"
	cfg.Display.ErrorFlash = 2500 * time.Millisecond

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loader := NewLoader()
	loaded, err := loader.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to reload saved config: %v", err)
	}

	if loaded.Theme.Name != "high-contrast" {
		t.Errorf("Expected theme high-contrast after round trip, got %s", loaded.Theme.Name)
	}
	if loaded.Display.ErrorFlash != 2500*time.Millisecond {
		t.Errorf("Expected error flash 2.5s after round trip, got %v", loaded.Display.ErrorFlash)
	}
	if loaded.Display != cfg.Display {
		t.Errorf("Expected display config %+v, got %+v", cfg.Display, loaded.Display)
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme.Name = "neon"

	if err := Save(cfg, configPath); err == nil {
		t.Error("Expected error saving invalid config, but got none")
	}
	if fileExists(configPath) {
		t.Error("Expected no file written for invalid config")
	}
}

func TestSaveRejectsInvalidPath(t *testing.T) {
	cfg := DefaultConfig()
	if err := Save(cfg, filepath.Join(t.TempDir(), "config.txt")); err == nil {
		t.Error("Expected error for non-YAML path, but got none")
	}
}

func TestParseDuration(t *testing.T) {
	var duration time.Duration

	err := parseDuration("30s", &duration)
	if err != nil {
		t.Errorf("Failed to parse duration: %v", err)
	}
	if duration != 30*time.Second {
		t.Errorf("Expected 30s, got %v", duration)
	}

	err = parseDuration("invalid", &duration)
	if err == nil {
		t.Error("Expected error for invalid duration, but got none")
	}
}

func TestParseBool(t *testing.T) {
	var value bool

	err := parseBool("true", &value)
	if err != nil {
		t.Errorf("Failed to parse bool: %v", err)
	}
	if !value {
		t.Errorf("Expected true, got %v", value)
	}

	err = parseBool("false", &value)
	if err != nil {
		t.Errorf("Failed to parse bool: %v", err)
	}
	if value {
		t.Errorf("Expected false, got %v", value)
	}

	err = parseBool("not-a-bool", &value)
	if err == nil {
		t.Error("Expected error for invalid bool, but got none")
	}
}

func TestFindConfigFile(t *testing.T) {
	// Create a config file in the current directory, which is the highest
	// priority search path.
	tempConfigPath := "./.modcalc.yaml"
	if fileExists(tempConfigPath) {
		t.Skip("local .modcalc.yaml already present")
	}
	err := os.WriteFile(tempConfigPath, []byte("version: \"1.0\""), 0o600)
	if err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	defer func() { _ = os.Remove(tempConfigPath) }()

	configPath, found := FindConfigFile()
	if !found {
		t.Error("Expected config file to be found, but none was found")
	}
	if configPath != tempConfigPath {
		t.Errorf("Expected config path %s, got %s", tempConfigPath, configPath)
	}

	if got := SavePath(); got != tempConfigPath {
		t.Errorf("Expected save path %s, got %s", tempConfigPath, got)
	}
}

func TestFileExists(t *testing.T) {
	// Test with non-existent file
	if fileExists("/path/that/does/not/exist") {
		t.Error("Expected file to not exist, but fileExists returned true")
	}

	// Create a temporary file
	tempFile := filepath.Join(t.TempDir(), "test-file")
	err := os.WriteFile(tempFile, []byte("test"), 0o600)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if !fileExists(tempFile) {
		t.Error("Expected file to exist, but fileExists returned false")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid yaml file",
			path:    "config.yaml",
			wantErr: false,
		},
		{
			name:    "valid yml file",
			path:    "config.yml",
			wantErr: false,
		},
		{
			name:    "path traversal attempt",
			path:    "../../../etc/passwd",
			wantErr: true,
			errMsg:  "path traversal not allowed",
		},
		{
			name:    "non-yaml file",
			path:    "config.txt",
			wantErr: true,
			errMsg:  "config file must have .yaml or .yml extension",
		},
		{
			name:    "proc filesystem access",
			path:    "/proc/version.yaml",
			wantErr: true,
			errMsg:  "access to system files not allowed",
		},
		{
			name:    "relative path with valid extension",
			path:    "./configs/app.yaml",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}
