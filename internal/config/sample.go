package config

// SampleConfig returns a fully commented configuration file with every
// option at its default value.
func SampleConfig() string {
	return `# modcalc configuration file
#
# Search order: ./.modcalc.yaml, ~/.config/modcalc/config.yaml,
# /etc/modcalc/config.yaml. Environment variables with the MODCALC_
# prefix override file settings.

version: "1.0"

theme:
  # Visual theme for the interactive calculator.
  # One of: default, high-contrast, minimal
  name: default
  # Re-apply the theme when the config file changes on disk.
  auto_reload: false

display:
  # How long an input error stays on screen before the calculator resets.
  error_flash: 1.5s
  # Render the keypad under the display.
  show_keypad: true
  # Show the pending expression above the entry line.
  show_expression: true
  # Use ASCII symbols instead of Unicode glyphs.
  ascii: false

output:
  # Default format for eval results and history export.
  # One of: text, json, markdown, csv
  default_format: text
  # Color output: auto, always, never
  color_mode: auto
  # Log component activity to stderr.
  verbose: false
`
}

// MinimalSampleConfig returns a compact configuration with only the settings
// most people change.
func MinimalSampleConfig() string {
	return `version: "1.0"

theme:
  name: default

display:
  error_flash: 1.5s

output:
  default_format: text
`
}
