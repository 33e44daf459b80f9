package symbol

import "strings"

// symbolMap holds glyph and ASCII fallback mappings
var symbolMap = map[string][2]string{
	// [glyph, fallback]
	"calculator": {"🧮", "[CALC]"},
	"multiply":   {"×", "x"},
	"divide":     {"÷", "/"},
	"backspace":  {"⌫", "<-"},
	"pointer":    {"❯", ">"},
	"prompt":     {"▶", ">"},
	"history":    {"🕒", "[HIST]"},
	"theme":      {"🎨", "[THEME]"},
	"error":      {"❌", "[ERR]"},
	"warning":    {"⚠️", "[WRN]"},
	"info":       {"ℹ️", "[INF]"},
	"success":    {"✅", "[OK]"},
	"help":       {"❓", "[?]"},
	"doc":        {"📄", "[DOC]"},
	"folder":     {"📁", "[DIR]"},
	"target":     {"🎯", "[=>]"},
	"bulb":       {"💡", "[TIP]"},
	"summary":    {"📊", "[SUM]"},
}

var asciiOnly bool

// SetASCIIOnly sets the global ASCII-only state
func SetASCIIOnly(disabled bool) {
	asciiOnly = disabled
}

// IsASCIIOnly returns the current ASCII-only state
func IsASCIIOnly() bool {
	return asciiOnly
}

// Get returns the glyph or its fallback based on the ASCII-only setting
func Get(key string) string {
	if mapping, exists := symbolMap[key]; exists {
		if asciiOnly {
			return mapping[1] // fallback
		}
		return mapping[0] // glyph
	}
	return "[?]" // unknown key
}

// Render rewrites any known glyphs in s to their fallbacks when ASCII-only
// mode is on. Strings built from Get never need this; it exists for text that
// embeds glyphs directly, like recorded expressions.
func Render(s string) string {
	if !asciiOnly {
		return s
	}
	for _, mapping := range symbolMap {
		if strings.Contains(s, mapping[0]) {
			s = strings.ReplaceAll(s, mapping[0], mapping[1])
		}
	}
	return s
}
