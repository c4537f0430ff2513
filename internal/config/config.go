// Package config provides configuration types and defaults for kvjson.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/kvjson/internal/keys"
	"github.com/zjrosen/kvjson/internal/log"
	"github.com/zjrosen/kvjson/internal/output"
)

// Config holds all configuration options for kvjson.
type Config struct {
	Output OutputConfig      `mapstructure:"output"`
	UI     UIConfig          `mapstructure:"ui"`
	Keys   KeybindingsConfig `mapstructure:"keys"`
	Theme  ThemeConfig       `mapstructure:"theme"`
}

// OutputConfig controls how the buffer is written on exit.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "json" (default) or "yaml"
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Title     string `mapstructure:"title"`
	KeyWidth  int    `mapstructure:"key_width"`  // key column width in the listing
	ShowCount bool   `mapstructure:"show_count"` // append the entry count to the title
}

// KeybindingsConfig overrides the browse-mode keys.
// Editing and exit-prompt keys are fixed.
type KeybindingsConfig struct {
	NewPair string `mapstructure:"new_pair"`
	Quit    string `mapstructure:"quit"`
}

// ThemeConfig overrides individual palette entries with hex colors.
// Empty values keep the adaptive defaults.
type ThemeConfig struct {
	Accent  string `mapstructure:"accent"`
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
}

// Bounds for ui.key_width.
const (
	MinKeyWidth = 1
	MaxKeyWidth = 80
)

// reservedKeys are bound in editing mode and cannot be reused for browse keys.
var reservedKeys = map[string]bool{
	"enter":     true,
	"esc":       true,
	"tab":       true,
	"backspace": true,
}

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	namedKeyPattern = regexp.MustCompile(`^(ctrl|alt)\+[a-z]$`)
)

// ValidateOutput checks the output section.
func ValidateOutput(out OutputConfig) error {
	if _, err := output.ParseFormat(out.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// ValidateUI checks the ui section.
func ValidateUI(ui UIConfig) error {
	if ui.KeyWidth < MinKeyWidth || ui.KeyWidth > MaxKeyWidth {
		return fmt.Errorf("ui.key_width must be between %d and %d, got %d", MinKeyWidth, MaxKeyWidth, ui.KeyWidth)
	}
	return nil
}

// ValidateKeybindings checks the keys section. Empty values fall back to the
// defaults and are valid.
func ValidateKeybindings(kb KeybindingsConfig) error {
	if err := validateKey("keys.new_pair", kb.NewPair); err != nil {
		return err
	}
	if err := validateKey("keys.quit", kb.Quit); err != nil {
		return err
	}

	newPair, quit := kb.NewPair, kb.Quit
	if newPair == "" {
		newPair = keys.DefaultNewPair
	}
	if quit == "" {
		quit = keys.DefaultQuit
	}
	if newPair == quit {
		return fmt.Errorf("keys.new_pair and keys.quit must differ, both are %q", quit)
	}
	return nil
}

func validateKey(field, k string) error {
	if k == "" {
		return nil
	}
	if reservedKeys[k] {
		return fmt.Errorf("%s: %q is reserved for editing", field, k)
	}
	if utf8.RuneCountInString(k) == 1 {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%s: whitespace cannot be bound", field)
		}
		return nil
	}
	if !namedKeyPattern.MatchString(k) {
		return fmt.Errorf("%s: %q must be a single character or ctrl+<letter>/alt+<letter>", field, k)
	}
	return nil
}

// ValidateTheme checks that every color override is a hex color.
func ValidateTheme(theme ThemeConfig) error {
	colors := []struct {
		field string
		value string
	}{
		{"theme.accent", theme.Accent},
		{"theme.muted", theme.Muted},
		{"theme.error", theme.Error},
		{"theme.success", theme.Success},
	}
	for _, c := range colors {
		if c.value != "" && !hexColorPattern.MatchString(c.value) {
			return fmt.Errorf("%s: invalid hex color %q (use #RGB or #RRGGBB)", c.field, c.value)
		}
	}
	return nil
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateOutput(cfg.Output); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateKeybindings(cfg.Keys); err != nil {
		return err
	}
	return ValidateTheme(cfg.Theme)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Output: OutputConfig{
			Format: string(output.FormatJSON),
		},
		UI: UIConfig{
			Title:     "Create new JSON",
			KeyWidth:  25,
			ShowCount: true,
		},
		Keys: KeybindingsConfig{
			NewPair: keys.DefaultNewPair,
			Quit:    keys.DefaultQuit,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# kvjson configuration

# Output written to stdout when you answer "y" on exit
output:
  format: json          # "json" (default) or "yaml"

# UI settings
ui:
  title: "Create new JSON"
  key_width: 25         # Width of the key column in the listing (1-80)
  show_count: true      # Show the number of pairs in the title

# Browse-mode keys. A single character, or ctrl+<letter> / alt+<letter>.
# enter, esc, tab and backspace are reserved for editing.
keys:
  new_pair: e
  quit: q

# Optional hex color overrides. Leave empty to follow the terminal background.
# theme:
#   accent: "#7D56F4"
#   muted: "#696969"
#   error: "#FF8787"
#   success: "#04B575"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
