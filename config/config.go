package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/spiffcs/prettydate/internal/locale"
	"github.com/spiffcs/prettydate/timestamp"
)

// Output modes for the CLI
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config represents the application configuration
type Config struct {
	Format   string `yaml:"format,omitempty" json:"format,omitempty"`
	Locale   string `yaml:"locale,omitempty" json:"locale,omitempty"`
	Timezone string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
	Output   string `yaml:"output,omitempty" json:"output,omitempty"`

	// Translations are layered over the built-in catalogs, keyed by
	// locale and then by the English word.
	Translations locale.Translations `yaml:"translations,omitempty" json:"translations,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".prettydate"
	}
	return filepath.Join(configDir, "prettydate")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".prettydate.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from XDG config directory, then merges
// any local .prettydate.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	return LoadFrom(ConfigPath(), LocalConfigPath())
}

// LoadFrom loads and merges the config files at globalPath and localPath.
// Missing files are skipped.
func LoadFrom(globalPath, localPath string) (*Config, error) {
	cfg := &Config{}

	global, err := readFile(globalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load global config file: %w", err)
	}
	if global != nil {
		cfg = global
	}

	local, err := readFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load local config file: %w", err)
	}
	if local != nil {
		cfg = mergeConfig(cfg, local)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = timestamp.DefaultFormat
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.Output == "" {
		c.Output = OutputText
	}
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{
		Format:   pick(local.Format, global.Format),
		Locale:   pick(local.Locale, global.Locale),
		Timezone: pick(local.Timezone, global.Timezone),
		Output:   pick(local.Output, global.Output),
	}

	// Translations merge per key; local entries win.
	if len(global.Translations) > 0 || len(local.Translations) > 0 {
		result.Translations = locale.Translations{}
		for _, src := range []locale.Translations{global.Translations, local.Translations} {
			for lang, msgs := range src {
				if result.Translations[lang] == nil {
					result.Translations[lang] = map[string]string{}
				}
				for k, v := range msgs {
					result.Translations[lang][k] = v
				}
			}
		}
	}

	return result
}

func pick(local, global string) string {
	if local != "" {
		return local
	}
	return global
}

// Location resolves the configured timezone. Empty means time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Localizer builds the word lookup for the configured locale.
func (c *Config) Localizer() (*locale.Catalog, error) {
	return locale.New(c.Locale, c.Translations)
}

// Formatter builds a timestamp formatter from the configuration. Extra
// options are applied after the configured ones.
func (c *Config) Formatter(extra ...timestamp.Option) (*timestamp.Formatter, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	l, err := c.Localizer()
	if err != nil {
		return nil, err
	}
	opts := []timestamp.Option{
		timestamp.WithLocation(loc),
		timestamp.WithLocalizer(l),
		timestamp.WithFormat(c.Format),
	}
	return timestamp.New(append(opts, extra...)...), nil
}

// Set validates and assigns a single configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "format":
		c.Format = value
	case "locale":
		if _, err := locale.New(value, c.Translations); err != nil {
			return err
		}
		c.Locale = value
	case "timezone":
		if value != "" {
			if _, err := time.LoadLocation(value); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", value, err)
			}
		}
		c.Timezone = value
	case "output":
		if err := ValidateOutput(value); err != nil {
			return err
		}
		c.Output = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// ValidateOutput checks that output is a known output mode.
func ValidateOutput(output string) error {
	switch output {
	case OutputText, OutputTable, OutputJSON:
		return nil
	}
	return fmt.Errorf("invalid output: %s (must be text, table or json)", output)
}

// Save saves the configuration to the global config file
func (c *Config) Save() error {
	return c.SaveAs(ConfigPath())
}

// SaveAs writes the configuration as YAML to path
func (c *Config) SaveAs(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return SaveTo(path, string(data))
}

// DefaultConfig returns a fully populated config with all default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	// Get absolute path for local config
	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# prettydate configuration file
# See: prettydate config defaults  (for all available options)

# Output format. Tokens: %i interval, %u unit, %c "ago"
format: "%i %u %c"

# Language for unit names (built-in: en, de, es, fr)
locale: en

# Timezone used when counting calendar days and months (default: local)
# timezone: Europe/Berlin

# CLI output: text, table or json
output: text

# Extra or replacement words (optional)
# translations:
#   nl:
#     week: week
#     weeks: weken
#     ago: geleden
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
