package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Format", cfg.Format, "%i %u %c"},
		{"Locale", cfg.Locale, "en"},
		{"Output", cfg.Output, OutputText},
		{"Timezone", cfg.Timezone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("DefaultConfig().%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing files yield defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadFrom(filepath.Join(dir, "global.yaml"), filepath.Join(dir, "local.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Format != "%i %u %c" {
			t.Errorf("Format = %q, want default", cfg.Format)
		}
		if cfg.Output != OutputText {
			t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
		}
	})

	t.Run("local overrides global", func(t *testing.T) {
		dir := t.TempDir()
		global := filepath.Join(dir, "global.yaml")
		local := filepath.Join(dir, "local.yaml")

		writeFile(t, global, `
format: "%i|%u|%c"
locale: de
timezone: UTC
translations:
  de:
    ago: zuvor
    week: Wo.
`)
		writeFile(t, local, `
locale: fr
translations:
  de:
    ago: vorher
`)

		cfg, err := LoadFrom(global, local)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Format != "%i|%u|%c" {
			t.Errorf("Format = %q, want global value preserved", cfg.Format)
		}
		if cfg.Locale != "fr" {
			t.Errorf("Locale = %q, want fr", cfg.Locale)
		}
		if cfg.Timezone != "UTC" {
			t.Errorf("Timezone = %q, want UTC", cfg.Timezone)
		}
		if got := cfg.Translations["de"]["ago"]; got != "vorher" {
			t.Errorf("Translations[de][ago] = %q, want vorher", got)
		}
		if got := cfg.Translations["de"]["week"]; got != "Wo." {
			t.Errorf("Translations[de][week] = %q, want global value preserved", got)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		global := filepath.Join(dir, "global.yaml")
		writeFile(t, global, "format: [unclosed")

		if _, err := LoadFrom(global, filepath.Join(dir, "local.yaml")); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

func TestFormatter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locale = "es"
	cfg.Timezone = "UTC"

	f, err := cfg.Formatter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := f.Between(base, base.AddDate(0, 0, 14)); got != "2 semanas atrás" {
		t.Errorf("Between = %q, want %q", got, "2 semanas atrás")
	}
}

func TestFormatterErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad timezone", Config{Timezone: "Not/AZone"}},
		{"bad locale", Config{Locale: "!!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Formatter(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != time.Local {
		t.Errorf("Location() = %v, want time.Local", loc)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"format", "%i%u", false},
		{"format", "", false},
		{"locale", "de", false},
		{"locale", "??", true},
		{"timezone", "UTC", false},
		{"timezone", "", false},
		{"timezone", "Mars/Olympus", true},
		{"output", "json", false},
		{"output", "xml", true},
		{"token", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveAsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Locale = "de"
	if err := cfg.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	loaded, err := LoadFrom(path, filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Locale != "de" {
		t.Errorf("Locale = %q, want de", loaded.Locale)
	}
}

func TestMinimalConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveTo(path, MinimalConfig()); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	cfg, err := LoadFrom(path, filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("minimal config did not parse: %v", err)
	}
	if cfg.Format != "%i %u %c" {
		t.Errorf("Format = %q", cfg.Format)
	}
}

func TestToYAML(t *testing.T) {
	out, err := DefaultConfig().ToYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "locale: en") {
		t.Errorf("ToYAML() missing locale, got:\n%s", out)
	}
}
