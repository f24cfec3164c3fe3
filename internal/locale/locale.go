// Package locale resolves the words used in relative timestamps for a
// language. Lookups are keyed by the English text and fall back to it.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Lookup keys. Translations are keyed by these English strings.
const (
	OverAYearAgo = "over a year ago"
	Month        = "month"
	Months       = "months"
	Week         = "week"
	Weeks        = "weeks"
	Day          = "day"
	Days         = "days"
	Hour         = "hour"
	Hours        = "hours"
	Minute       = "minute"
	Minutes      = "minutes"
	JustNow      = "just now"
	Ago          = "ago"
)

// Keys returns every lookup key in display order.
func Keys() []string {
	return []string{
		OverAYearAgo,
		Month, Months,
		Week, Weeks,
		Day, Days,
		Hour, Hours,
		Minute, Minutes,
		JustNow,
		Ago,
	}
}

// Localizer translates a lookup key for the active language.
// Implementations return the key itself when no translation exists.
type Localizer interface {
	Localize(key string) string
}

// English is the identity Localizer.
type English struct{}

// Localize returns key unchanged.
func (English) Localize(key string) string { return key }

// Translations maps a language tag to key/text pairs.
type Translations map[string]map[string]string

//go:embed translations/*.yaml
var builtinFS embed.FS

// Builtin returns the translations shipped with the binary.
func Builtin() (Translations, error) {
	entries, err := builtinFS.ReadDir("translations")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in translations: %w", err)
	}

	out := make(Translations, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("translations", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		var msgs map[string]string
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", e.Name(), err)
		}
		out[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = msgs
	}
	return out, nil
}

// Catalog is a Localizer backed by an x/text message catalog for a
// single negotiated language. It is safe for concurrent use.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// New builds a Catalog for the language tag, layering extra on top of
// the built-in translations. An empty tag selects English. Languages with
// no translations resolve to English.
func New(tag string, extra Translations) (*Catalog, error) {
	want := language.English
	if tag != "" {
		t, err := language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
		}
		want = t
	}

	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := b.SetString(language.English, Ago, Ago); err != nil {
		return nil, err
	}
	for lang, msgs := range merge(builtin, extra) {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q in translations: %w", lang, err)
		}
		for key, text := range msgs {
			// Messages are format strings to the printer.
			if err := b.SetString(t, key, strings.ReplaceAll(text, "%", "%%")); err != nil {
				return nil, fmt.Errorf("failed to add %s/%q: %w", lang, key, err)
			}
		}
	}

	matched := language.English
	langs := b.Languages()
	if _, idx, conf := language.NewMatcher(langs).Match(want); conf != language.No {
		matched = langs[idx]
	}

	return &Catalog{
		tag:     matched,
		printer: message.NewPrinter(matched, message.Catalog(b)),
	}, nil
}

// Tag returns the language the catalog resolved to.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Localize returns the translation of key, or key when none exists.
func (c *Catalog) Localize(key string) string {
	if strings.Contains(key, "%") {
		return key
	}
	return c.printer.Sprintf(key)
}

// Available returns the tags of all built-in languages plus English, sorted.
func Available() ([]string, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	tags := []string{language.English.String()}
	for lang := range builtin {
		tags = append(tags, lang)
	}
	sort.Strings(tags)
	return tags, nil
}

// merge overlays extra on base. Neither argument is modified.
func merge(base, extra Translations) Translations {
	out := make(Translations, len(base)+len(extra))
	for lang, msgs := range base {
		m := make(map[string]string, len(msgs))
		for k, v := range msgs {
			m[k] = v
		}
		out[lang] = m
	}
	for lang, msgs := range extra {
		m, ok := out[lang]
		if !ok {
			m = make(map[string]string, len(msgs))
			out[lang] = m
		}
		for k, v := range msgs {
			m[k] = v
		}
	}
	return out
}
