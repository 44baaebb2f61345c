// Package locale loads the embedded message catalogues into gotext.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no preference is stored.
const DefaultLanguage = "en"

//go:embed po/*.po
var catalogues embed.FS

// active is the catalogue installed by the last successful Load.
var active gotext.Translator

// Languages lists the embedded catalogues.
func Languages() []string {
	entries, err := catalogues.ReadDir("po")
	if err != nil {
		return []string{DefaultLanguage}
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Load makes lang the active language for gotext.Get. Unknown languages
// fall back to DefaultLanguage with an error describing the fallback.
func Load(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogues.ReadFile("po/" + lang + ".po")
	if err != nil {
		if lang != DefaultLanguage {
			if ferr := Load(DefaultLanguage); ferr != nil {
				return ferr
			}
		}
		return fmt.Errorf("no catalogue for language %q: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator("default", po)
	gotext.SetStorage(l)
	active = po
	return nil
}

// Text translates a key chosen at run time, such as a dialogue line or an
// item name. The result is never run through fmt, so a stray % in content
// is shown as written. Keys without a translation come back unchanged.
func Text(key string) string {
	if active == nil {
		return key
	}
	return active.Get(key)
}

// MustLoadDefault loads the default catalogue and panics if it is missing.
func MustLoadDefault() {
	if err := Load(DefaultLanguage); err != nil {
		panic(err)
	}
}
