// Package i18n holds the user-facing message catalog. Messages are looked up
// by key; a key without a translation comes back unchanged.
package i18n

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when a requested language has no catalog
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

// Catalog translates message keys for one language
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load returns the catalog for lang, falling back to DefaultLanguage
func Load(lang string) (*Catalog, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		if lang == DefaultLanguage {
			return nil, fmt.Errorf("load catalog %q: %w", lang, err)
		}
		return Load(DefaultLanguage)
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// Language returns the catalog's language
func (c *Catalog) Language() string {
	return c.lang
}

// Get translates key and formats it with args
func (c *Catalog) Get(key string, args ...any) string {
	if c == nil || c.po == nil {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}
	return c.po.Get(key, args...)
}

var current *Catalog

func init() {
	c, err := Load(DefaultLanguage)
	if err != nil {
		panic(err)
	}
	current = c
}

// SetLanguage switches the package catalog
func SetLanguage(lang string) error {
	c, err := Load(lang)
	if err != nil {
		return err
	}
	current = c
	return nil
}

// Get translates key with the package catalog
func Get(key string, args ...any) string {
	return current.Get(key, args...)
}
