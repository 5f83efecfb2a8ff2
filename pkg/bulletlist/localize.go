package bulletlist

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
)

// Catalog translates item message IDs into display strings.
// Message files are TOML named by language, e.g. "en.toml" or "active.de.toml".
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog creates an empty catalog whose fallback language is defaultLang.
func NewCatalog(defaultLang language.Tag) *Catalog {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{bundle: bundle}
}

// LoadMessageFile loads a message file from disk.
func (c *Catalog) LoadMessageFile(path string) error {
	if _, err := c.bundle.LoadMessageFile(path); err != nil {
		return NewInfrastructureError("load_messages", err)
	}
	return nil
}

// LoadMessageFileFS loads a message file from fsys, typically an embed.FS.
func (c *Catalog) LoadMessageFileFS(fsys fs.FS, path string) error {
	if _, err := c.bundle.LoadMessageFileFS(fsys, path); err != nil {
		return NewInfrastructureError("load_messages", err)
	}
	return nil
}

// ParseMessageFile loads message file contents; path only supplies the
// language and format.
func (c *Catalog) ParseMessageFile(data []byte, path string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, path); err != nil {
		return NewInfrastructureError("load_messages", err)
	}
	return nil
}

// Languages returns the languages with loaded messages.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Items translates ids for lang, falling back to the default language and
// then to the id itself. An unparsable lang uses the default language.
func (c *Catalog) Items(lang string, ids []string) []string {
	if ids == nil {
		return nil
	}

	var langs []string
	if tag, err := language.Parse(lang); err == nil {
		langs = append(langs, tag.String())
	} else if lang != "" {
		internal.GetInternalLogger().Warn("Unknown language; using default", "lang", lang, "error", err)
	}

	localizer := i18n.NewLocalizer(c.bundle, langs...)

	items := make([]string, len(ids))
	for i, id := range ids {
		// A message missing in lang comes back in the default language
		// alongside a MessageNotFoundErr.
		text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		var notFound *i18n.MessageNotFoundErr
		if text == "" || (err != nil && !errors.As(err, &notFound)) {
			items[i] = id
			continue
		}
		items[i] = text
	}
	return items
}
