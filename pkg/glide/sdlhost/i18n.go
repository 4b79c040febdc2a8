package sdlhost

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/glide/pkg/glide/internal"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message ids used by the footer.
const (
	msgHintScroll   = "HintScroll"
	msgHintJump     = "HintJump"
	msgHintBack     = "HintBack"
	msgHintQuit     = "HintQuit"
	msgHistoryDepth = "HistoryDepth"
	msgLastJump     = "LastJump"
)

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// resolveLanguage picks the UI language: the explicit choice first, then
// LANG, then English.
func resolveLanguage(explicit string) language.Tag {
	for _, candidate := range []string{explicit, os.Getenv("LANG")} {
		if candidate == "" {
			continue
		}
		// LANG looks like de_DE.UTF-8
		candidate, _, _ = strings.Cut(candidate, ".")
		candidate = strings.ReplaceAll(candidate, "_", "-")
		if tag, err := language.Parse(candidate); err == nil {
			return tag
		}
		internal.GetInternalLogger().Debug("Ignoring unparseable language", "value", candidate)
	}
	return language.English
}

// footerText produces the localized footer lines.
type footerText struct {
	localizer *i18n.Localizer
}

func newFooterText(lang string) (*footerText, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	tag := resolveLanguage(lang)
	return &footerText{localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String())}, nil
}

func (f *footerText) message(id string) string {
	text, err := f.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return text
}

// Hints returns the key hints shown in the footer.
func (f *footerText) Hints() []string {
	return []string{
		f.message(msgHintScroll),
		f.message(msgHintJump),
		f.message(msgHintBack),
		f.message(msgHintQuit),
	}
}

// HistoryDepth describes how many jumps Back can undo.
func (f *footerText) HistoryDepth(n int) string {
	text, err := f.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    msgHistoryDepth,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil {
		return fmt.Sprint(n)
	}
	return text
}

// LastJump names the section Back would return from.
func (f *footerText) LastJump(section string) string {
	text, err := f.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    msgLastJump,
		TemplateData: map[string]any{"Section": section},
	})
	if err != nil {
		return section
	}
	return text
}
