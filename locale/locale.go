// Package locale loads the English and Hindi message catalogues.
package locale

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"go-healthwatch/types"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

// Translator resolves message keys for the supported languages.
type Translator struct {
	bundle     *i18n.Bundle
	localizers map[types.Language]*i18n.Localizer
}

func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, name := range []string{"en.yaml", "hi.yaml"} {
		buf, err := messageFiles.ReadFile("messages/" + name)
		if err != nil {
			return nil, fmt.Errorf("read message file %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, name); err != nil {
			return nil, fmt.Errorf("parse message file %s: %w", name, err)
		}
	}

	return &Translator{
		bundle: bundle,
		localizers: map[types.Language]*i18n.Localizer{
			types.English: i18n.NewLocalizer(bundle, string(types.English)),
			types.Hindi:   i18n.NewLocalizer(bundle, string(types.Hindi)),
		},
	}, nil
}

// MustNewTranslator is NewTranslator for callers that cannot recover from
// a broken embedded catalogue.
func MustNewTranslator() *Translator {
	t, err := NewTranslator()
	if err != nil {
		panic(err)
	}
	return t
}

// T returns the message for key in lang, falling back to English and then
// to the key itself.
func (t *Translator) T(lang types.Language, key string) string {
	if msg, ok := t.lookup(lang, key); ok {
		return msg
	}
	if msg, ok := t.lookup(types.English, key); ok {
		return msg
	}
	return key
}

func (t *Translator) lookup(lang types.Language, key string) (string, bool) {
	loc, found := t.localizers[lang]
	if !found {
		return "", false
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || msg == "" {
		return "", false
	}
	return msg, true
}
