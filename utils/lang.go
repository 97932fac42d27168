package utils

import (
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	bundle     *i18n.Bundle
	bundleLock sync.RWMutex
)

// InitI18NBundle loads the message files from dir. Without it, localizers
// fall back to the default english messages compiled into the callers.
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, f := range []string{"en.yaml", "zh_tw.yaml"} {
		if _, err := b.LoadMessageFile(path.Join(dir, f)); err != nil {
			return err
		}
	}

	bundleLock.Lock()
	bundle = b
	bundleLock.Unlock()
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	bundleLock.RLock()
	b := bundle
	bundleLock.RUnlock()

	if b == nil {
		b = i18n.NewBundle(language.English)
	}
	return i18n.NewLocalizer(b, lang)
}

// Localize returns the message in the requested language, or the default
// message when no translation is loaded
func Localize(lang string, message *i18n.Message) string {
	text, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
	})
	if err != nil || text == "" {
		return message.Other
	}
	return text
}
