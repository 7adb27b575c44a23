// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides internationalization and localization support.
// It uses the go-i18n library to load the embedded YAML translation files,
// so the workbench, CLI and API messages can be shown in several languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is used when no language, or an unknown one, is requested.
const DefaultLang = "en"

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	locales   []string
)

// Init loads every embedded locale file and selects lang. Unknown languages
// fall back to English message by message.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	var codes []string
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		codes = append(codes, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(codes)

	if strings.TrimSpace(lang) == "" {
		lang = DefaultLang
	}
	bundle = b
	locales = codes
	current = lang
	localizer = i18n.NewLocalizer(b, lang, DefaultLang)
}

// T translates messageID. When args are given the translation is used as a
// fmt format string. If the ID is unknown the ID itself is returned, so a
// missing key is visible rather than fatal.
func T(messageID string, args ...any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		Init(DefaultLang)
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == "" {
		return DefaultLang
	}
	return current
}

// GetAvailableLocales maps each embedded locale code to its display name.
func GetAvailableLocales() map[string]string {
	mu.RLock()
	b, codes := bundle, locales
	mu.RUnlock()
	if b == nil {
		Init(GetLang())
		mu.RLock()
		b, codes = bundle, locales
		mu.RUnlock()
	}

	out := make(map[string]string, len(codes))
	for _, code := range codes {
		name, err := i18n.NewLocalizer(b, code).Localize(&i18n.LocalizeConfig{MessageID: "language.name"})
		if err != nil {
			name = code
		}
		out[code] = name
	}
	return out
}

// Codes returns the embedded locale codes in sorted order.
func Codes() []string {
	GetAvailableLocales()
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), locales...)
}

// Next returns the locale after lang in Codes order, wrapping around.
func Next(lang string) string {
	codes := Codes()
	if len(codes) == 0 {
		return DefaultLang
	}
	for i, c := range codes {
		if c == lang {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}
