// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/payveri/affine/internal/i18n"
)

type keyMap struct {
	Run      key.Binding
	Check    key.Binding
	Mode     key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Sample   key.Binding
	Language key.Binding
	Next     key.Binding
	Prev     key.Binding
	Press    key.Binding
	Quit     key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Run, km.Check, km.Mode, km.Clear, km.Copy, km.Sample, km.Language, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Run, km.Check, km.Mode},
		{km.Clear, km.Copy, km.Sample},
		{km.Language, km.Next, km.Prev, km.Quit},
	}
}

// keyMap implements help.KeyMap
var _ help.KeyMap = keyMap{}

// newKeyMap builds the bindings with help text in the active language.
// All actions use ctrl chords so plain keys stay free for typing.
func newKeyMap() keyMap {
	return keyMap{
		Run:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", i18n.T("button.run"))),
		Check:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", i18n.T("button.check"))),
		Mode:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", i18n.T("mode.label"))),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", i18n.T("button.clear"))),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", i18n.T("button.copy"))),
		Sample:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", i18n.T("button.sample"))),
		Language: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", i18n.GetAvailableLocales()[i18n.GetLang()])),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "→")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "←")),
		Press:    key.NewBinding(key.WithKeys("enter", " ")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}
