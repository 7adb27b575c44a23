// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/payveri/affine/core/affine"
	"github.com/payveri/affine/internal/i18n"
	"github.com/payveri/affine/internal/logging"
	"github.com/payveri/affine/internal/ui"
)

// SampleText is loaded by the sample action together with the default key.
const SampleText = "PayVeri2025-Token"

var sampleKey = affine.Key{A: 5, B: 8}

type mode int

const (
	modeEncrypt mode = iota
	modeDecrypt
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarn
	statusError
)

type action int

const (
	actionRun action = iota
	actionCheck
	actionClear
	actionCopy
	actionSample
)

type button struct {
	labelID string
	action  action
}

var buttons = []button{
	{"button.run", actionRun},
	{"button.check", actionCheck},
	{"button.clear", actionClear},
	{"button.copy", actionCopy},
	{"button.sample", actionSample},
}

// Focus order: input text, key a, key b, then the buttons.
const (
	focusInput = iota
	focusKeyA
	focusKeyB
	focusFirstButton
)

// Options configure the workbench.
type Options struct {
	// Key pre-fills the a and b inputs.
	Key affine.Key
	// StrictB rejects b outside [0, 26) instead of reducing it.
	StrictB bool
	// Clipboard receives copied output. Nil uses ui.DefaultClipboard.
	Clipboard ui.Clipboard
}

// workbenchModel owns all interactive state: the cipher itself is stateless.
type workbenchModel struct {
	mode       mode
	input      textarea.Model
	keyA       textinput.Model
	keyB       textinput.Model
	output     string
	status     string
	statusKind statusKind
	focus      int
	strictB    bool
	clip       ui.Clipboard
	keys       keyMap
	help       help.Model
	width      int
}

func newWorkbench(opts Options) workbenchModel {
	clip := opts.Clipboard
	if clip == nil {
		clip = ui.DefaultClipboard()
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.SetWidth(60)
	ta.CharLimit = 4096

	m := workbenchModel{
		input:   ta,
		keyA:    newKeyInput(opts.Key.A),
		keyB:    newKeyInput(opts.Key.B),
		strictB: opts.StrictB,
		clip:    clip,
		help:    help.New(),
	}
	m.applyLanguage()
	m.setStatus(statusInfo, i18n.T("status.ready"))
	m.input.Focus()
	return m
}

func newKeyInput(v int) textinput.Model {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 6
	t.Width = 6
	t.SetValue(strconv.Itoa(v))
	return t
}

// applyLanguage refreshes every string cached inside sub-models.
func (m *workbenchModel) applyLanguage() {
	m.keys = newKeyMap()
	m.keyA.Prompt = i18n.T("form.key_a")
	m.keyB.Prompt = i18n.T("form.key_b")
	m.input.Placeholder = i18n.T("form.input_placeholder")
}

func (m *workbenchModel) setStatus(k statusKind, text string) {
	m.statusKind = k
	m.status = text
}

func (m workbenchModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m workbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - 8; w > 20 {
			m.input.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Run):
			m.run()
			return m, nil
		case key.Matches(msg, m.keys.Check):
			m.checkKey()
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			m.toggleMode()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyOutput()
			return m, nil
		case key.Matches(msg, m.keys.Sample):
			m.loadSample()
			return m, nil
		case key.Matches(msg, m.keys.Language):
			m.cycleLanguage()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case m.focus >= focusFirstButton && key.Matches(msg, m.keys.Press):
			m.trigger(buttons[m.focus-focusFirstButton].action)
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input only, so typing lands in
// exactly one field.
func (m *workbenchModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusKeyA:
		m.keyA, cmd = m.keyA.Update(msg)
	case focusKeyB:
		m.keyB, cmd = m.keyB.Update(msg)
	}
	return cmd
}

func (m *workbenchModel) setFocus(i int) tea.Cmd {
	total := focusFirstButton + len(buttons)
	m.focus = ((i % total) + total) % total

	m.input.Blur()
	m.keyA.Blur()
	m.keyB.Blur()
	m.keyA.TextStyle = lipgloss.NewStyle()
	m.keyB.TextStyle = lipgloss.NewStyle()

	switch m.focus {
	case focusInput:
		return m.input.Focus()
	case focusKeyA:
		m.keyA.TextStyle = focusedStyle
		return m.keyA.Focus()
	case focusKeyB:
		m.keyB.TextStyle = focusedStyle
		return m.keyB.Focus()
	}
	return nil
}

func (m *workbenchModel) trigger(a action) {
	switch a {
	case actionRun:
		m.run()
	case actionCheck:
		m.checkKey()
	case actionClear:
		m.clear()
	case actionCopy:
		m.copyOutput()
	case actionSample:
		m.loadSample()
	}
}

// resolveKey validates the key inputs, reporting problems on the status line.
func (m *workbenchModel) resolveKey() (affine.Key, bool) {
	k, err := ui.ResolveKey(m.keyA.Value(), m.keyB.Value(), m.strictB)
	if err != nil {
		m.setStatus(statusError, ui.Message(err, k))
		return k, false
	}
	return k, true
}

func (m *workbenchModel) run() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.setStatus(statusWarn, i18n.T("error.empty_input"))
		return
	}
	k, ok := m.resolveKey()
	if !ok {
		return
	}

	if m.mode == modeEncrypt {
		m.output = k.Encrypt(text)
		m.setStatus(statusSuccess, i18n.T("status.encrypted"))
		logging.Debugf("encrypted %d characters with key %s", len(text), k)
		return
	}

	out, err := k.Decrypt(text)
	if err != nil {
		m.setStatus(statusError, ui.Message(err, k))
		return
	}
	m.output = out
	m.setStatus(statusSuccess, i18n.T("status.decrypted"))
	logging.Debugf("decrypted %d characters with key %s", len(text), k)
}

func (m *workbenchModel) checkKey() {
	k, ok := m.resolveKey()
	if !ok {
		return
	}
	m.setStatus(statusSuccess, i18n.T("status.key_valid", k.A, k.B))
}

func (m *workbenchModel) toggleMode() {
	if m.mode == modeEncrypt {
		m.mode = modeDecrypt
	} else {
		m.mode = modeEncrypt
	}
	m.setStatus(statusInfo, m.modeLabel(m.mode))
}

func (m *workbenchModel) clear() {
	m.input.Reset()
	m.output = ""
	m.setStatus(statusInfo, i18n.T("status.cleared"))
}

func (m *workbenchModel) copyOutput() {
	out := strings.TrimSpace(m.output)
	if out == "" {
		m.setStatus(statusInfo, i18n.T("error.nothing_to_copy"))
		return
	}
	if err := m.clip.WriteAll(out); err != nil {
		logging.Warnf("clipboard write failed: %v", err)
		m.setStatus(statusError, i18n.T("error.clipboard", err))
		return
	}
	m.setStatus(statusSuccess, i18n.T("status.copied"))
}

func (m *workbenchModel) loadSample() {
	m.input.SetValue(SampleText)
	m.keyA.SetValue(strconv.Itoa(sampleKey.A))
	m.keyB.SetValue(strconv.Itoa(sampleKey.B))
	m.setStatus(statusInfo, i18n.T("status.sample_loaded"))
}

func (m *workbenchModel) cycleLanguage() {
	next := i18n.Next(i18n.GetLang())
	i18n.SetLang(next)
	m.applyLanguage()
	m.setStatus(statusInfo, i18n.T("status.language", i18n.GetAvailableLocales()[next]))
}

func (m workbenchModel) modeLabel(md mode) string {
	if md == modeDecrypt {
		return i18n.T("mode.decrypt")
	}
	return i18n.T("mode.encrypt")
}

func (m workbenchModel) View() string {
	var items []string

	items = append(items, mainTitleStyle.Render(i18n.T("app.title")), "")

	var modes []string
	for _, md := range []mode{modeEncrypt, modeDecrypt} {
		if md == m.mode {
			modes = append(modes, selectedStyle.Render("(•) "+m.modeLabel(md)))
		} else {
			modes = append(modes, helpStyle.Render("( ) "+m.modeLabel(md)))
		}
	}
	items = append(items, strings.Join(modes, "   "))

	items = append(items, labelStyle.Render(i18n.T("form.input")), m.input.View(), "")
	items = append(items, m.keyA.View(), m.keyB.View(), "")

	var row []string
	for i, b := range buttons {
		style := buttonStyle
		if m.focus == focusFirstButton+i {
			style = activeButtonStyle
		}
		row = append(row, style.Render(i18n.T(b.labelID)))
	}
	items = append(items, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	items = append(items, labelStyle.Render(i18n.T("form.output")))
	out := m.output
	if out == "" {
		out = " "
	}
	items = append(items, outputBoxStyle.Render(out), "")

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	items = append(items, statusStyle(m.statusKind).Width(width).Render(m.status))
	items = append(items, m.help.View(m.keys))
	items = append(items, AlignFooter("", footerStyle.Render(i18n.T("app.footer")), width))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}
