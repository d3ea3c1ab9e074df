package tui

import (
	"strings"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldDomain = iota
	fieldAccount
	fieldSecret
	fieldURL
	fieldNotes
	fieldCount
)

type formEntryModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	original   models.CachedEntry
	submitting bool
}

// newFormEntryModel opens an empty form, or an edit form for item. The
// secret field starts empty when editing; leaving it empty keeps the stored
// value.
func newFormEntryModel(item *models.CachedEntry) formEntryModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldSecret].EchoMode = textinput.EchoPassword
	inputs[fieldSecret].EchoCharacter = '*'
	inputs[fieldSecret].CharLimit = 256
	inputs[fieldDomain].Focus()

	m := formEntryModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.original = *item
	m.inputs[fieldDomain].SetValue(item.Domain)
	m.inputs[fieldAccount].SetValue(item.AccountName)
	m.inputs[fieldURL].SetValue(item.URL)
	m.inputs[fieldNotes].SetValue(item.Notes)
	m.inputs[fieldSecret].Placeholder = "unchanged"
	return m
}

func (m formEntryModel) focusNext() formEntryModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formEntryModel) focusPrev() formEntryModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formEntryModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// missing names the first required field left empty, or "".
func (m formEntryModel) missing() string {
	switch {
	case m.value(fieldDomain) == "":
		return "Domain is required"
	case m.value(fieldAccount) == "":
		return "Account name is required"
	case !m.editing && m.inputs[fieldSecret].Value() == "":
		return "Password or PIN is required"
	}
	return ""
}

func (m formEntryModel) toInput() models.EntryInput {
	return models.EntryInput{
		Domain:      m.value(fieldDomain),
		AccountName: m.value(fieldAccount),
		Secret:      m.inputs[fieldSecret].Value(),
		URL:         m.value(fieldURL),
		Notes:       m.value(fieldNotes),
	}
}

// toPatch carries only the fields that differ from the entry being edited.
func (m formEntryModel) toPatch() models.EntryPatch {
	var patch models.EntryPatch
	changed := func(field int, old string) *string {
		v := m.value(field)
		if v == old {
			return nil
		}
		return &v
	}

	patch.Domain = changed(fieldDomain, m.original.Domain)
	patch.AccountName = changed(fieldAccount, m.original.AccountName)
	patch.URL = changed(fieldURL, m.original.URL)
	patch.Notes = changed(fieldNotes, m.original.Notes)
	if secret := m.inputs[fieldSecret].Value(); secret != "" {
		patch.Secret = &secret
	}
	return patch
}

func (m formEntryModel) View() string {
	title := "NEW ENTRY"
	if m.editing {
		title = "EDIT: " + m.original.Domain
	}

	var b strings.Builder
	b.WriteString("Domain:   [" + m.inputs[fieldDomain].View() + "]\n")
	b.WriteString("Account:  [" + m.inputs[fieldAccount].View() + "]\n")
	b.WriteString("Password: [" + m.inputs[fieldSecret].View() + "]\n")
	b.WriteString("URL:      [" + m.inputs[fieldURL].View() + "]\n")
	b.WriteString("Notes:    [" + m.inputs[fieldNotes].View() + "]")
	if m.submitting {
		b.WriteString("\n\nSaving...")
	}

	return renderPage(title, b.String(), "esc cancel  tab next field  enter save")
}
