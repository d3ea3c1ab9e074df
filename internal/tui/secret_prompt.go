package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type promptKind int

const (
	promptUnlock promptKind = iota
	promptSetSecret
)

// secretPromptModel asks for the vault password. For promptSetSecret it
// has a second field with the current password, required only when one is
// already set.
type secretPromptModel struct {
	kind       promptKind
	inputs     []textinput.Model
	focus      int
	configured bool
	submitting bool
}

func newSecretPromptModel(kind promptKind, configured bool) secretPromptModel {
	count := 1
	if kind == promptSetSecret && configured {
		count = 2
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Focus()

	return secretPromptModel{kind: kind, inputs: inputs, configured: configured}
}

func (m secretPromptModel) focusNext() secretPromptModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m secretPromptModel) secret() string {
	return m.inputs[0].Value()
}

func (m secretPromptModel) currentSecret() string {
	if len(m.inputs) < 2 {
		return ""
	}
	return m.inputs[1].Value()
}

func (m secretPromptModel) missing() string {
	if strings.TrimSpace(m.secret()) == "" {
		return "Vault password is required"
	}
	if len(m.inputs) > 1 && m.currentSecret() == "" {
		return "Current vault password is required"
	}
	return ""
}

func (m secretPromptModel) View() string {
	var (
		title string
		b     strings.Builder
	)

	switch m.kind {
	case promptUnlock:
		title = "UNLOCK VAULT"
		b.WriteString("Vault password: [" + m.inputs[0].View() + "]")
	case promptSetSecret:
		title = "SET VAULT PASSWORD"
		if m.configured {
			title = "CHANGE VAULT PASSWORD"
		}
		b.WriteString("New password:     [" + m.inputs[0].View() + "]")
		if len(m.inputs) > 1 {
			b.WriteString("\nCurrent password: [" + m.inputs[1].View() + "]")
		}
	}
	if m.submitting {
		b.WriteString("\n\nWorking...")
	}

	return renderPage(title, b.String(), "esc cancel  tab next field  enter confirm")
}
