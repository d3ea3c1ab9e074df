package tui

import (
	"fmt"
	"strings"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	items   []models.CachedEntry
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	vault   string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.CachedEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CachedEntry{}, false
	}
	return m.items[m.idx], true
}

// setItems replaces the rows and keeps the cursor on the same entry when it
// is still present.
func (m *listModel) setItems(items []models.CachedEntry) {
	selected, hadSelection := m.current()
	m.items = items

	if hadSelection {
		for i, e := range items {
			if e.ID == selected.ID {
				m.idx = i
				return
			}
		}
	}
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// secretCell is what the list shows in the secret column. Only a visible
// revealed value is printed.
func secretCell(e models.CachedEntry) string {
	if e.Pending {
		return pendingStyle.Render("saving...")
	}
	if !e.Visible {
		return models.MaskedSecret().Display()
	}
	return e.Secret.Display()
}

func (m listModel) View() string {
	var b strings.Builder

	header := m.vault
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No entries\n")
	default:
		for i, e := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-24s %-24s %s\n", cursor, fitText(e.Domain, 24), fitText(e.AccountName, 24), secretCell(e))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("VAULT", b.String(),
		"space show/hide  c copy  n new  e edit  d delete  r refresh\nu unlock  L lock  p vault password  i about  q quit")
}
