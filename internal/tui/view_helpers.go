package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// statusLine describes the vault state in one line.
func statusLine(s models.VaultStatus, now time.Time) string {
	switch {
	case !s.Configured:
		return "vault: no password set"
	case s.CooldownUntil != nil && now.Before(*s.CooldownUntil):
		return "vault: locked out until " + s.CooldownUntil.Local().Format(time.Kitchen)
	case s.Unlocked && s.ExpiresAt != nil:
		return "vault: unlocked until " + s.ExpiresAt.Local().Format(time.Kitchen) + revealedSuffix(s.Disclosed)
	case s.Unlocked:
		return "vault: unlocked" + revealedSuffix(s.Disclosed)
	default:
		return "vault: locked"
	}
}

func revealedSuffix(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d revealed)", n)
}
