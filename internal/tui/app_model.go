package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenForm
	screenPrompt
	screenAbout
)

const (
	pendingPollInterval = 100 * time.Millisecond
	statusDisplayTime   = 2 * time.Second
)

// clipboardWrite is swapped in tests; headless machines have no clipboard.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	cache     service.ClientVaultCache
	access    service.ClientVaultAccessService
	buildInfo models.AppBuildInfo

	currentScreen screen
	list          listModel
	form          formEntryModel
	prompt        secretPromptModel

	vault         models.VaultStatus
	serverVersion string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	m := appModel{
		ctx:           ctx,
		cache:         services.VaultCache,
		access:        services.VaultAccess,
		buildInfo:     buildInfo,
		currentScreen: screenList,
		list:          newListModel(),
	}
	m.list.vault = statusLine(m.vault, time.Now())
	return m
}

type pollMsg struct{}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdRefresh(), m.cmdLoadStatus())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				if id == "" {
					return m, nil
				}
				return m, tea.Batch(m.cmdDelete(id), cmdPoll())
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case statusLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.vault = msg.status
		m.list.vault = statusLine(m.vault, time.Now())
		return m, nil
	case listLoadedMsg:
		m.list.loading = false
		m.list.setItems(m.cache.Entries())
		if msg.err != nil {
			m.showErrorf(msg.err)
		}
		return m, nil
	case entryChangedMsg:
		m.list.setItems(m.cache.Entries())
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		if msg.action != "" {
			m.list.status = msg.action
			return m, cmdClearStatus()
		}
		return m, nil
	case pollMsg:
		m.list.setItems(m.cache.Entries())
		for _, e := range m.list.items {
			if e.Pending {
				return m, cmdPoll()
			}
		}
		return m, nil
	case unlockedMsg:
		m.prompt.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "vault unlocked"
		return m, tea.Batch(m.cmdLoadStatus(), cmdClearStatus())
	case lockedMsg:
		m.list.setItems(m.cache.Entries())
		if msg.err != nil {
			m.showErrorf(msg.err)
		} else {
			m.list.status = "vault locked"
		}
		return m, tea.Batch(m.cmdLoadStatus(), cmdClearStatus())
	case secretSetMsg:
		m.prompt.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.list.setItems(m.cache.Entries())
		m.list.status = "vault password changed"
		if msg.created {
			m.list.status = "vault password set"
		}
		return m, tea.Batch(m.cmdLoadStatus(), cmdClearStatus())
	case versionLoadedMsg:
		if msg.err != nil {
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.status = "copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenPrompt:
		return m.updatePrompt(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	case screenPrompt:
		body = m.prompt.View()
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.showMessage(humanizeError(err))
}

func (m *appModel) showMessage(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggle(item.ID)
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		secret, ok := m.cache.CachedSecret(item.ID)
		if !ok {
			m.showMessage("Show the password first (space), then copy it.")
			return m, nil
		}
		return m, cmdCopyToClipboard(secret)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormEntryModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormEntryModel(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = item.Domain
		m.pendingDelete = item.ID
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh(), m.cmdLoadStatus())
	case key.Matches(keyMsg, keys.unlock):
		m.prompt = newSecretPromptModel(promptUnlock, m.vault.Configured)
		m.currentScreen = screenPrompt
	case key.Matches(keyMsg, keys.lock):
		return m, m.cmdLock()
	case key.Matches(keyMsg, keys.secret):
		m.prompt = newSecretPromptModel(promptSetSecret, m.vault.Configured)
		m.currentScreen = screenPrompt
	case key.Matches(keyMsg, keys.about):
		m.currentScreen = screenAbout
		return m, m.cmdLoadVersion()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if missing := m.form.missing(); missing != "" {
				m.showMessage(missing)
				return m, nil
			}

			m.currentScreen = screenList
			if m.form.editing {
				patch := m.form.toPatch()
				if patch.IsEmpty() {
					return m, nil
				}
				return m, tea.Batch(m.cmdUpdate(m.form.original.ID, patch), cmdPoll())
			}
			return m, tea.Batch(m.cmdAdd(m.form.toInput()), cmdPoll())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.prompt = m.prompt.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.prompt.submitting {
				return m, nil
			}
			if missing := m.prompt.missing(); missing != "" {
				m.showMessage(missing)
				return m, nil
			}
			m.prompt.submitting = true
			if m.prompt.kind == promptUnlock {
				return m, m.cmdUnlock(m.prompt.secret())
			}
			return m, m.cmdSetSecret(m.prompt.secret(), m.prompt.currentSecret())
		}
	}

	var cmd tea.Cmd
	m.prompt.inputs[m.prompt.focus], cmd = m.prompt.inputs[m.prompt.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.about)) {
		m.currentScreen = screenList
	}
	return m, nil
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return listLoadedMsg{err: cache.Refresh(ctx)}
	}
}

func (m appModel) cmdLoadStatus() tea.Cmd {
	ctx, access := m.ctx, m.access
	return func() tea.Msg {
		status, err := access.Status(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m appModel) cmdToggle(id string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		_, err := cache.Toggle(ctx, id)
		return entryChangedMsg{err: err}
	}
}

func (m appModel) cmdAdd(input models.EntryInput) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		_, err := cache.Add(ctx, input)
		return entryChangedMsg{action: "entry added", err: err}
	}
}

func (m appModel) cmdUpdate(id string, patch models.EntryPatch) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		_, err := cache.Update(ctx, id, patch)
		return entryChangedMsg{action: "entry saved", err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		deleted, err := cache.Delete(ctx, id)
		if err == nil && !deleted {
			return entryChangedMsg{action: "entry was already gone"}
		}
		return entryChangedMsg{action: "entry deleted", err: err}
	}
}

func (m appModel) cmdUnlock(secret string) tea.Cmd {
	ctx, access := m.ctx, m.access
	return func() tea.Msg {
		session, err := access.Unlock(ctx, secret)
		return unlockedMsg{session: session, err: err}
	}
}

func (m appModel) cmdLock() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return lockedMsg{err: cache.Lock(ctx)}
	}
}

func (m appModel) cmdSetSecret(secret, currentSecret string) tea.Cmd {
	ctx, access := m.ctx, m.access
	return func() tea.Msg {
		created, err := access.SetSecret(ctx, secret, currentSecret)
		return secretSetMsg{created: created, err: err}
	}
}

func (m appModel) cmdLoadVersion() tea.Cmd {
	ctx, access := m.ctx, m.access
	return func() tea.Msg {
		version, err := access.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdPoll() tea.Cmd {
	return tea.Tick(pendingPollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
