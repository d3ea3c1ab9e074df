package tui

import "github.com/Chandhru-27/Primer-The-Digital-Handbook/models"

type statusLoadedMsg struct {
	status models.VaultStatus
	err    error
}

type listLoadedMsg struct {
	err error
}

// entryChangedMsg follows every cache call that may have changed the list,
// failed or not. The list is re-read from the cache on receipt.
type entryChangedMsg struct {
	action string
	err    error
}

type unlockedMsg struct {
	session models.DisclosureSession
	err     error
}

type lockedMsg struct {
	err error
}

type secretSetMsg struct {
	created bool
	err     error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
