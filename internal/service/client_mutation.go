package service

import (
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// tempIDPrefix marks the id of an added entry the server has not answered
// for yet.
const tempIDPrefix = "tmp-"

type MutationKind int

const (
	MutationAdd MutationKind = iota + 1
	MutationUpdate
	MutationDelete
)

func (k MutationKind) String() string {
	switch k {
	case MutationAdd:
		return "add"
	case MutationUpdate:
		return "update"
	case MutationDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type MutationState int

const (
	MutationInFlight MutationState = iota
	MutationCommitted
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationInFlight:
		return "in_flight"
	case MutationCommitted:
		return "committed"
	case MutationRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// Mutation is one optimistic change of the client cache. It carries what
// is needed to undo it without consulting the server.
type Mutation struct {
	Kind  MutationKind
	State MutationState

	// EntryID is the id the affected record has in the list while the
	// mutation is in flight (the temporary id for an add).
	EntryID       string
	CorrelationID string

	// Prior is the record before the change; nil for an add.
	Prior *models.CachedEntry

	// Index is the position Prior had in the list.
	Index int

	// NewSecret is the secret an update sets; nil when the patch leaves it.
	NewSecret *string
}

// rollback returns list with m undone. list itself is not modified.
func rollback(list []models.CachedEntry, m Mutation) []models.CachedEntry {
	out := cloneEntries(list)

	switch m.Kind {
	case MutationAdd:
		if i := indexByCorrelation(out, m.CorrelationID); i >= 0 {
			out = append(out[:i], out[i+1:]...)
		}

	case MutationUpdate:
		if m.Prior == nil {
			return out
		}
		if i := indexByID(out, m.EntryID); i >= 0 {
			out[i] = *m.Prior
			return out
		}
		out = insertAt(out, m.Index, *m.Prior)

	case MutationDelete:
		if m.Prior == nil || indexByID(out, m.EntryID) >= 0 {
			return out
		}
		out = insertAt(out, m.Index, *m.Prior)
	}

	return out
}

// commit returns list with the server's answer for m folded in. A revealed
// value the client already holds survives when the server sent a mask,
// unless the update replaced the secret with a different one.
func commit(list []models.CachedEntry, m Mutation, server models.EntryView) []models.CachedEntry {
	out := cloneEntries(list)

	var i int
	switch m.Kind {
	case MutationAdd:
		i = indexByCorrelation(out, m.CorrelationID)
	case MutationUpdate:
		i = indexByID(out, m.EntryID)
	default:
		return out
	}

	// A refresh may have replaced the optimistic record with the server's.
	if i < 0 {
		i = indexByID(out, server.ID)
	}
	if i < 0 {
		return append(out, models.CachedEntry{EntryView: server})
	}

	current := out[i]
	merged := models.CachedEntry{EntryView: server, Visible: current.Visible}
	if server.Secret.IsMasked() && !current.Secret.IsMasked() && holdsSecret(current, m.NewSecret) {
		merged.Secret = current.Secret
	}
	if merged.Secret.IsMasked() {
		merged.Visible = false
	}
	out[i] = merged

	return out
}

// holdsSecret reports whether the revealed value of e is still the one the
// server stores after an update setting newSecret.
func holdsSecret(e models.CachedEntry, newSecret *string) bool {
	if newSecret == nil {
		return true
	}
	v, ok := e.Secret.Value()
	return ok && v == *newSecret
}

// applyPatch returns the optimistic form of e after patch. A new secret is
// only held in the clear when the old one already was.
func applyPatch(e models.CachedEntry, patch models.EntryPatch) models.CachedEntry {
	if patch.Domain != nil {
		e.Domain = *patch.Domain
	}
	if patch.AccountName != nil {
		e.AccountName = *patch.AccountName
	}
	if patch.URL != nil {
		e.URL = *patch.URL
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.Secret != nil && !e.Secret.IsMasked() {
		e.Secret = models.RevealedSecret(*patch.Secret)
	}
	return e
}

func cloneEntries(list []models.CachedEntry) []models.CachedEntry {
	return append(make([]models.CachedEntry, 0, len(list)+1), list...)
}

func insertAt(list []models.CachedEntry, index int, e models.CachedEntry) []models.CachedEntry {
	if index < 0 || index > len(list) {
		index = len(list)
	}
	list = append(list, models.CachedEntry{})
	copy(list[index+1:], list[index:])
	list[index] = e
	return list
}

func indexByID(list []models.CachedEntry, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func indexByCorrelation(list []models.CachedEntry, correlationID string) int {
	if correlationID == "" {
		return -1
	}
	for i := range list {
		if list[i].CorrelationID == correlationID {
			return i
		}
	}
	return -1
}
