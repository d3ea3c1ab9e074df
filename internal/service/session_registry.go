// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/crypto"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

const sessionTokenBytes = 32

// disclosureSession is a registry record. key is the registry's own copy of
// the vault identity and is wiped when the session ends.
type disclosureSession struct {
	models.DisclosureSession
	key       []byte
	disclosed map[string]struct{}
}

// SessionRegistry holds the live disclosure sessions of every account,
// keyed by token. It is safe for concurrent use.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*disclosureSession
	byUser   map[int64]map[string]struct{}

	ttl time.Duration
	now func() time.Time
}

// NewSessionRegistry returns an empty registry issuing sessions valid for
// ttl.
func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*disclosureSession),
		byUser:   make(map[int64]map[string]struct{}),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Grant registers a new session for userID holding a copy of key.
func (r *SessionRegistry) Grant(userID int64, key []byte) (models.DisclosureSession, error) {
	token, err := newSessionToken()
	if err != nil {
		return models.DisclosureSession{}, err
	}

	now := r.now()
	s := &disclosureSession{
		DisclosureSession: models.DisclosureSession{
			Token:     token,
			UserID:    userID,
			GrantedAt: now,
			ExpiresAt: now.Add(r.ttl),
		},
		key:       append([]byte(nil), key...),
		disclosed: make(map[string]struct{}),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = s
	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]struct{})
	}
	r.byUser[userID][token] = struct{}{}

	return s.DisclosureSession, nil
}

// Lookup returns the session and a copy of its vault identity. The caller
// must wipe the copy. A token that is unknown or belongs to another account
// is [ErrVaultLocked]; an expired one is removed and reported as
// [ErrSessionExpired].
func (r *SessionRegistry) Lookup(userID int64, token string) (models.DisclosureSession, []byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.lookupLocked(userID, token)
	if err != nil {
		return models.DisclosureSession{}, nil, err
	}
	return s.DisclosureSession, append([]byte(nil), s.key...), nil
}

// Session returns the session behind token and how many distinct entries
// were revealed through it. Unlike [SessionRegistry.Lookup] it hands out no
// key material.
func (r *SessionRegistry) Session(userID int64, token string) (models.DisclosureSession, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.lookupLocked(userID, token)
	if err != nil {
		return models.DisclosureSession{}, 0, err
	}
	return s.DisclosureSession, len(s.disclosed), nil
}

// Valid reports whether token is a live session of userID.
func (r *SessionRegistry) Valid(userID int64, token string) bool {
	if token == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.lookupLocked(userID, token)
	return err == nil
}

// MarkDisclosed records entryID as revealed through the session.
func (r *SessionRegistry) MarkDisclosed(token, entryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[token]; ok {
		s.disclosed[entryID] = struct{}{}
	}
}

// Disclosed returns how many distinct entries were revealed through token.
func (r *SessionRegistry) Disclosed(token string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[token]; ok {
		return len(s.disclosed)
	}
	return 0
}

// Forget drops entryID from the disclosed set of every session of userID.
func (r *SessionRegistry) Forget(userID int64, entryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token := range r.byUser[userID] {
		delete(r.sessions[token].disclosed, entryID)
	}
}

// Revoke ends one session. Unknown tokens and tokens of other accounts are
// ignored.
func (r *SessionRegistry) Revoke(userID int64, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok || s.UserID != userID {
		return false
	}
	r.removeLocked(s)
	return true
}

// RevokeAll ends every session of userID and returns how many there were.
func (r *SessionRegistry) RevokeAll(userID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for token := range r.byUser[userID] {
		r.removeLocked(r.sessions[token])
		n++
	}
	return n
}

// Latest returns the live session of userID that expires last.
func (r *SessionRegistry) Latest(userID int64) (models.DisclosureSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var (
		latest models.DisclosureSession
		found  bool
	)
	for token := range r.byUser[userID] {
		s := r.sessions[token]
		if s.Expired(now) {
			continue
		}
		if !found || s.ExpiresAt.After(latest.ExpiresAt) {
			latest, found = s.DisclosureSession, true
		}
	}
	return latest, found
}

// Sweep removes every expired session and returns their owners, one element
// per removed session.
func (r *SessionRegistry) Sweep() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var owners []int64
	for _, s := range r.sessions {
		if s.Expired(now) {
			owners = append(owners, s.UserID)
			r.removeLocked(s)
		}
	}
	return owners
}

// Len returns the number of sessions held, expired ones included.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRegistry) lookupLocked(userID int64, token string) (*disclosureSession, error) {
	s, ok := r.sessions[token]
	if !ok || s.UserID != userID {
		return nil, ErrVaultLocked
	}
	if s.Expired(r.now()) {
		r.removeLocked(s)
		return nil, ErrSessionExpired
	}
	return s, nil
}

func (r *SessionRegistry) removeLocked(s *disclosureSession) {
	crypto.Wipe(s.key)
	delete(r.sessions, s.Token)
	if tokens := r.byUser[s.UserID]; tokens != nil {
		delete(tokens, s.Token)
		if len(tokens) == 0 {
			delete(r.byUser, s.UserID)
		}
	}
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
