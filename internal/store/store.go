package store

import (
	"encoding/json"

	"github.com/alfdana/danashell/internal/logger"
)

// Storage keys. External tooling inspecting the storage area relies on
// these exact strings; do not rename.
const (
	keyProfile       = "alfdana-profile"
	keyRequests      = "alfdana-requests"
	keyNotifications = "alfdana-notifications"
	keyCredential    = "alfdana-credential"
	keySession       = "alfdana-session"
)

// sessionMarker is the raw value written while a session is active.
const sessionMarker = "true"

// Store is the typed facade over the KV area. Every read returns a parsed
// value or a well-defined empty default; malformed data is treated exactly
// like absent data. Every write is best-effort.
type Store struct {
	kv  KV
	log logger.Logger
}

// New creates a Store over the given KV. A nil logger discards output.
func New(kv KV, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// decode parses raw JSON into T, collapsing any parse or validation
// failure into absence.
func decode[T any](raw string, valid func(*T) bool) (*T, bool) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	if valid != nil && !valid(&v) {
		return nil, false
	}
	return &v, true
}

func (s *Store) get(key string) (string, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Debug("storage read failed", logger.String("key", key), logger.Error(err))
		return "", false
	}
	return raw, ok
}

func (s *Store) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("storage encode failed", logger.String("key", key), logger.Error(err))
		return
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		s.log.Debug("storage write dropped", logger.String("key", key), logger.Error(err))
	}
}

func (s *Store) remove(key string) {
	if err := s.kv.Delete(key); err != nil {
		s.log.Debug("storage delete dropped", logger.String("key", key), logger.Error(err))
	}
}

// GetProfile returns the stored profile, or nil.
func (s *Store) GetProfile() *UserProfile {
	raw, ok := s.get(keyProfile)
	if !ok {
		return nil
	}
	p, ok := decode[UserProfile](raw, (*UserProfile).valid)
	if !ok {
		return nil
	}
	return p
}

// SaveProfile overwrites the whole profile record.
func (s *Store) SaveProfile(p UserProfile) {
	s.set(keyProfile, p)
}

// ClearProfile removes the profile record.
func (s *Store) ClearProfile() {
	s.remove(keyProfile)
}

// GetCredential returns the stored credential set, or nil.
func (s *Store) GetCredential() *AuthCredential {
	raw, ok := s.get(keyCredential)
	if !ok {
		return nil
	}
	c, ok := decode[AuthCredential](raw, (*AuthCredential).valid)
	if !ok {
		return nil
	}
	return c
}

// SaveCredential overwrites the single credential set.
func (s *Store) SaveCredential(c AuthCredential) {
	s.set(keyCredential, c)
}

// HasSession reports whether the simulated login is active.
func (s *Store) HasSession() bool {
	raw, ok := s.get(keySession)
	return ok && raw == sessionMarker
}

// SetSession writes the session marker, or removes it for false.
func (s *Store) SetSession(active bool) {
	if active {
		if err := s.kv.Set(keySession, sessionMarker); err != nil {
			s.log.Debug("storage write dropped", logger.String("key", keySession), logger.Error(err))
		}
		return
	}
	s.remove(keySession)
}

// ClearAuth removes credential and session. Two idempotent removals with
// no rollback; a failure of the second leaves only removals to retry.
func (s *Store) ClearAuth() {
	s.remove(keyCredential)
	s.remove(keySession)
}

// GetRequests returns the quote request list, newest first. Never nil.
func (s *Store) GetRequests() []QuoteRequest {
	raw, ok := s.get(keyRequests)
	if !ok {
		return []QuoteRequest{}
	}
	var list []QuoteRequest
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []QuoteRequest{}
	}
	if list == nil {
		list = []QuoteRequest{}
	}
	return list
}

// SaveRequest prepends a request so the newest shows first.
func (s *Store) SaveRequest(req QuoteRequest) {
	s.set(keyRequests, append([]QuoteRequest{req}, s.GetRequests()...))
}

// GetNotifications returns the notification list, newest first. Never nil.
func (s *Store) GetNotifications() []AppNotification {
	raw, ok := s.get(keyNotifications)
	if !ok {
		return []AppNotification{}
	}
	var list []AppNotification
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []AppNotification{}
	}
	if list == nil {
		list = []AppNotification{}
	}
	return list
}

// SaveNotification prepends a notification so the newest shows first.
func (s *Store) SaveNotification(n AppNotification) {
	s.set(keyNotifications, append([]AppNotification{n}, s.GetNotifications()...))
}

// MarkAllNotificationsRead flips every record's read flag in one bulk
// write. Idempotent.
func (s *Store) MarkAllNotificationsRead() {
	list := s.GetNotifications()
	for i := range list {
		list[i].Read = true
	}
	s.set(keyNotifications, list)
}

// GetUnreadCount returns the number of unread notifications. Derived, not
// stored.
func (s *Store) GetUnreadCount() int {
	count := 0
	for _, n := range s.GetNotifications() {
		if !n.Read {
			count++
		}
	}
	return count
}
