// Package session keeps the web front-end's per-browser state server side.
package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"ratesmart/config"
)

// FlashKind is the style of a toast message.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is the single toast message shown on the next page render.
type Flash struct {
	Kind    FlashKind
	Message string
}

// Confirmation is a destructive action waiting for the user to confirm it.
type Confirmation struct {
	Action      string
	TargetID    string
	Title       string
	Description string
	ReturnTo    string
}

// Data is everything the front-end remembers about one browser.
type Data struct {
	AccessToken  string
	RefreshToken string
	BusinessJSON json.RawMessage // Cached business as returned by the api.
	IsAdmin      bool
	Flash        *Flash
	Pending      *Confirmation
}

// IsEmpty reports whether there is nothing worth keeping for this browser.
func (d *Data) IsEmpty() bool {
	return d.AccessToken == "" &&
		d.RefreshToken == "" &&
		len(d.BusinessJSON) == 0 &&
		!d.IsAdmin &&
		d.Flash == nil &&
		d.Pending == nil
}

// LoggedInBusiness reports whether a business token is present.
func (d *Data) LoggedInBusiness() bool {
	return d.AccessToken != "" && !d.IsAdmin
}

// LoggedInAdmin reports whether an admin token is present.
func (d *Data) LoggedInAdmin() bool {
	return d.AccessToken != "" && d.IsAdmin
}

// SetFlash replaces any earlier toast.
func (d *Data) SetFlash(kind FlashKind, message string) {
	d.Flash = &Flash{Kind: kind, Message: message}
}

// TakeFlash returns the toast and clears it.
func (d *Data) TakeFlash() *Flash {
	flash := d.Flash
	d.Flash = nil

	return flash
}

// Logout drops credentials but keeps the toast so it can say goodbye.
func (d *Data) Logout() {
	flash := d.Flash
	*d = Data{Flash: flash}
}

type entry struct {
	data      Data
	expiresAt time.Time
}

// Store is an in-memory session store with idle expiry.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
	now     func() time.Time
}

// NewStore creates a store whose entries expire after ttl without use.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// NewID returns a fresh opaque session id.
func NewID() string {
	return uuid.NewString()
}

// Get returns a copy of the session and extends its lifetime.
func (s *Store) Get(id string) (Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Data{}, false
	}
	now := s.now()
	if !now.Before(e.expiresAt) {
		delete(s.entries, id)

		return Data{}, false
	}
	e.expiresAt = now.Add(s.ttl)

	return e.data, true
}

// Save stores data under id and resets its expiry.
func (s *Store) Save(id string, data Data) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = &entry{data: data, expiresAt: s.now().Add(s.ttl)}
}

// Delete forgets the session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
}

// Sweep evicts expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// NewStoreFromConfig builds the store with the configured idle TTL.
func NewStoreFromConfig(cfg *config.Config) *Store {
	ttl := 24 * time.Hour
	if cfg != nil && cfg.Web != nil && cfg.Web.SessionTTL > 0 {
		ttl = cfg.Web.SessionTTL
	}

	return NewStore(ttl)
}
