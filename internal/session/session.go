package session

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Values is the session bag. Each key holds a raw JSON document so callers
// decode into their own types.
type Values map[string]json.RawMessage

// CookieOptions controls the cookie carrying the session token.
type CookieOptions struct {
	Name   string
	Path   string
	Secure bool
}

type entry struct {
	values    Values
	expiresAt time.Time
}

// Store keeps session bags in process memory. The cookie only carries a
// signed session id, so dropping a key here takes effect for every copy of
// the cookie.
type Store struct {
	codec  *Codec
	cookie CookieOptions
	now    func() time.Time

	mu        sync.Mutex
	sessions  map[string]entry
	lastSweep time.Time
}

// NewStore creates a new Store
func NewStore(codec *Codec, cookie CookieOptions) *Store {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &Store{
		codec:    codec,
		cookie:   cookie,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// Load returns the session carried by the request. A missing, tampered or
// expired cookie, or one whose id the store no longer knows, yields a fresh
// empty session, never an error.
func (s *Store) Load(r *http.Request) *Session {
	if c, err := r.Cookie(s.cookie.Name); err == nil && c.Value != "" {
		if id, err := s.codec.Decode(c.Value); err == nil {
			if values, ok := s.get(id); ok {
				return &Session{store: s, id: id, values: values}
			}
		}
	}
	return &Session{store: s, id: uuid.NewString(), values: Values{}}
}

func (s *Store) get(id string) (Values, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.sessions, id)
		return nil, false
	}
	return maps.Clone(e.values), true
}

func (s *Store) put(id string, values Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sessions[id] = entry{values: maps.Clone(values), expiresAt: now.Add(s.codec.TTL())}

	if now.Sub(s.lastSweep) < time.Minute {
		return
	}
	for k, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, k)
		}
	}
	s.lastSweep = now
}

// Session is one request's view of the session bag.
type Session struct {
	store  *Store
	id     string
	values Values
}

// Get decodes the value stored under key into dst. It reports false when the
// key is absent or holds JSON null.
func (s *Session) Get(key string, dst any) (bool, error) {
	raw, ok := s.values[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode session key %q: %w", key, err)
	}
	return true, nil
}

// Set stores v under key. Other keys are untouched. Nothing is persisted
// until Save.
func (s *Session) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode session key %q: %w", key, err)
	}
	s.values[key] = raw
	return nil
}

// Save persists the bag server-side and writes the cookie carrying the
// signed session id. Both expire one TTL after this call. It must run
// before the response body is written.
func (s *Session) Save(w http.ResponseWriter) error {
	token, err := s.store.codec.Encode(s.id)
	if err != nil {
		return err
	}
	s.store.put(s.id, s.values)
	http.SetCookie(w, &http.Cookie{
		Name:     s.store.cookie.Name,
		Value:    token,
		Path:     s.store.cookie.Path,
		MaxAge:   int(s.store.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.store.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
