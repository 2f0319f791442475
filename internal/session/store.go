package session

import (
	"encoding/json"
	"errors"
	"os"
)

// ErrNoSession is returned by Store.Read when no usable session is
// persisted, whatever the underlying cause.
var ErrNoSession = errors.New("no session")

// Session is the persisted record of a login: the signed token plus a
// plaintext sidecar used for role and id checks without re-verifying the
// signature on every read.
type Session struct {
	// Token is the signed credential embedding the user id and expiry.
	Token string `json:"token"`

	// ExpiresAt is the expiry as epoch seconds, duplicated outside the
	// token so expiry checks need no signature work.
	ExpiresAt int64 `json:"expiration_time"`

	// UserID, UserRole and UserName mirror the logged-in user.
	UserID   int    `json:"user_id"`
	UserRole string `json:"user_role"`
	UserName string `json:"user_name"`
}

// Store persists at most one session.
type Store interface {
	// Write replaces any persisted session.
	Write(s Session) error
	// Read returns the persisted session, or ErrNoSession when absent,
	// corrupt, or missing required fields.
	Read() (Session, error)
	// Delete removes the persisted session and reports whether one was
	// present to delete.
	Delete() (bool, error)
}

// FileStore persists the session as a JSON file, whole-file overwrite on
// every write. A partially written or hand-edited file reads as ErrNoSession.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Write(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStore) Read() (Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Session{}, ErrNoSession
	}

	// Decode into a map first so that absent fields are distinguishable
	// from zero values.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Session{}, ErrNoSession
	}
	for _, key := range []string{"token", "expiration_time", "user_id"} {
		if _, ok := raw[key]; !ok {
			return Session{}, ErrNoSession
		}
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, ErrNoSession
	}
	if s.Token == "" {
		return Session{}, ErrNoSession
	}
	return s, nil
}

func (f *FileStore) Delete() (bool, error) {
	if _, err := os.Stat(f.path); err != nil {
		return false, nil
	}
	if err := os.Remove(f.path); err != nil {
		return false, err
	}
	return true, nil
}

// MemoryStore keeps the session in process memory. Used by tests and by the
// interactive shell once a login has been verified.
type MemoryStore struct {
	session *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Write(s Session) error {
	m.session = &s
	return nil
}

func (m *MemoryStore) Read() (Session, error) {
	if m.session == nil || m.session.Token == "" {
		return Session{}, ErrNoSession
	}
	return *m.session, nil
}

func (m *MemoryStore) Delete() (bool, error) {
	present := m.session != nil
	m.session = nil
	return present, nil
}
