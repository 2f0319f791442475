// Package session issues, persists and validates the local login session.
//
// A successful login writes a signed token and its plaintext sidecar to a
// Store. Every later command loads that record, checks the sidecar expiry,
// verifies the signature and resolves the embedded user id against the
// database. Each step degrades to "not authenticated" instead of failing
// loudly; only a token whose signature reports expiry triggers cleanup of
// the persisted file.
package session

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epicevents/crm/types"
)

// UserResolver looks up the user a validated token belongs to. A token whose
// user no longer exists is treated as invalid.
type UserResolver interface {
	GetByID(ctx context.Context, id int) (types.User, error)
}

// Manager owns the session lifecycle.
type Manager struct {
	store  Store
	secret []byte
	users  UserResolver
	now    func() time.Time
}

func NewManager(store Store, secret string, users UserResolver) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		users:  users,
		now:    time.Now,
	}
}

// Issue signs a token for the given user and persists it with its sidecar,
// replacing any previous session. The token string is returned.
func (m *Manager) Issue(user types.User, ttl time.Duration) (string, error) {
	now := m.now()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(user.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	err = m.store.Write(Session{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		UserID:    user.ID,
		UserRole:  string(user.Role),
		UserName:  user.FullName,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Load reads the persisted session. It never fails: a missing, corrupt or
// incomplete session file reads as (zero, false), the canonical "no session"
// signal.
func (m *Manager) Load() (Session, bool) {
	s, err := m.store.Read()
	if err != nil {
		return Session{}, false
	}
	return s, true
}

// Validate checks a loaded session and resolves its user. The sidecar expiry
// must be strictly in the future, the signature must verify and decode to a
// user id, and that user must still exist. When the signature reports expiry
// the persisted session is deleted before returning. Any other failure
// leaves the session in place.
func (m *Manager) Validate(ctx context.Context, s Session) (types.User, bool) {
	if s.Token == "" || s.ExpiresAt == 0 {
		return types.User{}, false
	}
	if !time.Unix(s.ExpiresAt, 0).After(m.now()) {
		// Confirm the expiry against the signature before cleaning up, so
		// a tampered sidecar never deletes a session it does not own.
		if _, err := m.parseSubject(s.Token); errors.Is(err, jwt.ErrTokenExpired) {
			_, _ = m.store.Delete()
		}
		return types.User{}, false
	}

	userID, err := m.parseSubject(s.Token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			_, _ = m.store.Delete()
		}
		return types.User{}, false
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return types.User{}, false
	}
	return user, true
}

// Current is the login gate used before every command: Load then Validate.
func (m *Manager) Current(ctx context.Context) (types.User, bool) {
	s, ok := m.Load()
	if !ok {
		return types.User{}, false
	}
	return m.Validate(ctx, s)
}

// Invalidate deletes the persisted session and reports whether one existed,
// so callers can distinguish "logged out" from "no session found".
func (m *Manager) Invalidate() (bool, error) {
	return m.store.Delete()
}

func (m *Manager) parseSubject(tokenString string) (int, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return 0, errors.New("missing subject")
	}
	userID, err := strconv.Atoi(subject)
	if err != nil || userID < 1 {
		return 0, errors.New("invalid subject")
	}
	return userID, nil
}
