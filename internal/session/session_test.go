package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epicevents/crm/types"
)

const testSecret = "test-secret"

type fakeResolver struct {
	users map[int]types.User
}

func (f fakeResolver) GetByID(ctx context.Context, id int) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, errors.New("not found")
	}
	return user, nil
}

func testUser() types.User {
	return types.User{ID: 7, Username: "jdoe", FullName: "Jane Doe", Role: types.RoleSales}
}

func newTestManager(t *testing.T, store Store) *Manager {
	t.Helper()
	return NewManager(store, testSecret, fakeResolver{users: map[int]types.User{7: testUser()}})
}

func newFileManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".token")
	return newTestManager(t, NewFileStore(path)), path
}

func TestIssueLoadValidateRoundtrip(t *testing.T) {
	m, _ := newFileManager(t)

	token, err := m.Issue(testUser(), 2*time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token string")
	}

	sess, ok := m.Load()
	if !ok {
		t.Fatal("expected a session after issue")
	}
	if sess.Token != token {
		t.Fatalf("loaded token %q does not match issued token", sess.Token)
	}
	if sess.UserID != 7 || sess.UserRole != "sales" || sess.UserName != "Jane Doe" {
		t.Fatalf("unexpected sidecar: %+v", sess)
	}

	user, ok := m.Validate(context.Background(), sess)
	if !ok {
		t.Fatal("expected validation to succeed")
	}
	if user.ID != 7 {
		t.Fatalf("validated user id = %d, want 7", user.ID)
	}
}

func TestIssueOverwritesPreviousSession(t *testing.T) {
	m, _ := newFileManager(t)

	first, err := m.Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, err := m.Issue(testUser(), 2*time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if first == second {
		t.Fatal("expected a fresh token on re-issue")
	}

	sess, ok := m.Load()
	if !ok {
		t.Fatal("expected a session")
	}
	if sess.Token != second {
		t.Fatal("expected the second token to have replaced the first")
	}
}

func TestLoadNoFile(t *testing.T) {
	m, _ := newFileManager(t)
	if _, ok := m.Load(); ok {
		t.Fatal("expected no session without a token file")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	m, path := newFileManager(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Load(); ok {
		t.Fatal("expected no session from a corrupt file")
	}
}

func TestLoadMissingTokenField(t *testing.T) {
	m, path := newFileManager(t)

	// Valid JSON but without the token field.
	body := `{"expiration_time": 9999999999, "user_id": 7, "user_role": "sales", "user_name": "Jane Doe"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Load(); ok {
		t.Fatal("expected no session when the token field is missing")
	}
}

func TestValidatePastLifetime(t *testing.T) {
	m, path := newFileManager(t)

	if _, err := m.Issue(testUser(), time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}
	sess, ok := m.Load()
	if !ok {
		t.Fatal("expected a session")
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, ok := m.Validate(context.Background(), sess); ok {
		t.Fatal("expected validation to fail past the expiry")
	}
	// The signature confirms the expiry, so the stale session self-cleans.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected the session file to be deleted past the lifetime")
	}
	if _, ok := m.Load(); ok {
		t.Fatal("expected no session after cleanup")
	}
}

func TestValidateExpiredSidecarUnexpiredTokenKeepsFile(t *testing.T) {
	m, path := newFileManager(t)

	// Sidecar claims the session already expired but the embedded claim is
	// still fresh: the decode does not report expiry, so no cleanup.
	token := signTestToken(t, 7, time.Now().Add(time.Hour))
	writeSession(t, m, Session{
		Token:     token,
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		UserID:    7,
		UserRole:  "sales",
		UserName:  "Jane Doe",
	})

	sess, _ := m.Load()
	if _, ok := m.Validate(context.Background(), sess); ok {
		t.Fatal("expected validation to fail on an expired sidecar")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("expected the session file to survive a sidecar-only expiry")
	}
}

func TestValidateTokenExpiryDeletesFile(t *testing.T) {
	m, path := newFileManager(t)

	// Sidecar says the session is still fresh, but the embedded claim has
	// already expired. The decode reports expiry and the file must go.
	expired := signTestToken(t, 7, time.Now().Add(-time.Minute))
	writeSession(t, m, Session{
		Token:     expired,
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
		UserID:    7,
		UserRole:  "sales",
		UserName:  "Jane Doe",
	})

	sess, ok := m.Load()
	if !ok {
		t.Fatal("expected a session")
	}
	if _, ok := m.Validate(context.Background(), sess); ok {
		t.Fatal("expected validation to fail for an expired token")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected the session file to be deleted on detected expiry")
	}
	if _, ok := m.Load(); ok {
		t.Fatal("expected no session after cleanup")
	}
}

func TestValidateGarbageTokenKeepsFile(t *testing.T) {
	m, path := newFileManager(t)

	writeSession(t, m, Session{
		Token:     "not.a.token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
		UserID:    7,
		UserRole:  "sales",
		UserName:  "Jane Doe",
	})

	sess, ok := m.Load()
	if !ok {
		t.Fatal("expected a session")
	}
	if _, ok := m.Validate(context.Background(), sess); ok {
		t.Fatal("expected validation to fail for a garbage token")
	}
	// Only detected expiry cleans up; any other decode failure leaves
	// the file in place.
	if _, err := os.Stat(path); err != nil {
		t.Fatal("expected the session file to survive a non-expiry failure")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	m, _ := newFileManager(t)

	other := NewManager(NewMemoryStore(), "other-secret", fakeResolver{users: map[int]types.User{7: testUser()}})
	forged, err := other.Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	writeSession(t, m, Session{
		Token:     forged,
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
		UserID:    7,
		UserRole:  "sales",
		UserName:  "Jane Doe",
	})

	sess, _ := m.Load()
	if _, ok := m.Validate(context.Background(), sess); ok {
		t.Fatal("expected validation to fail for a token signed with another secret")
	}
}

func TestValidateMissingUser(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, testSecret, fakeResolver{users: map[int]types.User{}})

	if _, err := m.Issue(testUser(), time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}
	sess, ok := m.Load()
	if !ok {
		t.Fatal("expected a session")
	}
	if _, ok := m.Validate(context.Background(), sess); ok {
		t.Fatal("expected validation to fail when the user no longer exists")
	}
}

func TestInvalidate(t *testing.T) {
	m, _ := newFileManager(t)

	present, err := m.Invalidate()
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if present {
		t.Fatal("expected nothing to delete before login")
	}

	if _, err := m.Issue(testUser(), time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}
	present, err = m.Invalidate()
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if !present {
		t.Fatal("expected a session to be deleted after login")
	}
	if _, ok := m.Load(); ok {
		t.Fatal("expected no session after invalidate")
	}
}

func TestMemoryStore(t *testing.T) {
	m := newTestManager(t, NewMemoryStore())

	if _, ok := m.Current(context.Background()); ok {
		t.Fatal("expected no current user before login")
	}
	if _, err := m.Issue(testUser(), time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}
	user, ok := m.Current(context.Background())
	if !ok {
		t.Fatal("expected a current user after login")
	}
	if user.ID != 7 {
		t.Fatalf("current user id = %d, want 7", user.ID)
	}
}

func signTestToken(t *testing.T, userID int, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func writeSession(t *testing.T, m *Manager, s Session) {
	t.Helper()
	if err := m.store.Write(s); err != nil {
		t.Fatalf("write session: %v", err)
	}
}
