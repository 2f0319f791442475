package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/epicevents/crm/types"
)

func seededUser(t *testing.T) types.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return types.User{
		ID:           1,
		Username:     "jdoe",
		FullName:     "Jane Doe",
		Role:         types.RoleSales,
		PasswordHash: string(hash),
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(newMemUserRepo(seededUser(t)))

	user, err := svc.Authenticate(context.Background(), "jdoe", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("user id = %d, want 1", user.ID)
	}

	// Whitespace around the username is forgiven.
	if _, err := svc.Authenticate(context.Background(), "  jdoe ", "s3cret-pass"); err != nil {
		t.Fatalf("authenticate with padding: %v", err)
	}

	// Wrong password and unknown user are the same failure.
	if _, err := svc.Authenticate(context.Background(), "jdoe", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserCreate(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), CreateUserInput{
		FullName: "  Jane Doe ",
		Username: " jdoe ",
		Password: "s3cret-pass",
		Role:     " Sales ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Username != "jdoe" || user.FullName != "Jane Doe" {
		t.Fatalf("fields not trimmed: %+v", user)
	}
	if user.Role != types.RoleSales {
		t.Fatalf("role = %q, want sales", user.Role)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	tests := []struct {
		name string
		in   CreateUserInput
	}{
		{"missing full name", CreateUserInput{Username: "jdoe", Password: "s3cret-pass", Role: "sales"}},
		{"short password", CreateUserInput{FullName: "Jane Doe", Username: "jdoe", Password: "short", Role: "sales"}},
		{"unknown role", CreateUserInput{FullName: "Jane Doe", Username: "jdoe", Password: "s3cret-pass", Role: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.in); !IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	svc := NewUserService(newMemUserRepo(seededUser(t)))

	_, err := svc.Create(context.Background(), CreateUserInput{
		FullName: "John Doe",
		Username: "jdoe",
		Password: "another-pass",
		Role:     "support",
	})
	if !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), `"jdoe" already exists`) {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUserUpdateKeepsUnsetFields(t *testing.T) {
	repo := newMemUserRepo(seededUser(t))
	svc := NewUserService(repo)

	updated, err := svc.Update(context.Background(), 1, UpdateUserInput{Role: "management"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != types.RoleManagement {
		t.Fatalf("role = %q, want management", updated.Role)
	}
	if updated.Username != "jdoe" || updated.FullName != "Jane Doe" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUserUpdateRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newMemUserRepo(seededUser(t)))

	if _, err := svc.Update(context.Background(), 1, UpdateUserInput{Role: "admin"}); !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
