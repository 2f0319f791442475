package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// ErrInvalidCredentials is returned by Authenticate when the username or
// password is wrong. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("authentication failed")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	GetByIDAndRole(ctx context.Context, id int, role types.Role) (types.User, error)
	List(ctx context.Context, filter store.UserFilter) ([]types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
	Delete(ctx context.Context, id int) error
}

// CreateUserInput carries the fields of a new employee account.
type CreateUserInput struct {
	FullName string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=sales support management"`
}

// UpdateUserInput carries optional new values; empty fields keep the
// current value.
type UpdateUserInput struct {
	FullName string
	Username string
	Role     string `validate:"omitempty,oneof=sales support management"`
}

// UserService encapsulates employee-account use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Authenticate verifies a username/password pair against the stored hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter store.UserFilter) ([]types.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (types.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.TrimSpace(in.Username)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if err := checkInput(in); err != nil {
		return types.User{}, err
	}

	if _, err := s.repo.GetByUsername(ctx, in.Username); err == nil {
		return types.User{}, NewValidationError("username %q already exists", in.Username)
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Role:         types.Role(in.Role),
		PasswordHash: string(hashed),
	})
}

func (s *UserService) Update(ctx context.Context, id int, in UpdateUserInput) (types.User, error) {
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if err := checkInput(in); err != nil {
		return types.User{}, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.User{}, err
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Role != "" {
		user.Role = types.Role(in.Role)
	}

	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
