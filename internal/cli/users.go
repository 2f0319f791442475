package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/epicevents/crm/internal/permissions"
	"github.com/epicevents/crm/internal/services"
	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// UserOptions carries the flag values of the user commands. Empty fields
// are prompted for on create and left unchanged on update.
type UserOptions struct {
	FullName string
	Username string
	Role     string
}

// CreateUser registers a new employee account. Management only.
func (r *Runner) CreateUser(ctx context.Context, opts UserOptions) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}, r.app.Perms.ManagementOnly); err != nil {
		return err
	}

	var err error
	if opts.FullName == "" {
		if opts.FullName, err = r.promptString("User's full name"); err != nil {
			return err
		}
	}
	if opts.Username == "" {
		if opts.Username, err = r.promptString("User's username"); err != nil {
			return err
		}
	}
	if opts.Role == "" {
		if opts.Role, err = r.promptString("User's role (sales, support or management)"); err != nil {
			return err
		}
	}
	password, err := r.promptPassword("password")
	if err != nil {
		return err
	}

	user, err := r.app.Users.Create(ctx, services.CreateUserInput{
		FullName: opts.FullName,
		Username: opts.Username,
		Password: password,
		Role:     opts.Role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "User created successfully: %s (ID: %d)\n", user.Username, user.ID)
	return nil
}

// ReadUsers prints one user by id, or all users matching the filter.
func (r *Runner) ReadUsers(ctx context.Context, userID int, filter store.UserFilter) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}); err != nil {
		return err
	}

	if userID != 0 {
		user, err := r.app.Users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("user with ID %d not found", userID)
			}
			return err
		}
		r.printUsers([]types.User{user})
		return nil
	}

	users, err := r.app.Users.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(r.out, "No users found.")
		return nil
	}
	r.printUsers(users)
	return nil
}

// UpdateUser modifies an existing account. Management only.
func (r *Runner) UpdateUser(ctx context.Context, userID int, opts UserOptions) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}, r.app.Perms.ManagementOnly); err != nil {
		return err
	}

	user, err := r.app.Users.Update(ctx, userID, services.UpdateUserInput{
		FullName: opts.FullName,
		Username: opts.Username,
		Role:     opts.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("user with ID %d does not exist", userID)
		}
		return err
	}

	fmt.Fprintf(r.out, "User with ID %d modified successfully.\n", user.ID)
	return nil
}

// DeleteUser removes an account. Management only.
func (r *Runner) DeleteUser(ctx context.Context, userID int) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}, r.app.Perms.ManagementOnly); err != nil {
		return err
	}

	if err := r.app.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("user with ID %d not found", userID)
		}
		return err
	}

	fmt.Fprintf(r.out, "User with ID %d deleted successfully\n", userID)
	return nil
}

func (r *Runner) printUsers(users []types.User) {
	headers := []string{"ID", "Full Name", "Username", "Role"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.FullName, u.Username, string(u.Role),
		})
	}
	r.renderTable("List of users", headers, rows)
}
