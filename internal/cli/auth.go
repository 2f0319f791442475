package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/epicevents/crm/internal/services"
)

// Login prompts for credentials, authenticates them and persists a new
// session token.
func (r *Runner) Login(ctx context.Context) error {
	username, err := r.promptString("username")
	if err != nil {
		return err
	}
	password, err := r.promptPassword("password")
	if err != nil {
		return err
	}

	user, err := r.app.Users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errors.New("Authentication failed")
		}
		return err
	}

	if _, err := r.app.Sessions.Issue(user, r.app.Config.TokenTTL); err != nil {
		return err
	}

	r.app.Log.Debug().Int("user_id", user.ID).Str("role", string(user.Role)).Msg("session issued")
	fmt.Fprintf(r.out, "Login successful! Hello : %s\n", user.FullName)
	return nil
}

// Logout deletes the persisted session, reporting whether one existed.
func (r *Runner) Logout(ctx context.Context) error {
	present, err := r.app.Sessions.Invalidate()
	if err != nil {
		return err
	}
	if present {
		fmt.Fprintln(r.out, "Logout successful!")
	} else {
		fmt.Fprintln(r.out, "No tokens found. The user is not logged in.")
	}
	return nil
}
