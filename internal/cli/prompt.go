package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/epicevents/crm/internal/services"
)

func (r *Runner) promptString(label string) (string, error) {
	fmt.Fprintf(r.out, "%s: ", label)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (r *Runner) promptInt(label string) (int, error) {
	raw, err := r.promptString(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, services.NewValidationError("%q is not a valid integer", raw)
	}
	return value, nil
}

func (r *Runner) promptFloat(label string) (float64, error) {
	raw, err := r.promptString(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, services.NewValidationError("%q is not a valid number", raw)
	}
	return value, nil
}

// promptOptionalID reads an id, treating blank input as "all records".
func (r *Runner) promptOptionalID(label string) (int, error) {
	raw, err := r.promptString(label)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, services.NewValidationError("%q is not a valid integer", raw)
	}
	return value, nil
}

// promptOptionalInt reads an int, treating blank input as "keep current".
func (r *Runner) promptOptionalInt(label string) (*int, error) {
	raw, err := r.promptString(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, services.NewValidationError("%q is not a valid integer", raw)
	}
	return &value, nil
}

// promptOptionalFloat reads a number, treating blank input as "keep current".
func (r *Runner) promptOptionalFloat(label string) (*float64, error) {
	raw, err := r.promptString(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, services.NewValidationError("%q is not a valid number", raw)
	}
	return &value, nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain read otherwise (piped input, tests).
func (r *Runner) promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprintf(r.out, "%s: ", label)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return r.promptString(label)
}
