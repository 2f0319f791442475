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

// ClientOptions carries the flag values of the client commands.
type ClientOptions struct {
	FullName    string
	Email       string
	Phone       string
	CompanyName string
}

// CreateClient registers a new client owned by the acting sales user.
func (r *Runner) CreateClient(ctx context.Context, opts ClientOptions) error {
	user, err := r.app.Perms.Require(ctx, permissions.Target{}, r.app.Perms.SalesOnly)
	if err != nil {
		return err
	}

	if opts.FullName == "" {
		if opts.FullName, err = r.promptString("Client's full name"); err != nil {
			return err
		}
	}
	if opts.Email == "" {
		if opts.Email, err = r.promptString("Client's email"); err != nil {
			return err
		}
	}
	if opts.Phone == "" {
		if opts.Phone, err = r.promptString("Client's phone number"); err != nil {
			return err
		}
	}
	if opts.CompanyName == "" {
		if opts.CompanyName, err = r.promptString("Client's company name"); err != nil {
			return err
		}
	}

	client, err := r.app.Clients.Create(ctx, services.CreateClientInput{
		FullName:    opts.FullName,
		Email:       opts.Email,
		Phone:       opts.Phone,
		CompanyName: opts.CompanyName,
		SalesRepID:  user.ID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Client '%s' created successfully. Client ID: %d\n", client.FullName, client.ID)
	return nil
}

// ReadClients prints one client by id, or all clients matching the filter.
func (r *Runner) ReadClients(ctx context.Context, clientID int, filter store.ClientFilter) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}); err != nil {
		return err
	}

	if clientID != 0 {
		client, err := r.app.Clients.GetByID(ctx, clientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("Client with ID %d not found", clientID)
			}
			return err
		}
		r.printClients([]types.Client{client})
		return nil
	}

	clients, err := r.app.Clients.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		fmt.Fprintln(r.out, "No clients found.")
		return nil
	}
	r.printClients(clients)
	return nil
}

// UpdateClient modifies a client. Only its assigned sales representative
// may do so.
func (r *Runner) UpdateClient(ctx context.Context, clientID int, opts ClientOptions) error {
	target := permissions.Target{ClientID: clientID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.SalesClientRep); err != nil {
		return err
	}

	client, err := r.app.Clients.Update(ctx, clientID, services.UpdateClientInput{
		FullName:    opts.FullName,
		Email:       opts.Email,
		Phone:       opts.Phone,
		CompanyName: opts.CompanyName,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("Client with ID %d does not exist", clientID)
		}
		return err
	}

	fmt.Fprintf(r.out, "Client with ID %d modified successfully.\n", client.ID)
	return nil
}

// DeleteClient removes a client. Only its assigned sales representative may
// do so.
func (r *Runner) DeleteClient(ctx context.Context, clientID int) error {
	target := permissions.Target{ClientID: clientID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.SalesClientRep); err != nil {
		return err
	}

	if err := r.app.Clients.Delete(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("Client with ID %d not found", clientID)
		}
		return err
	}

	fmt.Fprintf(r.out, "Client with ID %d deleted successfully\n", clientID)
	return nil
}

func (r *Runner) printClients(clients []types.Client) {
	headers := []string{"ID", "Full Name", "Email", "Phone", "Company", "Sales rep", "Created at", "Last update"}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.FullName,
			c.Email,
			c.Phone,
			c.CompanyName,
			c.SalesRepName,
			formatDate(c.CreatedAt),
			formatDate(c.UpdatedAt),
		})
	}
	r.renderTable("List of Clients", headers, rows)
}
