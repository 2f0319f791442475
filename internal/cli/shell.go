package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/epicevents/crm/internal/permissions"
	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

const (
	managementMenu = `
1 - Create a new user
2 - View users
3 - Update user
4 - Delete user
5 - View clients
6 - Update client
7 - Delete client
8 - Create a new contract
9 - View contracts
10 - Update contract
11 - Delete contract
12 - View events
13 - Update event
14 - Delete event
X - logout`

	salesMenu = `
1 - Add a new client
2 - View clients
3 - Update a client
4 - View contracts
5 - Update a contract
6 - Create a new event
7 - View events
X - logout`

	supportMenu = `
1 - View events
2 - Update event
X - logout`
)

// Shell runs a role-scoped interactive menu until the user logs out. Every
// dispatched operation still goes through its own permission chain.
func (r *Runner) Shell(ctx context.Context) error {
	user, err := r.app.Perms.Require(ctx, permissions.Target{})
	if err != nil {
		return err
	}

	for {
		var menu string
		switch user.Role {
		case types.RoleManagement:
			menu = managementMenu
		case types.RoleSales:
			menu = salesMenu
		default:
			menu = supportMenu
		}
		fmt.Fprintln(r.out, menu)

		choice, err := r.promptString("Enter a number to execute the function")
		if err != nil {
			return err
		}
		choice = strings.ToLower(choice)
		if choice == "x" {
			return r.Logout(ctx)
		}

		if err := r.dispatch(ctx, user.Role, choice); err != nil {
			fmt.Fprintln(r.out, err)
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, role types.Role, choice string) error {
	switch role {
	case types.RoleManagement:
		return r.dispatchManagement(ctx, choice)
	case types.RoleSales:
		return r.dispatchSales(ctx, choice)
	default:
		return r.dispatchSupport(ctx, choice)
	}
}

func (r *Runner) dispatchManagement(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return r.CreateUser(ctx, UserOptions{})
	case "2":
		return r.shellReadUsers(ctx)
	case "3":
		return r.shellUpdateUser(ctx)
	case "4":
		return r.shellDeleteByID(ctx, "Enter ID of user to be deleted", r.DeleteUser)
	case "5":
		return r.shellReadClients(ctx)
	case "6":
		return r.shellUpdateClient(ctx)
	case "7":
		return r.shellDeleteByID(ctx, "Enter client id", r.DeleteClient)
	case "8":
		return r.CreateContract(ctx, CreateContractOptions{})
	case "9":
		return r.shellReadContracts(ctx)
	case "10":
		return r.shellUpdateContract(ctx)
	case "11":
		return r.shellDeleteByID(ctx, "Enter id of contract to be deleted", r.DeleteContract)
	case "12":
		return r.shellReadEvents(ctx)
	case "13":
		return r.shellUpdateEvent(ctx)
	case "14":
		return r.shellDeleteByID(ctx, "Enter ID of event to be deleted", r.DeleteEvent)
	default:
		return fmt.Errorf("Invalid input! Enter a choice from the list")
	}
}

func (r *Runner) dispatchSales(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return r.CreateClient(ctx, ClientOptions{})
	case "2":
		return r.shellReadClients(ctx)
	case "3":
		return r.shellUpdateClient(ctx)
	case "4":
		return r.shellReadContracts(ctx)
	case "5":
		return r.shellUpdateContract(ctx)
	case "6":
		return r.CreateEvent(ctx, CreateEventOptions{})
	case "7":
		return r.shellReadEvents(ctx)
	default:
		return fmt.Errorf("Invalid input! Enter a choice from the list")
	}
}

func (r *Runner) dispatchSupport(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return r.shellReadEvents(ctx)
	case "2":
		return r.shellUpdateEvent(ctx)
	default:
		return fmt.Errorf("Invalid input! Enter a choice from the list")
	}
}

// shellDeleteByID prompts for an id and forwards it to a delete operation.
func (r *Runner) shellDeleteByID(ctx context.Context, label string, del func(context.Context, int) error) error {
	id, err := r.promptInt(label)
	if err != nil {
		return err
	}
	return del(ctx, id)
}

func (r *Runner) shellReadUsers(ctx context.Context) error {
	id, err := r.promptOptionalID("Enter ID to view a single user or leave blank to view all users")
	if err != nil {
		return err
	}
	return r.ReadUsers(ctx, id, store.UserFilter{})
}

func (r *Runner) shellReadClients(ctx context.Context) error {
	id, err := r.promptOptionalID("Enter ID to view a single client or leave blank to view all clients")
	if err != nil {
		return err
	}
	return r.ReadClients(ctx, id, store.ClientFilter{})
}

func (r *Runner) shellReadContracts(ctx context.Context) error {
	id, err := r.promptOptionalID("Enter ID to view a single contract or leave blank to view all contracts")
	if err != nil {
		return err
	}
	return r.ReadContracts(ctx, id, store.ContractFilter{})
}

func (r *Runner) shellReadEvents(ctx context.Context) error {
	id, err := r.promptOptionalID("Enter ID to view a single event or leave blank to view all events")
	if err != nil {
		return err
	}
	return r.ReadEvents(ctx, id, store.EventFilter{})
}

func (r *Runner) shellUpdateUser(ctx context.Context) error {
	id, err := r.promptInt("Enter user id to be updated (int)")
	if err != nil {
		return err
	}
	opts := UserOptions{}
	if opts.FullName, err = r.promptString("Enter new fullname or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Username, err = r.promptString("Enter new username or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Role, err = r.promptString("Enter new role or leave blank to maintain current value"); err != nil {
		return err
	}
	return r.UpdateUser(ctx, id, opts)
}

func (r *Runner) shellUpdateClient(ctx context.Context) error {
	id, err := r.promptInt("Enter client id")
	if err != nil {
		return err
	}
	opts := ClientOptions{}
	if opts.FullName, err = r.promptString("Enter new fullname or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Phone, err = r.promptString("Enter new phone or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Email, err = r.promptString("Enter new email or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.CompanyName, err = r.promptString("Enter new company name or leave blank to maintain current value"); err != nil {
		return err
	}
	return r.UpdateClient(ctx, id, opts)
}

func (r *Runner) shellUpdateContract(ctx context.Context) error {
	id, err := r.promptInt("Enter ID of contract")
	if err != nil {
		return err
	}
	opts := UpdateContractOptions{}
	if opts.TotalAmount, err = r.promptOptionalFloat("Enter new total amount or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.AmountRemaining, err = r.promptOptionalFloat("Enter new amount remaining or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Status, err = r.promptString("Enter new status or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.SalesRepID, err = r.promptOptionalInt("Enter new sales rep ID or leave blank to maintain current value"); err != nil {
		return err
	}
	return r.UpdateContract(ctx, id, opts)
}

func (r *Runner) shellUpdateEvent(ctx context.Context) error {
	id, err := r.promptInt("Enter ID of event to be updated")
	if err != nil {
		return err
	}
	opts := UpdateEventOptions{}
	if opts.Name, err = r.promptString("Enter new event name or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.StartDate, err = r.promptString("Enter new start date (YYYYMMDD) or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.EndDate, err = r.promptString("Enter new end date (YYYYMMDD) or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Location, err = r.promptString("Enter new location or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Attendees, err = r.promptOptionalInt("Enter new number of participants or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.Notes, err = r.promptString("Enter new notes or leave blank to maintain current value"); err != nil {
		return err
	}
	if opts.SupportStaffID, err = r.promptOptionalInt("Enter new support staff ID or leave blank to maintain current value"); err != nil {
		return err
	}
	return r.UpdateEvent(ctx, id, opts)
}
