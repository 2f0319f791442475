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

// CreateContractOptions carries the flag values of create-contract. Zero
// values are prompted for.
type CreateContractOptions struct {
	ClientID        int
	SalesRepID      int
	TotalAmount     *float64
	AmountRemaining *float64
	Status          string
}

// UpdateContractOptions carries the flag values of update-contract. Nil or
// empty fields keep the current value.
type UpdateContractOptions struct {
	TotalAmount     *float64
	AmountRemaining *float64
	Status          string
	SalesRepID      *int
}

// CreateContract registers a new contract. Management only.
func (r *Runner) CreateContract(ctx context.Context, opts CreateContractOptions) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}, r.app.Perms.ManagementOnly); err != nil {
		return err
	}

	var err error
	if opts.ClientID == 0 {
		if opts.ClientID, err = r.promptInt("ID of the client associated with this contract (integer)"); err != nil {
			return err
		}
	}
	if opts.SalesRepID == 0 {
		if opts.SalesRepID, err = r.promptInt("ID of the Sales rep attached to this contract (integer)"); err != nil {
			return err
		}
	}
	if opts.TotalAmount == nil {
		amount, err := r.promptFloat("Total amount to be paid for the contract")
		if err != nil {
			return err
		}
		opts.TotalAmount = &amount
	}
	if opts.AmountRemaining == nil {
		amount, err := r.promptFloat("Amount remaining to be paid for the contract")
		if err != nil {
			return err
		}
		opts.AmountRemaining = &amount
	}
	if opts.Status == "" {
		if opts.Status, err = r.promptString("Status of the contract (waiting for signature, signed, in progress, finished, terminated, cancelled)"); err != nil {
			return err
		}
	}

	contract, err := r.app.Contracts.Create(ctx, services.CreateContractInput{
		ClientID:        opts.ClientID,
		SalesRepID:      opts.SalesRepID,
		TotalAmount:     *opts.TotalAmount,
		AmountRemaining: *opts.AmountRemaining,
		Status:          opts.Status,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Contract %d created successfully.\n", contract.ID)
	return nil
}

// ReadContracts prints one contract by id, or all contracts matching the
// filter.
func (r *Runner) ReadContracts(ctx context.Context, contractID int, filter store.ContractFilter) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}); err != nil {
		return err
	}

	if contractID != 0 {
		contract, err := r.app.Contracts.GetByID(ctx, contractID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("No Contract found with ID %d", contractID)
			}
			return err
		}
		r.printContracts([]types.Contract{contract})
		return nil
	}

	contracts, err := r.app.Contracts.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(contracts) == 0 {
		fmt.Fprintln(r.out, "No contracts found.")
		return nil
	}
	r.printContracts(contracts)
	return nil
}

// UpdateContract modifies a contract. Management, or the assigned sales
// representative.
func (r *Runner) UpdateContract(ctx context.Context, contractID int, opts UpdateContractOptions) error {
	target := permissions.Target{ContractID: contractID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.ContractSalesRepOrManagement); err != nil {
		return err
	}

	contract, err := r.app.Contracts.Update(ctx, contractID, services.UpdateContractInput{
		TotalAmount:     opts.TotalAmount,
		AmountRemaining: opts.AmountRemaining,
		Status:          opts.Status,
		SalesRepID:      opts.SalesRepID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("Contract with ID %d does not exist", contractID)
		}
		return err
	}

	fmt.Fprintf(r.out, "Contract with ID %d modified successfully.\n", contract.ID)
	return nil
}

// DeleteContract removes a contract. Management, or the assigned sales
// representative.
func (r *Runner) DeleteContract(ctx context.Context, contractID int) error {
	target := permissions.Target{ContractID: contractID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.ContractSalesRepOrManagement); err != nil {
		return err
	}

	if err := r.app.Contracts.Delete(ctx, contractID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("Contract with ID %d not found", contractID)
		}
		return err
	}

	fmt.Fprintf(r.out, "Contract with ID %d deleted successfully\n", contractID)
	return nil
}

func (r *Runner) printContracts(contracts []types.Contract) {
	headers := []string{"ID", "Client", "Sales rep", "Total amount", "Amount remaining", "Status", "Created at", "Last update"}
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.ClientName,
			c.SalesRepName,
			formatAmount(c.TotalAmount),
			formatAmount(c.AmountRemaining),
			string(c.Status),
			formatDate(c.CreatedAt),
			formatDate(c.UpdatedAt),
		})
	}
	r.renderTable("List of Contracts", headers, rows)
}
