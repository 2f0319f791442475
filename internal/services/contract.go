package services

import (
	"context"
	"errors"

	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// ContractRepository defines persistence operations for contracts.
type ContractRepository interface {
	GetByID(ctx context.Context, id int) (types.Contract, error)
	List(ctx context.Context, filter store.ContractFilter) ([]types.Contract, error)
	Create(ctx context.Context, contract types.Contract) (types.Contract, error)
	Update(ctx context.Context, contract types.Contract) (types.Contract, error)
	Delete(ctx context.Context, id int) error
}

// salesRepFinder resolves a user by id and role. Satisfied by the user
// repository.
type salesRepFinder interface {
	GetByIDAndRole(ctx context.Context, id int, role types.Role) (types.User, error)
}

// clientFinder resolves a client by id. Satisfied by the client repository.
type clientFinder interface {
	GetByID(ctx context.Context, id int) (types.Client, error)
}

// CreateContractInput carries the fields of a new contract. A zero
// SalesRepID means "use the client's own sales representative".
type CreateContractInput struct {
	ClientID        int `validate:"required,gt=0"`
	SalesRepID      int
	TotalAmount     float64 `validate:"gte=0"`
	AmountRemaining float64 `validate:"gte=0"`
	Status          string  `validate:"required"`
}

// UpdateContractInput carries optional new values; nil fields keep the
// current value.
type UpdateContractInput struct {
	TotalAmount     *float64
	AmountRemaining *float64
	Status          string
	SalesRepID      *int
}

// ContractService encapsulates contract use-cases, including the invariant
// that a contract saved without a sales rep resolves one from its client.
type ContractService struct {
	repo    ContractRepository
	users   salesRepFinder
	clients clientFinder
}

func NewContractService(repo ContractRepository, users salesRepFinder, clients clientFinder) *ContractService {
	return &ContractService{repo: repo, users: users, clients: clients}
}

func (s *ContractService) GetByID(ctx context.Context, id int) (types.Contract, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContractService) List(ctx context.Context, filter store.ContractFilter) ([]types.Contract, error) {
	return s.repo.List(ctx, filter)
}

func (s *ContractService) Create(ctx context.Context, in CreateContractInput) (types.Contract, error) {
	if err := checkInput(in); err != nil {
		return types.Contract{}, err
	}
	status, ok := types.ParseContractStatus(in.Status)
	if !ok {
		return types.Contract{}, NewValidationError(
			"the status %q is invalid, choose from the following options: %s",
			in.Status, statusOptions())
	}

	client, err := s.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Contract{}, NewValidationError("no clients found with ID %d", in.ClientID)
		}
		return types.Contract{}, err
	}

	salesRepID, err := s.resolveSalesRep(ctx, in.SalesRepID, client)
	if err != nil {
		return types.Contract{}, err
	}

	return s.repo.Create(ctx, types.Contract{
		ClientID:        in.ClientID,
		SalesRepID:      salesRepID,
		TotalAmount:     in.TotalAmount,
		AmountRemaining: in.AmountRemaining,
		Status:          status,
	})
}

func (s *ContractService) Update(ctx context.Context, id int, in UpdateContractInput) (types.Contract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.Contract{}, err
	}

	if in.SalesRepID != nil {
		if _, err := s.users.GetByIDAndRole(ctx, *in.SalesRepID, types.RoleSales); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.Contract{}, NewValidationError(
					"the user with ID %d does not exist or is not a member of the sales team", *in.SalesRepID)
			}
			return types.Contract{}, err
		}
		contract.SalesRepID = in.SalesRepID
	}
	if in.TotalAmount != nil {
		if *in.TotalAmount < 0 {
			return types.Contract{}, NewValidationError("total amount must not be negative")
		}
		contract.TotalAmount = *in.TotalAmount
	}
	if in.AmountRemaining != nil {
		if *in.AmountRemaining < 0 {
			return types.Contract{}, NewValidationError("amount remaining must not be negative")
		}
		contract.AmountRemaining = *in.AmountRemaining
	}
	if in.Status != "" {
		status, ok := types.ParseContractStatus(in.Status)
		if !ok {
			return types.Contract{}, NewValidationError(
				"the status %q is invalid, choose from the following options: %s",
				in.Status, statusOptions())
		}
		contract.Status = status
	}

	// A contract never leaves a save without resolving a sales rep when
	// its client has one.
	if contract.SalesRepID == nil {
		client, err := s.clients.GetByID(ctx, contract.ClientID)
		if err == nil && client.SalesRepID != nil {
			contract.SalesRepID = client.SalesRepID
		}
	}

	return s.repo.Update(ctx, contract)
}

func (s *ContractService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// resolveSalesRep validates an explicit sales rep or falls back to the
// client's representative when none was supplied.
func (s *ContractService) resolveSalesRep(ctx context.Context, salesRepID int, client types.Client) (*int, error) {
	if salesRepID > 0 {
		if _, err := s.users.GetByIDAndRole(ctx, salesRepID, types.RoleSales); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, NewValidationError(
					"the employee with the ID %d does not have the role 'sales'", salesRepID)
			}
			return nil, err
		}
		return &salesRepID, nil
	}
	return client.SalesRepID, nil
}

func statusOptions() string {
	opts := ""
	for i, status := range types.ContractStatuses {
		if i > 0 {
			opts += ", "
		}
		opts += string(status)
	}
	return opts
}
