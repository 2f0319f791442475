package services

import (
	"context"
	"strings"

	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	GetByID(ctx context.Context, id int) (types.Client, error)
	List(ctx context.Context, filter store.ClientFilter) ([]types.Client, error)
	Create(ctx context.Context, client types.Client) (types.Client, error)
	Update(ctx context.Context, client types.Client) (types.Client, error)
	Delete(ctx context.Context, id int) error
}

// CreateClientInput carries the fields of a new client. SalesRepID is the
// acting sales user; clients are always created under their creator.
type CreateClientInput struct {
	FullName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string
	CompanyName string
	SalesRepID  int `validate:"required,gt=0"`
}

// UpdateClientInput carries optional new values; empty fields keep the
// current value.
type UpdateClientInput struct {
	FullName    string
	Email       string `validate:"omitempty,email"`
	Phone       string
	CompanyName string
}

// ClientService encapsulates client use-cases.
type ClientService struct {
	repo ClientRepository
}

func NewClientService(repo ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) GetByID(ctx context.Context, id int) (types.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, filter store.ClientFilter) ([]types.Client, error) {
	return s.repo.List(ctx, filter)
}

func (s *ClientService) Create(ctx context.Context, in CreateClientInput) (types.Client, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if err := checkInput(in); err != nil {
		return types.Client{}, err
	}

	salesRepID := in.SalesRepID
	return s.repo.Create(ctx, types.Client{
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
		SalesRepID:  &salesRepID,
	})
}

func (s *ClientService) Update(ctx context.Context, id int, in UpdateClientInput) (types.Client, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := checkInput(in); err != nil {
		return types.Client{}, err
	}

	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.Client{}, err
	}

	if in.FullName != "" {
		client.FullName = in.FullName
	}
	if in.Email != "" {
		client.Email = in.Email
	}
	if in.Phone != "" {
		client.Phone = in.Phone
	}
	if in.CompanyName != "" {
		client.CompanyName = in.CompanyName
	}

	return s.repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
