package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/epicevents/crm/types"
)

// ContractFilter narrows List results. Zero-valued fields are ignored.
// Client and SalesRep accept either an id or a name fragment.
type ContractFilter struct {
	Client          string
	SalesRep        string
	TotalAmount     *float64
	AmountRemaining *float64
	Status          string
	CreatedAt       string
}

// ContractRepository handles persistence for contracts.
type ContractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractSelect = `
	SELECT ct.id, ct.client_id, ct.sales_rep_id,
		COALESCE(c.fullname, ''), COALESCE(u.fullname, ''),
		ct.total_amount, ct.amount_remaining, ct.status, ct.created_at, ct.updated_at
	FROM contracts ct
	JOIN clients c ON c.id = ct.client_id
	LEFT JOIN users u ON u.id = ct.sales_rep_id`

func scanContract(row interface{ Scan(...any) error }) (types.Contract, error) {
	var contract types.Contract
	err := row.Scan(
		&contract.ID,
		&contract.ClientID,
		&contract.SalesRepID,
		&contract.ClientName,
		&contract.SalesRepName,
		&contract.TotalAmount,
		&contract.AmountRemaining,
		&contract.Status,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Contract{}, ErrNotFound
		}
		return types.Contract{}, err
	}
	return contract, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id int) (types.Contract, error) {
	query := contractSelect + ` WHERE ct.id = $1`
	return scanContract(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForRep resolves a contract only when it is assigned to the given
// sales representative.
func (r *ContractRepository) GetByIDForRep(ctx context.Context, id, salesRepID int) (types.Contract, error) {
	query := contractSelect + ` WHERE ct.id = $1 AND ct.sales_rep_id = $2`
	return scanContract(r.db.QueryRowContext(ctx, query, id, salesRepID))
}

func (r *ContractRepository) List(ctx context.Context, filter ContractFilter) ([]types.Contract, error) {
	query := contractSelect
	conditions, args := []string{}, []any{}

	if filter.Client != "" {
		if id, err := strconv.Atoi(filter.Client); err == nil {
			args = append(args, id)
			conditions = append(conditions, fmt.Sprintf("ct.client_id = $%d", len(args)))
		} else {
			args = append(args, "%"+filter.Client+"%")
			conditions = append(conditions, fmt.Sprintf("c.fullname ILIKE $%d", len(args)))
		}
	}
	if filter.SalesRep != "" {
		if id, err := strconv.Atoi(filter.SalesRep); err == nil {
			args = append(args, id)
			conditions = append(conditions, fmt.Sprintf("ct.sales_rep_id = $%d", len(args)))
		} else {
			args = append(args, "%"+filter.SalesRep+"%")
			conditions = append(conditions, fmt.Sprintf("u.fullname ILIKE $%d", len(args)))
		}
	}
	if filter.TotalAmount != nil {
		args = append(args, *filter.TotalAmount)
		conditions = append(conditions, fmt.Sprintf("ct.total_amount = $%d", len(args)))
	}
	if filter.AmountRemaining != nil {
		args = append(args, *filter.AmountRemaining)
		conditions = append(conditions, fmt.Sprintf("ct.amount_remaining = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, "%"+filter.Status+"%")
		conditions = append(conditions, fmt.Sprintf("ct.status ILIKE $%d", len(args)))
	}
	if filter.CreatedAt != "" {
		args = append(args, filter.CreatedAt+"%")
		conditions = append(conditions, fmt.Sprintf("ct.created_at::text LIKE $%d", len(args)))
	}

	query += whereClause(conditions) + ` ORDER BY ct.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []types.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

func (r *ContractRepository) Create(ctx context.Context, contract types.Contract) (types.Contract, error) {
	now := time.Now()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	const query = `
		INSERT INTO contracts (client_id, sales_rep_id, total_amount, amount_remaining, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		contract.ClientID,
		contract.SalesRepID,
		contract.TotalAmount,
		contract.AmountRemaining,
		contract.Status,
		contract.CreatedAt,
		contract.UpdatedAt,
	).Scan(&contract.ID); err != nil {
		return types.Contract{}, err
	}
	return contract, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract types.Contract) (types.Contract, error) {
	contract.UpdatedAt = time.Now()

	const query = `
		UPDATE contracts
		SET client_id = $1,
			sales_rep_id = $2,
			total_amount = $3,
			amount_remaining = $4,
			status = $5,
			updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		contract.ClientID,
		contract.SalesRepID,
		contract.TotalAmount,
		contract.AmountRemaining,
		contract.Status,
		contract.UpdatedAt,
		contract.ID,
	)
	if err != nil {
		return types.Contract{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Contract{}, err
	}
	if affected == 0 {
		return types.Contract{}, ErrNotFound
	}
	return contract, nil
}

func (r *ContractRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM contracts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
