package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/epicevents/crm/types"
)

// ClientFilter narrows List results. Zero-valued fields are ignored.
type ClientFilter struct {
	FullName    string
	Email       string
	Phone       string
	CompanyName string
}

// ClientRepository handles persistence for clients.
type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientSelect = `
	SELECT c.id, c.fullname, c.email, c.phone, c.company_name, c.sales_rep_id,
		COALESCE(u.fullname, ''), c.created_at, c.updated_at
	FROM clients c
	LEFT JOIN users u ON u.id = c.sales_rep_id`

func scanClient(row interface{ Scan(...any) error }) (types.Client, error) {
	var client types.Client
	err := row.Scan(
		&client.ID,
		&client.FullName,
		&client.Email,
		&client.Phone,
		&client.CompanyName,
		&client.SalesRepID,
		&client.SalesRepName,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Client{}, ErrNotFound
		}
		return types.Client{}, err
	}
	return client, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int) (types.Client, error) {
	query := clientSelect + ` WHERE c.id = $1`
	return scanClient(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForRep resolves a client only when it is assigned to the given
// sales representative. Ownership gates rely on this exact-match lookup.
func (r *ClientRepository) GetByIDForRep(ctx context.Context, id, salesRepID int) (types.Client, error) {
	query := clientSelect + ` WHERE c.id = $1 AND c.sales_rep_id = $2`
	return scanClient(r.db.QueryRowContext(ctx, query, id, salesRepID))
}

func (r *ClientRepository) List(ctx context.Context, filter ClientFilter) ([]types.Client, error) {
	query := clientSelect
	conditions, args := []string{}, []any{}

	if filter.FullName != "" {
		args = append(args, "%"+filter.FullName+"%")
		conditions = append(conditions, fmt.Sprintf("c.fullname ILIKE $%d", len(args)))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		conditions = append(conditions, fmt.Sprintf("c.email ILIKE $%d", len(args)))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		conditions = append(conditions, fmt.Sprintf("c.phone ILIKE $%d", len(args)))
	}
	if filter.CompanyName != "" {
		args = append(args, "%"+filter.CompanyName+"%")
		conditions = append(conditions, fmt.Sprintf("c.company_name ILIKE $%d", len(args)))
	}

	query += whereClause(conditions) + ` ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []types.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Create(ctx context.Context, client types.Client) (types.Client, error) {
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	const query = `
		INSERT INTO clients (fullname, email, phone, company_name, sales_rep_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		client.FullName,
		client.Email,
		client.Phone,
		client.CompanyName,
		client.SalesRepID,
		client.CreatedAt,
		client.UpdatedAt,
	).Scan(&client.ID); err != nil {
		return types.Client{}, err
	}
	return client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client types.Client) (types.Client, error) {
	client.UpdatedAt = time.Now()

	const query = `
		UPDATE clients
		SET fullname = $1,
			email = $2,
			phone = $3,
			company_name = $4,
			sales_rep_id = $5,
			updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		client.FullName,
		client.Email,
		client.Phone,
		client.CompanyName,
		client.SalesRepID,
		client.UpdatedAt,
		client.ID,
	)
	if err != nil {
		return types.Client{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Client{}, err
	}
	if affected == 0 {
		return types.Client{}, ErrNotFound
	}
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM clients WHERE id = $1`
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
