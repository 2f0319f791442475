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

// EventFilter narrows List results. Zero-valued fields are ignored.
// SupportStaff accepts either an id or a name fragment. Attendees accepts
// the buckets "-50", "+50", "+100" and "+200".
type EventFilter struct {
	ContractID   int
	Name         string
	StartDate    string
	EndDate      string
	SupportStaff string
	Location     string
	Attendees    string
}

// EventRepository handles persistence for events.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventSelect = `
	SELECT e.id, e.contract_id, e.name, e.start_date, e.end_date,
		e.support_staff_id, COALESCE(u.fullname, ''), e.location, e.attendees,
		e.notes, e.created_at, e.updated_at
	FROM events e
	LEFT JOIN users u ON u.id = e.support_staff_id`

func scanEvent(row interface{ Scan(...any) error }) (types.Event, error) {
	var event types.Event
	err := row.Scan(
		&event.ID,
		&event.ContractID,
		&event.Name,
		&event.StartDate,
		&event.EndDate,
		&event.SupportStaffID,
		&event.SupportStaffName,
		&event.Location,
		&event.Attendees,
		&event.Notes,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Event{}, ErrNotFound
		}
		return types.Event{}, err
	}
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int) (types.Event, error) {
	query := eventSelect + ` WHERE e.id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForSupport resolves an event only when it is assigned to the given
// support-staff user.
func (r *EventRepository) GetByIDForSupport(ctx context.Context, id, supportStaffID int) (types.Event, error) {
	query := eventSelect + ` WHERE e.id = $1 AND e.support_staff_id = $2`
	return scanEvent(r.db.QueryRowContext(ctx, query, id, supportStaffID))
}

func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]types.Event, error) {
	query := eventSelect
	conditions, args := []string{}, []any{}

	if filter.ContractID != 0 {
		args = append(args, filter.ContractID)
		conditions = append(conditions, fmt.Sprintf("e.contract_id = $%d", len(args)))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", len(args)))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate+"%")
		conditions = append(conditions, fmt.Sprintf("e.start_date::text LIKE $%d", len(args)))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate+"%")
		conditions = append(conditions, fmt.Sprintf("e.end_date::text LIKE $%d", len(args)))
	}
	if filter.SupportStaff != "" {
		if id, err := strconv.Atoi(filter.SupportStaff); err == nil {
			args = append(args, id)
			conditions = append(conditions, fmt.Sprintf("e.support_staff_id = $%d", len(args)))
		} else {
			args = append(args, "%"+filter.SupportStaff+"%")
			conditions = append(conditions, fmt.Sprintf("u.fullname ILIKE $%d", len(args)))
		}
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("e.location ILIKE $%d", len(args)))
	}
	switch filter.Attendees {
	case "-50":
		conditions = append(conditions, "e.attendees < 50")
	case "+50":
		conditions = append(conditions, "e.attendees >= 50")
	case "+100":
		conditions = append(conditions, "e.attendees >= 100")
	case "+200":
		conditions = append(conditions, "e.attendees >= 200")
	}

	query += whereClause(conditions) + ` ORDER BY e.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepository) Create(ctx context.Context, event types.Event) (types.Event, error) {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	const query = `
		INSERT INTO events (contract_id, name, start_date, end_date, support_staff_id, location, attendees, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		event.ContractID,
		event.Name,
		event.StartDate,
		event.EndDate,
		event.SupportStaffID,
		event.Location,
		event.Attendees,
		event.Notes,
		event.CreatedAt,
		event.UpdatedAt,
	).Scan(&event.ID); err != nil {
		return types.Event{}, err
	}
	return event, nil
}

func (r *EventRepository) Update(ctx context.Context, event types.Event) (types.Event, error) {
	event.UpdatedAt = time.Now()

	const query = `
		UPDATE events
		SET contract_id = $1,
			name = $2,
			start_date = $3,
			end_date = $4,
			support_staff_id = $5,
			location = $6,
			attendees = $7,
			notes = $8,
			updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(
		ctx,
		query,
		event.ContractID,
		event.Name,
		event.StartDate,
		event.EndDate,
		event.SupportStaffID,
		event.Location,
		event.Attendees,
		event.Notes,
		event.UpdatedAt,
		event.ID,
	)
	if err != nil {
		return types.Event{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Event{}, err
	}
	if affected == 0 {
		return types.Event{}, ErrNotFound
	}
	return event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM events WHERE id = $1`
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
