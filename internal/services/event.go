package services

import (
	"context"
	"errors"
	"time"

	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// dateLayout is the input format for event dates (YYYYMMDD).
const dateLayout = "20060102"

// EventRepository defines persistence operations for events.
type EventRepository interface {
	GetByID(ctx context.Context, id int) (types.Event, error)
	List(ctx context.Context, filter store.EventFilter) ([]types.Event, error)
	Create(ctx context.Context, event types.Event) (types.Event, error)
	Update(ctx context.Context, event types.Event) (types.Event, error)
	Delete(ctx context.Context, id int) error
}

// contractGetter resolves a contract by id. Satisfied by the contract
// repository.
type contractGetter interface {
	GetByID(ctx context.Context, id int) (types.Contract, error)
}

// CreateEventInput carries the fields of a new event. Dates are YYYYMMDD.
type CreateEventInput struct {
	ContractID     int    `validate:"required,gt=0"`
	Name           string `validate:"required"`
	StartDate      string `validate:"required"`
	EndDate        string `validate:"required"`
	SupportStaffID int    `validate:"required,gt=0"`
	Location       string
	Attendees      int `validate:"gte=0"`
	Notes          string
}

// UpdateEventInput carries optional new values; empty or nil fields keep
// the current value.
type UpdateEventInput struct {
	Name           string
	StartDate      string
	EndDate        string
	Location       string
	Attendees      *int
	Notes          string
	SupportStaffID *int
}

// EventService encapsulates event use-cases. The assigned support user must
// hold the support role.
type EventService struct {
	repo      EventRepository
	contracts contractGetter
	users     salesRepFinder
}

func NewEventService(repo EventRepository, contracts contractGetter, users salesRepFinder) *EventService {
	return &EventService{repo: repo, contracts: contracts, users: users}
}

func (s *EventService) GetByID(ctx context.Context, id int) (types.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, filter store.EventFilter) ([]types.Event, error) {
	return s.repo.List(ctx, filter)
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (types.Event, error) {
	if err := checkInput(in); err != nil {
		return types.Event{}, err
	}

	if _, err := s.contracts.GetByID(ctx, in.ContractID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Event{}, NewValidationError("the Contract with ID %d does not exist", in.ContractID)
		}
		return types.Event{}, err
	}

	if _, err := s.users.GetByIDAndRole(ctx, in.SupportStaffID, types.RoleSupport); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Event{}, NewValidationError(
				"user with id %d does not exist or is not in role 'support'", in.SupportStaffID)
		}
		return types.Event{}, err
	}

	startDate, err := parseEventDate(in.StartDate)
	if err != nil {
		return types.Event{}, err
	}
	endDate, err := parseEventDate(in.EndDate)
	if err != nil {
		return types.Event{}, err
	}
	if endDate.Before(startDate) {
		return types.Event{}, NewValidationError("end date must not be before start date")
	}

	return s.repo.Create(ctx, types.Event{
		ContractID:     in.ContractID,
		Name:           in.Name,
		StartDate:      startDate,
		EndDate:        endDate,
		SupportStaffID: in.SupportStaffID,
		Location:       in.Location,
		Attendees:      in.Attendees,
		Notes:          in.Notes,
	})
}

func (s *EventService) Update(ctx context.Context, id int, in UpdateEventInput) (types.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.Event{}, err
	}

	if in.SupportStaffID != nil {
		if _, err := s.users.GetByIDAndRole(ctx, *in.SupportStaffID, types.RoleSupport); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.Event{}, NewValidationError(
					"user with id %d does not exist or is not in role 'support'", *in.SupportStaffID)
			}
			return types.Event{}, err
		}
		event.SupportStaffID = *in.SupportStaffID
	}
	if in.Name != "" {
		event.Name = in.Name
	}
	if in.StartDate != "" {
		startDate, err := parseEventDate(in.StartDate)
		if err != nil {
			return types.Event{}, err
		}
		event.StartDate = startDate
	}
	if in.EndDate != "" {
		endDate, err := parseEventDate(in.EndDate)
		if err != nil {
			return types.Event{}, err
		}
		event.EndDate = endDate
	}
	if event.EndDate.Before(event.StartDate) {
		return types.Event{}, NewValidationError("end date must not be before start date")
	}
	if in.Location != "" {
		event.Location = in.Location
	}
	if in.Attendees != nil {
		if *in.Attendees < 0 {
			return types.Event{}, NewValidationError("attendees must not be negative")
		}
		event.Attendees = *in.Attendees
	}
	if in.Notes != "" {
		event.Notes = in.Notes
	}

	return s.repo.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func parseEventDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date format, use the format YYYYMMDD")
	}
	return date, nil
}
