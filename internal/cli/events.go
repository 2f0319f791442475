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

// CreateEventOptions carries the flag values of create-event. Zero values
// are prompted for.
type CreateEventOptions struct {
	ContractID     int
	Name           string
	StartDate      string
	EndDate        string
	SupportStaffID int
	Location       string
	Attendees      *int
	Notes          string
}

// UpdateEventOptions carries the flag values of update-event. Nil or empty
// fields keep the current value.
type UpdateEventOptions struct {
	Name           string
	StartDate      string
	EndDate        string
	Location       string
	Attendees      *int
	Notes          string
	SupportStaffID *int
}

// CreateEvent registers a new event under a contract. Only the sales
// representative assigned to that contract may do so.
func (r *Runner) CreateEvent(ctx context.Context, opts CreateEventOptions) error {
	var err error
	if opts.ContractID == 0 {
		if opts.ContractID, err = r.promptInt("ID of the Contract linked to the event"); err != nil {
			return err
		}
	}

	target := permissions.Target{ContractID: opts.ContractID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.SalesEventAccess); err != nil {
		return err
	}

	if opts.Name == "" {
		if opts.Name, err = r.promptString("Name of the event"); err != nil {
			return err
		}
	}
	if opts.StartDate == "" {
		if opts.StartDate, err = r.promptString("Event start date (in YYYYMMDD format)"); err != nil {
			return err
		}
	}
	if opts.EndDate == "" {
		if opts.EndDate, err = r.promptString("Event end date (in YYYYMMDD format)"); err != nil {
			return err
		}
	}
	if opts.SupportStaffID == 0 {
		if opts.SupportStaffID, err = r.promptInt("ID of the employee assigned to this event (support staff)"); err != nil {
			return err
		}
	}
	if opts.Location == "" {
		if opts.Location, err = r.promptString("Location of the event"); err != nil {
			return err
		}
	}
	if opts.Attendees == nil {
		attendees, err := r.promptInt("Number of participants")
		if err != nil {
			return err
		}
		opts.Attendees = &attendees
	}
	if opts.Notes == "" {
		if opts.Notes, err = r.promptString("Notes for the event"); err != nil {
			return err
		}
	}

	event, err := r.app.Events.Create(ctx, services.CreateEventInput{
		ContractID:     opts.ContractID,
		Name:           opts.Name,
		StartDate:      opts.StartDate,
		EndDate:        opts.EndDate,
		SupportStaffID: opts.SupportStaffID,
		Location:       opts.Location,
		Attendees:      *opts.Attendees,
		Notes:          opts.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Event created successfully: %s (ID: %d)\n", event.Name, event.ID)
	return nil
}

// ReadEvents prints one event by id, or all events matching the filter.
func (r *Runner) ReadEvents(ctx context.Context, eventID int, filter store.EventFilter) error {
	if _, err := r.app.Perms.Require(ctx, permissions.Target{}); err != nil {
		return err
	}

	if eventID != 0 {
		event, err := r.app.Events.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("No event found with ID %d", eventID)
			}
			return err
		}
		r.printEvents([]types.Event{event})
		return nil
	}

	events, err := r.app.Events.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(r.out, "No events found.")
		return nil
	}
	r.printEvents(events)
	return nil
}

// UpdateEvent modifies an event. Management, or the assigned support staff.
func (r *Runner) UpdateEvent(ctx context.Context, eventID int, opts UpdateEventOptions) error {
	target := permissions.Target{EventID: eventID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.EventSupportOrManagement); err != nil {
		return err
	}

	event, err := r.app.Events.Update(ctx, eventID, services.UpdateEventInput{
		Name:           opts.Name,
		StartDate:      opts.StartDate,
		EndDate:        opts.EndDate,
		Location:       opts.Location,
		Attendees:      opts.Attendees,
		Notes:          opts.Notes,
		SupportStaffID: opts.SupportStaffID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("Event with ID %d does not exist", eventID)
		}
		return err
	}

	fmt.Fprintf(r.out, "Event with ID %d modified successfully.\n", event.ID)
	return nil
}

// DeleteEvent removes an event. Management, or the assigned support staff.
func (r *Runner) DeleteEvent(ctx context.Context, eventID int) error {
	target := permissions.Target{EventID: eventID}
	if _, err := r.app.Perms.Require(ctx, target, r.app.Perms.EventSupportOrManagement); err != nil {
		return err
	}

	if err := r.app.Events.Delete(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("Event with ID %d not found", eventID)
		}
		return err
	}

	fmt.Fprintf(r.out, "Event with ID %d deleted successfully\n", eventID)
	return nil
}

func (r *Runner) printEvents(events []types.Event) {
	headers := []string{"ID", "Contract", "Name", "Start date", "End date", "Support staff", "Location", "Attendees", "Notes"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			strconv.Itoa(e.ContractID),
			e.Name,
			formatDate(e.StartDate),
			formatDate(e.EndDate),
			e.SupportStaffName,
			e.Location,
			strconv.Itoa(e.Attendees),
			e.Notes,
		})
	}
	r.renderTable("List of Events", headers, rows)
}
