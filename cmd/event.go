/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/cli"
	"github.com/epicevents/crm/internal/store"
)

var createEventFlags struct {
	contractID     int
	name           string
	startDate      string
	endDate        string
	supportStaffID int
	location       string
	attendees      int
	notes          string
}

// createEventCmd represents the create-event command
var createEventCmd = &cobra.Command{
	Use:   "create-event",
	Short: "Create a new event under a contract (assigned sales representative only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.CreateEventOptions{
			ContractID:     createEventFlags.contractID,
			Name:           createEventFlags.name,
			StartDate:      createEventFlags.startDate,
			EndDate:        createEventFlags.endDate,
			SupportStaffID: createEventFlags.supportStaffID,
			Location:       createEventFlags.location,
			Notes:          createEventFlags.notes,
		}
		if cmd.Flags().Changed("attendees") {
			opts.Attendees = &createEventFlags.attendees
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.CreateEvent(ctx, opts)
		})
	},
}

var readEventsFilter store.EventFilter

// readEventsCmd represents the read-events command
var readEventsCmd = &cobra.Command{
	Use:   "read-events [event_id]",
	Short: "List events, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := optionalIDArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.ReadEvents(ctx, eventID, readEventsFilter)
		})
	},
}

var updateEventFlags struct {
	name           string
	startDate      string
	endDate        string
	location       string
	attendees      int
	notes          string
	supportStaffID int
}

// updateEventCmd represents the update-event command
var updateEventCmd = &cobra.Command{
	Use:   "update-event <event_id>",
	Short: "Update an event (management or assigned support staff)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := idArg(args)
		if err != nil {
			return err
		}
		opts := cli.UpdateEventOptions{
			Name:      updateEventFlags.name,
			StartDate: updateEventFlags.startDate,
			EndDate:   updateEventFlags.endDate,
			Location:  updateEventFlags.location,
			Notes:     updateEventFlags.notes,
		}
		if cmd.Flags().Changed("attendees") {
			opts.Attendees = &updateEventFlags.attendees
		}
		if cmd.Flags().Changed("support_staff_id") {
			opts.SupportStaffID = &updateEventFlags.supportStaffID
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.UpdateEvent(ctx, eventID, opts)
		})
	},
}

// deleteEventCmd represents the delete-event command
var deleteEventCmd = &cobra.Command{
	Use:   "delete-event <event_id>",
	Short: "Delete an event (management or assigned support staff)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := idArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.DeleteEvent(ctx, eventID)
		})
	},
}

func init() {
	createEventCmd.Flags().IntVar(&createEventFlags.contractID, "contract_id", 0, "ID of the contract linked to the event")
	createEventCmd.Flags().StringVar(&createEventFlags.name, "name", "", "Name of the event")
	createEventCmd.Flags().StringVar(&createEventFlags.startDate, "start_date", "", "Event start date (YYYYMMDD)")
	createEventCmd.Flags().StringVar(&createEventFlags.endDate, "end_date", "", "Event end date (YYYYMMDD)")
	createEventCmd.Flags().IntVar(&createEventFlags.supportStaffID, "support_staff_id", 0, "ID of the support staff assigned to the event")
	createEventCmd.Flags().StringVar(&createEventFlags.location, "location", "", "Location of the event")
	createEventCmd.Flags().IntVar(&createEventFlags.attendees, "attendees", 0, "Number of participants")
	createEventCmd.Flags().StringVar(&createEventFlags.notes, "notes", "", "Notes for the event")

	readEventsCmd.Flags().IntVar(&readEventsFilter.ContractID, "contract_id", 0, "Filter events by contract ID")
	readEventsCmd.Flags().StringVar(&readEventsFilter.Name, "name", "", "Filter events by name")
	readEventsCmd.Flags().StringVar(&readEventsFilter.StartDate, "start_date", "", "Filter events by start date (YYYY-MM or YYYY-MM-DD)")
	readEventsCmd.Flags().StringVar(&readEventsFilter.EndDate, "end_date", "", "Filter events by end date (YYYY-MM or YYYY-MM-DD)")
	readEventsCmd.Flags().StringVar(&readEventsFilter.SupportStaff, "support_staff", "", "Filter events by support staff (name or ID)")
	readEventsCmd.Flags().StringVar(&readEventsFilter.Location, "location", "", "Filter events by location")
	readEventsCmd.Flags().StringVar(&readEventsFilter.Attendees, "num_of_participants", "", "Filter events by number of participants (-50, +50, +100, +200)")

	updateEventCmd.Flags().StringVar(&updateEventFlags.name, "name", "", "New name")
	updateEventCmd.Flags().StringVar(&updateEventFlags.startDate, "start_date", "", "New start date (YYYYMMDD)")
	updateEventCmd.Flags().StringVar(&updateEventFlags.endDate, "end_date", "", "New end date (YYYYMMDD)")
	updateEventCmd.Flags().StringVar(&updateEventFlags.location, "location", "", "New location")
	updateEventCmd.Flags().IntVar(&updateEventFlags.attendees, "attendees", 0, "New number of participants")
	updateEventCmd.Flags().StringVar(&updateEventFlags.notes, "notes", "", "New notes")
	updateEventCmd.Flags().IntVar(&updateEventFlags.supportStaffID, "support_staff_id", 0, "ID of the new support staff")

	rootCmd.AddCommand(createEventCmd, readEventsCmd, updateEventCmd, deleteEventCmd)
}
