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

var createClientOpts cli.ClientOptions

// createClientCmd represents the create-client command
var createClientCmd = &cobra.Command{
	Use:   "create-client",
	Short: "Create a new client owned by the logged-in sales user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.CreateClient(ctx, createClientOpts)
		})
	},
}

var readClientsFilter store.ClientFilter

// readClientsCmd represents the read-clients command
var readClientsCmd = &cobra.Command{
	Use:   "read-clients [client_id]",
	Short: "List clients, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, err := optionalIDArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.ReadClients(ctx, clientID, readClientsFilter)
		})
	},
}

var updateClientOpts cli.ClientOptions

// updateClientCmd represents the update-client command
var updateClientCmd = &cobra.Command{
	Use:   "update-client <client_id>",
	Short: "Update a client (assigned sales representative only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, err := idArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.UpdateClient(ctx, clientID, updateClientOpts)
		})
	},
}

// deleteClientCmd represents the delete-client command
var deleteClientCmd = &cobra.Command{
	Use:   "delete-client <client_id>",
	Short: "Delete a client (assigned sales representative only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, err := idArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.DeleteClient(ctx, clientID)
		})
	},
}

func init() {
	createClientCmd.Flags().StringVar(&createClientOpts.FullName, "fullname", "", "Client's full name")
	createClientCmd.Flags().StringVar(&createClientOpts.Email, "email", "", "Client's email")
	createClientCmd.Flags().StringVar(&createClientOpts.Phone, "phone", "", "Client's phone number")
	createClientCmd.Flags().StringVar(&createClientOpts.CompanyName, "company_name", "", "Client's company name")

	readClientsCmd.Flags().StringVar(&readClientsFilter.FullName, "fullname", "", "Filter clients by full name")
	readClientsCmd.Flags().StringVar(&readClientsFilter.Email, "email", "", "Filter clients by email")
	readClientsCmd.Flags().StringVar(&readClientsFilter.Phone, "phone", "", "Filter clients by phone")
	readClientsCmd.Flags().StringVar(&readClientsFilter.CompanyName, "company_name", "", "Filter clients by company name")

	updateClientCmd.Flags().StringVar(&updateClientOpts.FullName, "fullname", "", "New full name")
	updateClientCmd.Flags().StringVar(&updateClientOpts.Email, "email", "", "New email")
	updateClientCmd.Flags().StringVar(&updateClientOpts.Phone, "phone", "", "New phone number")
	updateClientCmd.Flags().StringVar(&updateClientOpts.CompanyName, "company_name", "", "New company name")

	rootCmd.AddCommand(createClientCmd, readClientsCmd, updateClientCmd, deleteClientCmd)
}
