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

var createContractFlags struct {
	clientID        int
	salesRepID      int
	totalAmount     float64
	amountRemaining float64
	status          string
}

// createContractCmd represents the create-contract command
var createContractCmd = &cobra.Command{
	Use:   "create-contract",
	Short: "Create a new contract (management only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.CreateContractOptions{
			ClientID:   createContractFlags.clientID,
			SalesRepID: createContractFlags.salesRepID,
			Status:     createContractFlags.status,
		}
		if cmd.Flags().Changed("total_amount") {
			opts.TotalAmount = &createContractFlags.totalAmount
		}
		if cmd.Flags().Changed("amount_remaining") {
			opts.AmountRemaining = &createContractFlags.amountRemaining
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.CreateContract(ctx, opts)
		})
	},
}

var readContractsFlags struct {
	client          string
	salesRep        string
	totalAmount     float64
	amountRemaining float64
	status          string
	createdAt       string
}

// readContractsCmd represents the read-contracts command
var readContractsCmd = &cobra.Command{
	Use:   "read-contracts [contract_id]",
	Short: "List contracts, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID, err := optionalIDArg(args)
		if err != nil {
			return err
		}
		filter := store.ContractFilter{
			Client:    readContractsFlags.client,
			SalesRep:  readContractsFlags.salesRep,
			Status:    readContractsFlags.status,
			CreatedAt: readContractsFlags.createdAt,
		}
		if cmd.Flags().Changed("total_amount") {
			filter.TotalAmount = &readContractsFlags.totalAmount
		}
		if cmd.Flags().Changed("amount_remaining") {
			filter.AmountRemaining = &readContractsFlags.amountRemaining
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.ReadContracts(ctx, contractID, filter)
		})
	},
}

var updateContractFlags struct {
	totalAmount     float64
	amountRemaining float64
	status          string
	salesRepID      int
}

// updateContractCmd represents the update-contract command
var updateContractCmd = &cobra.Command{
	Use:   "update-contract <contract_id>",
	Short: "Update a contract (management or assigned sales representative)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID, err := idArg(args)
		if err != nil {
			return err
		}
		opts := cli.UpdateContractOptions{Status: updateContractFlags.status}
		if cmd.Flags().Changed("total_amount") {
			opts.TotalAmount = &updateContractFlags.totalAmount
		}
		if cmd.Flags().Changed("amount_remaining") {
			opts.AmountRemaining = &updateContractFlags.amountRemaining
		}
		if cmd.Flags().Changed("sales_rep_id") {
			opts.SalesRepID = &updateContractFlags.salesRepID
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.UpdateContract(ctx, contractID, opts)
		})
	},
}

// deleteContractCmd represents the delete-contract command
var deleteContractCmd = &cobra.Command{
	Use:   "delete-contract <contract_id>",
	Short: "Delete a contract (management or assigned sales representative)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID, err := idArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.DeleteContract(ctx, contractID)
		})
	},
}

func init() {
	createContractCmd.Flags().IntVar(&createContractFlags.clientID, "client_id", 0, "ID of the client associated with this contract")
	createContractCmd.Flags().IntVar(&createContractFlags.salesRepID, "sales_rep_id", 0, "ID of the sales rep attached to this contract")
	createContractCmd.Flags().Float64Var(&createContractFlags.totalAmount, "total_amount", 0, "Total amount to be paid")
	createContractCmd.Flags().Float64Var(&createContractFlags.amountRemaining, "amount_remaining", 0, "Amount remaining to be paid")
	createContractCmd.Flags().StringVar(&createContractFlags.status, "status", "", "Status of the contract")

	readContractsCmd.Flags().StringVar(&readContractsFlags.client, "client", "", "Filter contracts by client (name or ID)")
	readContractsCmd.Flags().StringVar(&readContractsFlags.salesRep, "sales_rep", "", "Filter contracts by sales rep (name or ID)")
	readContractsCmd.Flags().Float64Var(&readContractsFlags.totalAmount, "total_amount", 0, "Filter contracts by total amount")
	readContractsCmd.Flags().Float64Var(&readContractsFlags.amountRemaining, "amount_remaining", 0, "Filter contracts by amount remaining")
	readContractsCmd.Flags().StringVar(&readContractsFlags.status, "status", "", "Filter contracts by status")
	readContractsCmd.Flags().StringVar(&readContractsFlags.createdAt, "created_at", "", "Filter contracts by creation date (YYYY-MM-DD)")

	updateContractCmd.Flags().Float64Var(&updateContractFlags.totalAmount, "total_amount", 0, "New total amount")
	updateContractCmd.Flags().Float64Var(&updateContractFlags.amountRemaining, "amount_remaining", 0, "New amount remaining")
	updateContractCmd.Flags().StringVar(&updateContractFlags.status, "status", "", "New status")
	updateContractCmd.Flags().IntVar(&updateContractFlags.salesRepID, "sales_rep_id", 0, "ID of the new sales rep")

	rootCmd.AddCommand(createContractCmd, readContractsCmd, updateContractCmd, deleteContractCmd)
}
