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

var createUserOpts cli.UserOptions

// createUserCmd represents the create-user command
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a new employee account (management only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.CreateUser(ctx, createUserOpts)
		})
	},
}

var readUsersFilter store.UserFilter

// readUsersCmd represents the read-users command
var readUsersCmd = &cobra.Command{
	Use:   "read-users [user_id]",
	Short: "List users, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := optionalIDArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.ReadUsers(ctx, userID, readUsersFilter)
		})
	},
}

var updateUserOpts cli.UserOptions

// updateUserCmd represents the update-user command
var updateUserCmd = &cobra.Command{
	Use:   "update-user <user_id>",
	Short: "Update an employee account (management only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := idArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.UpdateUser(ctx, userID, updateUserOpts)
		})
	},
}

// deleteUserCmd represents the delete-user command
var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <user_id>",
	Short: "Delete an employee account (management only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := idArg(args)
		if err != nil {
			return err
		}
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.DeleteUser(ctx, userID)
		})
	},
}

func init() {
	createUserCmd.Flags().StringVar(&createUserOpts.FullName, "fullname", "", "User's full name")
	createUserCmd.Flags().StringVar(&createUserOpts.Username, "username", "", "User's username")
	createUserCmd.Flags().StringVar(&createUserOpts.Role, "role", "", "User's role (sales, support or management)")

	readUsersCmd.Flags().StringVar(&readUsersFilter.FullName, "fullname", "", "Filter users by full name")
	readUsersCmd.Flags().StringVar(&readUsersFilter.Username, "username", "", "Filter users by username")
	readUsersCmd.Flags().StringVar(&readUsersFilter.Role, "role", "", "Filter users by role")

	updateUserCmd.Flags().StringVar(&updateUserOpts.FullName, "fullname", "", "New full name")
	updateUserCmd.Flags().StringVar(&updateUserOpts.Username, "username", "", "New username")
	updateUserCmd.Flags().StringVar(&updateUserOpts.Role, "role", "", "New role")

	rootCmd.AddCommand(createUserCmd, readUsersCmd, updateUserCmd, deleteUserCmd)
}
