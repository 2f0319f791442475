/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/cli"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Logout(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
