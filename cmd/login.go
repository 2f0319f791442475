/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/cli"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a session token",
	Long: `Prompts for a username and password, authenticates them and stores
a signed session token on disk. Every other command requires a valid
session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Login(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
