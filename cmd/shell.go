/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/cli"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu for the logged-in user",
	Long: `Starts an interactive menu scoped to the logged-in user's role and
loops until logout. Every dispatched operation runs its own permission
checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Shell(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
