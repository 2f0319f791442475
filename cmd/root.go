/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm/config"
	"github.com/epicevents/crm/internal/app"
	"github.com/epicevents/crm/internal/cli"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crm",
	Short: "Epic Events CRM command line",
	Long: `Epic Events CRM command line.

Log in with "crm login", then manage users, clients, contracts and events
with the create/read/update/delete subcommands, or start the interactive
menu with "crm shell".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// withRunner wires the application for one command invocation and hands a
// Runner to the command body.
func withRunner(cmd *cobra.Command, fn func(ctx context.Context, r *cli.Runner) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(cmd.Context(), cli.NewRunner(a))
}

// idArg parses the positional record id common to the update/delete
// commands.
func idArg(args []string) (int, error) {
	return strconv.Atoi(args[0])
}

// optionalIDArg parses the optional positional id of the read commands;
// absence means "list all".
func optionalIDArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return strconv.Atoi(args[0])
}
