package main

import (
	"fmt"

	"tradequote/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage DynamoDB tables",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the quote, impression and payment tables",
	Long:  `Creates every missing table with its key schema and GSI. Existing tables are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg.Dynamo)
		if err != nil {
			return err
		}
		created, err := database.EnsureTables(cmd.Context(), ddb, database.TableSpecs(cfg.Dynamo))
		if err != nil {
			return err
		}
		if len(created) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "all tables already exist")
			return nil
		}
		for _, name := range created {
			fmt.Fprintln(cmd.OutOrStdout(), "created", name)
		}
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesCreateCmd)
}
