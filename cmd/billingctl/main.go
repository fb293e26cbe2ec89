// Command billingctl runs operator tasks against the quote service stores.
package main

import (
	"fmt"
	"os"

	"tradequote/internal/config"
	"tradequote/internal/infrastructure/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "billingctl",
	Short:         "Operator tasks for the quote and lead billing service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		log = logging.New(cfg.Log.Level)
	},
}

func main() {
	rootCmd.AddCommand(tablesCmd, vendorCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
