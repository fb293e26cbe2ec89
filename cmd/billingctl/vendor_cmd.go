package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"tradequote/internal/adapter/persistence/repository"
	"tradequote/internal/domain/entities"
	"tradequote/internal/infrastructure/database"
	"tradequote/internal/infrastructure/documents"
	"tradequote/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	vendorEmailFlag string
	exportOutFlag   string
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Inspect a vendor's leads and balance",
}

var vendorSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the billing summary of a vendor",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newVendorBilling(cmd)
		if err != nil {
			return err
		}
		s, err := uc.GetBillingSummary(cmd.Context(), vendorEmailFlag)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), strings.ToLower(vendorEmailFlag), s)
		return nil
	},
}

var vendorExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a vendor's leads to an xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newVendorBilling(cmd)
		if err != nil {
			return err
		}
		out, err := uc.ExportImpressions(cmd.Context(), vendorEmailFlag)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportOutFlag, out, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", exportOutFlag, len(out))
		return nil
	},
}

func init() {
	vendorCmd.PersistentFlags().StringVar(&vendorEmailFlag, "email", "", "vendor email")
	_ = vendorCmd.MarkPersistentFlagRequired("email")
	vendorExportCmd.Flags().StringVar(&exportOutFlag, "out", "leads.xlsx", "output file")
	vendorCmd.AddCommand(vendorSummaryCmd, vendorExportCmd)
}

// newVendorBilling wires the read side of vendor billing; settlement is not
// exposed here so no payment gateway is needed.
func newVendorBilling(cmd *cobra.Command) (*usecase.VendorBillingUseCase, error) {
	ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg.Dynamo)
	if err != nil {
		return nil, err
	}
	return usecase.NewVendorBillingUseCase(
		repository.NewImpressionDynamoRepository(ddb, cfg.Dynamo.ImpressionsTable),
		repository.NewVendorPaymentDynamoRepository(ddb, cfg.Dynamo.VendorPaymentsTable),
		nil,
		log,
		usecase.WithDocuments(nil, documents.NewLeadsXLSX()),
	), nil
}

func printSummary(w io.Writer, email string, s entities.BillingSummary) {
	fmt.Fprintf(w, "vendor:        %s\n", email)
	fmt.Fprintf(w, "leads:         %d (pending %d, invoiced %d, paid %d)\n",
		s.TotalLeads, s.LeadsByStatus.Pending, s.LeadsByStatus.Invoiced, s.LeadsByStatus.Paid)
	fmt.Fprintf(w, "total charged: %.2f\n", s.TotalCharged)
	fmt.Fprintf(w, "total paid:    %.2f\n", s.TotalPaid)
	fmt.Fprintf(w, "balance due:   %.2f\n", s.BalanceDue)
}
