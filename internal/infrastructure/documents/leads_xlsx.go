package documents

import (
	"bytes"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const leadsSheet = "Leads"

var leadsHeader = []any{
	"Date", "Impression ID", "Project", "Location", "Segment", "Area (sqft)",
	"Quoted rate", "Quoted total", "Customer", "Customer email", "Charged",
	"Billing status", "Email status",
}

type LeadsXLSX struct{}

var _ interfaces.ILeadsExporter = LeadsXLSX{}

func NewLeadsXLSX() LeadsXLSX { return LeadsXLSX{} }

// ExportLeads writes one row per impression under a header row.
func (LeadsXLSX) ExportLeads(vendorEmail string, items []entities.QuoteImpression) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leadsSheet); err != nil {
		return nil, err
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: "Leads for " + vendorEmail}); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(leadsSheet, "A1", &leadsHeader); err != nil {
		return nil, err
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			it.CreatedAt.UTC().Format("2006-01-02 15:04"),
			it.ID,
			it.ProjectName,
			it.ProjectLocation,
			it.Segment,
			it.ProjectSqft,
			it.QuotedRatePerSF,
			it.QuotedTotal,
			it.CustomerName,
			it.CustomerEmail,
			it.AmountCharged,
			string(it.BillingStatus),
			string(it.NotificationStatus),
		}
		if err := f.SetSheetRow(leadsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
