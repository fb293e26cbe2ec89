package documents

import (
	"bytes"
	"testing"
	"time"

	"tradequote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleImpressions() []entities.QuoteImpression {
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	return []entities.QuoteImpression{
		{ID: "imp-1", ProjectName: "Café renovation", ProjectLocation: "Montréal, QC, CA", Segment: "drywall", ProjectSqft: 1200, QuotedTotal: 3000, AmountCharged: 250, BillingStatus: entities.BillingStatusPending, NotificationStatus: entities.NotificationStatusSent, CreatedAt: at},
		{ID: "imp-2", ProjectName: "Basement", ProjectLocation: "Toronto, ON, CA", Segment: "drywall", ProjectSqft: 800, QuotedTotal: 2000, AmountCharged: 250, BillingStatus: entities.BillingStatusPending, NotificationStatus: entities.NotificationStatusFailed, CreatedAt: at},
	}
}

func TestInvoicePDF_RenderInvoice(t *testing.T) {
	g := NewInvoicePDF("TradeQuote")
	g.now = func() time.Time { return time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC) }

	out, err := g.RenderInvoice("acme@vendor.test", "INV-ACME-20260305000000", sampleImpressions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestLeadsXLSX_ExportLeads(t *testing.T) {
	out, err := NewLeadsXLSX().ExportLeads("acme@vendor.test", sampleImpressions())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leadsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "imp-1", rows[1][1])
	assert.Equal(t, "Café renovation", rows[1][2])
	assert.Equal(t, "failed", rows[2][12])
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "short", trim("short", 10))
	assert.Equal(t, "abcd…", trim("abcdefgh", 5))
}
