package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleImpression(vendorServiceID string, at time.Time) entities.QuoteImpression {
	return entities.QuoteImpression{
		ID:                 "imp-" + vendorServiceID,
		QuoteRequestID:     "q-1",
		ProjectID:          "p-1",
		Segment:            "drywall",
		VendorServiceID:    vendorServiceID,
		VendorEmail:        "acme@vendor.test",
		VendorCompanyName:  "Acme",
		CustomerUserID:     "user-1",
		CustomerEmail:      "owner@home.test",
		ProjectName:        "Basement",
		ProjectLocation:    "Toronto, ON, CA",
		ProjectSqft:        800,
		QuotedRatePerSF:    2.5,
		QuotedTotal:        2000,
		AmountCharged:      250,
		BillingStatus:      entities.BillingStatusPending,
		NotificationStatus: entities.NotificationStatusPending,
		CreatedAt:          at,
	}
}

func TestImpressionDynamoRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("second insert of the same key is reported", func(t *testing.T) {
		repo := NewImpressionDynamoRepository(newFakeDynamo("dedup_key"), "")
		imp := sampleImpression("vs-1", time.Now().UTC())

		res, err := repo.InsertIfAbsent(ctx, imp)
		require.NoError(t, err)
		assert.Equal(t, entities.InsertCreated, res)

		imp.ID = "imp-other"
		res, err = repo.InsertIfAbsent(ctx, imp)
		require.NoError(t, err)
		assert.Equal(t, entities.InsertAlreadyExists, res)
	})

	t.Run("concurrent inserts create exactly one row", func(t *testing.T) {
		ddb := newFakeDynamo("dedup_key")
		repo := NewImpressionDynamoRepository(ddb, "")
		imp := sampleImpression("vs-1", time.Now().UTC())

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := repo.InsertIfAbsent(ctx, imp)
				if err == nil && res == entities.InsertCreated {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, created)
		assert.Len(t, ddb.items, 1)
	})

	t.Run("store error", func(t *testing.T) {
		ddb := newFakeDynamo("dedup_key")
		ddb.err = errBoom
		_, err := NewImpressionDynamoRepository(ddb, "").InsertIfAbsent(ctx, sampleImpression("vs-1", time.Now()))
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestImpressionDynamoRepository_Updates(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo("dedup_key")
	ddb.pageSize = 1
	repo := NewImpressionDynamoRepository(ddb, "")

	older := sampleImpression("vs-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleImpression("vs-2", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	for _, imp := range []entities.QuoteImpression{older, newer} {
		_, err := repo.InsertIfAbsent(ctx, imp)
		require.NoError(t, err)
	}

	sentAt := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateNotificationStatus(ctx, newer.DedupKey(), entities.NotificationStatusSent, &sentAt))
	assert.Error(t, repo.UpdateNotificationStatus(ctx, "p-9#x#y", entities.NotificationStatusSent, nil))

	ok, err := repo.UpdateBillingStatus(ctx, older.DedupKey(), []entities.BillingStatus{entities.BillingStatusPending}, entities.BillingStatusInvoiced)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateBillingStatus(ctx, older.DedupKey(), []entities.BillingStatus{entities.BillingStatusPending}, entities.BillingStatusInvoiced)
	require.NoError(t, err)
	assert.False(t, ok, "an invoiced lead is not pending anymore")

	ok, err = repo.UpdateBillingStatus(ctx, older.DedupKey(), nil, entities.BillingStatusPaid)
	require.NoError(t, err)
	assert.False(t, ok)

	items, err := repo.ListByVendorEmail(ctx, "acme@vendor.test")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, ddb.queries, "one query per page")

	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, entities.NotificationStatusSent, items[0].NotificationStatus)
	require.NotNil(t, items[0].EmailSentAt)
	assert.True(t, sentAt.Equal(*items[0].EmailSentAt))
	assert.Equal(t, 250.0, items[0].AmountCharged)

	assert.Equal(t, older.ID, items[1].ID)
	assert.Equal(t, entities.BillingStatusInvoiced, items[1].BillingStatus)
	assert.Nil(t, items[1].EmailSentAt)
}

func TestQuoteRequestDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo("id")
	repo := NewQuoteRequestDynamoRepository(ddb, "")

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := entities.QuoteRequest{
		ID:                "q-1",
		ProjectID:         "p-1",
		RequestedByUserID: "user-1",
		Segment:           "drywall",
		ProjectSqft:       1200,
		Options:           map[string]any{"additional_requirements": "level 5 finish"},
		AddressSnapshot:   entities.Address{City: "Toronto", Region: "ON", Country: "CA"},
		Status:            entities.QuoteStatusMatchingVendors,
		CreatedAt:         created,
		UpdatedAt:         created,
	}
	_, err := repo.Create(ctx, q)
	require.NoError(t, err)

	_, err = repo.Create(ctx, q)
	assert.True(t, isConditionalCheckFailed(err), "ids are never overwritten")

	require.NoError(t, repo.MarkGeneratingQuotes(ctx, "q-1", []entities.MatchedVendor{{UserEmail: "acme@vendor.test", CompanyName: "Acme"}}))
	bm := entities.BenchmarkResult{SegmentID: "drywall", SegmentName: "Drywall", BenchmarkUnit: "$/sf", RangePerSF: entities.PriceRange{Low: 2, High: 3}, RangeTotal: entities.PriceRange{Low: 2400, High: 3600}, ProjectSqft: 1200}
	completedAt := created.Add(time.Minute)
	require.NoError(t, repo.MarkCompleted(ctx, "q-1", []entities.VendorQuote{{UserEmail: "acme@vendor.test", CompanyName: "Acme", FinalRatePerSF: 2.5, Total: 3000}}, bm, completedAt))

	err = repo.MarkFailed(ctx, "q-1", "late failure")
	assert.ErrorIs(t, err, interfaces.ErrTransitionRejected)

	err = repo.MarkGeneratingQuotes(ctx, "missing", nil)
	assert.ErrorIs(t, err, interfaces.ErrTransitionRejected)

	got, err := repo.GetByID(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusCompleted, got.Status)
	assert.Equal(t, "level 5 finish", got.AdditionalRequirements())
	assert.Equal(t, "CA", got.AddressSnapshot.Country)
	require.Len(t, got.MatchedVendors, 1)
	require.Len(t, got.VendorQuotes, 1)
	assert.Equal(t, 3000.0, got.VendorQuotes[0].Total)
	require.NotNil(t, got.Benchmark)
	assert.Equal(t, 3600.0, got.Benchmark.RangeTotal.High)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, completedAt.Equal(*got.CompletedAt))
	assert.Empty(t, got.ErrorMessage)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	q2 := q
	q2.ID, q2.CreatedAt = "q-2", created.Add(time.Hour)
	_, err = repo.Create(ctx, q2)
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(ctx, "q-2", "pricing unavailable"))

	list, err := repo.ListByProjectID(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "q-2", list[0].ID)
	assert.Equal(t, entities.QuoteStatusFailed, list[0].Status)
	assert.Equal(t, "pricing unavailable", list[0].ErrorMessage)
}

func TestVendorPaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorPaymentDynamoRepository(newFakeDynamo("id"), "")

	p := entities.VendorPayment{
		ID:                 "pay-1",
		VendorEmail:        "acme@vendor.test",
		Amount:             500,
		ImpressionIDs:      []string{"imp-1", "imp-2"},
		Date:               time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":123,"status":"approved"}`),
		ProviderPayload:    map[string]any{"status": "approved"},
	}
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, 500.0, got.Amount)
	assert.Equal(t, []string{"imp-1", "imp-2"}, got.ImpressionIDs)
	assert.Equal(t, entities.PaymentStatusApproved, got.Status)
	assert.JSONEq(t, `{"id":123,"status":"approved"}`, string(got.ProviderPayloadRaw))

	missing, err := repo.GetByID(ctx, "pay-9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := repo.ListByVendorEmail(ctx, "acme@vendor.test")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
