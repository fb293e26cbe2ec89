package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"
	mock_interfaces "tradequote/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memImpressionRepo is an in-memory IImpressionRepository with the same
// insert-if-absent semantics as the DynamoDB conditional put.
type memImpressionRepo struct {
	mu   sync.Mutex
	rows map[string]entities.QuoteImpression
}

func newMemImpressionRepo() *memImpressionRepo {
	return &memImpressionRepo{rows: map[string]entities.QuoteImpression{}}
}

func (r *memImpressionRepo) InsertIfAbsent(_ context.Context, imp entities.QuoteImpression) (entities.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[imp.DedupKey()]; ok {
		return entities.InsertAlreadyExists, nil
	}
	r.rows[imp.DedupKey()] = imp
	return entities.InsertCreated, nil
}

func (r *memImpressionRepo) UpdateNotificationStatus(_ context.Context, key string, status entities.NotificationStatus, sentAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[key]
	if !ok {
		return errors.New("missing row")
	}
	row.NotificationStatus = status
	row.EmailSentAt = sentAt
	r.rows[key] = row
	return nil
}

func (r *memImpressionRepo) UpdateBillingStatus(_ context.Context, key string, from []entities.BillingStatus, to entities.BillingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[key]
	if !ok || !slices.Contains(from, row.BillingStatus) {
		return false, nil
	}
	row.BillingStatus = to
	r.rows[key] = row
	return true, nil
}

func (r *memImpressionRepo) ListByVendorEmail(_ context.Context, email string) ([]entities.QuoteImpression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.QuoteImpression{}
	for _, row := range r.rows {
		if row.VendorEmail == email {
			out = append(out, row)
		}
	}
	return out, nil
}

type countingNotifier struct {
	calls  atomic.Int32
	status interfaces.DeliveryStatus
	err    error
}

func (n *countingNotifier) NotifyVendorLead(_ context.Context, _ interfaces.LeadNotification) (interfaces.DeliveryReceipt, error) {
	n.calls.Add(1)
	if n.err != nil {
		return interfaces.DeliveryReceipt{}, n.err
	}
	return interfaces.DeliveryReceipt{Status: n.status, MessageID: "msg-1"}, nil
}

var ledgerProject = entities.ProjectSnapshot{
	ProjectID:   "p1",
	ProjectName: "Maple House",
	Segment:     "drywall",
	SegmentName: "Drywall",
	ProjectSqft: 1000,
	Location:    "Toronto, ON, CA",
}

var ledgerCustomer = entities.Customer{UserID: "user-1", Email: "jane@customer.test", Name: "Jane"}

func TestBillingLedger_RecordImpressions_CreatesAndNotifies(t *testing.T) {
	repo := newMemImpressionRepo()
	notifier := &countingNotifier{status: interfaces.DeliveryDelivered}
	ledger := NewBillingLedgerUseCase(repo, notifier, discardLogger())

	out := ledger.RecordImpressions(context.Background(), "qr-1", ledgerProject, ledgerCustomer, []entities.VendorQuote{
		{VendorServiceID: "vs-1", UserEmail: "Acme@Vendor.test", CompanyName: "Acme", FinalRatePerSF: 15, Total: 15000},
	})

	require.Len(t, out, 1)
	assert.Equal(t, entities.ImpressionCreated, out[0].Result)
	assert.Equal(t, entities.NotificationStatusSent, out[0].NotificationStatus)
	assert.NotEmpty(t, out[0].ImpressionID)

	row := repo.rows[entities.ImpressionDedupKey("p1", "drywall", "vs-1")]
	assert.Equal(t, "acme@vendor.test", row.VendorEmail)
	assert.Equal(t, entities.BillingStatusPending, row.BillingStatus)
	assert.Equal(t, entities.NotificationStatusSent, row.NotificationStatus)
	assert.Equal(t, 250.00, row.AmountCharged)
	assert.Equal(t, "jane@customer.test", row.CustomerEmail)
	require.NotNil(t, row.EmailSentAt)
	assert.Equal(t, int32(1), notifier.calls.Load())
}

func TestBillingLedger_RecordImpressions_SecondRequestIsDuplicate(t *testing.T) {
	repo := newMemImpressionRepo()
	notifier := &countingNotifier{status: interfaces.DeliveryDelivered}
	ledger := NewBillingLedgerUseCase(repo, notifier, discardLogger(), WithImpressionFee(99.999))
	quotes := []entities.VendorQuote{{VendorServiceID: "vs-1", UserEmail: "acme@vendor.test"}}

	first := ledger.RecordImpressions(context.Background(), "qr-1", ledgerProject, ledgerCustomer, quotes)
	second := ledger.RecordImpressions(context.Background(), "qr-2", ledgerProject, ledgerCustomer, quotes)

	assert.Equal(t, entities.ImpressionCreated, first[0].Result)
	assert.Equal(t, entities.ImpressionDuplicate, second[0].Result)
	assert.Empty(t, second[0].NotificationStatus)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, int32(1), notifier.calls.Load())
	assert.Equal(t, "qr-1", repo.rows[entities.ImpressionDedupKey("p1", "drywall", "vs-1")].QuoteRequestID)
	assert.Equal(t, 100.00, repo.rows[entities.ImpressionDedupKey("p1", "drywall", "vs-1")].AmountCharged)
}

func TestBillingLedger_RecordImpressions_ConcurrentRequestsBillOnce(t *testing.T) {
	repo := newMemImpressionRepo()
	notifier := &countingNotifier{status: interfaces.DeliveryDelivered}
	ledger := NewBillingLedgerUseCase(repo, notifier, discardLogger())
	quotes := []entities.VendorQuote{
		{VendorServiceID: "vs-1", UserEmail: "acme@vendor.test"},
		{VendorServiceID: "vs-2", UserEmail: "bolt@vendor.test"},
	}

	const workers = 16
	var created atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, o := range ledger.RecordImpressions(context.Background(), "qr", ledgerProject, ledgerCustomer, quotes) {
				if o.Result == entities.ImpressionCreated {
					created.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), created.Load())
	assert.Len(t, repo.rows, 2)
	assert.Equal(t, int32(2), notifier.calls.Load())
}

func TestBillingLedger_RecordImpressions_NotificationFailureKeepsImpression(t *testing.T) {
	cases := []struct {
		name     string
		notifier *countingNotifier
	}{
		{name: "gateway error", notifier: &countingNotifier{err: errors.New("resend down")}},
		{name: "delivery failed", notifier: &countingNotifier{status: interfaces.DeliveryFailed}},
		{name: "delivery disabled", notifier: &countingNotifier{status: interfaces.DeliveryDisabled}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemImpressionRepo()
			ledger := NewBillingLedgerUseCase(repo, tc.notifier, discardLogger())

			out := ledger.RecordImpressions(context.Background(), "qr-1", ledgerProject, ledgerCustomer, []entities.VendorQuote{
				{VendorServiceID: "vs-1", UserEmail: "acme@vendor.test"},
			})

			require.Len(t, out, 1)
			assert.Equal(t, entities.ImpressionCreated, out[0].Result)
			assert.Equal(t, entities.NotificationStatusFailed, out[0].NotificationStatus)
			row := repo.rows[entities.ImpressionDedupKey("p1", "drywall", "vs-1")]
			assert.Equal(t, entities.BillingStatusPending, row.BillingStatus)
			assert.Equal(t, entities.NotificationStatusFailed, row.NotificationStatus)
			assert.Nil(t, row.EmailSentAt)
		})
	}
}

func TestBillingLedger_RecordImpressions_PerVendorIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIImpressionRepository(ctrl)
	notifier := mock_interfaces.NewMockINotificationGateway(ctrl)
	ledger := NewBillingLedgerUseCase(repo, notifier, discardLogger())

	repo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, imp entities.QuoteImpression) (entities.InsertResult, error) {
		if imp.VendorServiceID == "vs-1" {
			return "", errors.New("throttled")
		}
		return entities.InsertCreated, nil
	}).Times(2)
	notifier.EXPECT().NotifyVendorLead(gomock.Any(), gomock.Any()).
		Return(interfaces.DeliveryReceipt{Status: interfaces.DeliveryDelivered}, nil)
	repo.EXPECT().UpdateNotificationStatus(gomock.Any(), entities.ImpressionDedupKey("p1", "drywall", "vs-2"), entities.NotificationStatusSent, gomock.Any()).
		Return(nil)

	out := ledger.RecordImpressions(context.Background(), "qr-1", ledgerProject, ledgerCustomer, []entities.VendorQuote{
		{VendorServiceID: "vs-1", UserEmail: "acme@vendor.test"},
		{VendorServiceID: "", UserEmail: "noid@vendor.test"},
		{VendorServiceID: "vs-2", UserEmail: "bolt@vendor.test"},
	})

	require.Len(t, out, 3)
	assert.Equal(t, entities.ImpressionError, out[0].Result)
	assert.Equal(t, "throttled", out[0].Error)
	assert.Equal(t, entities.ImpressionSkipped, out[1].Result)
	assert.Equal(t, entities.ImpressionCreated, out[2].Result)
}

func TestBillingLedger_RecordImpressions_StatusWriteSurvivesCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIImpressionRepository(ctrl)
	notifier := mock_interfaces.NewMockINotificationGateway(ctrl)
	ledger := NewBillingLedgerUseCase(repo, notifier, discardLogger(), WithNotifyTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return(entities.InsertCreated, nil)
	notifier.EXPECT().NotifyVendorLead(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ interfaces.LeadNotification) (interfaces.DeliveryReceipt, error) {
		cancel()
		return interfaces.DeliveryReceipt{}, ctx.Err()
	})
	repo.EXPECT().UpdateNotificationStatus(gomock.Any(), gomock.Any(), entities.NotificationStatusFailed, nil).
		DoAndReturn(func(ctx context.Context, _ string, _ entities.NotificationStatus, _ *time.Time) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	out := ledger.RecordImpressions(ctx, "qr-1", ledgerProject, ledgerCustomer, []entities.VendorQuote{
		{VendorServiceID: "vs-1", UserEmail: "acme@vendor.test"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, entities.NotificationStatusFailed, out[0].NotificationStatus)
}
