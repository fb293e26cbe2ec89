package usecase

import (
	"context"
	"strings"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultImpressionFee = 250.00
	DefaultNotifyTimeout = 10 * time.Second
)

// IBillingLedger records billable impressions for vendor quotes shown to a
// customer.
//
// A vendor is charged once per (project, segment, vendor offering): the first
// impression wins and every later one is a no-op. Failures are isolated per
// vendor and reported as outcomes, never as an error of the whole call.
type IBillingLedger interface {
	RecordImpressions(ctx context.Context, quoteRequestID string, project entities.ProjectSnapshot, customer entities.Customer, quotes []entities.VendorQuote) []entities.ImpressionOutcome
}

type BillingLedgerUseCase struct {
	repo          interfaces.IImpressionRepository
	notifier      interfaces.INotificationGateway
	metrics       interfaces.IQuoteMetrics
	log           logrus.FieldLogger
	fee           decimal.Decimal
	notifyTimeout time.Duration
	now           func() time.Time
}

var _ IBillingLedger = (*BillingLedgerUseCase)(nil)

type LedgerOption func(*BillingLedgerUseCase)

func WithImpressionFee(fee float64) LedgerOption {
	return func(u *BillingLedgerUseCase) { u.fee = decimal.NewFromFloat(fee).Round(2) }
}

func WithNotifyTimeout(d time.Duration) LedgerOption {
	return func(u *BillingLedgerUseCase) {
		if d > 0 {
			u.notifyTimeout = d
		}
	}
}

func WithLedgerMetrics(m interfaces.IQuoteMetrics) LedgerOption {
	return func(u *BillingLedgerUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

func NewBillingLedgerUseCase(repo interfaces.IImpressionRepository, notifier interfaces.INotificationGateway, log logrus.FieldLogger, opts ...LedgerOption) *BillingLedgerUseCase {
	u := &BillingLedgerUseCase{
		repo:          repo,
		notifier:      notifier,
		metrics:       interfaces.NopMetrics{},
		log:           log,
		fee:           decimal.NewFromFloat(DefaultImpressionFee),
		notifyTimeout: DefaultNotifyTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *BillingLedgerUseCase) RecordImpressions(
	ctx context.Context,
	quoteRequestID string,
	project entities.ProjectSnapshot,
	customer entities.Customer,
	quotes []entities.VendorQuote,
) []entities.ImpressionOutcome {
	outcomes := make([]entities.ImpressionOutcome, 0, len(quotes))
	for _, vq := range quotes {
		out := u.recordOne(ctx, quoteRequestID, project, customer, vq)
		u.metrics.ObserveImpression(out.Result)
		outcomes = append(outcomes, out)
	}
	return outcomes
}

func (u *BillingLedgerUseCase) recordOne(
	ctx context.Context,
	quoteRequestID string,
	project entities.ProjectSnapshot,
	customer entities.Customer,
	vq entities.VendorQuote,
) entities.ImpressionOutcome {
	out := entities.ImpressionOutcome{VendorServiceID: vq.VendorServiceID, VendorEmail: vq.UserEmail}
	fields := logrus.Fields{
		"quote_request_id":  quoteRequestID,
		"project_id":        project.ProjectID,
		"segment":           project.Segment,
		"vendor_service_id": vq.VendorServiceID,
		"vendor_email":      vq.UserEmail,
	}

	if strings.TrimSpace(vq.VendorServiceID) == "" || strings.TrimSpace(vq.UserEmail) == "" {
		u.log.WithFields(fields).Warn("[billing][ledger] skipping quote without vendor_service_id or email")
		out.Result = entities.ImpressionSkipped
		return out
	}

	imp := entities.QuoteImpression{
		ID:                 uuid.NewString(),
		QuoteRequestID:     quoteRequestID,
		ProjectID:          project.ProjectID,
		Segment:            project.Segment,
		VendorServiceID:    vq.VendorServiceID,
		VendorEmail:        normalizeEmail(vq.UserEmail),
		VendorCompanyName:  vq.CompanyName,
		CustomerUserID:     customer.UserID,
		CustomerEmail:      customer.Email,
		CustomerName:       customer.Name,
		ProjectName:        project.ProjectName,
		ProjectLocation:    project.Location,
		ProjectSqft:        project.ProjectSqft,
		QuotedRatePerSF:    vq.FinalRatePerSF,
		QuotedTotal:        vq.Total,
		AmountCharged:      u.fee.InexactFloat64(),
		BillingStatus:      entities.BillingStatusPending,
		NotificationStatus: entities.NotificationStatusPending,
		CreatedAt:          u.now(),
	}

	res, err := u.repo.InsertIfAbsent(ctx, imp)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[billing][ledger] failed to create impression")
		out.Result = entities.ImpressionError
		out.Error = err.Error()
		return out
	}
	if res == entities.InsertAlreadyExists {
		u.log.WithFields(fields).Info("[billing][ledger] impression already exists; vendor already billed")
		out.Result = entities.ImpressionDuplicate
		return out
	}

	out.Result = entities.ImpressionCreated
	out.ImpressionID = imp.ID
	u.log.WithFields(fields).WithField("impression_id", imp.ID).Info("[billing][ledger] impression created")

	out.NotificationStatus = u.notify(ctx, imp, project, fields)
	u.metrics.ObserveNotification(out.NotificationStatus)
	return out
}

// notify sends the lead email once and stores the delivery outcome. The
// impression and its billing status are never touched here.
func (u *BillingLedgerUseCase) notify(ctx context.Context, imp entities.QuoteImpression, project entities.ProjectSnapshot, fields logrus.Fields) entities.NotificationStatus {
	status := entities.NotificationStatusFailed
	var sentAt *time.Time

	if u.notifier == nil {
		u.log.WithFields(fields).Warn("[billing][ledger] notification gateway not configured")
	} else {
		nctx, cancel := context.WithTimeout(ctx, u.notifyTimeout)
		receipt, err := u.notifier.NotifyVendorLead(nctx, interfaces.LeadNotification{
			ImpressionKey:          imp.DedupKey(),
			VendorEmail:            imp.VendorEmail,
			VendorCompanyName:      imp.VendorCompanyName,
			CustomerName:           imp.CustomerName,
			CustomerEmail:          imp.CustomerEmail,
			SegmentName:            project.SegmentName,
			ProjectSqft:            imp.ProjectSqft,
			ProjectLocation:        imp.ProjectLocation,
			ProjectName:            imp.ProjectName,
			QuotedRate:             imp.QuotedRatePerSF,
			QuotedTotal:            imp.QuotedTotal,
			AdditionalRequirements: project.AdditionalRequirements,
		})
		cancel()
		switch {
		case err != nil:
			u.log.WithFields(fields).WithError(err).Error("[billing][ledger] failed to send lead notification")
		case receipt.Status == interfaces.DeliveryDelivered:
			status = entities.NotificationStatusSent
			t := receipt.SentAt
			if t.IsZero() {
				t = u.now()
			}
			sentAt = &t
		default:
			u.log.WithFields(fields).WithField("delivery_status", receipt.Status).Warn("[billing][ledger] lead notification not delivered")
		}
	}

	// The status write must survive a caller that gave up during delivery.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.notifyTimeout)
	defer cancel()
	if err := u.repo.UpdateNotificationStatus(wctx, imp.DedupKey(), status, sentAt); err != nil {
		u.log.WithFields(fields).WithError(err).Error("[billing][ledger] failed to store notification status")
	}
	return status
}
