package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuoteNotFound       = fmt.Errorf("%w: quote request not found", errs.ErrNotFound)
	ErrQuoteForbidden      = fmt.Errorf("%w: you don't have access to this quote", errs.ErrForbidden)
	ErrInvalidProjectID    = errs.Invalid("project_id", "project id is required")
	ErrInvalidQuoteID      = errs.Invalid("quote_id", "quote id is required")
	ErrMissingProjectPlace = errs.Invalid("address", "project must have region and country set to get quotes")
	ErrQuoteRequestFailed  = errors.New("quote request failed")
)

const (
	DefaultPricingTimeout = 60 * time.Second
	quoteLockTTL          = 30 * time.Second
	finalizeTimeout       = 10 * time.Second
)

// IQuoteUseCase is the customer-facing quote API.
//
// CreateQuoteRequest runs the quote saga:
//
//	matching_vendors -> generating_quotes -> completed
//
// Any failure after the request row exists moves it to failed before the
// error is returned, so no request outlives the call in a non-terminal state.
type IQuoteUseCase interface {
	CreateQuoteRequest(ctx context.Context, actorID string, in CreateQuoteInput) (QuoteResult, error)
	ListProjectQuotes(ctx context.Context, actorID, projectID string) ([]QuoteSummary, error)
	GetQuote(ctx context.Context, actorID, quoteID string) (QuoteDetail, error)
}

type CreateQuoteInput struct {
	ProjectID   string
	Segment     string
	ProjectSqft float64
	Options     map[string]any
	ChatID      string
}

type QuoteResult struct {
	ID                  string                       `json:"id"`
	ProjectID           string                       `json:"project_id"`
	Segment             string                       `json:"segment"`
	SegmentName         string                       `json:"segment_name"`
	ProjectSqft         float64                      `json:"project_sqft"`
	Address             entities.Address             `json:"address"`
	Options             map[string]any               `json:"options"`
	Status              entities.QuoteRequestStatus  `json:"status"`
	MatchedVendorsCount int                          `json:"matched_vendors_count"`
	VendorQuotes        []entities.VendorQuote       `json:"vendor_quotes"`
	Benchmark           entities.BenchmarkResult     `json:"iivy_benchmark"`
	CreatedAt           time.Time                    `json:"created_at"`
	CompletedAt         time.Time                    `json:"completed_at"`
	Impressions         []entities.ImpressionOutcome `json:"-"`
}

type QuoteSummary struct {
	ID                string                      `json:"id"`
	Segment           string                      `json:"segment"`
	SegmentName       string                      `json:"segment_name"`
	ProjectSqft       float64                     `json:"project_sqft"`
	Status            entities.QuoteRequestStatus `json:"status"`
	VendorQuotesCount int                         `json:"vendor_quotes_count"`
	BenchmarkRange    *entities.PriceRange        `json:"benchmark_range"`
	CreatedAt         time.Time                   `json:"created_at"`
	CompletedAt       *time.Time                  `json:"completed_at"`
}

type QuoteDetail struct {
	entities.QuoteRequest
	SegmentName  string `json:"segment_name"`
	SegmentPhase string `json:"segment_phase"`
}

// QuoteUseCaseDeps wires the collaborators of the quote saga. Locker, Customers
// and Metrics are optional.
type QuoteUseCaseDeps struct {
	Quotes    interfaces.IQuoteRequestRepository
	Access    interfaces.IProjectAccessResolver
	Directory IVendorDirectory
	Catalog   ICatalogUseCase
	Pricing   interfaces.IPricingOracle
	Ledger    IBillingLedger
	Customers interfaces.ICustomerDirectory
	Locker    interfaces.IQuoteLocker
	Metrics   interfaces.IQuoteMetrics
	Log       logrus.FieldLogger

	PricingTimeout time.Duration
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRequestRepository
	access    interfaces.IProjectAccessResolver
	directory IVendorDirectory
	catalog   ICatalogUseCase
	pricing   interfaces.IPricingOracle
	ledger    IBillingLedger
	customers interfaces.ICustomerDirectory
	locker    interfaces.IQuoteLocker
	metrics   interfaces.IQuoteMetrics
	log       logrus.FieldLogger

	pricingTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(d QuoteUseCaseDeps) *QuoteUseCase {
	u := &QuoteUseCase{
		quotes:         d.Quotes,
		access:         d.Access,
		directory:      d.Directory,
		catalog:        d.Catalog,
		pricing:        d.Pricing,
		ledger:         d.Ledger,
		customers:      d.Customers,
		locker:         d.Locker,
		metrics:        d.Metrics,
		log:            d.Log,
		pricingTimeout: d.PricingTimeout,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
	}
	if u.metrics == nil {
		u.metrics = interfaces.NopMetrics{}
	}
	if u.log == nil {
		u.log = logrus.StandardLogger()
	}
	if u.pricingTimeout <= 0 {
		u.pricingTimeout = DefaultPricingTimeout
	}
	return u
}

func (u *QuoteUseCase) CreateQuoteRequest(ctx context.Context, actorID string, in CreateQuoteInput) (QuoteResult, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.Segment = strings.TrimSpace(in.Segment)
	if in.ProjectID == "" {
		return QuoteResult{}, ErrInvalidProjectID
	}

	access, err := u.access.ResolveAccess(ctx, actorID, in.ProjectID)
	if err != nil {
		return QuoteResult{}, err
	}

	if in.Segment == "" {
		return QuoteResult{}, ErrInvalidSegment
	}
	if in.ProjectSqft <= 0 {
		return QuoteResult{}, ErrInvalidProjectSqft
	}
	address := access.Project.Address
	if strings.TrimSpace(address.Region) == "" || strings.TrimSpace(address.Country) == "" {
		return QuoteResult{}, ErrMissingProjectPlace
	}
	if in.Options == nil {
		in.Options = map[string]any{}
	}

	if u.locker != nil {
		release, ok := u.locker.TryLock(ctx, "quote-lock:"+in.ProjectID+":"+in.Segment, quoteLockTTL)
		defer release()
		if !ok {
			u.log.WithFields(logrus.Fields{"project_id": in.ProjectID, "segment": in.Segment}).
				Warn("[quote][usecase] could not obtain quote lock; proceeding without lock")
		}
	}

	started := u.now()
	q := entities.QuoteRequest{
		ID:                u.newID(),
		ProjectID:         in.ProjectID,
		ChatID:            strings.TrimSpace(in.ChatID),
		RequestedByUserID: actorID,
		Segment:           in.Segment,
		ProjectSqft:       in.ProjectSqft,
		Options:           in.Options,
		AddressSnapshot:   address,
		Status:            entities.QuoteStatusMatchingVendors,
		CreatedAt:         started,
		UpdatedAt:         started,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return QuoteResult{}, errs.Persistence("create quote request", err)
	}
	if !created.CreatedAt.IsZero() {
		q.CreatedAt = created.CreatedAt
	}

	log := u.log.WithFields(logrus.Fields{
		"quote_request_id": q.ID,
		"project_id":       q.ProjectID,
		"segment":          q.Segment,
	})
	log.Info("[quote][usecase] quote request created")

	res, err := u.runSaga(ctx, q, access.Project, log)
	if err != nil {
		u.fail(ctx, q.ID, err, log)
		u.metrics.ObserveQuoteRequest(entities.QuoteStatusFailed, u.now().Sub(started))
		return QuoteResult{}, fmt.Errorf("%w: %w", ErrQuoteRequestFailed, err)
	}
	u.metrics.ObserveQuoteRequest(entities.QuoteStatusCompleted, u.now().Sub(started))

	if len(res.VendorQuotes) > 0 && u.ledger != nil {
		res.Impressions = u.ledger.RecordImpressions(ctx, q.ID, entities.ProjectSnapshot{
			ProjectID:              q.ProjectID,
			ProjectName:            access.Project.DisplayName(),
			Segment:                q.Segment,
			SegmentName:            res.SegmentName,
			ProjectSqft:            q.ProjectSqft,
			Location:               q.AddressSnapshot.Location(),
			AdditionalRequirements: q.AdditionalRequirements(),
		}, u.customer(ctx, actorID, log), res.VendorQuotes)
		logImpressionOutcomes(log, res.Impressions)
	}
	return res, nil
}

// runSaga drives the request from matching_vendors to completed.
func (u *QuoteUseCase) runSaga(ctx context.Context, q entities.QuoteRequest, project entities.Project, log logrus.FieldLogger) (res QuoteResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in quote saga: %v", r)
		}
	}()

	addr := q.AddressSnapshot
	matched, err := u.directory.Match(ctx, q.Segment, addr.Country, addr.Region)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("match vendors: %w", err)
	}
	summaries := make([]entities.MatchedVendor, 0, len(matched))
	for _, m := range matched {
		summaries = append(summaries, m.Summary())
	}
	if err := u.quotes.MarkGeneratingQuotes(ctx, q.ID, summaries); err != nil {
		return QuoteResult{}, errs.Persistence("mark generating quotes", err)
	}
	log.WithField("matched_vendors", len(matched)).Info("[quote][usecase] vendors matched")

	benchmark, err := u.catalog.Compute(ctx, q.Segment, q.ProjectSqft)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("compute benchmark: %w", err)
	}

	quotes := u.generateQuotes(ctx, q, benchmark.SegmentName, matched, log)
	if err := ctx.Err(); err != nil {
		return QuoteResult{}, err
	}

	completedAt := u.now()
	if err := u.quotes.MarkCompleted(ctx, q.ID, quotes, benchmark, completedAt); err != nil {
		return QuoteResult{}, errs.Persistence("mark completed", err)
	}
	log.WithField("vendor_quotes", len(quotes)).Info("[quote][usecase] quote request completed")

	return QuoteResult{
		ID:                  q.ID,
		ProjectID:           q.ProjectID,
		Segment:             q.Segment,
		SegmentName:         benchmark.SegmentName,
		ProjectSqft:         q.ProjectSqft,
		Address:             q.AddressSnapshot,
		Options:             q.Options,
		Status:              entities.QuoteStatusCompleted,
		MatchedVendorsCount: len(matched),
		VendorQuotes:        quotes,
		Benchmark:           benchmark,
		CreatedAt:           q.CreatedAt,
		CompletedAt:         completedAt,
	}, nil
}

// generateQuotes asks the pricing oracle for vendor prices. Any oracle failure
// degrades to an empty list: the benchmark alone is a valid answer.
func (u *QuoteUseCase) generateQuotes(ctx context.Context, q entities.QuoteRequest, segmentName string, matched []entities.VendorOffering, log logrus.FieldLogger) []entities.VendorQuote {
	if len(matched) == 0 {
		return []entities.VendorQuote{}
	}
	if u.pricing == nil {
		log.Warn("[quote][usecase] pricing oracle not configured; returning benchmark only")
		return []entities.VendorQuote{}
	}

	pctx, cancel := context.WithTimeout(ctx, u.pricingTimeout)
	defer cancel()
	quotes, err := u.pricing.GenerateQuotes(pctx, interfaces.PricingRequest{
		Segment:     q.Segment,
		SegmentName: segmentName,
		ProjectSqft: q.ProjectSqft,
		City:        q.AddressSnapshot.City,
		Region:      q.AddressSnapshot.Region,
		Country:     q.AddressSnapshot.Country,
		Options:     q.Options,
		Vendors:     matched,
	})
	if err != nil {
		u.metrics.ObservePricingFailure()
		log.WithError(err).Error("[quote][usecase] AI quote generation failed")
		return []entities.VendorQuote{}
	}
	return enrichVendorQuotes(quotes, matched)
}

// enrichVendorQuotes joins oracle output to the matched offerings by vendor
// email. Quotes without a matching offering are kept with blank contact fields.
func enrichVendorQuotes(quotes []entities.VendorQuote, matched []entities.VendorOffering) []entities.VendorQuote {
	byEmail := make(map[string]entities.VendorOffering, len(matched))
	for _, m := range matched {
		if _, dup := byEmail[m.UserEmail]; !dup {
			byEmail[m.UserEmail] = m
		}
	}

	out := make([]entities.VendorQuote, 0, len(quotes))
	for _, vq := range quotes {
		if m, ok := byEmail[vq.UserEmail]; ok {
			vq.ContactEmail = m.UserEmail
			vq.CompanyDescription = m.CompanyDescription
			vq.VendorServiceID = m.ID
			if vq.CompanyName == "" {
				vq.CompanyName = m.CompanyName
			}
		}
		out = append(out, vq)
	}
	return out
}

// fail moves the request to failed. It runs detached from ctx so a cancelled
// caller still leaves a terminal record behind.
func (u *QuoteUseCase) fail(ctx context.Context, id string, cause error, log logrus.FieldLogger) {
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()
	log = log.WithError(cause)
	if err := u.quotes.MarkFailed(fctx, id, cause.Error()); err != nil {
		log.WithField("finalize_error", err.Error()).Error("[quote][usecase] failed to persist failed status")
		return
	}
	log.Error("[quote][usecase] quote request failed")
}

func (u *QuoteUseCase) customer(ctx context.Context, actorID string, log logrus.FieldLogger) entities.Customer {
	fallback := entities.Customer{UserID: actorID}
	if u.customers == nil {
		return fallback
	}
	c, err := u.customers.GetCustomer(ctx, actorID)
	if err != nil {
		log.WithError(err).Warn("[quote][usecase] customer lookup failed; billing with partial identity")
		return fallback
	}
	c.UserID = actorID
	return c
}

func logImpressionOutcomes(log logrus.FieldLogger, outcomes []entities.ImpressionOutcome) {
	counts := map[entities.ImpressionResult]int{}
	for _, o := range outcomes {
		counts[o.Result]++
	}
	log.WithFields(logrus.Fields{
		"created":   counts[entities.ImpressionCreated],
		"duplicate": counts[entities.ImpressionDuplicate],
		"skipped":   counts[entities.ImpressionSkipped],
		"errors":    counts[entities.ImpressionError],
	}).Info("[quote][usecase] impressions recorded")
}

func (u *QuoteUseCase) ListProjectQuotes(ctx context.Context, actorID, projectID string) ([]QuoteSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if _, err := u.access.ResolveAccess(ctx, actorID, projectID); err != nil {
		return nil, err
	}

	items, err := u.quotes.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	names := map[string]string{}
	out := make([]QuoteSummary, 0, len(items))
	for _, q := range items {
		name, ok := names[q.Segment]
		if !ok {
			name = u.segmentName(ctx, q.Segment)
			names[q.Segment] = name
		}
		s := QuoteSummary{
			ID:                q.ID,
			Segment:           q.Segment,
			SegmentName:       name,
			ProjectSqft:       q.ProjectSqft,
			Status:            q.Status,
			VendorQuotesCount: len(q.VendorQuotes),
			CreatedAt:         q.CreatedAt,
			CompletedAt:       q.CompletedAt,
		}
		if q.Benchmark != nil {
			r := q.Benchmark.RangeTotal
			s.BenchmarkRange = &r
		}
		out = append(out, s)
	}
	return out, nil
}

// GetQuote is allowed for the requester and for the owner of the project.
func (u *QuoteUseCase) GetQuote(ctx context.Context, actorID, quoteID string) (QuoteDetail, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return QuoteDetail{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return QuoteDetail{}, err
	}
	if q.ID == "" {
		return QuoteDetail{}, ErrQuoteNotFound
	}

	if q.RequestedByUserID != actorID {
		owner, err := u.access.GetProjectOwner(ctx, q.ProjectID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return QuoteDetail{}, err
		}
		if owner == "" || owner != actorID {
			return QuoteDetail{}, ErrQuoteForbidden
		}
	}

	d := QuoteDetail{QuoteRequest: q}
	if q.VendorQuotes == nil {
		d.VendorQuotes = []entities.VendorQuote{}
	}
	if s, err := u.catalog.GetSegment(ctx, q.Segment); err == nil {
		d.SegmentName = s.Name
		d.SegmentPhase = s.Phase
	}
	return d, nil
}

func (u *QuoteUseCase) segmentName(ctx context.Context, id string) string {
	s, err := u.catalog.GetSegment(ctx, id)
	if err != nil {
		return ""
	}
	return s.Name
}
