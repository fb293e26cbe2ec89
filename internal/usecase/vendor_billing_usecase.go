package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrVendorPaymentNotFound          = fmt.Errorf("%w: vendor payment not found", errs.ErrNotFound)
	ErrNoPendingLeads                 = fmt.Errorf("%w: no pending leads to invoice", errs.ErrNotFound)
	ErrNothingToSettle                = fmt.Errorf("%w: no balance due", errs.ErrConflict)
	ErrInvalidMPPayload               = errs.Invalid("payment", "invalid mercado pago payload")
	ErrInvalidPaymentID               = errs.Invalid("payment_id", "payment id is required")
	ErrPaymentGatewayNotConfigured    = fmt.Errorf("%w: payment gateway not configured", errs.ErrUpstreamUnavailable)
	ErrPaymentGatewayBadRequest       = fmt.Errorf("%w: payment gateway bad request", errs.ErrValidation)
	ErrPaymentGatewayUnauthorized     = fmt.Errorf("%w: payment gateway unauthorized", errs.ErrUpstreamUnavailable)
	ErrPaymentGatewayInvalidUsers     = fmt.Errorf("%w: payment gateway invalid users involved", errs.ErrValidation)
	ErrPaymentGatewayCustomerNotFound = fmt.Errorf("%w: payment gateway customer not found", errs.ErrValidation)
	ErrDocumentRendererNotConfigured  = errors.New("document renderer not configured")
)

// IVendorBillingUseCase is the vendor-facing side of the ledger: lead history,
// balance, invoices, spreadsheet export and settlement.
type IVendorBillingUseCase interface {
	ListImpressions(ctx context.Context, vendorEmail string) ([]entities.QuoteImpression, error)
	GetBillingSummary(ctx context.Context, vendorEmail string) (entities.BillingSummary, error)
	InvoiceVendor(ctx context.Context, vendorEmail string) (Invoice, error)
	ExportImpressions(ctx context.Context, vendorEmail string) ([]byte, error)
	SettleVendorBalance(ctx context.Context, vendorEmail string, mpPayload json.RawMessage) (entities.VendorPayment, error)
	GetPayment(ctx context.Context, vendorEmail, id string) (entities.VendorPayment, error)
	ListPayments(ctx context.Context, vendorEmail string) ([]entities.VendorPayment, error)
}

type Invoice struct {
	Number        string    `json:"number"`
	VendorEmail   string    `json:"vendor_email"`
	Amount        float64   `json:"amount"`
	ImpressionIDs []string  `json:"impression_ids"`
	IssuedAt      time.Time `json:"issued_at"`
	PDF           []byte    `json:"-"`
}

type VendorBillingUseCase struct {
	impressions interfaces.IImpressionRepository
	payments    interfaces.IVendorPaymentRepository
	gateway     interfaces.IPaymentGateway
	invoices    interfaces.IInvoiceRenderer
	exporter    interfaces.ILeadsExporter
	log         logrus.FieldLogger

	mockMode          bool
	sandboxPayerEmail string
	now               func() time.Time
}

var _ IVendorBillingUseCase = (*VendorBillingUseCase)(nil)

type VendorBillingOption func(*VendorBillingUseCase)

// WithSettlementMock relaxes payload checks for a gateway running in mock mode.
func WithSettlementMock(enabled bool) VendorBillingOption {
	return func(u *VendorBillingUseCase) { u.mockMode = enabled }
}

// WithSandboxPayerEmail fills payer.email on sandbox payments that carry no payer.
func WithSandboxPayerEmail(email string) VendorBillingOption {
	return func(u *VendorBillingUseCase) { u.sandboxPayerEmail = strings.TrimSpace(email) }
}

func WithDocuments(invoices interfaces.IInvoiceRenderer, exporter interfaces.ILeadsExporter) VendorBillingOption {
	return func(u *VendorBillingUseCase) {
		u.invoices = invoices
		u.exporter = exporter
	}
}

func NewVendorBillingUseCase(
	impressions interfaces.IImpressionRepository,
	payments interfaces.IVendorPaymentRepository,
	gateway interfaces.IPaymentGateway,
	log logrus.FieldLogger,
	opts ...VendorBillingOption,
) *VendorBillingUseCase {
	u := &VendorBillingUseCase{
		impressions: impressions,
		payments:    payments,
		gateway:     gateway,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ListImpressions returns the vendor's leads, newest first.
func (u *VendorBillingUseCase) ListImpressions(ctx context.Context, vendorEmail string) ([]entities.QuoteImpression, error) {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return nil, ErrInvalidVendorEmail
	}
	items, err := u.impressions.ListByVendorEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (u *VendorBillingUseCase) GetBillingSummary(ctx context.Context, vendorEmail string) (entities.BillingSummary, error) {
	items, err := u.ListImpressions(ctx, vendorEmail)
	if err != nil {
		return entities.BillingSummary{}, err
	}
	return entities.SummarizeImpressions(items), nil
}

// InvoiceVendor moves every pending lead to invoiced and renders the invoice
// of the leads it actually moved. If rendering fails the moved leads go back
// to pending.
func (u *VendorBillingUseCase) InvoiceVendor(ctx context.Context, vendorEmail string) (Invoice, error) {
	if u.invoices == nil {
		return Invoice{}, ErrDocumentRendererNotConfigured
	}
	items, err := u.ListImpressions(ctx, vendorEmail)
	if err != nil {
		return Invoice{}, err
	}
	email := normalizeEmail(vendorEmail)
	log := u.log.WithField("vendor_email", email)

	invoiced := make([]entities.QuoteImpression, 0)
	for _, it := range items {
		if it.BillingStatus != entities.BillingStatusPending {
			continue
		}
		ok, err := u.impressions.UpdateBillingStatus(ctx, it.DedupKey(),
			[]entities.BillingStatus{entities.BillingStatusPending}, entities.BillingStatusInvoiced)
		if err != nil {
			u.revert(ctx, invoiced, entities.BillingStatusInvoiced, entities.BillingStatusPending, log)
			return Invoice{}, err
		}
		if !ok {
			continue
		}
		it.BillingStatus = entities.BillingStatusInvoiced
		invoiced = append(invoiced, it)
	}
	if len(invoiced) == 0 {
		return Invoice{}, ErrNoPendingLeads
	}

	now := u.now()
	inv := Invoice{
		Number:      invoiceNumber(email, now),
		VendorEmail: email,
		IssuedAt:    now,
	}
	total := decimal.Zero
	for _, it := range invoiced {
		total = total.Add(decimal.NewFromFloat(it.AmountCharged))
		inv.ImpressionIDs = append(inv.ImpressionIDs, it.ID)
	}
	inv.Amount = total.Round(2).InexactFloat64()

	pdf, err := u.invoices.RenderInvoice(email, inv.Number, invoiced)
	if err != nil {
		log.WithError(err).Error("[billing][usecase] invoice render failed")
		u.revert(ctx, invoiced, entities.BillingStatusInvoiced, entities.BillingStatusPending, log)
		return Invoice{}, err
	}
	inv.PDF = pdf
	log.WithFields(logrus.Fields{"invoice": inv.Number, "leads": len(invoiced), "amount": inv.Amount}).
		Info("[billing][usecase] invoice issued")
	return inv, nil
}

func (u *VendorBillingUseCase) revert(ctx context.Context, items []entities.QuoteImpression, from, to entities.BillingStatus, log logrus.FieldLogger) {
	rctx := context.WithoutCancel(ctx)
	for _, it := range items {
		if _, err := u.impressions.UpdateBillingStatus(rctx, it.DedupKey(), []entities.BillingStatus{from}, to); err != nil {
			log.WithError(err).WithField("impression_id", it.ID).Error("[billing][usecase] billing status revert failed")
		}
	}
}

func invoiceNumber(email string, at time.Time) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	return fmt.Sprintf("INV-%s-%s", strings.ToUpper(local), at.Format("20060102150405"))
}

func (u *VendorBillingUseCase) ExportImpressions(ctx context.Context, vendorEmail string) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrDocumentRendererNotConfigured
	}
	items, err := u.ListImpressions(ctx, vendorEmail)
	if err != nil {
		return nil, err
	}
	return u.exporter.ExportLeads(normalizeEmail(vendorEmail), items)
}

// SettleVendorBalance charges the vendor's unpaid leads through the payment
// gateway. The amount always comes from the ledger, never from the payload.
// Leads are marked paid only when the provider approves the payment.
func (u *VendorBillingUseCase) SettleVendorBalance(ctx context.Context, vendorEmail string, mpPayload json.RawMessage) (entities.VendorPayment, error) {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return entities.VendorPayment{}, ErrInvalidVendorEmail
	}
	log := u.log.WithField("vendor_email", email)
	log.WithField("payload_len", len(mpPayload)).Info("[payment][usecase] settle start")

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			return entities.VendorPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.VendorPayment{}, ErrPaymentGatewayNotConfigured
	}

	items, err := u.impressions.ListByVendorEmail(ctx, email)
	if err != nil {
		return entities.VendorPayment{}, err
	}
	unpaid := make([]entities.QuoteImpression, 0, len(items))
	amount := decimal.Zero
	for _, it := range items {
		if it.BillingStatus == entities.BillingStatusPaid {
			continue
		}
		unpaid = append(unpaid, it)
		amount = amount.Add(decimal.NewFromFloat(it.AmountCharged))
	}
	amount = amount.Round(2)
	if len(unpaid) == 0 || !amount.IsPositive() {
		return entities.VendorPayment{}, ErrNothingToSettle
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.VendorPayment{}, ErrInvalidMPPayload
	}
	if !u.mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.VendorPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.VendorPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = email
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Lead balance %s (%d leads)", email, len(unpaid))
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.VendorPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.WithError(err).Error("[payment][usecase] payment gateway failed")
		return entities.VendorPayment{}, mapGatewayError(err)
	}
	log.WithFields(logrus.Fields{"provider_payment_id": providerID, "provider_status": providerStatus}).
		Info("[payment][usecase] payment gateway answered")

	var parsed map[string]any
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.WithError(err).Warn("[payment][usecase] provider response unmarshal failed")
		}
	}

	p := entities.VendorPayment{
		ID:                 providerID,
		VendorEmail:        email,
		Amount:             amount.InexactFloat64(),
		Date:               u.now(),
		Status:             paymentStatusOf(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	for _, it := range unpaid {
		p.ImpressionIDs = append(p.ImpressionIDs, it.ID)
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.WithError(err).WithField("payment_id", p.ID).Error("[payment][usecase] payment repository create failed")
		return entities.VendorPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		// The charge is final; finish marking even if the caller went away.
		mctx := context.WithoutCancel(ctx)
		from := []entities.BillingStatus{entities.BillingStatusPending, entities.BillingStatusInvoiced}
		for _, it := range unpaid {
			if _, err := u.impressions.UpdateBillingStatus(mctx, it.DedupKey(), from, entities.BillingStatusPaid); err != nil {
				log.WithError(err).WithField("impression_id", it.ID).Error("[payment][usecase] failed to mark lead paid")
			}
		}
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status, "amount": created.Amount}).
		Info("[payment][usecase] settle done")
	return created, nil
}

func (u *VendorBillingUseCase) GetPayment(ctx context.Context, vendorEmail, id string) (entities.VendorPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VendorPayment{}, ErrInvalidPaymentID
	}
	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.VendorPayment{}, err
	}
	if p.ID == "" || p.VendorEmail != normalizeEmail(vendorEmail) {
		return entities.VendorPayment{}, ErrVendorPaymentNotFound
	}
	return p, nil
}

func (u *VendorBillingUseCase) ListPayments(ctx context.Context, vendorEmail string) ([]entities.VendorPayment, error) {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return nil, ErrInvalidVendorEmail
	}
	return u.payments.ListByVendorEmail(ctx, email)
}

func paymentStatusOf(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

// mapGatewayError classifies Mercado Pago failures. The SDK only exposes the
// provider body as text, so the codes are matched on it.
func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return errs.Upstream("mercadopago", err)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *VendorBillingUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.sandboxPayerEmail != "" {
		payer["email"] = u.sandboxPayerEmail
	}
}
