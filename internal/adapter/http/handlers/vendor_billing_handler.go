package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tradequote/internal/adapter/http/dto/response"
	"tradequote/internal/adapter/http/middleware"
	"tradequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// VendorBillingHandler serves a vendor's leads, balance, documents and
// settlement.
type VendorBillingHandler struct {
	usecase      usecase.IVendorBillingUseCase
	log          logrus.FieldLogger
	mockPayments bool
}

// NewVendorBillingHandler builds the handler. With mockPayments an unreadable
// settlement payload falls back to an empty one instead of failing.
func NewVendorBillingHandler(uc usecase.IVendorBillingUseCase, log logrus.FieldLogger, mockPayments bool) *VendorBillingHandler {
	return &VendorBillingHandler{usecase: uc, log: log, mockPayments: mockPayments}
}

// ListImpressions godoc
// @Summary      List my leads
// @Tags         vendor-billing
// @Produce      json
// @Success      200  {object}  response.ListResponse[entities.QuoteImpression]
// @Router       /vendor/impressions [get]
func (h *VendorBillingHandler) ListImpressions(c *gin.Context) {
	items, err := h.usecase.ListImpressions(c.Request.Context(), middleware.ActorFrom(c).Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// GetBillingSummary godoc
// @Summary      Get my lead balance
// @Tags         vendor-billing
// @Produce      json
// @Success      200  {object}  entities.BillingSummary
// @Router       /vendor/billing [get]
func (h *VendorBillingHandler) GetBillingSummary(c *gin.Context) {
	s, err := h.usecase.GetBillingSummary(c.Request.Context(), middleware.ActorFrom(c).Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DownloadInvoice godoc
// @Summary      Invoice my pending leads
// @Description  Renders a PDF of every pending lead and marks them invoiced.
// @Tags         vendor-billing
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vendor/billing/invoice [get]
func (h *VendorBillingHandler) DownloadInvoice(c *gin.Context) {
	email := middleware.ActorFrom(c).Email
	inv, err := h.usecase.InvoiceVendor(c.Request.Context(), email)
	if err != nil {
		h.log.WithError(err).WithField("vendor_email", email).Warn("[billing][handler] invoice failed")
		writeError(c, err)
		return
	}
	h.log.WithFields(logrus.Fields{"vendor_email": email, "invoice": inv.Number, "leads": len(inv.ImpressionIDs)}).Info("[billing][handler] invoice issued")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, inv.Number))
	c.Header("X-Invoice-Number", inv.Number)
	c.Data(http.StatusOK, contentTypePDF, inv.PDF)
}

// ExportImpressions godoc
// @Summary      Export my leads as a spreadsheet
// @Tags         vendor-billing
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /vendor/billing/export [get]
func (h *VendorBillingHandler) ExportImpressions(c *gin.Context) {
	out, err := h.usecase.ExportImpressions(c.Request.Context(), middleware.ActorFrom(c).Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="leads.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, out)
}

// SettleBalance godoc
// @Summary      Pay my balance due
// @Description  Charges the balance through Mercado Pago. The body is the Mercado Pago payment payload, bare or wrapped in mp_payload.
// @Tags         vendor-billing
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.VendorPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /vendor/billing/settle [post]
func (h *VendorBillingHandler) SettleBalance(c *gin.Context) {
	email := middleware.ActorFrom(c).Email
	log := h.log.WithField("vendor_email", email)
	log.Info("[payment][handler] settle start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockPayments {
			log.WithError(err).Warn("[payment][handler] invalid payload")
			writeInvalidRequest(c, "mp_payload")
			return
		}
		log.WithError(err).Warn("[payment][handler] payload invalid in mock mode; fallback to empty payload")
		mpPayload = json.RawMessage("{}")
	}

	p, err := h.usecase.SettleVendorBalance(c.Request.Context(), email, mpPayload)
	if err != nil {
		log.WithError(err).Warn("[payment][handler] settle failed")
		writeError(c, err)
		return
	}
	log.WithFields(logrus.Fields{"payment_id": p.ID, "status": p.Status}).Info("[payment][handler] settle success")

	c.JSON(http.StatusOK, response.FromVendorPayment(p))
}

// ListPayments godoc
// @Summary      List my settlements
// @Tags         vendor-billing
// @Produce      json
// @Success      200  {object}  response.ListResponse[response.VendorPaymentResponse]
// @Router       /vendor/billing/payments [get]
func (h *VendorBillingHandler) ListPayments(c *gin.Context) {
	items, err := h.usecase.ListPayments(c.Request.Context(), middleware.ActorFrom(c).Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromVendorPayments(items)))
}

// GetPayment godoc
// @Summary      Get one settlement
// @Tags         vendor-billing
// @Produce      json
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      200  {object}  response.VendorPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vendor/billing/payments/{payment_id} [get]
func (h *VendorBillingHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), middleware.ActorFrom(c).Email, c.Param("payment_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVendorPayment(p))
}

// readMPPayload accepts the Mercado Pago payload bare or under "mp_payload".
// An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
