package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradequote/internal/adapter/http/handlers/mocks"
	"tradequote/internal/adapter/http/middleware"
	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func setupVendorBillingRouter(t *testing.T, mockPayments bool) (*gin.Engine, *mocks.MockIVendorBillingUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVendorBillingUseCase(ctrl)
	h := NewVendorBillingHandler(uc, testLogger(), mockPayments)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/v1/vendor", middleware.RequireVendorEmail())
	g.GET("/impressions", h.ListImpressions)
	g.GET("/billing", h.GetBillingSummary)
	g.GET("/billing/invoice", h.DownloadInvoice)
	g.GET("/billing/export", h.ExportImpressions)
	g.POST("/billing/settle", h.SettleBalance)
	g.GET("/billing/payments", h.ListPayments)
	g.GET("/billing/payments/:payment_id", h.GetPayment)
	return r, uc
}

func TestVendorBillingHandler_Reads(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().GetBillingSummary(gomock.Any(), "acme@vendor.test").Return(entities.BillingSummary{TotalLeads: 3, TotalCharged: 750, BalanceDue: 500}, nil)

		w := doRequest(r, http.MethodGet, "/v1/vendor/billing", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body entities.BillingSummary
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.TotalLeads != 3 || body.BalanceDue != 500 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("impressions", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().ListImpressions(gomock.Any(), "acme@vendor.test").Return([]entities.QuoteImpression{{ID: "imp-1"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/vendor/impressions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing email header", func(t *testing.T) {
		r, _ := setupVendorBillingRouter(t, false)
		req := httptest.NewRequest(http.MethodGet, "/v1/vendor/billing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invoice pdf", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().InvoiceVendor(gomock.Any(), "acme@vendor.test").Return(usecase.Invoice{Number: "INV-1", ImpressionIDs: []string{"imp-1"}, PDF: []byte("%PDF-1.3")}, nil)

		w := doRequest(r, http.MethodGet, "/v1/vendor/billing/invoice", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != contentTypePDF {
			t.Fatalf("unexpected content type %q", ct)
		}
		if w.Header().Get("X-Invoice-Number") != "INV-1" || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("unexpected invoice response")
		}
	})

	t.Run("invoice without pending leads", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().InvoiceVendor(gomock.Any(), "acme@vendor.test").Return(usecase.Invoice{}, usecase.ErrNoPendingLeads)

		w := doRequest(r, http.MethodGet, "/v1/vendor/billing/invoice", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().ExportImpressions(gomock.Any(), "acme@vendor.test").Return([]byte("PK"), nil)

		w := doRequest(r, http.MethodGet, "/v1/vendor/billing/export", "")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != contentTypeXLSX {
			t.Fatalf("unexpected export response %d %q", w.Code, w.Header().Get("Content-Type"))
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().GetPayment(gomock.Any(), "acme@vendor.test", "pay-9").Return(entities.VendorPayment{}, usecase.ErrVendorPaymentNotFound)

		w := doRequest(r, http.MethodGet, "/v1/vendor/billing/payments/pay-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVendorBillingHandler_SettleBalance(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := setupVendorBillingRouter(t, false)
		w := doRequest(r, http.MethodPost, "/v1/vendor/billing/settle", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, true)
		uc.EXPECT().SettleVendorBalance(gomock.Any(), "acme@vendor.test", json.RawMessage("{}")).Return(entities.VendorPayment{ID: "pay-1", Status: entities.PaymentStatusApproved}, nil)

		w := doRequest(r, http.MethodPost, "/v1/vendor/billing/settle", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("nothing to settle", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().SettleVendorBalance(gomock.Any(), "acme@vendor.test", gomock.Any()).Return(entities.VendorPayment{}, usecase.ErrNothingToSettle)

		w := doRequest(r, http.MethodPost, "/v1/vendor/billing/settle", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway rejects payer", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		uc.EXPECT().SettleVendorBalance(gomock.Any(), "acme@vendor.test", gomock.Any()).Return(entities.VendorPayment{}, usecase.ErrPaymentGatewayInvalidUsers)

		w := doRequest(r, http.MethodPost, "/v1/vendor/billing/settle", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_PROVIDER_INVALID_USERS" {
			t.Fatalf("unexpected code %q", body["code"])
		}
	})

	t.Run("success with envelope", func(t *testing.T) {
		r, uc := setupVendorBillingRouter(t, false)
		now := time.Now().UTC()
		uc.EXPECT().
			SettleVendorBalance(gomock.Any(), "acme@vendor.test", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.VendorPayment{ID: "pay-1", VendorEmail: "acme@vendor.test", Amount: 500, Date: now, Status: entities.PaymentStatusApproved}, nil)

		w := doRequest(r, http.MethodPost, "/v1/vendor/billing/settle", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["payment_id"] != "pay-1" || body["status"] != "approved" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	read := func(body string) (json.RawMessage, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		return readMPPayload(c)
	}

	t.Run("empty body", func(t *testing.T) {
		got, err := read("  ")
		if err != nil || string(got) != "{}" {
			t.Fatalf("expected {}, got %s err=%v", got, err)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		if _, err := read(`{"mp_payload":null}`); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		got, err := read(`{"a":1}`)
		if err != nil || string(got) != `{"a":1}` {
			t.Fatalf("unexpected %s err=%v", got, err)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Body = failingReadCloser{}
		if _, err := readMPPayload(c); err == nil {
			t.Fatalf("expected error")
		}
	})
}
