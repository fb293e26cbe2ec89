package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tradequote/internal/adapter/http/handlers/mocks"
	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, testLogger())

	r := newTestRouter()
	r.POST("/v1/projects/:project_id/quotes", h.CreateQuote)
	r.GET("/v1/projects/:project_id/quotes", h.ListProjectQuotes)
	r.GET("/v1/quotes/:quote_id", h.GetQuote)
	return r, uc
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := setupQuoteRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quotes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error names the field", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		uc.EXPECT().CreateQuoteRequest(gomock.Any(), "user-1", gomock.Any()).Return(usecase.QuoteResult{}, usecase.ErrInvalidProjectSqft)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quotes", `{"segment":"drywall","project_sqft":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["field"] != "project_sqft" || body["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		uc.EXPECT().CreateQuoteRequest(gomock.Any(), "user-1", gomock.Any()).Return(usecase.QuoteResult{}, fmt.Errorf("%w: view only", errs.ErrForbidden))

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quotes", `{"segment":"drywall","project_sqft":100}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("pricing unavailable", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		err := fmt.Errorf("%w: %w", usecase.ErrQuoteRequestFailed, errs.Upstream("pricing", errors.New("503")))
		uc.EXPECT().CreateQuoteRequest(gomock.Any(), "user-1", gomock.Any()).Return(usecase.QuoteResult{}, err)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quotes", `{"segment":"drywall","project_sqft":100}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("pricing timeout", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		err := fmt.Errorf("%w: %w", usecase.ErrQuoteRequestFailed, errs.Upstream("pricing", context.DeadlineExceeded))
		uc.EXPECT().CreateQuoteRequest(gomock.Any(), "user-1", gomock.Any()).Return(usecase.QuoteResult{}, err)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quotes", `{"segment":"drywall","project_sqft":100}`)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		uc.EXPECT().
			CreateQuoteRequest(gomock.Any(), "user-1", usecase.CreateQuoteInput{ProjectID: "p-1", Segment: "drywall", ProjectSqft: 1200, Options: map[string]any{}}).
			Return(usecase.QuoteResult{
				ID:           "q-1",
				ProjectID:    "p-1",
				Status:       entities.QuoteStatusCompleted,
				VendorQuotes: []entities.VendorQuote{{UserEmail: "acme@vendor.test", Total: 3000}},
			}, nil)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/quotes", `{"segment":"drywall","project_sqft":1200}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "q-1" || body["status"] != "completed" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestQuoteHandler_Queries(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		uc.EXPECT().ListProjectQuotes(gomock.Any(), "user-1", "p-1").Return([]usecase.QuoteSummary{{ID: "q-2"}, {ID: "q-1"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/projects/p-1/quotes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items []usecase.QuoteSummary `json:"items"`
			Count int                    `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Count != 2 || body.Items[0].ID != "q-2" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		uc.EXPECT().GetQuote(gomock.Any(), "user-1", "q-9").Return(usecase.QuoteDetail{}, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get forbidden", func(t *testing.T) {
		r, uc := setupQuoteRouter(t)
		uc.EXPECT().GetQuote(gomock.Any(), "user-1", "q-1").Return(usecase.QuoteDetail{}, usecase.ErrQuoteForbidden)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
