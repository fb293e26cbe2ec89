package handlers

import (
	"net/http"

	"tradequote/internal/adapter/http/dto/request"
	"tradequote/internal/adapter/http/dto/response"
	"tradequote/internal/adapter/http/middleware"
	"tradequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// QuoteHandler serves the customer-facing quote routes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     logrus.FieldLogger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log logrus.FieldLogger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, log: log}
}

// CreateQuote godoc
// @Summary      Request vendor quotes
// @Description  Matches vendors for the segment, asks the pricing backend for quotes and bills one lead per quoting vendor.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        project_id  path    string                      true  "Project ID"
// @Param        body        body    request.CreateQuoteRequest  true  "Quote request"
// @Success      201  {object}  usecase.QuoteResult
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	projectID := c.Param("project_id")
	log := h.log.WithFields(logrus.Fields{"project_id": projectID, "user_id": actor.UserID})

	var body request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.WithError(err).Warn("[quote][handler] invalid payload")
		writeInvalidRequest(c, "")
		return
	}

	res, err := h.usecase.CreateQuoteRequest(c.Request.Context(), actor.UserID, body.ToInput(projectID))
	if err != nil {
		log.WithError(err).Warn("[quote][handler] create failed")
		writeError(c, err)
		return
	}
	log.WithFields(logrus.Fields{"quote_request_id": res.ID, "vendor_quotes": len(res.VendorQuotes)}).Info("[quote][handler] create success")

	c.JSON(http.StatusCreated, res)
}

// ListProjectQuotes godoc
// @Summary      List the quote requests of a project
// @Tags         quotes
// @Produce      json
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {object}  response.ListResponse[usecase.QuoteSummary]
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/quotes [get]
func (h *QuoteHandler) ListProjectQuotes(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	projectID := c.Param("project_id")

	items, err := h.usecase.ListProjectQuotes(c.Request.Context(), actor.UserID, projectID)
	if err != nil {
		h.log.WithError(err).WithField("project_id", projectID).Warn("[quote][handler] list failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// GetQuote godoc
// @Summary      Get a quote request
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path  string  true  "Quote request ID"
// @Success      200  {object}  usecase.QuoteDetail
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	quoteID := c.Param("quote_id")

	q, err := h.usecase.GetQuote(c.Request.Context(), actor.UserID, quoteID)
	if err != nil {
		h.log.WithError(err).WithField("quote_request_id", quoteID).Warn("[quote][handler] get failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
