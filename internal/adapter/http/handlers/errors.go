package handlers

import (
	"context"
	"errors"
	"net/http"

	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase"
	"tradequote/pkg"

	"github.com/gin-gonic/gin"
)

// mapError translates use case failures into the HTTP error envelope. Specific
// sentinels win over the generic error kinds.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSegmentNotFound):
		return pkg.NewDomainErrorSimple("SEGMENT_NOT_FOUND", "Segment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferingNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_SERVICE_NOT_FOUND", "Vendor service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPendingLeads):
		return pkg.NewDomainErrorSimple("NO_PENDING_LEADS", "No pending leads to invoice", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferingAlreadyExists):
		return pkg.NewDomainErrorSimple("VENDOR_SERVICE_EXISTS", "You already have a service offering for this segment", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToSettle):
		return pkg.NewDomainErrorSimple("NOTHING_TO_SETTLE", "No balance due", http.StatusConflict)
	case errors.Is(err, errs.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", validationMessage(err), err, http.StatusBadRequest).WithField(errs.FieldOf(err))
	case errors.Is(err, errs.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, errs.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "You don't have access to this resource", err, http.StatusForbidden)
	case errors.Is(err, errs.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Conflict", err, http.StatusConflict)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("UPSTREAM_TIMEOUT", "Upstream service timed out", err, http.StatusGatewayTimeout)
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Upstream service unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrQuoteRequestFailed):
		return pkg.NewDomainError("QUOTE_REQUEST_FAILED", "Quote request failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func validationMessage(err error) string {
	var ve *errs.ValidationError
	if errors.As(err, &ve) && ve.Message != "" {
		return ve.Message
	}
	return "Invalid request"
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidRequest(c *gin.Context, field string) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithField(field)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
