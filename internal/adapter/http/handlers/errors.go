package handlers

import (
	"errors"
	"net/http"

	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/infrastructure/metrics"
	"rental_billing/internal/usecase"
	"rental_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errProofMissing   = pkg.NewDomainErrorSimple("PAYMENT_PROOF_REQUIRED", "payment_proof file is required", http.StatusBadRequest)
	errProofTooLarge  = pkg.NewDomainErrorSimple("PAYMENT_PROOF_TOO_LARGE", "Payment proof exceeds the size limit", http.StatusRequestEntityTooLarge)
)

// mapLifecycleError turns usecase errors into the HTTP error envelope.
func mapLifecycleError(err error) *pkg.AppError {
	var partial *usecase.PartialFailureError
	switch {
	case errors.As(err, &partial):
		return pkg.NewDomainError("PARTIAL_FAILURE", "Payment recorded but rental status was not updated; retry reconciliation", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_PAID", "Payment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentChanged):
		return pkg.NewDomainErrorSimple("CONFLICT", "Payment changed while it was being updated; retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Another submission for this payment is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Payment does not belong to the caller", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPayloadTooLarge):
		return errProofTooLarge
	case errors.Is(err, usecase.ErrRentalPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRentalNotFound):
		return pkg.NewDomainErrorSimple("RENTAL_NOT_FOUND", "Rental not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentProofNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROOF_NOT_FOUND", "Payment proof not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidationFailed):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapLifecycleError(err)
	if errors.Is(err, usecase.ErrPartialFailure) {
		metrics.PartialFailures.Inc()
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.L().Error("[http][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
