package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	request "rental_billing/internal/adapter/http/dto/request"
	response "rental_billing/internal/adapter/http/dto/response"
	"rental_billing/internal/adapter/http/middleware"
	"rental_billing/internal/domain/entities"
	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/infrastructure/metrics"
	"rental_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	proofFormField = "payment_proof"
	// multipartOverhead bounds the non-file part of a proof upload.
	multipartOverhead = 1 << 20
)

// RentalPaymentHandler handles HTTP requests for rental payments.
type RentalPaymentHandler struct {
	usecase       usecase.IRentalPaymentUseCase
	maxProofBytes int64
	gatewayMock   bool
}

func NewRentalPaymentHandler(uc usecase.IRentalPaymentUseCase, maxProofBytes int64, gatewayMock bool) *RentalPaymentHandler {
	if maxProofBytes <= 0 {
		maxProofBytes = 2 << 20
	}
	return &RentalPaymentHandler{usecase: uc, maxProofBytes: maxProofBytes, gatewayMock: gatewayMock}
}

// MarkPaid godoc
// @Summary      Mark a rental payment as paid
// @Tags         manager
// @Accept       json
// @Produce      json
// @Param        payment_id path string true "Payment ID"
// @Param        body body request.MarkPaidRequest true "Payment date"
// @Success      200 {object} response.RentalPaymentResponse
// @Failure      400,404,409,500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /manager/payments/{payment_id}/paid [patch]
func (h *RentalPaymentHandler) MarkPaid(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log := logger.L().With(zap.String("payment_id", paymentID))

	var payload request.MarkPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Info("[payment][handler] mark-paid invalid payload", zap.Error(err))
		writeAppError(c, errInvalidRequest)
		return
	}
	paidAt, err := payload.ResolvePaidAt()
	if err != nil {
		log.Info("[payment][handler] mark-paid invalid paid_at", zap.String("paid_at", payload.PaidAt))
		writeAppError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.MarkPaid(c.Request.Context(), paymentID, paidAt)
	if updated.IsPaid() {
		countPaymentTransition(updated)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRentalPayment(updated))
}

// GetPaymentProof godoc
// @Summary      Download the proof submitted for a cash payment
// @Tags         manager
// @Produce      image/jpeg
// @Param        payment_id path string true "Payment ID"
// @Success      200 {file} binary
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /manager/payments/{payment_id}/proof [get]
func (h *RentalPaymentHandler) GetPaymentProof(c *gin.Context) {
	obj, err := h.usecase.GetPaymentProof(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, contentType, obj.Data)
}

// SubmitCashPayment godoc
// @Summary      Submit a cash payment proof
// @Tags         tenant
// @Accept       multipart/form-data
// @Produce      json
// @Param        payment_id    path     string true "Payment ID"
// @Param        payment_proof formData file   true "Proof image"
// @Success      200 {object} response.RentalPaymentResponse
// @Failure      400,403,404,409,413 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /tenant/payments/{payment_id}/cash [post]
func (h *RentalPaymentHandler) SubmitCashPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	tenantID := middleware.UserID(c)
	log := logger.L().With(zap.String("payment_id", paymentID), zap.String("tenant_id", tenantID))

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxProofBytes+multipartOverhead)
	proof, err := h.readProof(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge), errors.Is(err, usecase.ErrProofTooLarge):
			log.Info("[payment][handler] submit-cash proof too large")
			writeAppError(c, errProofTooLarge)
		default:
			log.Info("[payment][handler] submit-cash missing proof", zap.Error(err))
			writeAppError(c, errProofMissing)
		}
		return
	}
	metrics.ProofBytes.Observe(float64(len(proof)))

	updated, err := h.usecase.SubmitCashPayment(c.Request.Context(), paymentID, tenantID, proof)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.PaymentTransitions.WithLabelValues(string(entities.PaymentStatusPending), string(entities.PaymentMethodCash)).Inc()

	c.JSON(http.StatusOK, response.FromRentalPayment(updated))
}

// PayWithGateway godoc
// @Summary      Pay a rental payment through Mercado Pago
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        payment_id path string true "Payment ID"
// @Param        body body request.GatewayPaymentRequest true "Mercado Pago payload"
// @Success      200 {object} response.RentalPaymentResponse
// @Failure      400,401,403,404,409,500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /tenant/payments/{payment_id}/gateway [post]
func (h *RentalPaymentHandler) PayWithGateway(c *gin.Context) {
	paymentID := c.Param("payment_id")
	tenantID := middleware.UserID(c)
	log := logger.L().With(zap.String("payment_id", paymentID), zap.String("tenant_id", tenantID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.gatewayMock {
			log.Info("[payment][handler] invalid gateway payload", zap.Error(err))
			writeAppError(c, errInvalidRequest)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	updated, err := h.usecase.PayWithGateway(c.Request.Context(), paymentID, tenantID, mpPayload)
	if updated.IsPaid() {
		countPaymentTransition(updated)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRentalPayment(updated))
}

func (h *RentalPaymentHandler) readProof(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile(proofFormField)
	if err != nil {
		return nil, err
	}
	if fh.Size > h.maxProofBytes {
		return nil, usecase.ErrProofTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxProofBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxProofBytes {
		return nil, usecase.ErrProofTooLarge
	}
	if len(data) == 0 {
		return nil, usecase.ErrEmptyProof
	}
	return data, nil
}

func countPaymentTransition(p entities.RentalPayment) {
	method := string(p.PaymentMethod)
	if method == "" {
		method = "unknown"
	}
	metrics.PaymentTransitions.WithLabelValues(string(p.PaymentStatus), method).Inc()
}

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
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
