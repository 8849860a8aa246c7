package handlers

import (
	"net/http"

	response "rental_billing/internal/adapter/http/dto/response"
	"rental_billing/internal/adapter/http/middleware"
	"rental_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RentalHandler serves rental projections to tenants and managers.
type RentalHandler struct {
	usecase usecase.IRentalUseCase
}

func NewRentalHandler(uc usecase.IRentalUseCase) *RentalHandler {
	return &RentalHandler{usecase: uc}
}

// ListTenantRentals godoc
// @Summary      List the caller's rentals with payment summaries
// @Tags         tenant
// @Produce      json
// @Success      200 {array} response.RentalDetailResponse
// @Security     Bearer
// @Router       /tenant/rentals [get]
func (h *RentalHandler) ListTenantRentals(c *gin.Context) {
	details, err := h.usecase.ListTenantRentals(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRentalDetails(details))
}

// GetTenantRental godoc
// @Summary      Get one of the caller's rentals
// @Tags         tenant
// @Produce      json
// @Param        rental_id path string true "Rental ID"
// @Success      200 {object} response.RentalDetailResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /tenant/rentals/{rental_id} [get]
func (h *RentalHandler) GetTenantRental(c *gin.Context) {
	detail, err := h.usecase.GetRentalDetail(c.Request.Context(), middleware.UserID(c), c.Param("rental_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRentalDetail(detail))
}

// GetRentalSummary godoc
// @Summary      Get a rental with its payments and summary
// @Tags         manager
// @Produce      json
// @Param        rental_id path string true "Rental ID"
// @Success      200 {object} response.RentalDetailResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /manager/rentals/{rental_id}/summary [get]
func (h *RentalHandler) GetRentalSummary(c *gin.Context) {
	detail, err := h.usecase.GetRentalSummary(c.Request.Context(), c.Param("rental_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRentalDetail(detail))
}

// ReconcileOccupancy godoc
// @Summary      Move a booked rental to occupied when its booking fee is paid
// @Tags         manager
// @Produce      json
// @Param        rental_id path string true "Rental ID"
// @Success      200 {object} response.RentalResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /manager/rentals/{rental_id}/reconcile [post]
func (h *RentalHandler) ReconcileOccupancy(c *gin.Context) {
	rental, err := h.usecase.ReconcileOccupancy(c.Request.Context(), c.Param("rental_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRental(rental))
}
