package routes

import (
	"net/http"

	"rental_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathManager = "/manager"
	PathTenant  = "/tenant"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addManagerRoutes(rg *gin.RouterGroup, rentalHandler *handlers.RentalHandler, paymentHandler *handlers.RentalPaymentHandler) {
	payments := rg.Group("/payments")
	{
		payments.PATCH("/:payment_id/paid", paymentHandler.MarkPaid)
		payments.GET("/:payment_id/proof", paymentHandler.GetPaymentProof)
	}

	rentals := rg.Group("/rentals")
	{
		rentals.GET("/:rental_id/summary", rentalHandler.GetRentalSummary)
		rentals.POST("/:rental_id/reconcile", rentalHandler.ReconcileOccupancy)
	}
}

func addTenantRoutes(rg *gin.RouterGroup, rentalHandler *handlers.RentalHandler, paymentHandler *handlers.RentalPaymentHandler) {
	rentals := rg.Group("/rentals")
	{
		rentals.GET("", rentalHandler.ListTenantRentals)
		rentals.GET("/:rental_id", rentalHandler.GetTenantRental)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("/:payment_id/cash", paymentHandler.SubmitCashPayment)
		payments.POST("/:payment_id/gateway", paymentHandler.PayWithGateway)
	}
}
