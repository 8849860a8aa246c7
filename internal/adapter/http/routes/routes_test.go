package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental_billing/internal/adapter/http/handlers"
	"rental_billing/internal/adapter/http/handlers/mocks"
	"rental_billing/internal/adapter/http/middleware"
	"rental_billing/internal/domain/entities"
	"rental_billing/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-secret"

func token(t *testing.T, sub, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + s
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIRentalUseCase, *mocks.MockIRentalPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	rentalUC := mocks.NewMockIRentalUseCase(ctrl)
	paymentUC := mocks.NewMockIRentalPaymentUseCase(ctrl)

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.Server.CorsAllowedOrigins = []string{"*"}

	r := NewRouter(cfg, handlers.NewRentalHandler(rentalUC), handlers.NewRentalPaymentHandler(paymentUC, 0, false))
	return r, rentalUC, paymentUC
}

func TestNewRouter(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("unexpected ping: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("manager route requires token", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/manager/rentals/r-1/summary", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("tenant cannot mark paid", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPatch, "/v1/manager/payments/p-1/paid", strings.NewReader(`{"paid_at":"2024-03-01"}`))
		req.Header.Set("Authorization", token(t, "t-1", middleware.RoleTenant))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("tenant id comes from token", func(t *testing.T) {
		r, rentalUC, _ := newTestRouter(t)
		rentalUC.EXPECT().ListTenantRentals(gomock.Any(), "t-1").Return([]entities.RentalDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tenant/rentals", nil)
		req.Header.Set("Authorization", token(t, "t-1", middleware.RoleTenant))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("manager marks paid", func(t *testing.T) {
		r, _, paymentUC := newTestRouter(t)
		paidAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		paymentUC.EXPECT().MarkPaid(gomock.Any(), "p-1", paidAt).
			Return(entities.RentalPayment{ID: "p-1", PaymentStatus: entities.PaymentStatusPaid, PaidAt: &paidAt}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/manager/payments/p-1/paid", strings.NewReader(`{"paid_at":"2024-03-01"}`))
		req.Header.Set("Authorization", token(t, "m-1", middleware.RoleManager))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRun_RequiresJWTSecret(t *testing.T) {
	err := Run(&config.Config{})
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}
