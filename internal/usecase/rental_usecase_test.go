package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/usecase/interfaces"
	mock_interfaces "rental_billing/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type rentalMocks struct {
	repo     *mock_interfaces.MockIRentalRepository
	payments *mock_interfaces.MockIRentalPaymentRepository
	rooms    *mock_interfaces.MockIRoomRepository
}

func newRentalUseCase(t *testing.T) (*RentalUseCase, rentalMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := rentalMocks{
		repo:     mock_interfaces.NewMockIRentalRepository(ctrl),
		payments: mock_interfaces.NewMockIRentalPaymentRepository(ctrl),
		rooms:    mock_interfaces.NewMockIRoomRepository(ctrl),
	}
	return NewRentalUseCase(m.repo, m.payments, m.rooms), m
}

func rentalPayments() []entities.RentalPayment {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	paidAt := day(2)
	return []entities.RentalPayment{
		{ID: "3", RentalID: "r-1", Amount: decimal.NewFromInt(300_000), Category: entities.PaymentCategoryRentalFee, BillingDate: day(20), PaymentStatus: entities.PaymentStatusPending},
		{ID: "1", RentalID: "r-1", Amount: decimal.NewFromInt(400_000), Category: entities.PaymentCategoryBookingFee, BillingDate: day(1), PaymentStatus: entities.PaymentStatusPaid, PaidAt: &paidAt},
		{ID: "2", RentalID: "r-1", Amount: decimal.NewFromInt(300_000), Category: entities.PaymentCategoryRentalFee, BillingDate: day(10), PaymentStatus: entities.PaymentStatusPending},
	}
}

func TestRentalUseCase_GetRentalDetail(t *testing.T) {
	t.Run("rental of another tenant is not found", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusBooked), nil)

		_, err := uc.GetRentalDetail(context.Background(), "t-2", "r-1")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if errors.Is(err, ErrForbidden) {
			t.Fatalf("ownership must not be reported as forbidden")
		}
	})

	t.Run("missing rental", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Rental{}, nil)

		_, err := uc.GetRentalDetail(context.Background(), "t-1", "r-1")
		if !errors.Is(err, ErrRentalNotFound) {
			t.Fatalf("expected ErrRentalNotFound, got %v", err)
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		uc, _ := newRentalUseCase(t)
		if _, err := uc.GetRentalDetail(context.Background(), "", "r-1"); !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
		if _, err := uc.GetRentalDetail(context.Background(), "t-1", " "); !errors.Is(err, ErrInvalidRentalID) {
			t.Fatalf("expected ErrInvalidRentalID, got %v", err)
		}
	})

	t.Run("owned rental", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusOccupied), nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(rentalPayments(), nil)
		m.rooms.EXPECT().GetByID(gomock.Any(), "room-1").Return(entities.Room{ID: "room-1", Name: "A-101", MonthlyPrice: decimal.NewFromInt(300_000)}, nil)

		d, err := uc.GetRentalDetail(context.Background(), "t-1", "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Room.Name != "A-101" {
			t.Fatalf("unexpected room: %+v", d.Room)
		}
		if d.Payments[0].ID != "1" || d.Payments[2].ID != "3" {
			t.Fatalf("payments should be ordered by billing date: %+v", d.Payments)
		}
		s := d.Summary
		if !s.TotalPaid.Equal(decimal.NewFromInt(400_000)) || !s.RemainingBalance.Equal(decimal.NewFromInt(600_000)) {
			t.Fatalf("unexpected totals: %+v", s)
		}
		if s.PaymentStatus != entities.SummaryStatusPending || !s.PaymentProgress.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("unexpected summary: %+v", s)
		}
		if s.NextPaymentDue == nil || s.NextPaymentDue.ID != "2" {
			t.Fatalf("unexpected next payment: %+v", s.NextPaymentDue)
		}
	})
}

func TestRentalUseCase_ListTenantRentals(t *testing.T) {
	t.Run("empty tenant", func(t *testing.T) {
		uc, _ := newRentalUseCase(t)
		if _, err := uc.ListTenantRentals(context.Background(), " "); !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("lists owned rentals", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		other := rentalFixture(entities.RentalStatusBooked)
		other.ID, other.TenantID = "r-2", "t-2"
		m.repo.EXPECT().ListByTenantID(gomock.Any(), "t-1").Return([]entities.Rental{rentalFixture(entities.RentalStatusBooked), other}, nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(nil, nil)
		m.rooms.EXPECT().GetByID(gomock.Any(), "room-1").Return(entities.Room{}, nil)

		got, err := uc.ListTenantRentals(context.Background(), "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Rental.ID != "r-1" {
			t.Fatalf("unexpected rentals: %+v", got)
		}
		if got[0].Summary.NextPaymentDue != nil || !got[0].Summary.TotalPaid.IsZero() {
			t.Fatalf("unexpected summary: %+v", got[0].Summary)
		}
	})

	t.Run("payment listing error", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().ListByTenantID(gomock.Any(), "t-1").Return([]entities.Rental{rentalFixture(entities.RentalStatusBooked)}, nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(nil, errors.New("db"))

		if _, err := uc.ListTenantRentals(context.Background(), "t-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRentalUseCase_GetRentalSummary(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Rental{}, nil)

		if _, err := uc.GetRentalSummary(context.Background(), "r-1"); !errors.Is(err, ErrRentalNotFound) {
			t.Fatalf("expected ErrRentalNotFound, got %v", err)
		}
	})

	t.Run("any tenant's rental", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusBooked), nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(rentalPayments(), nil)
		m.rooms.EXPECT().GetByID(gomock.Any(), "room-1").Return(entities.Room{ID: "room-1"}, nil)

		d, err := uc.GetRentalSummary(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Payments) != 3 {
			t.Fatalf("expected 3 payments, got %d", len(d.Payments))
		}
	})
}

func TestRentalUseCase_ReconcileOccupancy(t *testing.T) {
	t.Run("booked rental with paid booking fee", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusBooked), nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(rentalPayments(), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "r-1", entities.RentalStatusBooked, entities.RentalStatusOccupied).Return(rentalFixture(entities.RentalStatusOccupied), nil)

		got, err := uc.ReconcileOccupancy(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RentalStatusOccupied {
			t.Fatalf("expected occupied, got %s", got.Status)
		}
	})

	t.Run("booking fee not paid", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		payments := rentalPayments()
		payments[1].PaymentStatus = entities.PaymentStatusPending
		payments[1].PaidAt = nil
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusBooked), nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(payments, nil)

		got, err := uc.ReconcileOccupancy(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RentalStatusBooked {
			t.Fatalf("expected booked, got %s", got.Status)
		}
	})

	t.Run("completed rental is left alone", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusCompleted), nil)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(rentalPayments(), nil)

		got, err := uc.ReconcileOccupancy(context.Background(), "r-1")
		if err != nil || got.Status != entities.RentalStatusCompleted {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("concurrent repair", func(t *testing.T) {
		uc, m := newRentalUseCase(t)
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusBooked), nil),
			m.repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rentalFixture(entities.RentalStatusOccupied), nil),
		)
		m.payments.EXPECT().ListByRentalID(gomock.Any(), "r-1").Return(rentalPayments(), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "r-1", entities.RentalStatusBooked, entities.RentalStatusOccupied).Return(entities.Rental{}, interfaces.ErrConditionNotMet)

		got, err := uc.ReconcileOccupancy(context.Background(), "r-1")
		if err != nil || got.Status != entities.RentalStatusOccupied {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}
