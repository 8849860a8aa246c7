package usecase

import (
	"context"
	"strings"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/domain/lifecycle"
	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRentalUseCase exposes the rental read models and occupancy repair.
//
// Tenant reads only ever see rentals they own; a rental owned by someone else
// is reported as not found.
type IRentalUseCase interface {
	ListTenantRentals(ctx context.Context, tenantID string) ([]entities.RentalDetail, error)
	GetRentalDetail(ctx context.Context, tenantID, rentalID string) (entities.RentalDetail, error)
	GetRentalSummary(ctx context.Context, rentalID string) (entities.RentalDetail, error)
	ReconcileOccupancy(ctx context.Context, rentalID string) (entities.Rental, error)
}

type RentalUseCase struct {
	repo        interfaces.IRentalRepository
	paymentRepo interfaces.IRentalPaymentRepository
	roomRepo    interfaces.IRoomRepository
}

var _ IRentalUseCase = (*RentalUseCase)(nil)

func NewRentalUseCase(repo interfaces.IRentalRepository, paymentRepo interfaces.IRentalPaymentRepository, roomRepo interfaces.IRoomRepository) *RentalUseCase {
	return &RentalUseCase{repo: repo, paymentRepo: paymentRepo, roomRepo: roomRepo}
}

func (u *RentalUseCase) ListTenantRentals(ctx context.Context, tenantID string) ([]entities.RentalDetail, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	rentals, err := u.repo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	details := make([]entities.RentalDetail, 0, len(rentals))
	for _, r := range rentals {
		if !r.OwnedBy(tenantID) {
			continue
		}
		d, err := u.detail(ctx, r)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (u *RentalUseCase) GetRentalDetail(ctx context.Context, tenantID, rentalID string) (entities.RentalDetail, error) {
	tenantID = strings.TrimSpace(tenantID)
	rentalID = strings.TrimSpace(rentalID)
	if tenantID == "" {
		return entities.RentalDetail{}, ErrInvalidTenantID
	}
	if rentalID == "" {
		return entities.RentalDetail{}, ErrInvalidRentalID
	}

	r, err := u.repo.GetByID(ctx, rentalID)
	if err != nil {
		return entities.RentalDetail{}, err
	}
	if !r.OwnedBy(tenantID) {
		return entities.RentalDetail{}, ErrRentalNotFound
	}
	return u.detail(ctx, r)
}

func (u *RentalUseCase) GetRentalSummary(ctx context.Context, rentalID string) (entities.RentalDetail, error) {
	r, err := u.load(ctx, rentalID)
	if err != nil {
		return entities.RentalDetail{}, err
	}
	return u.detail(ctx, r)
}

// ReconcileOccupancy moves a booked rental to occupied when one of its
// booking fees is already paid. It repairs rentals left behind by a
// partial failure and is a no-op otherwise.
func (u *RentalUseCase) ReconcileOccupancy(ctx context.Context, rentalID string) (entities.Rental, error) {
	r, err := u.load(ctx, rentalID)
	if err != nil {
		return entities.Rental{}, err
	}

	payments, err := u.paymentRepo.ListByRentalID(ctx, r.ID)
	if err != nil {
		return entities.Rental{}, err
	}
	fee, ok := lifecycle.HasSettledBookingFee(payments)
	if !ok {
		return r, nil
	}
	to, ok := lifecycle.OccupancyTarget(fee, r)
	if !ok {
		return r, nil
	}

	logger.L().Info("[rental][usecase] reconcile occupancy",
		zap.String("rental_id", r.ID),
		zap.String("payment_id", fee.ID))
	return advanceRental(ctx, u.repo, r, to)
}

func (u *RentalUseCase) load(ctx context.Context, rentalID string) (entities.Rental, error) {
	rentalID = strings.TrimSpace(rentalID)
	if rentalID == "" {
		return entities.Rental{}, ErrInvalidRentalID
	}
	r, err := u.repo.GetByID(ctx, rentalID)
	if err != nil {
		return entities.Rental{}, err
	}
	if r.ID == "" {
		return entities.Rental{}, ErrRentalNotFound
	}
	return r, nil
}

func (u *RentalUseCase) detail(ctx context.Context, r entities.Rental) (entities.RentalDetail, error) {
	payments, err := u.paymentRepo.ListByRentalID(ctx, r.ID)
	if err != nil {
		return entities.RentalDetail{}, err
	}
	lifecycle.SortByBillingDate(payments)

	var room entities.Room
	if r.RoomID != "" && u.roomRepo != nil {
		room, err = u.roomRepo.GetByID(ctx, r.RoomID)
		if err != nil {
			return entities.RentalDetail{}, err
		}
		if room.ID == "" {
			logger.L().Warn("[rental][usecase] room missing", zap.String("rental_id", r.ID), zap.String("room_id", r.RoomID))
		}
	}

	return entities.RentalDetail{
		Rental:   r,
		Room:     room,
		Payments: payments,
		Summary:  lifecycle.ComputeSummary(r, payments),
	}, nil
}
