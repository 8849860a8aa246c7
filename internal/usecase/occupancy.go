package usecase

import (
	"context"
	"errors"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/domain/lifecycle"
	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/infrastructure/metrics"
	"rental_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// advanceRental moves rental forward with a guarded write. Losing the race
// to another writer is fine: status only moves forward, so the stored rental
// is re-read and returned.
func advanceRental(ctx context.Context, rentals interfaces.IRentalRepository, rental entities.Rental, to entities.RentalStatus) (entities.Rental, error) {
	if !rental.Status.CanAdvanceTo(to) {
		return rental, nil
	}

	updated, err := rentals.UpdateStatus(ctx, rental.ID, rental.Status, to)
	if err == nil {
		logger.L().Info("[rental][usecase] status advanced",
			zap.String("rental_id", rental.ID),
			zap.String("from", string(rental.Status)),
			zap.String("to", string(to)))
		metrics.RentalTransitions.WithLabelValues(string(rental.Status), string(to)).Inc()
		return updated, nil
	}
	if !errors.Is(err, interfaces.ErrConditionNotMet) {
		return entities.Rental{}, err
	}

	current, err := rentals.GetByID(ctx, rental.ID)
	if err != nil {
		return entities.Rental{}, err
	}
	if current.ID == "" {
		return entities.Rental{}, ErrRentalNotFound
	}
	logger.L().Info("[rental][usecase] status changed concurrently",
		zap.String("rental_id", rental.ID),
		zap.String("status", string(current.Status)))
	return current, nil
}

// applyOccupancy runs the booking fee rule after payment became paid.
// Any failure here comes back as a *PartialFailureError because the payment
// write has already been committed.
func applyOccupancy(ctx context.Context, rentals interfaces.IRentalRepository, payment entities.RentalPayment) error {
	if !payment.IsBookingFee() || !payment.IsPaid() {
		return nil
	}

	partial := func(err error) error {
		logger.L().Error("[payment][usecase] occupancy update failed",
			zap.String("payment_id", payment.ID),
			zap.String("rental_id", payment.RentalID),
			zap.Error(err))
		return &PartialFailureError{PaymentID: payment.ID, RentalID: payment.RentalID, Err: err}
	}

	rental, err := rentals.GetByID(ctx, payment.RentalID)
	if err != nil {
		return partial(err)
	}
	if rental.ID == "" {
		return partial(ErrRentalNotFound)
	}

	to, ok := lifecycle.OccupancyTarget(payment, rental)
	if !ok {
		return nil
	}
	if _, err := advanceRental(ctx, rentals, rental, to); err != nil {
		return partial(err)
	}
	return nil
}
