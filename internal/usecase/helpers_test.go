package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/usecase/interfaces"
)

func pngProof(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func noopRelease(context.Context) error { return nil }

// memoryStore is an in-memory record store with the same guarded write
// semantics as the DynamoDB repositories.
type memoryStore struct {
	mu            sync.Mutex
	payments      map[string]entities.RentalPayment
	rentals       map[string]entities.Rental
	rentalUpdates int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		payments: map[string]entities.RentalPayment{},
		rentals:  map[string]entities.Rental{},
	}
}

type memoryPayments struct{ s *memoryStore }
type memoryRentals struct{ s *memoryStore }

var (
	_ interfaces.IRentalPaymentRepository = memoryPayments{}
	_ interfaces.IRentalRepository        = memoryRentals{}
)

func (m memoryPayments) GetByID(_ context.Context, id string) (entities.RentalPayment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.payments[id], nil
}

func (m memoryPayments) ListByRentalID(_ context.Context, rentalID string) ([]entities.RentalPayment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []entities.RentalPayment
	for _, p := range m.s.payments {
		if p.RentalID == rentalID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memoryPayments) MarkPaid(_ context.Context, id string, paidAt time.Time, method entities.PaymentMethod) (entities.RentalPayment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.payments[id]
	if !ok || p.IsPaid() {
		return entities.RentalPayment{}, interfaces.ErrConditionNotMet
	}
	p.PaymentStatus = entities.PaymentStatusPaid
	p.PaidAt = &paidAt
	if method != "" {
		p.PaymentMethod = method
	}
	m.s.payments[id] = p
	return p, nil
}

func (m memoryPayments) SubmitProof(_ context.Context, id string, s interfaces.ProofSubmission) (entities.RentalPayment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.payments[id]
	if !ok || p.IsPaid() || p.PaymentProof != s.PreviousProof {
		return entities.RentalPayment{}, interfaces.ErrConditionNotMet
	}
	at := s.SubmittedAt
	p.PaymentStatus = entities.PaymentStatusPending
	p.PaymentMethod = entities.PaymentMethodCash
	p.PaymentProof = s.Proof
	p.ProofSubmittedAt = &at
	m.s.payments[id] = p
	return p, nil
}

func (m memoryRentals) GetByID(_ context.Context, id string) (entities.Rental, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.rentals[id], nil
}

func (m memoryRentals) ListByTenantID(_ context.Context, tenantID string) ([]entities.Rental, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []entities.Rental
	for _, r := range m.s.rentals {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m memoryRentals) UpdateStatus(_ context.Context, id string, from, to entities.RentalStatus) (entities.Rental, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r, ok := m.s.rentals[id]
	if !ok || r.Status != from {
		return entities.Rental{}, interfaces.ErrConditionNotMet
	}
	r.Status = to
	m.s.rentals[id] = r
	m.s.rentalUpdates++
	return r, nil
}
