package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/domain/lifecycle"
	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/infrastructure/metrics"
	"rental_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultProofMaxBytes = 2 << 20
	defaultProofLockTTL  = 30 * time.Second
	proofKeyPrefix       = "payment-proofs"
)

// IRentalPaymentUseCase drives the payment side of the rental lifecycle.
//
// Requested behavior:
//   - A manager marks a payment paid; a paid booking fee moves the rental
//     from booked to occupied.
//   - A tenant submits a cash proof for one of their payments, leaving it
//     pending until a manager verifies it.
//   - A tenant pays online through the payment gateway.
type IRentalPaymentUseCase interface {
	MarkPaid(ctx context.Context, paymentID string, paidAt time.Time) (entities.RentalPayment, error)
	SubmitCashPayment(ctx context.Context, paymentID, submitterID string, proof []byte) (entities.RentalPayment, error)
	PayWithGateway(ctx context.Context, paymentID, tenantID string, mpPayload json.RawMessage) (entities.RentalPayment, error)
	GetPaymentProof(ctx context.Context, paymentID string) (entities.ContentObject, error)
}

// RentalPaymentOptions tunes proof handling and gateway behaviour.
// Zero values fall back to defaults.
type RentalPaymentOptions struct {
	MaxProofBytes     int64
	MaxProofDimension int
	MaxProofPixels    int
	LockTTL           time.Duration
	GatewayMock       bool
	TestPayerEmail    string
	SandboxToken      bool
}

type RentalPaymentUseCase struct {
	repo       interfaces.IRentalPaymentRepository
	rentalRepo interfaces.IRentalRepository
	store      interfaces.IContentStore
	locker     interfaces.ILocker
	gateway    interfaces.IPaymentGateway
	opts       RentalPaymentOptions
	now        func() time.Time
}

var _ IRentalPaymentUseCase = (*RentalPaymentUseCase)(nil)

func NewRentalPaymentUseCase(
	repo interfaces.IRentalPaymentRepository,
	rentalRepo interfaces.IRentalRepository,
	store interfaces.IContentStore,
	locker interfaces.ILocker,
	gateway interfaces.IPaymentGateway,
	opts RentalPaymentOptions,
) *RentalPaymentUseCase {
	if opts.MaxProofBytes <= 0 {
		opts.MaxProofBytes = defaultProofMaxBytes
	}
	if opts.MaxProofDimension <= 0 {
		opts.MaxProofDimension = defaultProofMaxPx
	}
	if opts.MaxProofPixels <= 0 {
		opts.MaxProofPixels = defaultProofMaxPixels
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultProofLockTTL
	}
	return &RentalPaymentUseCase{
		repo:       repo,
		rentalRepo: rentalRepo,
		store:      store,
		locker:     locker,
		gateway:    gateway,
		opts:       opts,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *RentalPaymentUseCase) MarkPaid(ctx context.Context, paymentID string, paidAt time.Time) (entities.RentalPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	log := logger.L().With(zap.String("payment_id", paymentID))
	log.Info("[payment][usecase] mark-paid start", zap.Time("paid_at", paidAt))

	if paymentID == "" {
		return entities.RentalPayment{}, ErrInvalidPaymentID
	}
	if paidAt.IsZero() {
		return entities.RentalPayment{}, ErrInvalidPaidAt
	}

	p, err := u.loadPayment(ctx, paymentID)
	if err != nil {
		return entities.RentalPayment{}, err
	}
	if p.IsPaid() {
		log.Info("[payment][usecase] mark-paid rejected; already paid")
		return entities.RentalPayment{}, ErrAlreadyPaid
	}
	if !lifecycle.CanTransition(p.PaymentStatus, entities.PaymentStatusPaid) {
		return entities.RentalPayment{}, fmt.Errorf("payment status %q cannot become paid: %w", p.PaymentStatus, ErrValidationFailed)
	}

	updated, err := u.repo.MarkPaid(ctx, paymentID, paidAt.UTC(), "")
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionNotMet) {
			err = u.writeConflict(ctx, paymentID, ErrPaymentChanged)
			log.Info("[payment][usecase] mark-paid lost race", zap.Error(err))
			return entities.RentalPayment{}, err
		}
		log.Error("[payment][usecase] mark-paid write failed", zap.Error(err))
		return entities.RentalPayment{}, err
	}
	log.Info("[payment][usecase] mark-paid success",
		zap.String("rental_id", updated.RentalID),
		zap.String("category", string(updated.Category)))

	if err := applyOccupancy(ctx, u.rentalRepo, updated); err != nil {
		return updated, err
	}
	return updated, nil
}

func (u *RentalPaymentUseCase) SubmitCashPayment(ctx context.Context, paymentID, submitterID string, proof []byte) (entities.RentalPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	submitterID = strings.TrimSpace(submitterID)
	log := logger.L().With(zap.String("payment_id", paymentID), zap.String("submitter_id", submitterID))
	log.Info("[payment][usecase] submit-cash start", zap.Int("proof_len", len(proof)))

	if paymentID == "" {
		return entities.RentalPayment{}, ErrInvalidPaymentID
	}
	if submitterID == "" {
		return entities.RentalPayment{}, ErrInvalidTenantID
	}
	if len(proof) == 0 {
		return entities.RentalPayment{}, ErrEmptyProof
	}
	if int64(len(proof)) > u.opts.MaxProofBytes {
		log.Info("[payment][usecase] submit-cash rejected; proof too large", zap.Int64("max_bytes", u.opts.MaxProofBytes))
		return entities.RentalPayment{}, ErrProofTooLarge
	}
	if u.store == nil {
		return entities.RentalPayment{}, errors.New("content store not configured")
	}

	release, err := u.lock(ctx, "rental-payment:"+paymentID+":proof")
	if err != nil {
		log.Info("[payment][usecase] submit-cash lock not obtained", zap.Error(err))
		return entities.RentalPayment{}, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.Warn("[payment][usecase] submit-cash lock release failed", zap.Error(err))
		}
	}()

	p, err := u.loadOwnedPayment(ctx, paymentID, submitterID)
	if err != nil {
		return entities.RentalPayment{}, err
	}
	if p.IsPaid() {
		log.Info("[payment][usecase] submit-cash rejected; already paid")
		return entities.RentalPayment{}, ErrAlreadyPaid
	}
	if !lifecycle.CanTransition(p.PaymentStatus, entities.PaymentStatusPending) {
		return entities.RentalPayment{}, fmt.Errorf("payment status %q cannot become pending: %w", p.PaymentStatus, ErrValidationFailed)
	}

	normalized, err := normalizeProof(proof, u.opts.MaxProofDimension, u.opts.MaxProofPixels)
	if err != nil {
		log.Info("[payment][usecase] submit-cash invalid proof image", zap.Error(err))
		return entities.RentalPayment{}, err
	}

	key := fmt.Sprintf("%s/%s/%s.jpg", proofKeyPrefix, paymentID, uuid.NewString())
	ref, err := u.store.Put(ctx, key, normalized, proofContentType)
	if err != nil {
		log.Error("[payment][usecase] submit-cash proof upload failed", zap.Error(err))
		return entities.RentalPayment{}, err
	}

	updated, err := u.repo.SubmitProof(ctx, paymentID, interfaces.ProofSubmission{
		Proof:         ref,
		PreviousProof: p.PaymentProof,
		SubmittedAt:   u.now(),
	})
	if err != nil {
		u.discardProof(ctx, ref)
		if errors.Is(err, interfaces.ErrConditionNotMet) {
			return entities.RentalPayment{}, u.writeConflict(ctx, paymentID, ErrProofSubmissionConflict)
		}
		log.Error("[payment][usecase] submit-cash write failed", zap.Error(err))
		return entities.RentalPayment{}, err
	}

	if old := p.PaymentProof; old != "" && old != ref {
		u.discardProof(ctx, old)
	}

	log.Info("[payment][usecase] submit-cash success",
		zap.String("rental_id", updated.RentalID),
		zap.Int("stored_len", len(normalized)))
	return updated, nil
}

func (u *RentalPaymentUseCase) PayWithGateway(ctx context.Context, paymentID, tenantID string, mpPayload json.RawMessage) (entities.RentalPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	tenantID = strings.TrimSpace(tenantID)
	log := logger.L().With(zap.String("payment_id", paymentID), zap.String("tenant_id", tenantID))
	log.Info("[payment][usecase] pay-with-gateway start", zap.Int("payload_len", len(mpPayload)))
	mockMode := u.opts.GatewayMock

	if paymentID == "" {
		return entities.RentalPayment{}, ErrInvalidPaymentID
	}
	if tenantID == "" {
		return entities.RentalPayment{}, ErrInvalidTenantID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			return entities.RentalPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Warn("[payment][usecase] gateway not configured")
		return entities.RentalPayment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.loadOwnedPayment(ctx, paymentID, tenantID)
	if err != nil {
		return entities.RentalPayment{}, err
	}
	if p.IsPaid() {
		return entities.RentalPayment{}, ErrAlreadyPaid
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.RentalPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.RentalPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing/invalid payer")
			return entities.RentalPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events.
	reqMap["external_reference"] = p.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Rental %s %s", p.RentalID, p.Category)
	}
	// The stored amount is the source of truth.
	reqMap["transaction_amount"] = p.Amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.RentalPayment{}, err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.RentalPayment{}, classifyGatewayError(err)
	}
	log = log.With(zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))
	if !strings.EqualFold(providerStatus, "approved") {
		log.Info("[payment][usecase] provider did not approve")
		return entities.RentalPayment{}, fmt.Errorf("provider status %q: %w", providerStatus, ErrGatewayNotApproved)
	}

	updated, err := u.repo.MarkPaid(ctx, paymentID, u.now(), entities.PaymentMethodPaymentGateway)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionNotMet) {
			err = u.writeConflict(ctx, paymentID, ErrPaymentChanged)
		}
		// The provider charge went through but the payment does not record
		// it; it has to be refunded by provider payment id.
		reason := "write_failed"
		switch {
		case errors.Is(err, ErrAlreadyPaid):
			reason = "already_paid"
		case errors.Is(err, ErrNotFound):
			reason = "not_found"
		case errors.Is(err, ErrConflict):
			reason = "conflict"
		}
		metrics.UnrecordedCharges.WithLabelValues(reason).Inc()
		log.Error("[payment][usecase] approved charge not recorded; refund required",
			zap.String("external_reference", p.ID),
			zap.String("amount", p.Amount.String()),
			zap.String("reason", reason),
			zap.Error(err))
		return entities.RentalPayment{}, err
	}
	log.Info("[payment][usecase] pay-with-gateway success")

	if err := applyOccupancy(ctx, u.rentalRepo, updated); err != nil {
		return updated, err
	}
	return updated, nil
}

func (u *RentalPaymentUseCase) GetPaymentProof(ctx context.Context, paymentID string) (entities.ContentObject, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.ContentObject{}, ErrInvalidPaymentID
	}
	if u.store == nil {
		return entities.ContentObject{}, errors.New("content store not configured")
	}

	p, err := u.loadPayment(ctx, paymentID)
	if err != nil {
		return entities.ContentObject{}, err
	}
	if p.PaymentProof == "" {
		return entities.ContentObject{}, ErrPaymentProofNotFound
	}

	obj, err := u.store.Get(ctx, p.PaymentProof)
	if err != nil {
		if errors.Is(err, interfaces.ErrContentNotFound) {
			logger.L().Warn("[payment][usecase] proof reference dangling",
				zap.String("payment_id", paymentID),
				zap.String("reference", p.PaymentProof))
			return entities.ContentObject{}, ErrPaymentProofNotFound
		}
		return entities.ContentObject{}, err
	}
	return obj, nil
}

func (u *RentalPaymentUseCase) loadPayment(ctx context.Context, paymentID string) (entities.RentalPayment, error) {
	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.RentalPayment{}, err
	}
	if p.ID == "" {
		return entities.RentalPayment{}, ErrRentalPaymentNotFound
	}
	return p, nil
}

// loadOwnedPayment loads the payment and checks the owning rental belongs to
// tenantID.
func (u *RentalPaymentUseCase) loadOwnedPayment(ctx context.Context, paymentID, tenantID string) (entities.RentalPayment, error) {
	p, err := u.loadPayment(ctx, paymentID)
	if err != nil {
		return entities.RentalPayment{}, err
	}
	rental, err := u.rentalRepo.GetByID(ctx, p.RentalID)
	if err != nil {
		return entities.RentalPayment{}, err
	}
	if rental.ID == "" {
		return entities.RentalPayment{}, ErrRentalNotFound
	}
	if !rental.OwnedBy(tenantID) {
		logger.L().Info("[payment][usecase] ownership check failed",
			zap.String("payment_id", paymentID),
			zap.String("rental_id", rental.ID),
			zap.String("tenant_id", tenantID))
		return entities.RentalPayment{}, ErrPaymentNotOwned
	}
	return p, nil
}

func (u *RentalPaymentUseCase) lock(ctx context.Context, key string) (func(context.Context) error, error) {
	if u.locker == nil {
		return func(context.Context) error { return nil }, nil
	}
	release, err := u.locker.Obtain(ctx, key, u.opts.LockTTL)
	if err != nil {
		if errors.Is(err, interfaces.ErrLockNotObtained) {
			return nil, ErrProofSubmissionConflict
		}
		return nil, err
	}
	return release, nil
}

// writeConflict explains a failed guarded write by re-reading the payment.
// fallback is returned when the payment still exists and is not paid.
func (u *RentalPaymentUseCase) writeConflict(ctx context.Context, paymentID string, fallback error) error {
	current, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	switch {
	case current.ID == "":
		return ErrRentalPaymentNotFound
	case current.IsPaid():
		return ErrAlreadyPaid
	}
	return fallback
}

// discardProof deletes a blob that is no longer referenced. Failures are
// logged and swallowed: the payment write already happened.
func (u *RentalPaymentUseCase) discardProof(ctx context.Context, ref string) {
	ctx = context.WithoutCancel(ctx)
	exists, err := u.store.Exists(ctx, ref)
	if err != nil {
		logger.L().Warn("[payment][usecase] proof exists check failed", zap.String("reference", ref), zap.Error(err))
		return
	}
	if !exists {
		return
	}
	if err := u.store.Delete(ctx, ref); err != nil {
		logger.L().Warn("[payment][usecase] orphan proof left behind", zap.String("reference", ref), zap.Error(err))
	}
}

func (u *RentalPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.SandboxToken {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
