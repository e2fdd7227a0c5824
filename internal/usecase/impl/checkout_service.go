// Package impl contains the use case implementations of the checkout flow.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"tuikigai/config"
	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/domain/service"
	"tuikigai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// stalePendingAge is the grace period before a pending purchase counts as
	// abandoned. Redirects that never come back settle well within an hour.
	stalePendingAge = time.Hour

	maxStalePendingLimit = 100
)

type checkoutService struct {
	purchaseRepo repository.PurchaseRepository
	gateway      service.PreferenceGateway
	config       *config.Config
	logger       *slog.Logger

	// inflight guards against rapid repeated submissions of the same attempt:
	// at most one SubmitPurchase per attempt id may be past the guard at once.
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCheckoutService creates a new checkout orchestrator instance
func NewCheckoutService(purchaseRepo repository.PurchaseRepository, gateway service.PreferenceGateway, cfg *config.Config, logger *slog.Logger) usecase.CheckoutUsecase {
	return &checkoutService{
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		config:       cfg,
		logger:       logger,
		inflight:     make(map[string]struct{}),
	}
}

// SubmitPurchase drives one purchase attempt: validate, persist pending record,
// create the payment preference, hand back the redirect URL.
func (s *checkoutService) SubmitPurchase(ctx context.Context, attemptID string, intent *usecase.PurchaseIntent) (*usecase.SubmitResult, error) {
	if !s.beginAttempt(attemptID) {
		// A submission for this attempt is already past the guard; repeated
		// clicks must not create a second record or gateway call.
		return &usecase.SubmitResult{State: entity.CheckoutStateSubmitting}, domainerrors.ErrSubmissionInFlight
	}
	defer s.endAttempt(attemptID)

	if appErr := validatePurchaseIntent(intent); appErr != nil {
		return &usecase.SubmitResult{State: entity.CheckoutStateCollectingDetails}, appErr
	}

	record := s.buildRecord(intent)

	// The record must exist before the gateway is contacted: its id is the
	// correlation reference embedded in the back URLs.
	if err := s.purchaseRepo.CreatePurchase(ctx, record); err != nil {
		s.logger.Error("failed to create purchase record",
			slog.String("attempt_id", attemptID),
			slog.Any("error", err),
		)

		return &usecase.SubmitResult{State: entity.CheckoutStateFailed}, domainerrors.ErrPurchaseCreationFailed
	}

	order := s.buildPreferenceOrder(record)

	preference, err := s.gateway.CreatePreference(ctx, order)
	if err != nil {
		// The pending record stays behind as an accepted orphan, visible to
		// whoever inspects old pending purchases.
		s.logger.Error("failed to create payment preference",
			slog.String("purchase_id", record.ID.String()),
			slog.Any("error", err),
		)

		return &usecase.SubmitResult{
			State:      entity.CheckoutStateFailed,
			PurchaseID: record.ID,
		}, domainerrors.ErrPreferenceCreationFailed.WithDetails(err.Error())
	}

	// Best-effort: the redirect must not wait on this write, the user is
	// already mid-transaction with the provider.
	if err := s.purchaseRepo.UpdatePreferenceID(ctx, record.ID, preference.ID); err != nil {
		s.logger.Warn("failed to store preference id",
			slog.String("purchase_id", record.ID.String()),
			slog.String("preference_id", preference.ID),
			slog.Any("error", err),
		)
	}

	return &usecase.SubmitResult{
		State:        entity.CheckoutStateRedirecting,
		PurchaseID:   record.ID,
		PreferenceID: preference.ID,
		RedirectURL:  preference.InitPoint,
	}, nil
}

// GetPurchase retrieves a purchase record by its id.
func (s *checkoutService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error) {
	record, err := s.purchaseRepo.FindPurchaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, err
	}

	return record, nil
}

// ListStalePending lists purchases that never received a payment outcome.
func (s *checkoutService) ListStalePending(ctx context.Context, limit int) ([]*entity.PurchaseRecord, error) {
	if limit <= 0 || limit > maxStalePendingLimit {
		limit = maxStalePendingLimit
	}

	cutoff := time.Now().Add(-stalePendingAge)

	return s.purchaseRepo.FindPendingOlderThan(ctx, cutoff, limit)
}

// beginAttempt marks the attempt in flight; it reports false when another
// submission for the same attempt already holds the slot.
func (s *checkoutService) beginAttempt(attemptID string) bool {
	if attemptID == "" {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[attemptID]; busy {
		return false
	}
	s.inflight[attemptID] = struct{}{}

	return true
}

func (s *checkoutService) endAttempt(attemptID string) {
	if attemptID == "" {
		return
	}

	s.mu.Lock()
	delete(s.inflight, attemptID)
	s.mu.Unlock()
}

// priceFor resolves the fixed price table. Amount is derived from the purchase
// kind, never taken from user input.
func (s *checkoutService) priceFor(kind entity.PurchaseKind) decimal.Decimal {
	if kind == entity.PurchaseKindGift {
		return s.config.Checkout.GiftPrice
	}

	return s.config.Checkout.PersonalPrice
}

func (s *checkoutService) buildRecord(intent *usecase.PurchaseIntent) *entity.PurchaseRecord {
	return &entity.PurchaseRecord{
		Kind:          intent.Kind,
		BuyerName:     intent.BuyerName,
		BuyerLastName: intent.BuyerLastName,
		BuyerEmail:    intent.BuyerEmail,
		BuyerIDType:   intent.BuyerIDType,
		BuyerIDNumber: intent.BuyerIDNumber,
		BuyerPhone:    intent.BuyerPhone,
		BuyerCity:     intent.BuyerCity,
		BuyerAddress:  intent.BuyerAddress,
		PersonType:    intent.PersonType,
		Company:       intent.Company,
		GiftEmail:     intent.GiftEmail,
		GiftMessage:   intent.GiftMessage,
		Answers:       intent.Answers,
		Amount:        s.priceFor(intent.Kind),
		Currency:      s.config.Checkout.Currency,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func (s *checkoutService) buildPreferenceOrder(record *entity.PurchaseRecord) *service.PreferenceOrder {
	base := strings.TrimRight(s.config.MercadoPago.BackURLBase, "/")
	backURL := func(outcome string) string {
		return fmt.Sprintf("%s/payment/%s?purchase_id=%s", base, outcome, record.ID)
	}

	return &service.PreferenceOrder{
		Title:             record.Kind.ItemTitle(),
		Amount:            record.Amount,
		Currency:          record.Currency,
		PayerEmail:        record.BuyerEmail,
		PayerName:         strings.TrimSpace(record.BuyerName + " " + record.BuyerLastName),
		ExternalReference: record.ID.String(),
		BackURLs: service.BackURLs{
			Success: backURL("success"),
			Failure: backURL("failure"),
			Pending: backURL("pending"),
		},
	}
}

// validatePurchaseIntent performs the form-level checks for the paid branches.
// The first failing field produces a single human-readable error; nothing is
// persisted and the gateway is never contacted on failure.
func validatePurchaseIntent(intent *usecase.PurchaseIntent) domainerrors.AppError {
	if intent == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing purchase intent")
	}
	if intent.Kind == entity.PurchaseKindPromoCode {
		return domainerrors.ErrInvalidPurchaseKind.WithDetails("promo codes are redeemed without payment")
	}
	if !intent.Kind.IsValid() {
		return domainerrors.ErrInvalidPurchaseKind.WithDetails(fmt.Sprintf("unknown purchase kind %q", intent.Kind))
	}
	if strings.TrimSpace(intent.BuyerName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("buyer name is required")
	}
	if strings.TrimSpace(intent.BuyerLastName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("buyer last name is required")
	}
	if !isValidEmail(intent.BuyerEmail) {
		return domainerrors.ErrValidationFailed.WithDetails("buyer email is missing or malformed")
	}
	if !intent.BuyerIDType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown id type %q", intent.BuyerIDType))
	}
	if strings.TrimSpace(intent.BuyerIDNumber) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("buyer id number is required")
	}
	if !intent.PersonType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown person type %q", intent.PersonType))
	}
	if intent.PromoCode != "" {
		return domainerrors.ErrValidationFailed.WithDetails("promo code must be empty for paid purchases")
	}

	if intent.Kind == entity.PurchaseKindGift {
		if !isValidEmail(intent.GiftEmail) {
			return domainerrors.ErrValidationFailed.WithDetails("gift recipient email is missing or malformed")
		}
		if strings.TrimSpace(intent.GiftMessage) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("gift message is required")
		}
	} else if intent.GiftEmail != "" || intent.GiftMessage != "" {
		return domainerrors.ErrValidationFailed.WithDetails("gift fields must be empty for personal purchases")
	}

	return nil
}

func isValidEmail(address string) bool {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return false
	}

	parsed, err := mail.ParseAddress(trimmed)

	return err == nil && parsed.Address == trimmed
}
