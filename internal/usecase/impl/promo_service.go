package impl

import (
	"context"
	"log/slog"
	"strings"

	"tuikigai/config"
	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/usecase"
)

type promoService struct {
	promoRepo repository.PromoRedemptionRepository
	config    *config.Config
	logger    *slog.Logger
}

// NewPromoService creates a new promo redemption service instance
func NewPromoService(promoRepo repository.PromoRedemptionRepository, cfg *config.Config, logger *slog.Logger) usecase.PromoUsecase {
	return &promoService{
		promoRepo: promoRepo,
		config:    cfg,
		logger:    logger,
	}
}

// Redeem validates the promo branch and persists a redemption. The gateway is
// never involved and no purchase record is created.
func (s *promoService) Redeem(ctx context.Context, intent *usecase.PurchaseIntent) (*usecase.RedeemResult, error) {
	if appErr := validatePromoIntent(intent); appErr != nil {
		return &usecase.RedeemResult{State: entity.CheckoutStateCollectingPromoDetails}, appErr
	}

	if !s.isAllowedCode(intent.PromoCode) {
		return &usecase.RedeemResult{State: entity.CheckoutStateCollectingPromoDetails},
			domainerrors.ErrPromoCodeInvalid
	}

	redemption := &entity.PromoRedemption{
		Name:      strings.TrimSpace(intent.BuyerName + " " + intent.BuyerLastName),
		Email:     intent.BuyerEmail,
		PromoCode: intent.PromoCode,
		City:      intent.BuyerCity,
		Address:   intent.BuyerAddress,
		Company:   intent.Company,
	}

	if err := s.promoRepo.CreateRedemption(ctx, redemption); err != nil {
		s.logger.Error("failed to create promo redemption",
			slog.String("promo_code", intent.PromoCode),
			slog.Any("error", err),
		)

		return &usecase.RedeemResult{State: entity.CheckoutStateFailed}, domainerrors.ErrPromoRedemptionFailed
	}

	return &usecase.RedeemResult{
		State:        entity.CheckoutStateRedeemed,
		RedemptionID: redemption.ID,
	}, nil
}

// isAllowedCode checks the configured closed set, case-insensitively.
func (s *promoService) isAllowedCode(code string) bool {
	for _, allowed := range s.config.Checkout.PromoCodes {
		if strings.EqualFold(allowed, code) {
			return true
		}
	}

	return false
}

func validatePromoIntent(intent *usecase.PurchaseIntent) domainerrors.AppError {
	if intent == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing redemption intent")
	}
	if intent.Kind != entity.PurchaseKindPromoCode {
		return domainerrors.ErrInvalidPurchaseKind.WithDetails("redemption requires the promo_code kind")
	}
	if strings.TrimSpace(intent.BuyerName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !isValidEmail(intent.BuyerEmail) {
		return domainerrors.ErrValidationFailed.WithDetails("email is missing or malformed")
	}
	if strings.TrimSpace(intent.PromoCode) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("promo code is required")
	}
	if intent.GiftEmail != "" || intent.GiftMessage != "" {
		return domainerrors.ErrValidationFailed.WithDetails("gift fields must be empty for redemptions")
	}

	return nil
}
