package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tuikigai/internal/delivery/context"
	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/domain/service"
	"tuikigai/internal/errors"
	"tuikigai/internal/usecase"

	"github.com/google/uuid"
)

// webhookTopicPayment is the only provider notification topic this service acts on.
const webhookTopicPayment = "payment"

type callbackService struct {
	purchaseRepo repository.PurchaseRepository
	gateway      service.PreferenceGateway
	logger       *slog.Logger
}

// NewCallbackService creates a new payment callback service instance
func NewCallbackService(purchaseRepo repository.PurchaseRepository, gateway service.PreferenceGateway, logger *slog.Logger) usecase.PaymentCallbackUsecase {
	return &callbackService{
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

// HandleCallback applies one outcome notification to the purchase store.
// Only an approved status mutates the record; once approved, the status never
// reverts. Store failures are logged and swallowed so the provider considers
// the notification delivered.
func (s *callbackService) HandleCallback(ctx context.Context, reference, status, paymentID string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if strings.TrimSpace(reference) == "" || strings.TrimSpace(status) == "" {
		return domainerrors.ErrCallbackMalformed
	}

	purchaseID, err := uuid.Parse(reference)
	if err != nil {
		return domainerrors.ErrCallbackMalformed.WithDetails("reference is not a purchase id")
	}

	paymentStatus := entity.PaymentStatus(strings.ToLower(strings.TrimSpace(status)))
	if !paymentStatus.IsValid() {
		// Unknown provider vocabulary; record it and acknowledge.
		logger.Warn("ignoring unknown payment status",
			slog.String("purchase_id", purchaseID.String()),
			slog.String("status", string(paymentStatus)),
			slog.String("payment_id", paymentID),
		)

		return nil
	}

	if paymentStatus != entity.PaymentStatusApproved {
		// Informational only: the provider may call back several times while a
		// payment is pending, and a later approved callback supersedes these.
		logger.Info("non-approved payment status reported",
			slog.String("purchase_id", purchaseID.String()),
			slog.String("status", string(paymentStatus)),
			slog.String("payment_id", paymentID),
		)

		return nil
	}

	if err := s.purchaseRepo.UpdatePaymentResult(ctx, purchaseID, paymentID, entity.PaymentStatusApproved); err != nil {
		// Swallowed: raising here would make the provider retry a notification
		// it already considers delivered. Logged for operational follow-up.
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			logger.Warn("payment callback for unknown purchase",
				slog.String("purchase_id", purchaseID.String()),
				slog.String("payment_id", paymentID),
			)
		} else {
			logger.Error("failed to record approved payment",
				slog.String("purchase_id", purchaseID.String()),
				slog.String("payment_id", paymentID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	logger.Info("purchase approved",
		slog.String("purchase_id", purchaseID.String()),
		slog.String("payment_id", paymentID),
	)

	return nil
}

// HandleWebhook resolves a provider server-side notification into a callback by
// looking the payment up at the gateway.
func (s *callbackService) HandleWebhook(ctx context.Context, topic, paymentID string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if topic != webhookTopicPayment {
		logger.Debug("ignoring webhook topic", slog.String("topic", topic))

		return nil
	}

	if strings.TrimSpace(paymentID) == "" {
		return domainerrors.ErrCallbackMalformed.WithDetails("payment id is required")
	}

	info, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		// Acknowledge anyway; an unresolved lookup is an operational concern,
		// not the provider's.
		logger.Error("failed to resolve webhook payment",
			slog.String("payment_id", paymentID),
			slog.Any("error", err),
		)

		return nil
	}

	return s.HandleCallback(ctx, info.ExternalReference, info.Status, info.PaymentID)
}
