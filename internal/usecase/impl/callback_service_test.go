package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	deliverycontext "tuikigai/internal/delivery/context"
	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/domain/service"
	mockRepo "tuikigai/internal/mocks/repository"
	mockSvc "tuikigai/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackService_HandleCallback_Approved(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	mockPurchaseRepo.EXPECT().
		UpdatePaymentResult(ctx, purchaseID, "pay-789", entity.PaymentStatusApproved).
		Return(nil)

	err := svc.HandleCallback(ctx, purchaseID.String(), "approved", "pay-789")
	require.NoError(t, err)
}

func TestCallbackService_HandleCallback_ApprovedIsIdempotent(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	// The provider redelivers; every delivery lands on the same conditional
	// store write and every delivery is acknowledged.
	mockPurchaseRepo.EXPECT().
		UpdatePaymentResult(ctx, purchaseID, "pay-789", entity.PaymentStatusApproved).
		Return(nil).
		Twice()

	require.NoError(t, svc.HandleCallback(ctx, purchaseID.String(), "approved", "pay-789"))
	require.NoError(t, svc.HandleCallback(ctx, purchaseID.String(), "approved", "pay-789"))
}

func TestCallbackService_HandleCallback_NonApprovedIsInformational(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	// No store write for any of these; a later approved callback supersedes them.
	for _, status := range []string{"pending", "rejected", "in_process"} {
		require.NoError(t, svc.HandleCallback(ctx, purchaseID.String(), status, "pay-1"))
	}
}

func TestCallbackService_HandleCallback_UnknownStatusAcknowledged(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	err := svc.HandleCallback(context.Background(), uuid.New().String(), "charged_back", "pay-1")
	require.NoError(t, err)
}

func TestCallbackService_HandleCallback_Malformed(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	ctx := context.Background()

	tests := []struct {
		name      string
		reference string
		status    string
	}{
		{"missing reference", "", "approved"},
		{"missing status", uuid.New().String(), ""},
		{"reference not a purchase id", "not-a-uuid", "approved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.HandleCallback(ctx, tt.reference, tt.status, "pay-1")
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "CALLBACK_MALFORMED", appErr.ErrorCode())
		})
	}
}

func TestCallbackService_HandleCallback_StoreErrorsSwallowed(t *testing.T) {
	ctx := context.Background()
	purchaseID := uuid.New()

	t.Run("unknown purchase", func(t *testing.T) {
		mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
		mockGateway := mockSvc.NewMockPreferenceGateway(t)
		svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

		mockPurchaseRepo.EXPECT().
			UpdatePaymentResult(ctx, purchaseID, "pay-1", entity.PaymentStatusApproved).
			Return(repository.ErrPurchaseNotFound)

		require.NoError(t, svc.HandleCallback(ctx, purchaseID.String(), "approved", "pay-1"))
	})

	t.Run("store failure", func(t *testing.T) {
		mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
		mockGateway := mockSvc.NewMockPreferenceGateway(t)
		svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

		mockPurchaseRepo.EXPECT().
			UpdatePaymentResult(ctx, purchaseID, "pay-1", entity.PaymentStatusApproved).
			Return(errors.New("db down"))

		require.NoError(t, svc.HandleCallback(ctx, purchaseID.String(), "approved", "pay-1"))
	})
}

func TestCallbackService_HandleWebhook_ResolvesPayment(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	mockGateway.EXPECT().
		GetPayment(ctx, "pay-555").
		Return(&service.PaymentInfo{
			PaymentID:         "pay-555",
			Status:            "approved",
			ExternalReference: purchaseID.String(),
		}, nil)

	mockPurchaseRepo.EXPECT().
		UpdatePaymentResult(ctx, purchaseID, "pay-555", entity.PaymentStatusApproved).
		Return(nil)

	require.NoError(t, svc.HandleWebhook(ctx, "payment", "pay-555"))
}

func TestCallbackService_HandleWebhook_IgnoresOtherTopics(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	require.NoError(t, svc.HandleWebhook(context.Background(), "merchant_order", "123"))
}

func TestCallbackService_HandleWebhook_MissingPaymentID(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	err := svc.HandleWebhook(context.Background(), "payment", "  ")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CALLBACK_MALFORMED", appErr.ErrorCode())
}

func TestCallbackService_HandleWebhook_LookupFailureAcknowledged(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	ctx := context.Background()

	mockGateway.EXPECT().
		GetPayment(ctx, "pay-999").
		Return(nil, errors.New("gateway returned status 500"))

	require.NoError(t, svc.HandleWebhook(ctx, "payment", "pay-999"))
}

func TestCallbackService_HandleWebhook_UsesRequestScopedLogger(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCallbackService(mockPurchaseRepo, mockGateway, newTestLogger())

	var buf bytes.Buffer
	requestLogger := slog.New(slog.NewTextHandler(&buf, nil)).
		With(slog.String("requestId", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	mockGateway.EXPECT().
		GetPayment(ctx, "pay-999").
		Return(nil, errors.New("gateway returned status 500"))

	require.NoError(t, svc.HandleWebhook(ctx, "payment", "pay-999"))

	assert.Contains(t, buf.String(), "failed to resolve webhook payment")
	assert.Contains(t, buf.String(), "req-42")
}
