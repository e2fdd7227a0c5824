package impl

import (
	"context"
	"testing"

	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/domain/service"
	mockRepo "tuikigai/internal/mocks/repository"
	mockSvc "tuikigai/internal/mocks/service"
	"tuikigai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_SubmitPurchase_Personal(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	cfg := newTestConfig()
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, cfg, newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseRecord")).
		Run(func(ctx context.Context, purchase *entity.PurchaseRecord) {
			purchase.ID = purchaseID
		}).
		Return(nil)

	var capturedOrder *service.PreferenceOrder
	mockGateway.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*service.PreferenceOrder")).
		Run(func(ctx context.Context, order *service.PreferenceOrder) {
			capturedOrder = order
		}).
		Return(&service.PaymentPreference{
			ID:        "pref-123",
			InitPoint: "https://www.mercadopago.com/init/pref-123",
		}, nil)

	mockPurchaseRepo.EXPECT().
		UpdatePreferenceID(ctx, purchaseID, "pref-123").
		Return(nil)

	result, err := svc.SubmitPurchase(ctx, "attempt-1", validPersonalIntent())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateRedirecting, result.State)
	assert.Equal(t, purchaseID, result.PurchaseID)
	assert.Equal(t, "pref-123", result.PreferenceID)
	assert.Equal(t, "https://www.mercadopago.com/init/pref-123", result.RedirectURL)

	require.NotNil(t, capturedOrder)
	assert.Equal(t, "TUIKIGAI - Compra personal", capturedOrder.Title)
	assert.True(t, capturedOrder.Amount.Equal(cfg.Checkout.PersonalPrice))
	assert.Equal(t, "COP", capturedOrder.Currency)
	assert.Equal(t, purchaseID.String(), capturedOrder.ExternalReference)
	assert.Equal(t, "https://tuikigai.co/payment/success?purchase_id="+purchaseID.String(), capturedOrder.BackURLs.Success)
	assert.Equal(t, "https://tuikigai.co/payment/failure?purchase_id="+purchaseID.String(), capturedOrder.BackURLs.Failure)
	assert.Equal(t, "https://tuikigai.co/payment/pending?purchase_id="+purchaseID.String(), capturedOrder.BackURLs.Pending)
}

func TestCheckoutService_SubmitPurchase_GiftUsesGiftPrice(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	cfg := newTestConfig()
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, cfg, newTestLogger())

	ctx := context.Background()

	var capturedRecord *entity.PurchaseRecord
	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseRecord")).
		Run(func(ctx context.Context, purchase *entity.PurchaseRecord) {
			purchase.ID = uuid.New()
			capturedRecord = purchase
		}).
		Return(nil)

	mockGateway.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*service.PreferenceOrder")).
		Return(&service.PaymentPreference{
			ID:        "pref-gift",
			InitPoint: "https://www.mercadopago.com/init/pref-gift",
		}, nil)

	mockPurchaseRepo.EXPECT().
		UpdatePreferenceID(ctx, mock.AnythingOfType("uuid.UUID"), "pref-gift").
		Return(nil)

	result, err := svc.SubmitPurchase(ctx, "attempt-gift", validGiftIntent())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateRedirecting, result.State)

	require.NotNil(t, capturedRecord)
	assert.Equal(t, entity.PurchaseKindGift, capturedRecord.Kind)
	assert.True(t, capturedRecord.Amount.Equal(cfg.Checkout.GiftPrice))
	assert.Equal(t, entity.PaymentStatusPending, capturedRecord.PaymentStatus)
	assert.Equal(t, "amiga@example.com", capturedRecord.GiftEmail)
}

func TestCheckoutService_SubmitPurchase_ValidationFailure(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(intent *usecase.PurchaseIntent)
	}{
		{"missing buyer name", func(intent *usecase.PurchaseIntent) { intent.BuyerName = "  " }},
		{"missing last name", func(intent *usecase.PurchaseIntent) { intent.BuyerLastName = "" }},
		{"malformed email", func(intent *usecase.PurchaseIntent) { intent.BuyerEmail = "not-an-email" }},
		{"unknown id type", func(intent *usecase.PurchaseIntent) { intent.BuyerIDType = "XX" }},
		{"missing id number", func(intent *usecase.PurchaseIntent) { intent.BuyerIDNumber = "" }},
		{"unknown person type", func(intent *usecase.PurchaseIntent) { intent.PersonType = "ghost" }},
		{"promo code on paid purchase", func(intent *usecase.PurchaseIntent) { intent.PromoCode = "IKIGAI2024" }},
		{"gift fields on personal purchase", func(intent *usecase.PurchaseIntent) { intent.GiftEmail = "amiga@example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := validPersonalIntent()
			tt.mutate(intent)

			result, err := svc.SubmitPurchase(ctx, "", intent)
			require.Error(t, err)
			assert.Equal(t, entity.CheckoutStateCollectingDetails, result.State)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestCheckoutService_SubmitPurchase_GiftMissingRecipient(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	intent := validGiftIntent()
	intent.GiftEmail = ""

	result, err := svc.SubmitPurchase(context.Background(), "", intent)
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutStateCollectingDetails, result.State)
}

func TestCheckoutService_SubmitPurchase_RejectsPromoKind(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	result, err := svc.SubmitPurchase(context.Background(), "", validPromoIntent())
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutStateCollectingDetails, result.State)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PURCHASE_KIND", appErr.ErrorCode())
}

func TestCheckoutService_SubmitPurchase_CreateRecordFails(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseRecord")).
		Return(errors.New("db down"))

	// The gateway must never be contacted when the record was not persisted.
	result, err := svc.SubmitPurchase(ctx, "attempt-2", validPersonalIntent())
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutStateFailed, result.State)
	assert.Equal(t, domainerrors.ErrPurchaseCreationFailed, err)
}

func TestCheckoutService_SubmitPurchase_GatewayFails(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseRecord")).
		Run(func(ctx context.Context, purchase *entity.PurchaseRecord) {
			purchase.ID = purchaseID
		}).
		Return(nil)

	mockGateway.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*service.PreferenceOrder")).
		Return(nil, errors.New("gateway rejected preference: invalid token"))

	result, err := svc.SubmitPurchase(ctx, "attempt-3", validPersonalIntent())
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutStateFailed, result.State)
	// The orphaned pending record stays referenced in the result.
	assert.Equal(t, purchaseID, result.PurchaseID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PREFERENCE_CREATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "invalid token")
}

func TestCheckoutService_SubmitPurchase_PreferenceIDWriteIsBestEffort(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseRecord")).
		Run(func(ctx context.Context, purchase *entity.PurchaseRecord) {
			purchase.ID = purchaseID
		}).
		Return(nil)

	mockGateway.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*service.PreferenceOrder")).
		Return(&service.PaymentPreference{
			ID:        "pref-456",
			InitPoint: "https://www.mercadopago.com/init/pref-456",
		}, nil)

	mockPurchaseRepo.EXPECT().
		UpdatePreferenceID(ctx, purchaseID, "pref-456").
		Return(errors.New("write timeout"))

	result, err := svc.SubmitPurchase(ctx, "attempt-4", validPersonalIntent())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateRedirecting, result.State)
	assert.Equal(t, "https://www.mercadopago.com/init/pref-456", result.RedirectURL)
}

func TestCheckoutService_SubmitPurchase_RepeatedAttemptRejected(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	checkout, ok := svc.(*checkoutService)
	require.True(t, ok)

	// Simulate a submission for the same attempt still past the guard.
	require.True(t, checkout.beginAttempt("attempt-5"))

	result, err := svc.SubmitPurchase(context.Background(), "attempt-5", validPersonalIntent())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrSubmissionInFlight, err)
	assert.Equal(t, entity.CheckoutStateSubmitting, result.State)

	// Once the first submission finishes, the attempt id is usable again.
	checkout.endAttempt("attempt-5")
	assert.True(t, checkout.beginAttempt("attempt-5"))
}

func TestCheckoutService_GetPurchase(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()
	expected := &entity.PurchaseRecord{ID: purchaseID, PaymentStatus: entity.PaymentStatusApproved}

	mockPurchaseRepo.EXPECT().
		FindPurchaseByID(ctx, purchaseID).
		Return(expected, nil)

	record, err := svc.GetPurchase(ctx, purchaseID)
	require.NoError(t, err)
	assert.Equal(t, expected, record)
}

func TestCheckoutService_GetPurchase_NotFound(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()
	purchaseID := uuid.New()

	mockPurchaseRepo.EXPECT().
		FindPurchaseByID(ctx, purchaseID).
		Return(nil, repository.ErrPurchaseNotFound)

	record, err := svc.GetPurchase(ctx, purchaseID)
	assert.Nil(t, record)
	assert.Equal(t, domainerrors.ErrPurchaseNotFound, err)
}

func TestCheckoutService_ListStalePending_ClampsLimit(t *testing.T) {
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPreferenceGateway(t)
	svc := NewCheckoutService(mockPurchaseRepo, mockGateway, newTestConfig(), newTestLogger())

	ctx := context.Background()
	expected := []*entity.PurchaseRecord{{ID: uuid.New()}}

	mockPurchaseRepo.EXPECT().
		FindPendingOlderThan(ctx, mock.AnythingOfType("time.Time"), maxStalePendingLimit).
		Return(expected, nil)

	records, err := svc.ListStalePending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}
