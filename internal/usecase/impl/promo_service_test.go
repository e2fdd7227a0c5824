package impl

import (
	"context"
	"testing"

	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	mockRepo "tuikigai/internal/mocks/repository"
	"tuikigai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromoService_Redeem_Success(t *testing.T) {
	mockPromoRepo := mockRepo.NewMockPromoRedemptionRepository(t)
	svc := NewPromoService(mockPromoRepo, newTestConfig(), newTestLogger())

	ctx := context.Background()
	redemptionID := uuid.New()

	var capturedRedemption *entity.PromoRedemption
	mockPromoRepo.EXPECT().
		CreateRedemption(ctx, mock.AnythingOfType("*entity.PromoRedemption")).
		Run(func(ctx context.Context, redemption *entity.PromoRedemption) {
			redemption.ID = redemptionID
			capturedRedemption = redemption
		}).
		Return(nil)

	result, err := svc.Redeem(ctx, validPromoIntent())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateRedeemed, result.State)
	assert.Equal(t, redemptionID, result.RedemptionID)

	require.NotNil(t, capturedRedemption)
	assert.Equal(t, "Laura Gómez", capturedRedemption.Name)
	assert.Equal(t, "IKIGAI2024", capturedRedemption.PromoCode)
}

func TestPromoService_Redeem_CodeMatchIsCaseInsensitive(t *testing.T) {
	mockPromoRepo := mockRepo.NewMockPromoRedemptionRepository(t)
	svc := NewPromoService(mockPromoRepo, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockPromoRepo.EXPECT().
		CreateRedemption(ctx, mock.AnythingOfType("*entity.PromoRedemption")).
		Return(nil)

	intent := validPromoIntent()
	intent.PromoCode = "ikigai2024"

	result, err := svc.Redeem(ctx, intent)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStateRedeemed, result.State)
}

func TestPromoService_Redeem_UnknownCode(t *testing.T) {
	mockPromoRepo := mockRepo.NewMockPromoRedemptionRepository(t)
	svc := NewPromoService(mockPromoRepo, newTestConfig(), newTestLogger())

	intent := validPromoIntent()
	intent.PromoCode = "NO-EXISTE"

	// Nothing is persisted for a code outside the allow-list.
	result, err := svc.Redeem(context.Background(), intent)
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutStateCollectingPromoDetails, result.State)
	assert.Equal(t, domainerrors.ErrPromoCodeInvalid, err)
}

func TestPromoService_Redeem_ValidationFailure(t *testing.T) {
	mockPromoRepo := mockRepo.NewMockPromoRedemptionRepository(t)
	svc := NewPromoService(mockPromoRepo, newTestConfig(), newTestLogger())

	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(intent *usecase.PurchaseIntent)
	}{
		{"wrong kind", func(intent *usecase.PurchaseIntent) { intent.Kind = entity.PurchaseKindPersonal }},
		{"missing name", func(intent *usecase.PurchaseIntent) { intent.BuyerName = "" }},
		{"malformed email", func(intent *usecase.PurchaseIntent) { intent.BuyerEmail = "laura@" }},
		{"missing code", func(intent *usecase.PurchaseIntent) { intent.PromoCode = "  " }},
		{"gift fields present", func(intent *usecase.PurchaseIntent) { intent.GiftMessage = "sorpresa" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := validPromoIntent()
			tt.mutate(intent)

			result, err := svc.Redeem(ctx, intent)
			require.Error(t, err)
			assert.Equal(t, entity.CheckoutStateCollectingPromoDetails, result.State)
		})
	}
}

func TestPromoService_Redeem_StoreFailure(t *testing.T) {
	mockPromoRepo := mockRepo.NewMockPromoRedemptionRepository(t)
	svc := NewPromoService(mockPromoRepo, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockPromoRepo.EXPECT().
		CreateRedemption(ctx, mock.AnythingOfType("*entity.PromoRedemption")).
		Return(errors.New("db down"))

	result, err := svc.Redeem(ctx, validPromoIntent())
	require.Error(t, err)
	assert.Equal(t, entity.CheckoutStateFailed, result.State)
	assert.Equal(t, domainerrors.ErrPromoRedemptionFailed, err)
}
