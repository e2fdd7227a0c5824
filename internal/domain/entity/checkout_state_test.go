package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutState_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    CheckoutState
		to      CheckoutState
		allowed bool
	}{
		{"select paid branch", CheckoutStateSelectingOption, CheckoutStateCollectingDetails, true},
		{"select promo branch", CheckoutStateSelectingOption, CheckoutStateCollectingPromoDetails, true},
		{"cannot skip to submitting", CheckoutStateSelectingOption, CheckoutStateSubmitting, false},
		{"submit collected details", CheckoutStateCollectingDetails, CheckoutStateSubmitting, true},
		{"submitting succeeds", CheckoutStateSubmitting, CheckoutStateRedirecting, true},
		{"submitting fails", CheckoutStateSubmitting, CheckoutStateFailed, true},
		{"submitting cannot go back", CheckoutStateSubmitting, CheckoutStateCollectingDetails, false},
		{"failed retries paid branch", CheckoutStateFailed, CheckoutStateCollectingDetails, true},
		{"failed retries promo branch", CheckoutStateFailed, CheckoutStateCollectingPromoDetails, true},
		{"promo details to validation", CheckoutStateCollectingPromoDetails, CheckoutStateValidatingPromo, true},
		{"validation succeeds", CheckoutStateValidatingPromo, CheckoutStateRedeemed, true},
		{"validation rejects code", CheckoutStateValidatingPromo, CheckoutStateCollectingPromoDetails, true},
		{"validation store failure", CheckoutStateValidatingPromo, CheckoutStateFailed, true},
		{"redirecting is final", CheckoutStateRedirecting, CheckoutStateCollectingDetails, false},
		{"redeemed is final", CheckoutStateRedeemed, CheckoutStateCollectingPromoDetails, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestCheckoutState_IsTerminal(t *testing.T) {
	assert.True(t, CheckoutStateRedirecting.IsTerminal())
	assert.True(t, CheckoutStateRedeemed.IsTerminal())

	assert.False(t, CheckoutStateSelectingOption.IsTerminal())
	assert.False(t, CheckoutStateCollectingDetails.IsTerminal())
	assert.False(t, CheckoutStateSubmitting.IsTerminal())
	assert.False(t, CheckoutStateFailed.IsTerminal())
	assert.False(t, CheckoutStateValidatingPromo.IsTerminal())
}

func TestPurchaseKind_ItemTitle(t *testing.T) {
	assert.Equal(t, "TUIKIGAI - Compra personal", PurchaseKindPersonal.ItemTitle())
	assert.Equal(t, "TUIKIGAI - Regalo", PurchaseKindGift.ItemTitle())
}
