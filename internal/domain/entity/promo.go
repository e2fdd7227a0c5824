// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromoRedemption represents a completed no-payment redemption of a promo code.
// Redemptions never touch the payment gateway and never produce a PurchaseRecord.
type PromoRedemption struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the redemption.
	Name      string    `json:"name"`       // The redeemer's full name.
	Email     string    `json:"email"`      // The redeemer's email address.
	PromoCode string    `json:"promo_code"` // The redeemed code, stored as submitted.
	City      string    `json:"city"`       // The redeemer's city.
	Address   string    `json:"address"`    // The redeemer's address.
	Company   string    `json:"company"`    // Optional company name.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
}
