// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tuikigai/internal/domain/entity"

	"github.com/google/uuid"
)

// PromoRedemptionRepository defines the interface for promo-redemption database operations.
type PromoRedemptionRepository interface {
	// CreateRedemption persists a new promo-code redemption and fills in the
	// store-generated id and timestamp.
	CreateRedemption(ctx context.Context, redemption *entity.PromoRedemption) error

	// FindRedemptionByID retrieves a redemption by its unique ID.
	FindRedemptionByID(ctx context.Context, id uuid.UUID) (*entity.PromoRedemption, error)
}
