// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"tuikigai/internal/domain/entity"
	"tuikigai/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for purchase persistence.
var (
	// ErrPurchaseNotFound is returned when a purchase record is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// PurchaseRepository defines the interface for purchase-record database operations.
//
// A record has exactly one writer at creation (the checkout orchestrator) and at
// most one subsequent writer (the payment callback); no other component mutates
// a given record.
type PurchaseRepository interface {
	// CreatePurchase persists a new purchase record with status pending and
	// fills in the store-generated id and timestamps.
	CreatePurchase(ctx context.Context, purchase *entity.PurchaseRecord) error

	// FindPurchaseByID retrieves a purchase record by its unique ID.
	FindPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error)

	// UpdatePreferenceID stores the gateway preference id on an existing record.
	// Callers treat this as best-effort; the redirect does not wait on it.
	UpdatePreferenceID(ctx context.Context, id uuid.UUID, preferenceID string) error

	// UpdatePaymentResult records the provider payment id and status. The write
	// never downgrades an approved record; re-applying identical values is a
	// no-op rather than an error.
	UpdatePaymentResult(ctx context.Context, id uuid.UUID, paymentID string, status entity.PaymentStatus) error

	// FindPendingOlderThan lists pending records created before the cutoff.
	// Used for operational inspection of orphaned attempts.
	FindPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*entity.PurchaseRecord, error)
}
