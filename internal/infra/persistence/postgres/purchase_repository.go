// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// CreatePurchase persists a new purchase record with status pending.
func (repo *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.PurchaseRecord) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPurchaseCreationFailed.WrapMessage("missing required purchase information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrPurchaseCreationFailed.WrapMessage("invalid purchase field value")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	// Update the entity with generated values
	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// FindPurchaseByID retrieves a purchase record by its unique ID.
func (repo *purchaseRepository) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// UpdatePreferenceID stores the gateway preference id on an existing record.
func (repo *purchaseRepository) UpdatePreferenceID(ctx context.Context, id uuid.UUID, preferenceID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Update("preference_id", preferenceID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update preference id")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

// UpdatePaymentResult records the provider payment id and status. An approved
// record is never downgraded: the conditional update skips the write when the
// row is already approved and the incoming status is anything else. Re-applying
// identical values affects the row again and is therefore naturally idempotent.
func (repo *purchaseRepository) UpdatePaymentResult(ctx context.Context, id uuid.UUID, paymentID string, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Where("payment_status <> ? OR ? = ?", entity.PaymentStatusApproved, status, entity.PaymentStatusApproved).
		Updates(map[string]any{
			"payment_status": string(status),
			"payment_id":     paymentID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment result")
	}

	if result.RowsAffected == 0 {
		// Either the record does not exist or it is already approved and the
		// incoming status would downgrade it. Only the former is an error.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PurchaseModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check purchase existence")
		}
		if count == 0 {
			return repository.ErrPurchaseNotFound
		}
	}

	return nil
}

// FindPendingOlderThan lists pending records created before the cutoff, oldest
// first. Supports operational inspection of orphaned attempts.
func (repo *purchaseRepository) FindPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*entity.PurchaseRecord, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("payment_status = ? AND created_at < ?", entity.PaymentStatusPending, cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending purchases")
	}

	purchases := make([]*entity.PurchaseRecord, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain PurchaseRecord entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.PurchaseRecord {
	if data == nil {
		return nil
	}

	return &entity.PurchaseRecord{
		ID:            data.ID,
		Kind:          entity.PurchaseKind(data.Kind),
		BuyerName:     data.BuyerName,
		BuyerLastName: data.BuyerLastName,
		BuyerEmail:    data.BuyerEmail,
		BuyerIDType:   entity.IDType(data.BuyerIDType),
		BuyerIDNumber: data.BuyerIDNumber,
		BuyerPhone:    data.BuyerPhone,
		BuyerCity:     data.BuyerCity,
		BuyerAddress:  data.BuyerAddress,
		PersonType:    entity.PersonType(data.PersonType),
		Company:       data.Company,
		GiftEmail:     data.GiftEmail,
		GiftMessage:   data.GiftMessage,
		Answers: entity.IkigaiAnswers{
			Love:    data.AnswerLove,
			Talent:  data.AnswerTalent,
			Need:    data.AnswerNeed,
			Payment: data.AnswerPayment,
		},
		Amount:        data.Amount,
		Currency:      data.Currency,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentID:     data.PaymentID,
		PreferenceID:  data.PreferenceID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPurchaseDomain converts a domain PurchaseRecord entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.PurchaseRecord) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:            data.ID,
		Kind:          string(data.Kind),
		BuyerName:     data.BuyerName,
		BuyerLastName: data.BuyerLastName,
		BuyerEmail:    data.BuyerEmail,
		BuyerIDType:   string(data.BuyerIDType),
		BuyerIDNumber: data.BuyerIDNumber,
		BuyerPhone:    data.BuyerPhone,
		BuyerCity:     data.BuyerCity,
		BuyerAddress:  data.BuyerAddress,
		PersonType:    string(data.PersonType),
		Company:       data.Company,
		GiftEmail:     data.GiftEmail,
		GiftMessage:   data.GiftMessage,
		AnswerLove:    data.Answers.Love,
		AnswerTalent:  data.Answers.Talent,
		AnswerNeed:    data.Answers.Need,
		AnswerPayment: data.Answers.Payment,
		Amount:        data.Amount,
		Currency:      data.Currency,
		PaymentStatus: string(data.PaymentStatus),
		PaymentID:     data.PaymentID,
		PreferenceID:  data.PreferenceID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
