package postgres

import (
	"context"

	"tuikigai/internal/domain/entity"
	domainerrors "tuikigai/internal/domain/errors"
	"tuikigai/internal/domain/repository"
	"tuikigai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promoRedemptionRepository implements the repository.PromoRedemptionRepository interface.
type promoRedemptionRepository struct {
	db *gorm.DB
}

// NewPromoRedemptionRepository is the constructor for promoRedemptionRepository.
func NewPromoRedemptionRepository(db *gorm.DB) repository.PromoRedemptionRepository {
	return &promoRedemptionRepository{
		db: db,
	}
}

// CreateRedemption persists a new promo-code redemption.
func (repo *promoRedemptionRepository) CreateRedemption(ctx context.Context, redemption *entity.PromoRedemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPromoRedemptionFailed.WrapMessage("missing required redemption information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo redemption")
	}

	// Update the entity with generated values
	redemption.ID = redemptionM.ID
	redemption.CreatedAt = redemptionM.CreatedAt

	return nil
}

// FindRedemptionByID retrieves a redemption by its unique ID.
func (repo *promoRedemptionRepository) FindRedemptionByID(ctx context.Context, id uuid.UUID) (*entity.PromoRedemption, error) {
	var redemptionM model.PromoRedemptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find redemption by ID")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.PromoRedemptionModel) *entity.PromoRedemption {
	if data == nil {
		return nil
	}

	return &entity.PromoRedemption{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		PromoCode: data.PromoCode,
		City:      data.City,
		Address:   data.Address,
		Company:   data.Company,
		CreatedAt: data.CreatedAt,
	}
}

func fromRedemptionDomain(data *entity.PromoRedemption) *model.PromoRedemptionModel {
	if data == nil {
		return nil
	}

	return &model.PromoRedemptionModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		PromoCode: data.PromoCode,
		City:      data.City,
		Address:   data.Address,
		Company:   data.Company,
		CreatedAt: data.CreatedAt,
	}
}
