package model

import (
	"time"

	"github.com/google/uuid"
)

// PromoRedemptionModel is the GORM-specific struct for the 'promo_redemptions' table.
type PromoRedemptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(240);not null"`
	Email     string    `gorm:"type:varchar(254);not null;index"`
	PromoCode string    `gorm:"type:varchar(64);not null;index"`
	City      string    `gorm:"type:varchar(120)"`
	Address   string    `gorm:"type:varchar(255)"`
	Company   string    `gorm:"type:varchar(120)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoRedemptionModel) TableName() string {
	return "promo_redemptions"
}
