package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseModel is the GORM-specific struct for the 'purchases' table.
// One row per purchase attempt; rows are never deleted.
type PurchaseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind          string          `gorm:"type:varchar(16);not null"`
	BuyerName     string          `gorm:"type:varchar(120);not null"`
	BuyerLastName string          `gorm:"type:varchar(120);not null"`
	BuyerEmail    string          `gorm:"type:varchar(254);not null;index"`
	BuyerIDType   string          `gorm:"type:varchar(8);not null"`
	BuyerIDNumber string          `gorm:"type:varchar(32);not null"`
	BuyerPhone    string          `gorm:"type:varchar(32)"`
	BuyerCity     string          `gorm:"type:varchar(120)"`
	BuyerAddress  string          `gorm:"type:varchar(255)"`
	PersonType    string          `gorm:"type:varchar(8);not null"`
	Company       string          `gorm:"type:varchar(120)"`
	GiftEmail     string          `gorm:"type:varchar(254)"`
	GiftMessage   string          `gorm:"type:text"`
	AnswerLove    string          `gorm:"type:text"`
	AnswerTalent  string          `gorm:"type:text"`
	AnswerNeed    string          `gorm:"type:text"`
	AnswerPayment string          `gorm:"type:text"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	PaymentStatus string          `gorm:"type:varchar(16);not null;default:'pending';index;check:payment_status IN ('pending','approved','rejected','in_process')"`
	PaymentID     string          `gorm:"type:varchar(64)"`
	PreferenceID  string          `gorm:"type:varchar(128)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
