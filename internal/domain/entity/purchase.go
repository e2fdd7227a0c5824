// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseKind identifies which checkout branch a purchase attempt follows.
type PurchaseKind string

const (
	// PurchaseKindPersonal is a purchase of the buyer's own result.
	PurchaseKindPersonal PurchaseKind = "personal"
	// PurchaseKindGift is a purchase of a result for someone else.
	PurchaseKindGift PurchaseKind = "gift"
	// PurchaseKindPromoCode redeems a promo code instead of paying.
	PurchaseKindPromoCode PurchaseKind = "promo_code"
)

// IsValid reports whether the kind is one of the known checkout branches.
func (k PurchaseKind) IsValid() bool {
	switch k {
	case PurchaseKindPersonal, PurchaseKindGift, PurchaseKindPromoCode:
		return true
	}

	return false
}

// ItemTitle returns the line-item title sent to the payment gateway.
func (k PurchaseKind) ItemTitle() string {
	if k == PurchaseKindGift {
		return "TUIKIGAI - Regalo"
	}

	return "TUIKIGAI - Compra personal"
}

// PaymentStatus is the lifecycle status of a purchase record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusInProcess PaymentStatus = "in_process"
)

// IsValid reports whether the status belongs to the provider vocabulary.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected, PaymentStatusInProcess:
		return true
	}

	return false
}

// PersonType distinguishes natural and legal buyers for invoicing.
type PersonType string

const (
	PersonTypeNatural PersonType = "natural"
	PersonTypeLegal   PersonType = "legal"
)

// IsValid reports whether the person type is a known value.
func (p PersonType) IsValid() bool {
	return p == PersonTypeNatural || p == PersonTypeLegal
}

// IDType is the buyer's identification document type (Colombian vocabulary).
type IDType string

const (
	IDTypeCC  IDType = "CC"  // cédula de ciudadanía
	IDTypeCE  IDType = "CE"  // cédula de extranjería
	IDTypeNIT IDType = "NIT" // company tax id
	IDTypePP  IDType = "PP"  // passport
	IDTypeTI  IDType = "TI"  // tarjeta de identidad
)

// IsValid reports whether the id type is a known document type.
func (t IDType) IsValid() bool {
	switch t {
	case IDTypeCC, IDTypeCE, IDTypeNIT, IDTypePP, IDTypeTI:
		return true
	}

	return false
}

// IkigaiAnswers holds the four free-text answers collected by the questionnaire.
type IkigaiAnswers struct {
	Love    string `json:"love"`    // what the user loves
	Talent  string `json:"talent"`  // what the user is good at
	Need    string `json:"need"`    // what the world needs
	Payment string `json:"payment"` // what the user can be paid for
}

// PurchaseRecord represents one persisted purchase attempt. It is created by the
// checkout orchestrator before the gateway is ever contacted and updated at most
// once afterwards by the payment callback.
type PurchaseRecord struct {
	ID            uuid.UUID       `json:"id"`              // The Global Unique Identifier (GUID) for the purchase, also the gateway correlation reference.
	Kind          PurchaseKind    `json:"kind"`            // Which checkout branch produced this record.
	BuyerName     string          `json:"buyer_name"`      // The buyer's first name.
	BuyerLastName string          `json:"buyer_last_name"` // The buyer's last name.
	BuyerEmail    string          `json:"buyer_email"`     // The buyer's email address.
	BuyerIDType   IDType          `json:"buyer_id_type"`   // The buyer's identification document type.
	BuyerIDNumber string          `json:"buyer_id_number"` // The buyer's identification number.
	BuyerPhone    string          `json:"buyer_phone"`     // The buyer's phone number.
	BuyerCity     string          `json:"buyer_city"`      // The buyer's city.
	BuyerAddress  string          `json:"buyer_address"`   // The buyer's address.
	PersonType    PersonType      `json:"person_type"`     // Natural or legal person.
	Company       string          `json:"company"`         // Optional company name (legal persons).
	GiftEmail     string          `json:"gift_email"`      // Recipient email when Kind is gift.
	GiftMessage   string          `json:"gift_message"`    // Gift message when Kind is gift.
	Answers       IkigaiAnswers   `json:"answers"`         // The four questionnaire answers.
	Amount        decimal.Decimal `json:"amount"`          // Charged amount, derived from Kind, never user-supplied.
	Currency      string          `json:"currency"`        // ISO currency code of Amount.
	PaymentStatus PaymentStatus   `json:"payment_status"`  // Current payment status, pending until a callback arrives.
	PaymentID     string          `json:"payment_id"`      // Provider-assigned payment id, set by the callback.
	PreferenceID  string          `json:"preference_id"`   // Gateway preference id, set after preference creation.
	CreatedAt     time.Time       `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt     time.Time       `json:"updated_at"`      // Timestamp of the last modification.
}
