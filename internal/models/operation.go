package models

import "ledgerbook/internal/money"

// Operation is a single recorded income or expense event affecting one
// account. The amount is an unsigned magnitude; the sign applied to the
// account balance is derived from Kind, which always equals the kind of
// the referenced category. Operations are immutable once recorded.
type Operation struct {
	Base
	Amount     money.Amount  `gorm:"type:text;not null" json:"amount"`
	Kind       OperationKind `gorm:"column:operation_type;type:text;not null" json:"kind"`
	Date       Date          `gorm:"column:operation_date;type:text;not null" json:"date"`
	CategoryID uint          `gorm:"not null;index" json:"category_id"`
	AccountID  uint          `gorm:"not null;index" json:"account_id"`
	Notes      string        `json:"notes"`
}
