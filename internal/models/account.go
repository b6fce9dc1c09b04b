package models

import "ledgerbook/internal/money"

// Account represents a named store of monetary value with a running balance.
// The balance is mutated only by the ledger service when an operation is
// recorded against it; the is_active flag toggles independently.
type Account struct {
	Base
	Name     string       `gorm:"uniqueIndex;not null" json:"name"`
	Balance  money.Amount `gorm:"type:text;not null" json:"balance"`
	IsActive bool         `gorm:"not null;default:true" json:"is_active"`
}
