package models

import "time"

// Base contains the common columns for all tables. IDs are integer
// surrogates assigned by the store at insertion.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
