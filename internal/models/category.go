package models

// Category is a named classification for operations, fixed to one
// operation kind at creation. Categories are read-only thereafter.
type Category struct {
	Base
	Name string        `gorm:"uniqueIndex;not null" json:"name"`
	Kind OperationKind `gorm:"column:operation_type;type:text;not null" json:"kind"`
}
