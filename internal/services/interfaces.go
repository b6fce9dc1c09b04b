package services

import (
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// AccountUpdateFields holds the optional fields accepted by UpdateAccount.
// Nil fields are left unchanged.
type AccountUpdateFields struct {
	Name     *string
	IsActive *bool
}

// AccountServicer defines the contract for the account directory.
type AccountServicer interface {
	CreateAccount(name, initialBalance string) (*models.Account, error)
	GetAccountByID(accountID uint) (*models.Account, error)
	ListAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	UpdateAccount(accountID uint, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(accountID uint) error
}

// CategoryServicer defines the contract for the category directory.
type CategoryServicer interface {
	CreateCategory(name, kind string) (*models.Category, error)
	GetCategoryByID(categoryID uint) (*models.Category, error)
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	ListCategoriesByKind(kind string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
}

// LedgerServicer defines the contract for the ledger engine: recording
// operations atomically with their balance effect, and ordered listings.
type LedgerServicer interface {
	RecordOperation(amount, kind string, date models.Date, categoryID, accountID uint, notes string) (*models.Operation, error)
	ListOperations(page pagination.PageRequest) (*pagination.PageResponse[models.Operation], error)
	ListOperationsByAccount(accountID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Operation], error)
}
