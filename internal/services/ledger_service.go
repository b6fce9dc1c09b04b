package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/money"
	"ledgerbook/internal/pagination"
)

// ledgerService is the ledger engine. It records operations and mutates
// the referenced account's balance inside a single database transaction,
// so the balance and the operation history can never diverge. The service
// holds no state between calls; every invocation re-reads the balance it
// needs inside its own transaction.
type ledgerService struct {
	db         *gorm.DB
	accounts   AccountServicer
	categories CategoryServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, accounts AccountServicer, categories CategoryServicer) LedgerServicer {
	return &ledgerService{
		db:         db,
		accounts:   accounts,
		categories: categories,
	}
}

// RecordOperation records an income or expense against an account and
// applies its balance effect atomically.
//
// The category's kind is authoritative: an empty kind is filled from the
// category, and a caller-supplied kind that disagrees with the category
// is rejected. Both writes (balance update, operation insert) commit or
// roll back as one unit.
func (s *ledgerService) RecordOperation(amount, kind string, date models.Date, categoryID, accountID uint, notes string) (*models.Operation, error) {
	value, err := money.Parse(amount)
	if err != nil {
		return nil, err
	}
	if !value.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
	}

	if accountID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	if date.IsZero() {
		date = models.Today()
	}

	// Resolve the category before any transaction is opened.
	category, err := s.categories.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if kind != "" {
		requested, err := models.ParseOperationKind(kind)
		if err != nil {
			return nil, err
		}
		if requested != category.Kind {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "operation kind does not match the category kind")
		}
	}

	var operation *models.Operation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Re-read the balance inside the transaction so concurrent
		// records against the same account cannot lose updates.
		account, txErr := s.lockAccount(tx, accountID)
		if txErr != nil {
			return txErr
		}

		var newBalance money.Amount
		switch category.Kind {
		case models.KindIncome:
			newBalance = account.Balance.Add(value)
		case models.KindExpense:
			newBalance = account.Balance.Sub(value)
		case models.KindTransfer:
			return apperrors.ErrUnsupportedOperationKind
		default:
			return apperrors.WithMessage(apperrors.ErrUnknownCategoryKind, "category carries an unrecognized kind")
		}

		if err := tx.Model(&models.Account{}).Where("id = ?", account.ID).Update("balance", newBalance).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrTransactionFailed, err)
		}

		operation = &models.Operation{
			Amount:     value,
			Kind:       category.Kind,
			Date:       date,
			CategoryID: category.ID,
			AccountID:  account.ID,
			Notes:      notes,
		}
		if err := tx.Create(operation).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrTransactionFailed, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return operation, nil
}

// lockAccount reads the account row inside the transaction, taking a
// FOR UPDATE row lock on dialects that support it. SQLite serializes
// writers at the connection level instead.
func (s *ledgerService) lockAccount(tx *gorm.DB, accountID uint) (*models.Account, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var account models.Account
	if err := q.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrTransactionFailed, err)
	}
	return &account, nil
}

// ListOperations retrieves all operations, newest operation date first,
// ties broken by insertion order.
func (s *ledgerService) ListOperations(page pagination.PageRequest) (*pagination.PageResponse[models.Operation], error) {
	return s.list(s.db.Model(&models.Operation{}), page)
}

// ListOperationsByAccount retrieves the operations recorded against one
// account, newest operation date first.
func (s *ledgerService) ListOperationsByAccount(accountID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Operation], error) {
	if _, err := s.accounts.GetAccountByID(accountID); err != nil {
		return nil, err
	}
	return s.list(s.db.Model(&models.Operation{}).Where("account_id = ?", accountID), page)
}

func (s *ledgerService) list(base *gorm.DB, page pagination.PageRequest) (*pagination.PageResponse[models.Operation], error) {
	page.Defaults()

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var operations []models.Operation
	if err := base.Scopes(pagination.Paginate(page)).
		Order("operation_date DESC, id ASC").
		Find(&operations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(operations, page.Page, page.PageSize, totalItems)
	return &result, nil
}
