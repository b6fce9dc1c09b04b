package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/money"
	"ledgerbook/internal/pagination"
)

// accountService handles account directory logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account with the given initial balance.
func (s *accountService) CreateAccount(name, initialBalance string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	balance, err := money.Parse(initialBalance)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Account{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrConstraintViolation, "an account with this name already exists")
	}

	account := &models.Account{
		Name:     name,
		Balance:  balance,
		IsActive: true,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConstraintViolation, err)
	}

	return account, nil
}

// GetAccountByID retrieves an account by ID.
func (s *accountService) GetAccountByID(accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// ListAccounts retrieves a paginated list of all accounts.
func (s *accountService) ListAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	base := s.db.Model(&models.Account{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateAccount updates an account's name and/or active flag. The balance
// is deliberately not updatable here; only the ledger service mutates it.
func (s *accountService) UpdateAccount(accountID uint, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" && *fields.Name != account.Name {
		var count int64
		if err := s.db.Model(&models.Account{}).Where("name = ? AND id <> ?", *fields.Name, accountID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.WithMessage(apperrors.ErrConstraintViolation, "an account with this name already exists")
		}
		updates["name"] = *fields.Name
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.First(account, accountID).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// DeleteAccount hard-deletes an account. Deletion is refused while
// recorded operations still reference the account; deactivating via
// UpdateAccount is the supported way to retire such an account.
func (s *accountService) DeleteAccount(accountID uint) error {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.Operation{}).Where("account_id = ?", accountID).Count(&refs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if refs > 0 {
		return apperrors.WithMessage(apperrors.ErrConstraintViolation, "account has recorded operations; deactivate it instead")
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
