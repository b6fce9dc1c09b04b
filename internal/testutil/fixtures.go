package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ledgerbook/internal/models"
	"ledgerbook/internal/money"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account with the given starting balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, balance string) *models.Account {
	t.Helper()
	return CreateTestAccountWithName(t, db, fmt.Sprintf("Test Account %d", nextID()), balance)
}

// CreateTestAccountWithName creates an account with the given name and balance.
func CreateTestAccountWithName(t *testing.T, db *gorm.DB, name, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:     name,
		Balance:  money.MustParse(balance),
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category of the given kind.
func CreateTestCategory(t *testing.T, db *gorm.DB, kind models.OperationKind) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()), kind)
}

// CreateTestCategoryWithName creates a category with the given name and kind.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string, kind models.OperationKind) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: name,
		Kind: kind,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestOperation inserts an operation row directly, bypassing the
// ledger service. The account balance is NOT updated; use this only for
// listing and referential tests.
func CreateTestOperation(t *testing.T, db *gorm.DB, accountID, categoryID uint, kind models.OperationKind, amount string, date models.Date) *models.Operation {
	t.Helper()

	op := &models.Operation{
		Amount:     money.MustParse(amount),
		Kind:       kind,
		Date:       date,
		CategoryID: categoryID,
		AccountID:  accountID,
	}
	if err := db.Create(op).Error; err != nil {
		t.Fatalf("failed to create test operation: %v", err)
	}
	return op
}
