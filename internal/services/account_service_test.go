package services

import (
	"testing"

	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount("Cash", "1000.00")
		testutil.AssertNoError(t, err)

		if account.ID == 0 {
			t.Fatal("expected non-zero account ID")
		}
		if account.Name != "Cash" {
			t.Errorf("expected name Cash, got %q", account.Name)
		}
		testutil.AssertAmount(t, account.Balance, "1000.00")
		if !account.IsActive {
			t.Error("expected new account to be active")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount("", "0.00")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("malformed_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount("Cash", "one thousand")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount("Cash", "0.00")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateAccount("Cash", "50.00")
		testutil.AssertAppError(t, err, "CONSTRAINT_VIOLATION")
	})
}

func TestGetAccountByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)

	created := testutil.CreateTestAccountWithName(t, db, "Card", "5000.00")

	account, err := svc.GetAccountByID(created.ID)
	testutil.AssertNoError(t, err)
	if account.Name != "Card" {
		t.Errorf("expected name Card, got %q", account.Name)
	}
	testutil.AssertAmount(t, account.Balance, "5000.00")

	_, err = svc.GetAccountByID(99999)
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestListAccounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)

	testutil.CreateTestAccount(t, db, "10.00")
	testutil.CreateTestAccount(t, db, "20.00")
	testutil.CreateTestAccount(t, db, "30.00")

	listed, err := svc.ListAccounts(pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if listed.TotalItems != 3 {
		t.Errorf("expected 3 accounts, got %d", listed.TotalItems)
	}

	paged, err := svc.ListAccounts(pagination.PageRequest{Page: 2, PageSize: 2})
	testutil.AssertNoError(t, err)
	if len(paged.Data) != 1 {
		t.Errorf("expected 1 account on page 2, got %d", len(paged.Data))
	}
	if paged.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", paged.TotalPages)
	}
}

func TestUpdateAccount(t *testing.T) {
	t.Run("rename_and_deactivate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccountWithName(t, db, "Old Wallet", "10.00")

		name := "New Wallet"
		inactive := false
		updated, err := svc.UpdateAccount(account.ID, AccountUpdateFields{Name: &name, IsActive: &inactive})
		testutil.AssertNoError(t, err)

		if updated.Name != "New Wallet" {
			t.Errorf("expected renamed account, got %q", updated.Name)
		}
		if updated.IsActive {
			t.Error("expected account to be deactivated")
		}
		// The balance must be untouched by directory updates.
		testutil.AssertAmount(t, updated.Balance, "10.00")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		testutil.CreateTestAccountWithName(t, db, "Cash", "0.00")
		other := testutil.CreateTestAccountWithName(t, db, "Card", "0.00")

		name := "Cash"
		_, err := svc.UpdateAccount(other.ID, AccountUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "CONSTRAINT_VIOLATION")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		name := "Anything"
		_, err := svc.UpdateAccount(99999, AccountUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("success_without_operations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, "0.00")

		testutil.AssertNoError(t, svc.DeleteAccount(account.ID))

		_, err := svc.GetAccountByID(account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("refused_with_operations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, "100.00")
		category := testutil.CreateTestCategory(t, db, models.KindExpense)
		testutil.CreateTestOperation(t, db, account.ID, category.ID, models.KindExpense, "5.00", models.Today())

		err := svc.DeleteAccount(account.ID)
		testutil.AssertAppError(t, err, "CONSTRAINT_VIOLATION")

		// The account must still exist.
		_, err = svc.GetAccountByID(account.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		err := svc.DeleteAccount(99999)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}
