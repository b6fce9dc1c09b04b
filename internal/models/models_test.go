package models

import (
	"errors"
	"testing"
	"time"

	apperrors "ledgerbook/internal/errors"
)

func TestParseOperationKind(t *testing.T) {
	for _, s := range []string{"income", "expense", "transfer"} {
		kind, err := ParseOperationKind(s)
		if err != nil {
			t.Fatalf("ParseOperationKind(%q): %v", s, err)
		}
		if kind.String() != s {
			t.Errorf("ParseOperationKind(%q) = %q", s, kind)
		}
	}

	for _, s := range []string{"", "INCOME", "withdrawal", "Expense "} {
		_, err := ParseOperationKind(s)
		if err == nil {
			t.Errorf("ParseOperationKind(%q): expected error", s)
			continue
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "UNKNOWN_CATEGORY_KIND" {
			t.Errorf("ParseOperationKind(%q): expected UNKNOWN_CATEGORY_KIND, got %v", s, err)
		}
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-07-26")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-07-26" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := ParseDate("26/07/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := ParseDate("2024-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}

	if !NewDate(2024, time.July, 25).Before(NewDate(2024, time.July, 26)) {
		t.Error("expected 07-25 to be before 07-26")
	}

	var scanned Date
	if err := scanned.Scan("2024-01-02"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if scanned.String() != "2024-01-02" {
		t.Errorf("scanned %q", scanned.String())
	}

	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "2024-07-26" {
		t.Errorf("Value = %v", v)
	}

	if Today().IsZero() {
		t.Error("Today should not be zero")
	}
}
