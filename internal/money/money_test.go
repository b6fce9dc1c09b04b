package money

import (
	"errors"
	"testing"

	apperrors "ledgerbook/internal/errors"
)

func TestParse(t *testing.T) {
	valid := []struct {
		in   string
		want string
	}{
		{"1000.00", "1000.00"},
		{"0", "0.00"},
		{"0.5", "0.50"},
		{"250.50", "250.50"},
		{"-42.10", "-42.10"},
		{"55000", "55000.00"},
	}
	for _, tc := range valid {
		a, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.in, err)
		}
		if a.String() != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.in, a.String(), tc.want)
		}
	}

	invalid := []string{"", "abc", "12.34.56", "12,34", "1.999", "--5"}
	for _, in := range invalid {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got nil", in)
			continue
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "INVALID_AMOUNT" {
			t.Errorf("Parse(%q): expected INVALID_AMOUNT, got %v", in, err)
		}
	}
}

func TestArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is the classic binary float trap.
	sum := MustParse("0.10").Add(MustParse("0.20"))
	if sum.String() != "0.30" {
		t.Errorf("0.10 + 0.20 = %q, want 0.30", sum.String())
	}

	balance := MustParse("1000.00").Sub(MustParse("250.50"))
	if balance.String() != "749.50" {
		t.Errorf("1000.00 - 250.50 = %q, want 749.50", balance.String())
	}

	// Repeated small subtractions must not drift.
	b := MustParse("1.00")
	for i := 0; i < 100; i++ {
		b = b.Sub(MustParse("0.01"))
	}
	if b.String() != "0.00" {
		t.Errorf("1.00 - 100*0.01 = %q, want 0.00", b.String())
	}
}

func TestComparisons(t *testing.T) {
	a := MustParse("10.00")
	b := MustParse("10.0")
	if !a.Equal(b) {
		t.Error("10.00 and 10.0 should be equal")
	}
	if a.Cmp(MustParse("9.99")) != 1 {
		t.Error("expected 10.00 > 9.99")
	}
	if !MustParse("0.01").IsPositive() {
		t.Error("0.01 should be positive")
	}
	if !MustParse("-0.01").IsNegative() {
		t.Error("-0.01 should be negative")
	}
	if MustParse("5.00").Neg().String() != "-5.00" {
		t.Error("Neg should flip the sign")
	}
}

func TestSQLRoundTrip(t *testing.T) {
	orig := MustParse("749.50")
	v, err := orig.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "749.50" {
		t.Fatalf("Value = %v, want \"749.50\"", v)
	}

	var scanned Amount
	if err := scanned.Scan("749.50"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if !scanned.Equal(orig) {
		t.Errorf("scanned %q, want %q", scanned.String(), orig.String())
	}

	if err := scanned.Scan([]byte("55000.00")); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if scanned.String() != "55000.00" {
		t.Errorf("scanned %q, want 55000.00", scanned.String())
	}

	if err := scanned.Scan(3.14); err == nil {
		t.Error("expected error scanning a float64")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := MustParse("250.50").MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"250.50"` {
		t.Errorf("MarshalJSON = %s, want \"250.50\"", data)
	}

	var a Amount
	if err := a.UnmarshalJSON([]byte(`"99.90"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if a.String() != "99.90" {
		t.Errorf("unmarshaled %q, want 99.90", a.String())
	}

	if err := a.UnmarshalJSON([]byte(`12.5`)); err == nil {
		t.Error("expected error unmarshaling a JSON number")
	}
}
