package models

import (
	apperrors "ledgerbook/internal/errors"
)

// OperationKind classifies an operation's effect on an account balance.
type OperationKind string

const (
	KindIncome  OperationKind = "income"
	KindExpense OperationKind = "expense"
	// KindTransfer is a legacy kind: categories tagged with it may exist,
	// but recording an operation against one is not supported.
	KindTransfer OperationKind = "transfer"
)

// ParseOperationKind converts stored or user-supplied kind text into the
// closed OperationKind set, failing with UNKNOWN_CATEGORY_KIND otherwise.
func ParseOperationKind(s string) (OperationKind, error) {
	switch OperationKind(s) {
	case KindIncome, KindExpense, KindTransfer:
		return OperationKind(s), nil
	}
	return "", apperrors.WithMessage(apperrors.ErrUnknownCategoryKind, "unrecognized category kind: "+s)
}

// String returns the persisted text form of the kind.
func (k OperationKind) String() string { return string(k) }
