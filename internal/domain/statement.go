package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType identifies the direction of a statement operation.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// IsValid checks if the operation type is one of the known kinds.
func (t OperationType) IsValid() bool {
	return t == OperationDeposit || t == OperationWithdraw
}

// StatementOperation is a single immutable ledger entry. Records are
// append-only: once saved they are never updated or deleted.
type StatementOperation struct {
	ID          string
	UserID      string
	Type        OperationType
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// Signed returns the amount with the sign implied by the operation
// type: positive for deposits, negative for withdrawals.
func (s *StatementOperation) Signed() decimal.Decimal {
	if s.Type == OperationWithdraw {
		return s.Amount.Neg()
	}
	return s.Amount
}

// Balance is the derived view of a user's ledger: the net sum of
// deposits minus withdrawals plus the full ordered statement. It is
// always computed by folding the statement, never stored.
type Balance struct {
	Balance   decimal.Decimal
	Statement []*StatementOperation
}

// FoldBalance computes the net balance of an ordered statement.
func FoldBalance(statement []*StatementOperation) decimal.Decimal {
	balance := decimal.Zero
	for _, op := range statement {
		balance = balance.Add(op.Signed())
	}
	return balance
}
