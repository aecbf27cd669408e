package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finstatement/internal/domain"
)

// LedgerUseCase is the ledger engine. It creates statement operations,
// derives balances by folding a user's statement, and enforces fund
// sufficiency before a withdrawal. Every operation is gated on the
// user existing in the user repository; the engine itself is stateless
// and trusts the caller layer to have authenticated the user ID.
type LedgerUseCase struct {
	userRepo      UserRepository
	statementRepo StatementRepository
	idGen         IDGenerator
	locks         *userLocks
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(userRepo UserRepository, statementRepo StatementRepository, idGen IDGenerator) *LedgerUseCase {
	return &LedgerUseCase{
		userRepo:      userRepo,
		statementRepo: statementRepo,
		idGen:         idGen,
		locks:         newUserLocks(),
	}
}

// CreateStatementInput represents input for creating a statement operation.
type CreateStatementInput struct {
	UserID      string
	Type        domain.OperationType
	Amount      decimal.Decimal
	Description string
}

// CreateStatement registers a deposit or withdrawal for a user.
// Withdrawals require the derived balance to cover the amount; the
// balance may reach exactly zero but never go negative.
func (uc *LedgerUseCase) CreateStatement(ctx context.Context, input CreateStatementInput) (*domain.StatementOperation, error) {
	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidOperationType
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	// Balance read and append must be a single unit per user, or two
	// concurrent withdrawals could both pass the sufficiency check.
	unlock := uc.locks.Lock(input.UserID)
	defer unlock()

	if input.Type == domain.OperationWithdraw {
		statement, err := uc.statementRepo.ListByUser(ctx, input.UserID)
		if err != nil {
			return nil, err
		}

		if domain.FoldBalance(statement).LessThan(input.Amount) {
			return nil, domain.ErrInsufficientFunds
		}
	}

	op := &domain.StatementOperation{
		ID:          uc.idGen.Generate(),
		UserID:      input.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	return uc.statementRepo.Save(ctx, op)
}

// GetBalance returns the derived balance for a user together with the
// full ordered statement, so one call serves both the balance and the
// history use cases.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	statement, err := uc.statementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Balance{
		Balance:   domain.FoldBalance(statement),
		Statement: statement,
	}, nil
}

// GetStatementOperation returns a single statement operation owned by
// the user. An operation belonging to another user is reported as not
// found rather than leaking its existence.
func (uc *LedgerUseCase) GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.StatementOperation, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	op, err := uc.statementRepo.FindByID(ctx, statementID)
	if err != nil {
		return nil, err
	}

	if op.UserID != userID {
		return nil, domain.ErrStatementNotFound
	}

	return op, nil
}
