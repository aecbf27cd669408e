package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finstatement/internal/domain"
)

// UserResponse represents a user in API responses. The hashed
// credential is never exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SessionResponse represents a successful login.
type SessionResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// StatementOperationResponse represents a statement operation in API
// responses.
type StatementOperationResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StatementOperationFromDomain converts a domain operation to a response.
func StatementOperationFromDomain(op *domain.StatementOperation) *StatementOperationResponse {
	return &StatementOperationResponse{
		ID:          op.ID,
		UserID:      op.UserID,
		Type:        string(op.Type),
		Amount:      op.Amount,
		Description: op.Description,
		CreatedAt:   op.CreatedAt,
	}
}

// StatementOperationsFromDomain converts domain operations to responses.
func StatementOperationsFromDomain(ops []*domain.StatementOperation) []*StatementOperationResponse {
	result := make([]*StatementOperationResponse, len(ops))
	for i, op := range ops {
		result[i] = StatementOperationFromDomain(op)
	}
	return result
}

// BalanceResponse represents a derived balance with its statement.
type BalanceResponse struct {
	Balance   decimal.Decimal               `json:"balance"`
	Statement []*StatementOperationResponse `json:"statement"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.Balance) *BalanceResponse {
	return &BalanceResponse{
		Balance:   b.Balance,
		Statement: StatementOperationsFromDomain(b.Statement),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
