package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/finstatement/internal/domain"
	"github.com/iho/finstatement/internal/usecase"
)

// CreateUserRequest represents a request to register a user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// CreateSessionRequest represents a login request.
type CreateSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSessionRequest) ToUseCaseInput() usecase.AuthenticateInput {
	return usecase.AuthenticateInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// CreateStatementRequest represents a request to record a deposit or
// withdrawal. The operation type comes from the route, not the body.
type CreateStatementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input for the given user and
// operation type.
func (r *CreateStatementRequest) ToUseCaseInput(userID string, opType domain.OperationType) usecase.CreateStatementInput {
	return usecase.CreateStatementInput{
		UserID:      userID,
		Type:        opType,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
