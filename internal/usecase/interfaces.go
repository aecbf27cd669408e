package usecase

import (
	"context"
	"time"

	"github.com/iho/finstatement/internal/domain"
)

// UserRepository defines lookup and persistence for users. The ledger
// engine only consumes GetByID; the rest serves registration and
// authentication.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// StatementRepository defines data access for statement operations.
// The store performs no business validation; it appends, and it reads.
// Implementations must guarantee that concurrent Save calls never lose
// a record.
type StatementRepository interface {
	// Save appends the operation and returns the stored record,
	// assigning an ID and creation timestamp if absent.
	Save(ctx context.Context, op *domain.StatementOperation) (*domain.StatementOperation, error)
	FindByID(ctx context.Context, id string) (*domain.StatementOperation, error)
	// ListByUser returns the user's operations in insertion order.
	ListByUser(ctx context.Context, userID string) ([]*domain.StatementOperation, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
