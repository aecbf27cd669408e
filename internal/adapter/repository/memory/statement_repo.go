package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iho/finstatement/internal/domain"
)

// StatementRepository is an in-memory implementation of
// usecase.StatementRepository. Operations are held in an append-only
// slice guarded by a mutex, so concurrent saves never lose a record.
// Insertion order is chronological order.
type StatementRepository struct {
	mu   sync.RWMutex
	ops  []*domain.StatementOperation
	byID map[string]*domain.StatementOperation
}

// NewStatementRepository creates a new in-memory StatementRepository.
func NewStatementRepository() *StatementRepository {
	return &StatementRepository{
		byID: make(map[string]*domain.StatementOperation),
	}
}

// Save appends the operation, assigning an ID and creation timestamp
// if absent, and returns the stored record.
func (r *StatementRepository) Save(ctx context.Context, op *domain.StatementOperation) (*domain.StatementOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *op
	if stored.ID == "" {
		stored.ID = ulid.Make().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.ops = append(r.ops, &stored)
	r.byID[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

// FindByID retrieves an operation by ID.
func (r *StatementRepository) FindByID(ctx context.Context, id string) (*domain.StatementOperation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStatementNotFound
	}

	copied := *op
	return &copied, nil
}

// ListByUser returns the user's operations in insertion order. Copies
// are returned so callers cannot mutate stored records.
func (r *StatementRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StatementOperation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.StatementOperation
	for _, op := range r.ops {
		if op.UserID == userID {
			copied := *op
			result = append(result, &copied)
		}
	}

	return result, nil
}
