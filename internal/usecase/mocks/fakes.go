package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iho/finstatement/internal/domain"
)

// FakeUserRepository is an in-memory fake of UserRepository.
type FakeUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *FakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *FakeUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *FakeUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FakeStatementRepository is an in-memory fake of StatementRepository.
// By default it behaves as an append-only in-memory store.
type FakeStatementRepository struct {
	mu  sync.RWMutex
	ops []*domain.StatementOperation

	SaveFunc       func(ctx context.Context, op *domain.StatementOperation) (*domain.StatementOperation, error)
	FindByIDFunc   func(ctx context.Context, id string) (*domain.StatementOperation, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.StatementOperation, error)
}

func NewFakeStatementRepository() *FakeStatementRepository {
	return &FakeStatementRepository{}
}

func (m *FakeStatementRepository) Save(ctx context.Context, op *domain.StatementOperation) (*domain.StatementOperation, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, op)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *op
	if stored.ID == "" {
		stored.ID = ulid.Make().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	m.ops = append(m.ops, &stored)
	return &stored, nil
}

func (m *FakeStatementRepository) FindByID(ctx context.Context, id string) (*domain.StatementOperation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, op := range m.ops {
		if op.ID == id {
			copied := *op
			return &copied, nil
		}
	}
	return nil, domain.ErrStatementNotFound
}

func (m *FakeStatementRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StatementOperation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.StatementOperation
	for _, op := range m.ops {
		if op.UserID == userID {
			copied := *op
			result = append(result, &copied)
		}
	}
	return result, nil
}

// FakeIDGenerator is an in-memory fake of IDGenerator.
type FakeIDGenerator struct {
	GenerateFunc func() string
}

func NewFakeIDGenerator() *FakeIDGenerator {
	return &FakeIDGenerator{}
}

func (m *FakeIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return ulid.Make().String()
}
