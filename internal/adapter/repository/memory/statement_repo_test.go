package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finstatement/internal/domain"
)

func TestStatementRepository_SaveAssignsIDAndTimestamp(t *testing.T) {
	repo := NewStatementRepository()

	stored, err := repo.Save(context.Background(), &domain.StatementOperation{
		UserID: "user-1",
		Type:   domain.OperationDeposit,
		Amount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.ID == "" {
		t.Fatal("expected Save to assign an ID")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("expected Save to assign a timestamp")
	}
}

func TestStatementRepository_SaveKeepsProvidedID(t *testing.T) {
	repo := NewStatementRepository()

	stored, err := repo.Save(context.Background(), &domain.StatementOperation{
		ID:     "op-1",
		UserID: "user-1",
		Type:   domain.OperationDeposit,
		Amount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "op-1" {
		t.Fatalf("expected provided ID to be kept, got %s", stored.ID)
	}

	found, err := repo.FindByID(context.Background(), "op-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != "user-1" {
		t.Fatalf("unexpected record: %+v", found)
	}
}

func TestStatementRepository_FindByID_NotFound(t *testing.T) {
	repo := NewStatementRepository()

	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, domain.ErrStatementNotFound) {
		t.Fatalf("expected ErrStatementNotFound, got %v", err)
	}
}

func TestStatementRepository_ListByUser_InsertionOrder(t *testing.T) {
	repo := NewStatementRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Save(ctx, &domain.StatementOperation{
			UserID:      "user-1",
			Type:        domain.OperationDeposit,
			Amount:      decimal.NewFromInt(10),
			Description: fmt.Sprintf("op %d", i),
		}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if _, err := repo.Save(ctx, &domain.StatementOperation{
		UserID: "user-2",
		Type:   domain.OperationDeposit,
		Amount: decimal.NewFromInt(99),
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	ops, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(ops))
	}
	for i, op := range ops {
		if op.Description != fmt.Sprintf("op %d", i) {
			t.Fatalf("expected insertion order, got %s at index %d", op.Description, i)
		}
	}
}

func TestStatementRepository_ReturnsCopies(t *testing.T) {
	repo := NewStatementRepository()
	ctx := context.Background()

	stored, err := repo.Save(ctx, &domain.StatementOperation{
		ID:          "op-1",
		UserID:      "user-1",
		Type:        domain.OperationDeposit,
		Amount:      decimal.NewFromInt(10),
		Description: "original",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored.Description = "tampered"

	found, err := repo.FindByID(ctx, "op-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Description != "original" {
		t.Fatal("stored record was mutated through a returned copy")
	}
}

func TestStatementRepository_ConcurrentSaves(t *testing.T) {
	repo := NewStatementRepository()

	const writers = 100

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(context.Background(), &domain.StatementOperation{
				UserID: "user-1",
				Type:   domain.OperationDeposit,
				Amount: decimal.NewFromInt(1),
			}); err != nil {
				t.Errorf("save failed: %v", err)
			}
		}()
	}
	wg.Wait()

	ops, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != writers {
		t.Fatalf("lost records under concurrency: expected %d, got %d", writers, len(ops))
	}
}
