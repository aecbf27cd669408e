package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/iho/finstatement/internal/domain"
)

// StatementRepository implements usecase.StatementRepository on
// PostgreSQL. The statements table is append-only; rows are never
// updated or deleted.
type StatementRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(pool *pgxpool.Pool) *StatementRepository {
	return &StatementRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Save appends the operation, assigning an ID and creation timestamp
// if absent, and returns the stored record. The insert is retried on
// transient serialization failures.
func (r *StatementRepository) Save(ctx context.Context, op *domain.StatementOperation) (*domain.StatementOperation, error) {
	stored := *op
	if stored.ID == "" {
		stored.ID = ulid.Make().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO statements (id, user_id, type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	err := r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			stored.ID,
			stored.UserID,
			string(stored.Type),
			decimalToNumeric(stored.Amount),
			stored.Description,
			timeToPgTimestamptz(stored.CreatedAt),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// FindByID retrieves an operation by ID.
func (r *StatementRepository) FindByID(ctx context.Context, id string) (*domain.StatementOperation, error) {
	query := `
		SELECT id, user_id, type, amount, description, created_at
		FROM statements
		WHERE id = $1
	`

	op, err := scanStatement(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStatementNotFound
	}

	return op, err
}

// ListByUser returns the user's operations in chronological order.
func (r *StatementRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StatementOperation, error) {
	query := `
		SELECT id, user_id, type, amount, description, created_at
		FROM statements
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []*domain.StatementOperation
	for rows.Next() {
		op, err := scanStatement(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, rows.Err()
}

func scanStatement(row pgx.Row) (*domain.StatementOperation, error) {
	var (
		op        domain.StatementOperation
		opType    string
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&op.ID, &op.UserID, &opType, &amount, &op.Description, &createdAt)
	if err != nil {
		return nil, err
	}

	op.Type = domain.OperationType(opType)
	op.Amount = numericToDecimal(amount)
	op.CreatedAt = createdAt.Time

	return &op, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
