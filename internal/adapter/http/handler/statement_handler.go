package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finstatement/internal/adapter/http/dto"
	"github.com/iho/finstatement/internal/adapter/http/middleware"
	"github.com/iho/finstatement/internal/domain"
	"github.com/iho/finstatement/internal/infrastructure/metrics"
	"github.com/iho/finstatement/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	CreateStatement(ctx context.Context, input usecase.CreateStatementInput) (*domain.StatementOperation, error)
	GetBalance(ctx context.Context, userID string) (*domain.Balance, error)
	GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.StatementOperation, error)
}

// StatementHandler handles statement-related HTTP requests.
type StatementHandler struct {
	ledgerUC StatementService
	metrics  *metrics.Metrics
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(ledgerUC StatementService, m *metrics.Metrics) *StatementHandler {
	return &StatementHandler{ledgerUC: ledgerUC, metrics: m}
}

// Deposit records a deposit for the authenticated user.
func (h *StatementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.OperationDeposit)
}

// Withdraw records a withdrawal for the authenticated user.
func (h *StatementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.OperationWithdraw)
}

func (h *StatementHandler) create(w http.ResponseWriter, r *http.Request, opType domain.OperationType) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	op, err := h.ledgerUC.CreateStatement(r.Context(), req.ToUseCaseInput(userID, opType))
	if err != nil {
		if h.metrics != nil {
			h.metrics.StatementErrors.WithLabelValues(errorReason(err)).Inc()
		}
		writeError(w, mapDomainError(err), "failed to create statement operation", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.StatementsCreated.WithLabelValues(string(op.Type)).Inc()
		amount, _ := op.Amount.Float64()
		h.metrics.StatementAmount.WithLabelValues(string(op.Type)).Observe(amount)
	}

	writeJSON(w, http.StatusCreated, dto.StatementOperationFromDomain(op))
}

// Balance returns the authenticated user's derived balance with the
// full statement.
func (h *StatementHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	balance, err := h.ledgerUC.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.BalanceQueries.Inc()
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

// Get retrieves one of the authenticated user's statement operations.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing statement ID", "")
		return
	}

	op, err := h.ledgerUC.GetStatementOperation(r.Context(), userID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get statement operation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementOperationFromDomain(op))
}

// errorReason collapses domain errors into a low-cardinality metric label.
func errorReason(err error) string {
	switch mapDomainError(err) {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "insufficient_funds"
	case http.StatusBadRequest:
		return "invalid_input"
	default:
		return "internal"
	}
}
