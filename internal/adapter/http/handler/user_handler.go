package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/finstatement/internal/adapter/http/dto"
	"github.com/iho/finstatement/internal/adapter/http/middleware"
	"github.com/iho/finstatement/internal/domain"
	"github.com/iho/finstatement/internal/infrastructure/auth"
	"github.com/iho/finstatement/internal/infrastructure/metrics"
	"github.com/iho/finstatement/internal/usecase"
)

// UserService defines the behavior needed by UserHandler.
type UserService interface {
	CreateUser(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
	GetProfile(ctx context.Context, id string) (*domain.User, error)
}

// UserHandler handles user registration, login and profile requests.
type UserHandler struct {
	userUC     UserService
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUC UserService, jwtManager *auth.JWTManager, m *metrics.Metrics) *UserHandler {
	return &UserHandler{userUC: userUC, jwtManager: jwtManager, metrics: m}
}

// Create registers a new user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.CreateUser(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create user", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.UsersCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// CreateSession authenticates a user and returns a session token.
func (h *UserHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), req.ToUseCaseInput())
	if err != nil {
		if h.metrics != nil && errors.Is(err, domain.ErrUnauthorized) {
			h.metrics.AuthFailures.Inc()
		}
		// Wrong email and wrong password look the same to the caller.
		writeError(w, mapDomainError(err), "invalid credentials", "")

		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Profile returns the authenticated user's profile.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
