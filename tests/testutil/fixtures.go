package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/finstatement/internal/adapter/http"
	"github.com/iho/finstatement/internal/adapter/http/handler"
	"github.com/iho/finstatement/internal/adapter/repository/memory"
	"github.com/iho/finstatement/internal/adapter/repository/postgres"
	"github.com/iho/finstatement/internal/infrastructure/auth"
	"github.com/iho/finstatement/internal/usecase"
)

// TestApp runs the full HTTP stack against the in-memory store.
type TestApp struct {
	Server        *httptest.Server
	UserRepo      *memory.UserRepository
	StatementRepo *memory.StatementRepository
	t             *testing.T
}

// NewTestApp wires repositories, use cases, handlers and the router the
// same way cmd/server does, backed by the in-memory store.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	userRepo := memory.NewUserRepository()
	statementRepo := memory.NewStatementRepository()
	idGen := postgres.NewULIDGenerator()

	jwtManager := auth.NewJWTManager("integration-test-secret", time.Hour)

	userUC := usecase.NewUserUseCase(userRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(userRepo, statementRepo, idGen)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		UserHandler:      handler.NewUserHandler(userUC, jwtManager, nil),
		StatementHandler: handler.NewStatementHandler(ledgerUC, nil),
		HealthHandler:    handler.NewHealthHandler(nil, nil),
		JWTManager:       jwtManager,
		Logger:           zerolog.Nop(),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestApp{
		Server:        server,
		UserRepo:      userRepo,
		StatementRepo: statementRepo,
		t:             t,
	}
}

// Do performs a request against the test server and decodes the JSON
// response into out when out is non-nil.
func (a *TestApp) Do(method, path, token string, payload any, wantStatus int, out any) {
	a.t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			a.t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.Server.URL+path, body)
	if err != nil {
		a.t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Server.Client().Do(req)
	if err != nil {
		a.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		a.t.Fatalf("%s %s: expected status %d, got %d (%v)", method, path, wantStatus, resp.StatusCode, errBody)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			a.t.Fatalf("decode response: %v", err)
		}
	}
}

// RegisterUser registers a user through the API.
func (a *TestApp) RegisterUser(name, email, password string) {
	a.t.Helper()

	a.Do(http.MethodPost, "/api/v1/users", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, http.StatusCreated, nil)
}

// Login authenticates through the API and returns a session token.
func (a *TestApp) Login(email, password string) string {
	a.t.Helper()

	var resp struct {
		Token string `json:"token"`
	}
	a.Do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
		"email":    email,
		"password": password,
	}, http.StatusOK, &resp)

	if resp.Token == "" {
		a.t.Fatal("login returned an empty token")
	}
	return resp.Token
}
