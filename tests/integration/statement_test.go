package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finstatement/tests/testutil"
)

type statementResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type balanceResponse struct {
	Balance   decimal.Decimal     `json:"balance"`
	Statement []statementResponse `json:"statement"`
}

func TestDepositWithdrawBalanceFlow(t *testing.T) {
	app := testutil.NewTestApp(t)

	app.RegisterUser("Usuário Teste", "usuario@email.com.br", "12345678")
	token := app.Login("usuario@email.com.br", "12345678")

	var deposit statementResponse
	app.Do(http.MethodPost, "/api/v1/statements/deposit", token, map[string]string{
		"amount":      "100",
		"description": "venda de produto 01/02",
	}, http.StatusCreated, &deposit)

	if deposit.ID == "" || deposit.Type != "deposit" {
		t.Fatalf("unexpected deposit response: %+v", deposit)
	}

	app.Do(http.MethodPost, "/api/v1/statements/deposit", token, map[string]string{
		"amount": "50",
	}, http.StatusCreated, nil)

	var withdraw statementResponse
	app.Do(http.MethodPost, "/api/v1/statements/withdraw", token, map[string]string{
		"amount":      "30",
		"description": "pagamento de serviço",
	}, http.StatusCreated, &withdraw)

	var balance balanceResponse
	app.Do(http.MethodGet, "/api/v1/statements/balance", token, nil, http.StatusOK, &balance)

	if !balance.Balance.Equal(decimal.RequireFromString("120")) {
		t.Fatalf("expected balance 120, got %s", balance.Balance)
	}
	if len(balance.Statement) != 3 {
		t.Fatalf("expected 3 statement entries, got %d", len(balance.Statement))
	}
	if balance.Statement[0].ID != deposit.ID {
		t.Fatalf("expected statement in insertion order, got %+v", balance.Statement)
	}

	// Single-operation lookup returns the stored record.
	var fetched statementResponse
	app.Do(http.MethodGet, "/api/v1/statements/"+withdraw.ID, token, nil, http.StatusOK, &fetched)
	if fetched.ID != withdraw.ID || fetched.Type != "withdraw" {
		t.Fatalf("unexpected statement lookup: %+v", fetched)
	}
	if fetched.Description != "pagamento de serviço" {
		t.Fatalf("unexpected description: %q", fetched.Description)
	}
}

func TestWithdrawToExactlyZero(t *testing.T) {
	app := testutil.NewTestApp(t)

	app.RegisterUser("Usuário Teste", "usuario@email.com.br", "12345678")
	token := app.Login("usuario@email.com.br", "12345678")

	app.Do(http.MethodPost, "/api/v1/statements/deposit", token, map[string]string{"amount": "100"}, http.StatusCreated, nil)
	app.Do(http.MethodPost, "/api/v1/statements/withdraw", token, map[string]string{"amount": "100"}, http.StatusCreated, nil)

	var balance balanceResponse
	app.Do(http.MethodGet, "/api/v1/statements/balance", token, nil, http.StatusOK, &balance)
	if !balance.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", balance.Balance)
	}
}

func TestWithdrawRejections(t *testing.T) {
	app := testutil.NewTestApp(t)

	app.RegisterUser("Usuário Teste", "usuario@email.com.br", "12345678")
	token := app.Login("usuario@email.com.br", "12345678")

	app.Do(http.MethodPost, "/api/v1/statements/deposit", token, map[string]string{"amount": "50"}, http.StatusCreated, nil)

	// Insufficient funds leaves the statement untouched.
	app.Do(http.MethodPost, "/api/v1/statements/withdraw", token, map[string]string{"amount": "50.01"}, http.StatusUnprocessableEntity, nil)

	// Non-positive amounts are rejected outright.
	app.Do(http.MethodPost, "/api/v1/statements/withdraw", token, map[string]string{"amount": "0"}, http.StatusBadRequest, nil)
	app.Do(http.MethodPost, "/api/v1/statements/withdraw", token, map[string]string{"amount": "-10"}, http.StatusBadRequest, nil)
	app.Do(http.MethodPost, "/api/v1/statements/deposit", token, map[string]string{"amount": "-10"}, http.StatusBadRequest, nil)

	var balance balanceResponse
	app.Do(http.MethodGet, "/api/v1/statements/balance", token, nil, http.StatusOK, &balance)
	if !balance.Balance.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("expected balance 50 after rejections, got %s", balance.Balance)
	}
	if len(balance.Statement) != 1 {
		t.Fatalf("expected rejected operations not to be appended, got %d entries", len(balance.Statement))
	}
}

func TestStatementOwnershipIsolation(t *testing.T) {
	app := testutil.NewTestApp(t)

	app.RegisterUser("Usuário Teste", "usuario@email.com.br", "12345678")
	app.RegisterUser("Outro Usuário", "outro@email.com.br", "87654321")

	tokenA := app.Login("usuario@email.com.br", "12345678")
	tokenB := app.Login("outro@email.com.br", "87654321")

	var opB statementResponse
	app.Do(http.MethodPost, "/api/v1/statements/deposit", tokenB, map[string]string{"amount": "100"}, http.StatusCreated, &opB)

	// A foreign operation looks exactly like a missing one.
	app.Do(http.MethodGet, "/api/v1/statements/"+opB.ID, tokenA, nil, http.StatusNotFound, nil)

	// Balances stay per-user.
	var balanceA balanceResponse
	app.Do(http.MethodGet, "/api/v1/statements/balance", tokenA, nil, http.StatusOK, &balanceA)
	if !balanceA.Balance.IsZero() || len(balanceA.Statement) != 0 {
		t.Fatalf("expected empty ledger for user A, got %+v", balanceA)
	}
}

func TestAuthFlow(t *testing.T) {
	app := testutil.NewTestApp(t)

	app.RegisterUser("Usuário Teste", "usuario@email.com.br", "12345678")

	// Duplicate email is a conflict.
	app.Do(http.MethodPost, "/api/v1/users", "", map[string]string{
		"name":     "Usuário Teste",
		"email":    "usuario@email.com.br",
		"password": "12345678",
	}, http.StatusConflict, nil)

	// Wrong password and unknown email both come back unauthorized.
	app.Do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
		"email":    "usuario@email.com.br",
		"password": "wrong-password",
	}, http.StatusUnauthorized, nil)
	app.Do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
		"email":    "nobody@email.com.br",
		"password": "12345678",
	}, http.StatusUnauthorized, nil)

	// Statement routes refuse anonymous callers.
	app.Do(http.MethodPost, "/api/v1/statements/deposit", "", map[string]string{"amount": "100"}, http.StatusUnauthorized, nil)
	app.Do(http.MethodGet, "/api/v1/statements/balance", "", nil, http.StatusUnauthorized, nil)

	// Profile reflects the registered user.
	token := app.Login("usuario@email.com.br", "12345678")

	var profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	app.Do(http.MethodGet, "/api/v1/profile", token, nil, http.StatusOK, &profile)
	if profile.Email != "usuario@email.com.br" || profile.Name != "Usuário Teste" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
