package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestDoRequest_SendsTokenAndPayload(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"op-1"}`))
	}))
	defer srv.Close()

	origURL, origToken := baseURL, token
	baseURL, token = srv.URL, "session-token"
	defer func() { baseURL, token = origURL, origToken }()

	out := captureOutput(t, func() {
		if err := doRequest(http.MethodPost, "/api/v1/statements/deposit", map[string]string{"amount": "100"}, http.StatusCreated); err != nil {
			t.Fatalf("doRequest failed: %v", err)
		}
	})

	if gotAuth != "Bearer session-token" {
		t.Fatalf("expected bearer token to be sent, got %q", gotAuth)
	}
	if gotBody["amount"] != "100" {
		t.Fatalf("expected payload to be sent, got %+v", gotBody)
	}
	if !bytes.Contains([]byte(out), []byte(`"op-1"`)) {
		t.Fatalf("expected response to be printed, got %q", out)
	}
}

func TestDoRequest_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"insufficient funds"}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	err := doRequest(http.MethodPost, "/api/v1/statements/withdraw", map[string]string{"amount": "100"}, http.StatusCreated)
	if err == nil {
		t.Fatalf("expected error for non-created status")
	}
}
