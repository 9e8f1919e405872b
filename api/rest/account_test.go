package rest_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gamehub-br/server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountLifecycle(t *testing.T) {
	s := setupServer(t)

	w := s.postJSON(t, "/api/accounts", map[string]interface{}{
		"name":     "Maria",
		"email":    "maria@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var acc model.Account
	decodeBody(t, w, &acc)
	assert.NotZero(t, acc.ID)
	assert.Zero(t, acc.Balance)

	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")

	// Duplicate email is a conflict.
	w = s.postJSON(t, "/api/accounts", map[string]interface{}{
		"name":     "Other Maria",
		"email":    "maria@example.com",
		"password": "secret456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.getJSON(t, fmt.Sprintf("/api/accounts/%d", acc.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/accounts/%d", acc.ID), map[string]interface{}{
		"name": "Maria Silva",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &acc)
	assert.Equal(t, "Maria Silva", acc.Name)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", acc.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.getJSON(t, fmt.Sprintf("/api/accounts/%d", acc.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccountCreateValidation(t *testing.T) {
	s := setupServer(t)

	for name, body := range map[string]map[string]interface{}{
		"missing email":  {"name": "Jo", "password": "secret123"},
		"bad email":      {"name": "Jo", "email": "not-an-email", "password": "secret123"},
		"short password": {"name": "Jo", "email": "jo@example.com", "password": "abc"},
		"short name":     {"name": "J", "email": "jo@example.com", "password": "secret123"},
	} {
		w := s.postJSON(t, "/api/accounts", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestAccountCredit(t *testing.T) {
	s := setupServer(t)
	acc := s.seedAccount(t, "rich", 0)

	w := s.postJSON(t, fmt.Sprintf("/api/accounts/%d/balance", acc.ID),
		map[string]interface{}{"amount": 2500})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Account
	decodeBody(t, w, &updated)
	assert.Equal(t, int64(2500), updated.Balance)

	// Negative amounts are rejected by the ledger.
	w = s.postJSON(t, fmt.Sprintf("/api/accounts/%d/balance", acc.ID),
		map[string]interface{}{"amount": -100})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown account.
	w = s.postJSON(t, "/api/accounts/999/balance",
		map[string]interface{}{"amount": 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
