package rest_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	s := setupServer(t)

	// No key.
	w := s.getJSON(t, "/api/admin/metrics")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong key.
	w = s.do(t, http.MethodGet, "/api/admin/metrics", nil,
		map[string]string{"X-Admin-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct key.
	w = s.do(t, http.MethodGet, "/api/admin/metrics", nil,
		map[string]string{"X-Admin-Key": testAdminKey})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMetrics(t *testing.T) {
	s := setupServer(t)
	s.seedAccount(t, "counted", 0)
	s.seedTitle(t, "Counted Game", 1000)

	w := s.do(t, http.MethodGet, "/api/admin/metrics", nil,
		map[string]string{"X-Admin-Key": testAdminKey})
	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]int64
	decodeBody(t, w, &counts)
	assert.Equal(t, int64(1), counts["accounts"])
	assert.Equal(t, int64(1), counts["titles"])
}

func TestAdminSchedulerTasks(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/api/admin/scheduler/tasks", nil,
		map[string]string{"X-Admin-Key": testAdminKey})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []string `json:"tasks"`
	}
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp.Tasks)
}
