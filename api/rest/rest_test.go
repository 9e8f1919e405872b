package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamehub-br/server/api/rest"
	"github.com/gamehub-br/server/audit"
	"github.com/gamehub-br/server/config"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/scheduler"
	"github.com/gamehub-br/server/storefront"
	"github.com/gamehub-br/server/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testAdminKey = "test-admin-key"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	ca, ps := testutil.SetupTestCache(t)
	logger := zap.NewNop()

	cfg := &config.Config{}
	cfg.Server.Debug = true
	cfg.Server.AdminKey = testAdminKey
	cfg.Store.RankingSize = 10
	cfg.Store.RankingMinReviews = 1
	cfg.Security.BcryptCost = 4 // keep account creation fast in tests

	aud := audit.New(db, logger)
	t.Cleanup(func() { aud.Stop(context.Background()) })
	sched := scheduler.New(logger)
	t.Cleanup(sched.Stop)

	router := rest.NewRouter(rest.Deps{
		Config: cfg,
		DB:     db,
		Cache:  ca,
		Store:  storefront.New(db, ps, logger),
		Audit:  aud,
		Sched:  sched,
		Logger: logger,
	})
	return &testServer{router: router, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) postJSON(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	return s.do(t, http.MethodPost, path, body)
}

func (s *testServer) getJSON(t *testing.T, path string) *httptest.ResponseRecorder {
	return s.do(t, http.MethodGet, path, nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	s := setupServer(t)
	w := s.getJSON(t, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}

// ---- seeding helpers (direct DB writes, bypassing the API) ----

func (s *testServer) seedAccount(t *testing.T, name string, balance int64) *model.Account {
	t.Helper()
	acc := &model.Account{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Balance:      balance,
	}
	require.NoError(t, s.db.Create(acc).Error)
	return acc
}

func (s *testServer) seedTitle(t *testing.T, name string, price int64) *model.Title {
	t.Helper()
	dev := &model.Developer{Name: name + " dev"}
	pub := &model.Publisher{Name: name + " pub"}
	require.NoError(t, s.db.Create(dev).Error)
	require.NoError(t, s.db.Create(pub).Error)
	title := &model.Title{
		Name:        name,
		Price:       price,
		DeveloperID: dev.ID,
		PublisherID: pub.ID,
	}
	require.NoError(t, s.db.Create(title).Error)
	return title
}
