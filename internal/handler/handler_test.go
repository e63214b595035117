package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cafecalmo/internal/database"
	"cafecalmo/internal/service"
)

const testSecret = "test-secret"

type testServer struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := database.Open(context.Background(), database.DriverSQLite, filepath.Join(t.TempDir(), "cafe.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	router := NewRouter(Services{
		Staff:      service.NewStaffService(db),
		Orders:     service.NewOrderService(db),
		Customers:  service.NewCustomerService(db),
		Statistics: service.NewStatisticsService(db),
	}, testSecret)

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// login registers a staff account and keeps its bearer token for later requests.
func (s *testServer) login() {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/staff/register", map[string]string{"login": "barista", "password": "s3cret"})
	if rec.Code != http.StatusOK {
		s.t.Fatalf("register: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	s.token = rec.Header().Get("Authorization")
	if s.token == "" {
		s.t.Fatal("register: expected Authorization header")
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
