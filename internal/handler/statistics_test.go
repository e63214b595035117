package handler

import (
	"math"
	"net/http"
	"testing"

	"cafecalmo/internal/model"
)

func TestStatisticsHandler(t *testing.T) {
	srv := newTestServer(t)
	srv.login()

	rec := srv.do(http.MethodGet, "/api/statistics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stats := decode[model.Statistics](t, rec); stats != (model.Statistics{}) {
		t.Fatalf("expected zero statistics, got %+v", stats)
	}

	srv.do(http.MethodPost, "/api/orders", sampleCheckout(true))

	rec = srv.do(http.MethodGet, "/api/statistics", nil)
	stats := decode[model.Statistics](t, rec)
	if stats.TotalCustomers != 1 || stats.TotalOrders != 1 || math.Abs(stats.TotalRevenue-20.35) > 1e-9 {
		t.Fatalf("unexpected statistics %+v", stats)
	}
}

func TestCustomersEmpty(t *testing.T) {
	srv := newTestServer(t)
	srv.login()

	if rec := srv.do(http.MethodGet, "/api/customers", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := srv.do(http.MethodGet, "/api/customers/000/orders", nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid cpf, got %d", rec.Code)
	}
}
