package service

import (
	"context"
	"path/filepath"
	"testing"

	"cafecalmo/internal/database"
	"cafecalmo/internal/model"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.DriverSQLite, filepath.Join(t.TempDir(), "cafe.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	if err := db.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func sampleCart() []model.CartItem {
	return []model.CartItem{
		{ID: "a", Name: "Coffee", Price: 5.00, Quantity: 2},
		{ID: "b", Name: "Cake", Price: 8.50, Quantity: 1},
	}
}

func newOrder(name, cpf string, items []model.CartItem, includeService bool) model.NewOrder {
	totals := model.CalculateTotals(items, includeService)
	return model.NewOrder{
		CustomerName:   name,
		CustomerCPF:    cpf,
		Subtotal:       totals.Subtotal,
		ServiceFee:     totals.ServiceFee,
		Total:          totals.Total,
		IncludeService: includeService,
		Items:          items,
	}
}

func saveOrder(t *testing.T, svc *OrderService, o model.NewOrder) int64 {
	t.Helper()
	id, err := svc.Save(context.Background(), o)
	if err != nil {
		t.Fatalf("save order: %v", err)
	}
	return id
}
