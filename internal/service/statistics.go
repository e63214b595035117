package service

import (
	"context"
	"fmt"

	"cafecalmo/internal/database"
	"cafecalmo/internal/model"
)

type StatisticsService struct {
	db *database.DB
}

func NewStatisticsService(db *database.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// Get aggregates over all orders. Every field is zero on an empty store.
func (s *StatisticsService) Get(ctx context.Context) (*model.Statistics, error) {
	var st model.Statistics
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT customer_id),
		       COUNT(*),
		       COALESCE(SUM(total), 0),
		       COALESCE(AVG(total), 0)
		FROM orders
	`).Scan(&st.TotalCustomers, &st.TotalOrders, &st.TotalRevenue, &st.AverageOrderValue)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &st, nil
}
