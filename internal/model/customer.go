package model

import "time"

// Customer is keyed by CPF. TotalOrders and TotalSpent are filled by listing queries only.
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	CreatedAt   time.Time `json:"created_at"`
	TotalOrders int       `json:"total_orders"`
	TotalSpent  float64   `json:"total_spent"`
}

type Statistics struct {
	TotalCustomers    int     `json:"total_customers"`
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}
