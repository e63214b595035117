package model

import (
	"time"
)

// ServiceFeeRate is the optional surcharge a customer may ask for at checkout.
const ServiceFeeRate = 0.10

type Order struct {
	ID             int64       `json:"id"`
	CustomerID     int64       `json:"customer_id"`
	CustomerName   string      `json:"customer_name"`
	CustomerCPF    string      `json:"customer_cpf"`
	Subtotal       float64     `json:"subtotal"`
	ServiceFee     float64     `json:"service_fee"`
	Total          float64     `json:"total"`
	IncludeService bool        `json:"include_service"`
	CreatedAt      time.Time   `json:"created_at"`
	Items          []OrderItem `json:"items,omitempty"`
}

// OrderItem is a snapshot of a product's price and quantity at order time.
type OrderItem struct {
	ID          int64   `json:"-"`
	OrderID     int64   `json:"-"`
	ProductID   string  `json:"id"`
	ProductName string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CartItem is one selected product on the order summary.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewOrder is everything needed to persist a confirmed checkout.
type NewOrder struct {
	CustomerName   string
	CustomerCPF    string
	Subtotal       float64
	ServiceFee     float64
	Total          float64
	IncludeService bool
	Items          []CartItem
}

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

func CalculateTotals(items []CartItem, includeService bool) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.Price * float64(item.Quantity)
	}
	if includeService {
		t.ServiceFee = t.Subtotal * ServiceFeeRate
	}
	t.Total = t.Subtotal + t.ServiceFee
	return t
}
