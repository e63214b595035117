package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cafecalmo/internal/database"
	"cafecalmo/internal/model"
)

var (
	ErrInvalidOrder     = errors.New("invalid order")
	ErrCustomerConflict = errors.New("customer created concurrently")
)

type OrderService struct {
	db *database.DB
}

func NewOrderService(db *database.DB) *OrderService {
	return &OrderService{db: db}
}

// Save persists the customer (when new), the order and all of its items in one transaction
// and returns the new order id.
func (s *OrderService) Save(ctx context.Context, o model.NewOrder) (int64, error) {
	name := strings.TrimSpace(o.CustomerName)
	cpf := strings.TrimSpace(o.CustomerCPF)
	if name == "" || cpf == "" {
		return 0, fmt.Errorf("%w: customer name and cpf are required", ErrInvalidOrder)
	}
	if len(o.Items) == 0 {
		return 0, fmt.Errorf("%w: at least one item is required", ErrInvalidOrder)
	}

	now := database.ToMillis(time.Now())

	var orderID int64
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		customerID, err := findOrCreateCustomer(ctx, tx, name, cpf, now)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO orders (
				customer_id, customer_name, customer_cpf,
				subtotal, service_fee, total, include_service, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			customerID, name, cpf,
			o.Subtotal, o.ServiceFee, o.Total, o.IncludeService, now,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range o.Items {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, product_id, product_name, price, quantity)
				VALUES (?, ?, ?, ?, ?)`,
				orderID, item.ID, item.Name, item.Price, item.Quantity,
			)
			if err != nil {
				return fmt.Errorf("insert order item %s: %w", item.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

// List returns every order with its items, most recent first.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, customer_name, customer_cpf,
		       subtotal, service_fee, total, include_service, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	// orders rows are closed by now; sqlite runs on a single connection
	items, err := s.itemsByOrder(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

// ListByCustomer returns the orders placed under cpf, most recent first, without items.
func (s *OrderService) ListByCustomer(ctx context.Context, cpf string) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, customer_name, customer_cpf,
		       subtotal, service_fee, total, include_service, created_at
		FROM orders
		WHERE customer_cpf = ?
		ORDER BY created_at DESC, id DESC
	`, strings.TrimSpace(cpf))
	if err != nil {
		return nil, fmt.Errorf("query orders by customer: %w", err)
	}
	return scanOrders(rows)
}

func (s *OrderService) itemsByOrder(ctx context.Context) (map[int64][]model.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, price, quantity
		FROM order_items
		ORDER BY order_id, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]model.OrderItem)
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[it.OrderID] = append(items[it.OrderID], it)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return items, nil
}

func scanOrders(rows *sql.Rows) ([]model.Order, error) {
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var (
			o          model.Order
			customerID *int64
			createdAt  int64
		)
		if err := rows.Scan(
			&o.ID, &customerID, &o.CustomerName, &o.CustomerCPF,
			&o.Subtotal, &o.ServiceFee, &o.Total, &o.IncludeService, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if customerID != nil {
			o.CustomerID = *customerID
		}
		o.CreatedAt = database.FromMillis(createdAt)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}
