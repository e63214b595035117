package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafecalmo/internal/database"
	"cafecalmo/internal/model"
)

type CustomerService struct {
	db *database.DB
}

func NewCustomerService(db *database.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns all customers with their order count and amount spent, biggest spenders first.
func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.cpf, c.created_at,
		       COUNT(o.id) AS total_orders,
		       COALESCE(SUM(o.total), 0) AS total_spent
		FROM customers c
		LEFT JOIN orders o ON c.id = o.customer_id
		GROUP BY c.id, c.name, c.cpf, c.created_at
		ORDER BY total_spent DESC, c.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Name, &c.CPF, &createdAt, &c.TotalOrders, &c.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.CreatedAt = database.FromMillis(createdAt)
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return customers, nil
}

// findOrCreateCustomer is a read-then-write. It is not guarded against another
// writer inserting the same new cpf between the two statements; that surfaces
// as ErrCustomerConflict.
func findOrCreateCustomer(ctx context.Context, q database.Querier, name, cpf string, now int64) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `SELECT id FROM customers WHERE cpf = ?`, cpf).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("find customer: %w", err)
	}

	err = q.QueryRowContext(ctx,
		`INSERT INTO customers (name, cpf, created_at) VALUES (?, ?, ?) RETURNING id`,
		name, cpf, now,
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrCustomerConflict, cpf)
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	return id, nil
}
