package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cafecalmo/internal/model"
	"cafecalmo/internal/service"
)

type checkoutRequest struct {
	CustomerName   string           `json:"customer_name"`
	CustomerCPF    string           `json:"customer_cpf"`
	IncludeService bool             `json:"include_service"`
	Items          []model.CartItem `json:"items"`
}

type checkoutResponse struct {
	ID int64 `json:"id"`
	model.Totals
}

const maxCheckoutBody = 1 << 20

// CheckoutHandler confirms an order: it derives subtotal, service fee and total
// from the cart and persists the result. Repeated submissions create separate orders.
func CheckoutHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCheckoutBody)).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cpf := normalizeCPF(req.CustomerCPF)
		if err := validateCheckout(req, cpf); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		totals := model.CalculateTotals(req.Items, req.IncludeService)
		id, err := orderSvc.Save(r.Context(), model.NewOrder{
			CustomerName:   strings.TrimSpace(req.CustomerName),
			CustomerCPF:    cpf,
			Subtotal:       totals.Subtotal,
			ServiceFee:     totals.ServiceFee,
			Total:          totals.Total,
			IncludeService: req.IncludeService,
			Items:          req.Items,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidOrder):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, service.ErrCustomerConflict):
				http.Error(w, "customer was created concurrently, try again", http.StatusConflict)
			default:
				slog.Error("order save failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		slog.Info("order saved", "order_id", id, "items", len(req.Items), "total", totals.Total)
		writeJSON(w, http.StatusCreated, checkoutResponse{ID: id, Totals: totals})
	}
}

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := orderSvc.List(r.Context())
		if err != nil {
			slog.Error("list orders failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

func validateCheckout(req checkoutRequest, cpf string) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return errors.New("customer name is required")
	}
	if !validateCPF(cpf) {
		return errors.New("invalid cpf")
	}
	if len(req.Items) == 0 {
		return errors.New("order has no items")
	}

	seen := make(map[string]struct{}, len(req.Items))
	for _, item := range req.Items {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
			return errors.New("item id and name are required")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("invalid quantity for item %s", item.ID)
		}
		if item.Price < 0 {
			return fmt.Errorf("invalid price for item %s", item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("duplicate item %s", item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

func normalizeCPF(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validateCPF expects a normalized cpf: 11 digits, not all the same.
func validateCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	return strings.Count(cpf, cpf[:1]) != len(cpf)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}
