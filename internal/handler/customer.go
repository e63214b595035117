package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cafecalmo/internal/service"
)

func ListCustomersHandler(customerSvc *service.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := customerSvc.List(r.Context())
		if err != nil {
			slog.Error("list customers failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(customers) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

func ListCustomerOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cpf := normalizeCPF(chi.URLParam(r, "cpf"))
		if !validateCPF(cpf) {
			http.Error(w, "invalid cpf", http.StatusUnprocessableEntity)
			return
		}

		orders, err := orderSvc.ListByCustomer(r.Context(), cpf)
		if err != nil {
			slog.Error("list customer orders failed", "error", err)
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
