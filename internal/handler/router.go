package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cafecalmo/internal/mw"
	"cafecalmo/internal/service"
)

type Services struct {
	Staff      *service.StaffService
	Orders     *service.OrderService
	Customers  *service.CustomerService
	Statistics *service.StatisticsService
}

func NewRouter(svc Services, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/api/staff/register", RegisterHandler(svc.Staff, jwtSecret))
	r.Post("/api/staff/login", LoginHandler(svc.Staff, jwtSecret))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(jwtSecret))

		r.Post("/api/orders", CheckoutHandler(svc.Orders))
		r.Get("/api/orders", ListOrdersHandler(svc.Orders))

		r.Get("/api/customers", ListCustomersHandler(svc.Customers))
		r.Get("/api/customers/{cpf}/orders", ListCustomerOrdersHandler(svc.Orders))

		r.Get("/api/statistics", StatisticsHandler(svc.Statistics))
	})

	return r
}
