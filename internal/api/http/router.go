package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"
)

// NewRouter wires all API routes under /api/v1. Every route except login,
// register, refresh and the health check requires a valid access token.
func NewRouter(
	authSvc service.AuthService,
	vehicleSvc service.VehicleService,
	customerSvc service.CustomerService,
	rentalSvc service.RentalService,
	tokenMgr security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Register stays open: the first admin account has to come from
	// somewhere before any token can be issued.
	authHandler := NewAuthHandler(authSvc)
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokenMgr))

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/auth/password", authHandler.ChangePassword).Methods("PUT")

	vehicleHandler := NewVehicleHandler(vehicleSvc, rentalSvc)
	protected.HandleFunc("/vehicles", vehicleHandler.Create).Methods("POST")
	protected.HandleFunc("/vehicles", vehicleHandler.List).Methods("GET")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods("GET")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Update).Methods("PUT")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/vehicles/{id}/availability", vehicleHandler.CheckAvailability).Methods("GET")

	customerHandler := NewCustomerHandler(customerSvc)
	protected.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	protected.HandleFunc("/customers", customerHandler.List).Methods("GET")
	protected.HandleFunc("/customers/{id}", customerHandler.Get).Methods("GET")
	protected.HandleFunc("/customers/{id}", customerHandler.Update).Methods("PUT")
	protected.HandleFunc("/customers/{id}", customerHandler.Delete).Methods("DELETE")

	rentalHandler := NewRentalHandler(rentalSvc)
	protected.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods("POST")
	protected.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	protected.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	protected.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods("GET")
	protected.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods("PUT")
	protected.HandleFunc("/rentals/{id}", rentalHandler.Cancel).Methods("DELETE")

	return router
}
