package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"agrirent-backend/internal/config"
	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/security"
	"agrirent-backend/internal/service"
)

// NewRouter wires every API route under the /api prefix.
func NewRouter(
	cfg *config.Config,
	tokens security.TokenManager,
	authSvc service.AuthService,
	accountSvc service.AccountService,
	equipmentSvc service.EquipmentService,
	requestSvc service.RequestService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	accountHandler := NewAccountHandler(accountSvc)
	equipmentHandler := NewEquipmentHandler(equipmentSvc)
	requestHandler := NewRequestHandler(requestSvc)

	router := mux.NewRouter()
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Authentication
	api.HandleFunc("/auth/user/signup", authHandler.SignupCustomer).Methods("POST")
	api.HandleFunc("/auth/user/signin", authHandler.SigninCustomer).Methods("POST")
	api.HandleFunc("/auth/user/activate/{token}", authHandler.Activate(domain.UserTypeCustomer)).Methods("GET")
	api.HandleFunc("/auth/provider/signup", authHandler.SignupProvider).Methods("POST")
	api.HandleFunc("/auth/provider/signin", authHandler.SigninProvider).Methods("POST")
	api.HandleFunc("/auth/provider/activate/{token}", authHandler.Activate(domain.UserTypeProvider)).Methods("GET")
	api.HandleFunc("/auth/password/forgot", authHandler.ForgotPassword).Methods("POST")
	api.HandleFunc("/auth/password/reset", authHandler.ResetPassword).Methods("POST")
	api.HandleFunc("/auth/verify-password", authHandler.VerifyPassword).Methods("POST")

	// Profiles
	api.HandleFunc("/users/{id}", accountHandler.GetCustomer).Methods("GET")
	api.HandleFunc("/users/{id}", accountHandler.UpdateCustomer).Methods("PATCH")
	api.HandleFunc("/providers/{id}", accountHandler.GetProvider).Methods("GET")
	api.HandleFunc("/providers/{id}", accountHandler.UpdateProvider).Methods("PATCH")

	// Equipment catalog
	api.HandleFunc("/equipments", equipmentHandler.List).Methods("GET")
	api.HandleFunc("/equipments", equipmentHandler.Create).Methods("POST")
	api.HandleFunc("/equipments/{id}", equipmentHandler.Get).Methods("GET")
	api.HandleFunc("/equipments/{id}", equipmentHandler.Update).Methods("PATCH")
	api.HandleFunc("/equipments/{id}", equipmentHandler.Replace).Methods("PUT")
	api.HandleFunc("/equipments/{id}", equipmentHandler.Delete).Methods("DELETE")
	api.HandleFunc("/providers/{providerId}/equipment", equipmentHandler.ListByProvider).Methods("GET")

	// Rental requests
	api.HandleFunc("/requests", requestHandler.List).Methods("GET")
	api.HandleFunc("/requests", requestHandler.Create).Methods("POST")
	api.HandleFunc("/requests/{id}", requestHandler.Get).Methods("GET")
	api.HandleFunc("/requests/{id}", requestHandler.Delete).Methods("DELETE")
	api.HandleFunc("/requests/{id}/status", requestHandler.Decide).Methods("PATCH")
	api.HandleFunc("/providers/{providerId}/requests", requestHandler.ListByProvider).Methods("GET")

	return router
}
