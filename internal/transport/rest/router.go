package rest

import (
	"advisoryboard/internal/config"
	"advisoryboard/internal/service"
	"advisoryboard/internal/transport/rest/handler"
	"advisoryboard/internal/transport/rest/middleware"
	"advisoryboard/internal/transport/ws"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	Config            *config.Config
	AuthService       *service.AuthService
	EvaluationService *service.EvaluationService
	WSHub             *ws.Hub
	Logger            *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.Logger)
	evalHandler := handler.NewEvaluationHandler(c.EvaluationService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService, c.Logger)

	// Logging wraps CORS so preflight requests are logged too
	r.Use(middleware.Logging(c.Logger))
	r.Use(middleware.CORS(c.Config.CORS))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET", "OPTIONS")

	if c.Config.LegacyAsk {
		r.HandleFunc("/ask", evalHandler.Ask).Methods("POST", "OPTIONS")
	}

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/personas", evalHandler.Personas).Methods("GET", "OPTIONS")

	// WebSocket route (public with token in query param)
	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)
		v1.HandleFunc("/ws", wsHandler.UserWS).Methods("GET", "OPTIONS")
	}

	// User routes (require bearer token)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/evaluations", evalHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/evaluations", evalHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/evaluations/{id}", evalHandler.Get).Methods("GET", "OPTIONS")

	return r
}
