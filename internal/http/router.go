// Package http wires the route table: JSON API under /api, the scrape
// and health endpoints, and the embedded page shells.
package http

import (
	"net/http"
	"time"

	"caderneta-backend/internal/handlers"
	"caderneta-backend/internal/metrics"
	"caderneta-backend/internal/middleware"
	"caderneta-backend/static"

	"github.com/gorilla/mux"
)

// NewRouter builds the fully configured route table.
func NewRouter(
	authHandler *handlers.AuthHandler,
	sessionHandler *handlers.SessionHandler,
	personHandler *handlers.PersonHandler,
	purchaseHandler *handlers.PurchaseHandler,
	cepHandler *handlers.CEPHandler,
	healthHandler *handlers.HealthHandler,
	configHandler *handlers.ConfigHandler,
	pageHandler *handlers.PageHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Metrics)
	r.Use(middleware.GzipCompression)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/config", configHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/cep/{cep}", cepHandler.Lookup).Methods(http.MethodGet)

	// Credential endpoints get a brute-force limiter.
	loginLimiter := middleware.NewRateLimiter(20, time.Minute)
	api.Handle("/auth/signup", loginLimiter.Limit(http.HandlerFunc(authHandler.SignUp))).Methods(http.MethodPost)
	api.Handle("/auth/signin", loginLimiter.Limit(http.HandlerFunc(authHandler.SignIn))).Methods(http.MethodPost)

	// Everything below requires a live session.
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware.RequireAuth)
	protected.HandleFunc("/auth/signout", authHandler.SignOut).Methods(http.MethodPost)
	protected.HandleFunc("/auth/session", authHandler.Session).Methods(http.MethodGet)
	protected.HandleFunc("/auth/events", sessionHandler.Events).Methods(http.MethodGet)

	protected.HandleFunc("/persons", personHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/persons", personHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/persons/{id}", personHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/persons/{id}", personHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/persons/{id}", personHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/persons/{id}/purchases", purchaseHandler.ListByPerson).Methods(http.MethodGet)
	protected.HandleFunc("/persons/{id}/purchases", purchaseHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/persons/{id}/purchases/{purchase_id}", purchaseHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/persons/{id}/purchases/{purchase_id}", purchaseHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	r.HandleFunc("/login", pageHandler.Login).Methods(http.MethodGet)
	r.HandleFunc("/adicionar-irmao", pageHandler.NewPerson).Methods(http.MethodGet)
	r.HandleFunc("/irmao/{id}", pageHandler.PersonDetail).Methods(http.MethodGet)
	r.HandleFunc("/", pageHandler.Persons).Methods(http.MethodGet)

	return r
}

// NewUnconfiguredRouter serves the degraded mode used when the store
// credentials are missing: pages still load, /api/config explains the
// problem and every other API call answers 503.
func NewUnconfiguredRouter(configHandler *handlers.ConfigHandler, pageHandler *handlers.PageHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SecurityHeaders)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/config", configHandler.Get).Methods(http.MethodGet)
	api.PathPrefix("/").HandlerFunc(handlers.Unavailable)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	r.HandleFunc("/login", pageHandler.Login).Methods(http.MethodGet)
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/login", http.StatusFound)
	})

	return r
}
