// Package http exposes the admin and customer API over REST. Routes are
// guarded by per-endpoint security levels backed by ID-token verification.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"naturexpress-cargo-backend/internal/service"
)

// Handlers bundles the route handlers mounted by NewRouter
type Handlers struct {
	Auth      *AuthHandler
	Services  *ServiceHandler
	Requests  *RequestHandler
	Enquiries *EnquiryHandler
}

func NewHandlers(accounts service.AccountService, catalog service.CatalogService, requests service.RequestService, enquiries service.EnquiryService) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(accounts),
		Services:  NewServiceHandler(catalog),
		Requests:  NewRequestHandler(requests, catalog),
		Enquiries: NewEnquiryHandler(enquiries),
	}
}

// NewRouter mounts all routes under /v1 with their security guards
func NewRouter(h *Handlers, guard *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()
	v1 := router.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/healthz", guard.Guard("health.check", healthCheck)).Methods(http.MethodGet)

	v1.HandleFunc("/login", guard.Guard("auth.login", h.Auth.Login)).Methods(http.MethodPost)
	v1.HandleFunc("/password-reset", guard.Guard("auth.password_reset", h.Auth.PasswordReset)).Methods(http.MethodPost)
	v1.HandleFunc("/profile", guard.Guard("account.profile", h.Auth.Profile)).Methods(http.MethodGet)

	v1.HandleFunc("/services", guard.Guard("services.list", h.Services.List)).Methods(http.MethodGet)
	v1.HandleFunc("/services", guard.Guard("services.create", h.Services.Create)).Methods(http.MethodPost)
	v1.HandleFunc("/services/{id}", guard.Guard("services.get", h.Services.Get)).Methods(http.MethodGet)
	v1.HandleFunc("/services/{id}", guard.Guard("services.update", h.Services.Update)).Methods(http.MethodPut)
	v1.HandleFunc("/services/{id}/toggle", guard.Guard("services.toggle", h.Services.Toggle)).Methods(http.MethodPost)

	v1.HandleFunc("/requests", guard.Guard("requests.list", h.Requests.List)).Methods(http.MethodGet)
	v1.HandleFunc("/requests", guard.Guard("requests.create", h.Requests.Create)).Methods(http.MethodPost)
	v1.HandleFunc("/requests/mine", guard.Guard("requests.mine", h.Requests.ListMine)).Methods(http.MethodGet)
	v1.HandleFunc("/requests/{id}", guard.Guard("requests.get", h.Requests.Get)).Methods(http.MethodGet)
	v1.HandleFunc("/requests/{id}/status", guard.Guard("requests.status", h.Requests.UpdateStatus)).Methods(http.MethodPut)
	v1.HandleFunc("/requests/{id}", guard.Guard("requests.delete", h.Requests.Delete)).Methods(http.MethodDelete)

	v1.HandleFunc("/enquiries", guard.Guard("enquiries.list", h.Enquiries.List)).Methods(http.MethodGet)
	v1.HandleFunc("/enquiries", guard.Guard("enquiries.create", h.Enquiries.Create)).Methods(http.MethodPost)

	return router
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
