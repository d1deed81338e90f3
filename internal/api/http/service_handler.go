package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/service"
)

// ServiceHandler serves the shipping service catalog
type ServiceHandler struct {
	catalog service.CatalogService
}

func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, _ := CallerFrom(r.Context())
	// Non-admin callers only see bookable services.
	if caller != nil && caller.Role == domain.UserRoleAdmin {
		list, err := h.catalog.ListServices(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	list, err := h.catalog.ListActiveServices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.GetService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	svc, err := h.catalog.AddService(r.Context(), caller.UID, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	svc, err := h.catalog.UpdateService(r.Context(), caller.UID, mux.Vars(r)["id"], fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
		return
	}

	svc, err := h.catalog.ToggleActive(r.Context(), caller.UID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}
