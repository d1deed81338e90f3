package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/service"
)

// RequestHandler serves the service request lifecycle
type RequestHandler struct {
	requests service.RequestService
	catalog  service.CatalogService
}

func NewRequestHandler(requests service.RequestService, catalog service.CatalogService) *RequestHandler {
	return &RequestHandler{requests: requests, catalog: catalog}
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.requests.ListRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
		return
	}

	list, err := h.requests.ListMyRequests(r.Context(), caller.UID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.GetRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	if fields["serviceId"] == "" {
		writeError(w, &forms.FieldError{Field: "serviceId", Message: "Service is required"})
		return
	}

	// The booked service travels with the form; its name and rate are
	// snapshotted into the request.
	svc, err := h.catalog.GetService(r.Context(), fields["serviceId"])
	if err != nil {
		writeError(w, err)
		return
	}
	delete(fields, "serviceId")

	req, err := h.requests.CreateRequest(r.Context(), caller.UID, svc, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requests.UpdateStatus(r.Context(), mux.Vars(r)["id"], domain.RequestStatus(fields["status"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.requests.DeleteRequest(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
