package http

import (
	"net/http"

	"naturexpress-cargo-backend/internal/service"
)

// EnquiryHandler serves contact enquiries
type EnquiryHandler struct {
	enquiries service.EnquiryService
}

func NewEnquiryHandler(enquiries service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.enquiries.ListEnquiries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Anonymous submissions carry no user id.
	var uid string
	if caller, ok := CallerFrom(r.Context()); ok {
		uid = caller.UID
	}

	enq, err := h.enquiries.SubmitEnquiry(r.Context(), uid, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, enq)
}
