package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/service"
)

type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok || caller.UserType != domain.UserTypeCustomer {
		writeError(w, service.ErrForbidden)
		return
	}
	var in service.CreateRequestInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	rr, err := h.requestSvc.CreateRequest(r.Context(), caller.AccountID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rr)
}

// List is role-scoped: customers see their own requests, providers see
// requests against their equipment.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	var (
		items []domain.RentalRequest
		err   error
	)
	if caller.UserType == domain.UserTypeProvider {
		items, err = h.requestSvc.ListForProvider(r.Context(), caller.AccountID)
	} else {
		items, err = h.requestSvc.ListForCustomer(r.Context(), caller.AccountID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	rr, err := h.requestSvc.GetRequest(r.Context(), caller.AccountID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rr)
}

func (h *RequestHandler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]
	caller, ok := IdentityFromContext(r.Context())
	if !ok || caller.AccountID != providerID {
		writeError(w, service.ErrForbidden)
		return
	}
	items, err := h.requestSvc.ListForProvider(r.Context(), providerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type decisionRequest struct {
	Status          domain.RequestStatus `json:"status"`
	ResponseMessage string               `json:"responseMessage"`
}

func (h *RequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok || caller.UserType != domain.UserTypeProvider {
		writeError(w, service.ErrForbidden)
		return
	}
	var in decisionRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.requestSvc.Decide(r.Context(), caller.AccountID, mux.Vars(r)["id"], in.Status, in.ResponseMessage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"request":          result.Request,
		"equipmentUpdated": result.EquipmentSynced,
	})
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	if err := h.requestSvc.DeleteRequest(r.Context(), caller.AccountID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request deleted successfully"})
}
