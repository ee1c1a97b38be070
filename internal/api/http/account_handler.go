package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"agrirent-backend/internal/service"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (h *AccountHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.accountSvc.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *AccountHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	caller, ok := IdentityFromContext(r.Context())
	if !ok || caller.AccountID != id {
		writeError(w, service.ErrForbidden)
		return
	}
	var upd service.AccountUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	customer, err := h.accountSvc.UpdateCustomer(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	// Updates answer with a success envelope; plain GETs return the bare
	// profile object.
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": customer})
}

// GetProvider returns the public profile; contact details stay private to
// the provider themselves.
func (h *AccountHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	provider, err := h.accountSvc.GetProvider(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if caller, ok := IdentityFromContext(r.Context()); ok && caller.AccountID == id {
		writeJSON(w, http.StatusOK, provider)
		return
	}
	writeJSON(w, http.StatusOK, provider.PublicProfile())
}

func (h *AccountHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	caller, ok := IdentityFromContext(r.Context())
	if !ok || caller.AccountID != id {
		writeError(w, service.ErrForbidden)
		return
	}
	var upd service.AccountUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	provider, err := h.accountSvc.UpdateProvider(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": provider})
}
