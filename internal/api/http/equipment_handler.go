package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/service"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipmentSvc.ListEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	eq, err := h.equipmentSvc.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok || caller.UserType != domain.UserTypeProvider {
		writeError(w, service.ErrForbidden)
		return
	}
	var in service.EquipmentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipmentSvc.CreateEquipment(r.Context(), caller.AccountID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	var upd domain.EquipmentUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipmentSvc.UpdateEquipment(r.Context(), caller.AccountID, mux.Vars(r)["id"], upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	var in service.EquipmentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipmentSvc.ReplaceEquipment(r.Context(), caller.AccountID, mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	if err := h.equipmentSvc.DeleteEquipment(r.Context(), caller.AccountID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Equipment deleted successfully"})
}

func (h *EquipmentHandler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipmentSvc.ListProviderEquipment(r.Context(), mux.Vars(r)["providerId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
