package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

func (h *AuthHandler) SignupCustomer(w http.ResponseWriter, r *http.Request) {
	var in service.SignupInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	customer, err := h.authSvc.SignupCustomer(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *AuthHandler) SignupProvider(w http.ResponseWriter, r *http.Request) {
	var in service.SignupInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	provider, err := h.authSvc.SignupProvider(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, provider)
}

func (h *AuthHandler) SigninCustomer(w http.ResponseWriter, r *http.Request) {
	var in signinRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	token, customer, err := h.authSvc.SigninCustomer(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, signinResponse{Token: token, User: customer})
}

func (h *AuthHandler) SigninProvider(w http.ResponseWriter, r *http.Request) {
	var in signinRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	token, provider, err := h.authSvc.SigninProvider(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, signinResponse{Token: token, User: provider})
}

// Activate serves both role-scoped activation routes; the role in the path
// must agree with the role baked into the token.
func (h *AuthHandler) Activate(expected domain.UserType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mux.Vars(r)["token"]
		userType, name, err := h.authSvc.Activate(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}
		if userType != expected {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Account activated successfully",
			"name":     name,
			"userType": userType,
		})
	}
}

type forgotPasswordRequest struct {
	Email    string          `json:"email"`
	UserType domain.UserType `json:"userType"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in forgotPasswordRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := h.authSvc.ForgotPassword(r.Context(), in.Email, in.UserType); err != nil {
		writeError(w, err)
		return
	}
	// Same response whether or not the account exists.
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "If an account with this email exists, a reset link has been sent",
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	userType, err := h.authSvc.ResetPassword(r.Context(), in.Token, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Password reset successfully",
		"userType": userType,
	})
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrForbidden)
		return
	}
	var in verifyPasswordRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	valid, err := h.authSvc.VerifyPassword(r.Context(), id.UserType, id.AccountID, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	// The profile page reads both flags before allowing an edit.
	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "isValid": valid})
}
