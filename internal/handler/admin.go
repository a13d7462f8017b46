package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"loadup-backend/internal/apperror"
	"loadup-backend/internal/inquiry"
	"loadup-backend/internal/settings"
)

// Bounds enforced on the logo size at the editing boundary.
const (
	logoSizeMin = 32
	logoSizeMax = 120
)

// sessionCookie marks the operator's browser after a successful login.
const sessionCookie = "loadup_admin"

// Credentials is the admin login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login checks the submitted credentials. The failure message never says
// which half was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(creds); err != nil {
		writeJSON(w, http.StatusBadRequest, apperror.CustomValidationError(err))
		return
	}

	if !h.verifier.Verify(creds.Email, creds.Password) {
		h.log.Warn("admin login rejected")
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := h.session.LogIn(); err != nil {
		h.log.Error("failed to persist admin flag", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "1",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.log.Info("admin logged in")
	writeJSON(w, http.StatusOK, map[string]string{"status": "Ok"})
}

// Logout clears the persisted flag and the cookie.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	if err := h.session.LogOut(); err != nil {
		h.log.Error("failed to clear admin flag", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "Ok"})
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(sessionCookie); err != nil || !h.session.IsAdmin() {
			writeError(w, http.StatusUnauthorized, "admin login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListInquiries returns the inquiry list after applying the status and search
// projection.
func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = inquiry.FilterAll
	}
	if status != inquiry.FilterAll && !inquiry.Status(status).Valid() {
		writeError(w, http.StatusBadRequest, "unknown status filter")
		return
	}

	items := inquiry.Filter(h.inquiries.List(), status, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"inquiries": items,
		"total":     len(items),
	})
}

// GetInquiry returns one inquiry by id.
func (h *Handler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	inq, ok := h.inquiries.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, inq)
}

type statusRequest struct {
	Status inquiry.Status `json:"status"`
}

// UpdateInquiryStatus moves an inquiry forward in its workflow. Backward or
// repeated transitions are refused.
func (h *Handler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	id := chi.URLParam(r, "id")
	inq, ok := h.inquiries.FindByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}
	if !inquiry.CanTransition(inq.Status, req.Status) {
		writeError(w, http.StatusUnprocessableEntity, "invalid status transition")
		return
	}

	if _, err := h.inquiries.UpdateStatus(id, req.Status); err != nil {
		h.log.Error("failed to update status", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	h.log.Info("inquiry status updated",
		zap.String("id", id),
		zap.String("from", string(inq.Status)),
		zap.String("to", string(req.Status)))
	writeJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": string(req.Status),
	})
}

// DeleteInquiry hard-deletes an inquiry. Deleting an unknown id succeeds.
func (h *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.inquiries.Remove(id); err != nil {
		h.log.Error("failed to delete inquiry", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete inquiry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminSettings returns the full settings record.
func (h *Handler) AdminSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Get())
}

// UpdateSettings merges a partial settings update. The logo size is clamped
// here, at the editing boundary, not in the repository.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch settings.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if patch.LogoSize != nil {
		clamped := clamp(*patch.LogoSize, logoSizeMin, logoSizeMax)
		patch.LogoSize = &clamped
	}

	updated, err := h.settings.Update(patch)
	if err != nil {
		h.log.Error("failed to update settings", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update settings")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
