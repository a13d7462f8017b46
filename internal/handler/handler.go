// Package handler contains the HTTP handlers for the lead-intake API.
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"loadup-backend/internal/apperror"
	"loadup-backend/internal/auth"
	"loadup-backend/internal/flow"
	"loadup-backend/internal/inquiry"
	"loadup-backend/internal/model"
	"loadup-backend/internal/settings"
)

// EmailValidator validates email addresses against the simple
// local@domain.tld shape the contact form accepts.
var EmailValidator = func(fl validator.FieldLevel) bool {
	return model.ValidEmail(fl.Field().String())
}

// Handler wraps the HTTP surface with its collaborators.
type Handler struct {
	log       *zap.Logger
	validate  *validator.Validate
	inquiries *inquiry.Repository
	settings  *settings.Repository
	session   *auth.Session
	verifier  auth.Verifier
	maxUpload int64
}

// New creates a new Handler instance.
func New(log *zap.Logger, inq *inquiry.Repository, set *settings.Repository,
	ses *auth.Session, ver auth.Verifier, v *validator.Validate, maxUpload int64) *Handler {
	return &Handler{
		log:       log,
		validate:  v,
		inquiries: inq,
		settings:  set,
		session:   ses,
		verifier:  ver,
		maxUpload: maxUpload,
	}
}

// Routes wires all public and admin endpoints.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.Healthz)
	r.Get("/api/flows/{service}", h.FlowInfo)
	r.Post("/api/uploads", h.UploadImages)
	r.Post("/api/inquiries", h.SubmitInquiry)
	r.Get("/api/settings", h.PublicSettings)
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/logout", h.Logout)
			r.Get("/inquiries", h.ListInquiries)
			r.Get("/inquiries/{id}", h.GetInquiry)
			r.Patch("/inquiries/{id}/status", h.UpdateInquiryStatus)
			r.Delete("/inquiries/{id}", h.DeleteInquiry)
			r.Get("/settings", h.AdminSettings)
			r.Patch("/settings", h.UpdateSettings)
		})
	})
	return r
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// FlowInfo describes one questionnaire flow: its step sequence and the bucket
// labels its screens offer.
func (h *Handler) FlowInfo(w http.ResponseWriter, r *http.Request) {
	service := model.ServiceType(chi.URLParam(r, "service"))
	if !service.Valid() {
		writeError(w, http.StatusNotFound, "unknown service")
		return
	}

	resp := map[string]any{
		"serviceType": service,
		"totalSteps":  flow.TotalSteps(service),
		"steps":       flow.Steps(service),
	}
	switch service {
	case model.ServiceUmzug:
		resp["options"] = map[string]any{
			"floors":      flow.FloorOptions,
			"livingSpace": flow.LivingSpaceOptions,
			"rooms":       flow.RoomOptions,
		}
	case model.ServiceEntsorgung:
		resp["options"] = map[string]any{
			"floors":       flow.FloorOptions,
			"wasteAmounts": flow.WasteAmountOptions,
		}
	case model.ServiceTransport:
		resp["options"] = map[string]any{
			"floors": flow.FloorOptions,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// UploadImages accepts a multipart image batch, applies the ten-slot
// truncation policy against the count already attached and returns the
// encoded data URLs in selection order.
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		h.log.Warn("failed to parse upload form", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid upload request")
		return
	}

	current := 0
	if raw := r.FormValue("count"); raw != "" {
		n, err := parseCount(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image count")
			return
		}
		current = n
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no images in request")
		return
	}

	accept, err := flow.AcceptCount(current, len(files))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	blobs := make([][]byte, 0, accept)
	for _, fh := range files[:accept] {
		f, err := fh.Open()
		if err != nil {
			h.log.Error("failed to open uploaded file", zap.String("name", fh.Filename), zap.Error(err))
			writeError(w, http.StatusBadRequest, "unreadable image file")
			return
		}
		blob, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable image file")
			return
		}
		blobs = append(blobs, blob)
	}

	encoded, err := flow.EncodeBatch(r.Context(), blobs)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"images":   encoded,
		"accepted": accept,
	})
}

// SubmitInquiry validates a completed questionnaire form and persists it as a
// new inquiry.
func (h *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var form model.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.log.Error("failed to decode json", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.validate.Struct(form); err != nil {
		h.log.Warn("validation failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, apperror.CustomValidationError(err))
		return
	}

	if err := flow.ValidateForm(&form); err != nil {
		h.log.Warn("form rejected", zap.String("service", string(form.Service)), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	inq, err := h.inquiries.Add(form)
	if err != nil {
		h.log.Error("failed to store inquiry", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store inquiry")
		return
	}

	h.log.Info("inquiry submitted",
		zap.String("id", inq.ID),
		zap.String("service", string(form.Service)))
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":     inq.ID,
		"status": string(inq.Status),
	})
}

// PublicSettings exposes the settings the public site chrome needs.
func (h *Handler) PublicSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Get())
}
