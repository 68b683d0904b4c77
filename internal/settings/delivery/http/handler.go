package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/ims-admin/internal/settings/usecase/command"
	"github.com/tair/ims-admin/internal/settings/usecase/query"
	"github.com/tair/ims-admin/pkg/logger"
)

// maxLogoSize bounds the multipart body kept in memory
const maxLogoSize = 10 << 20

// SettingsHandler handles HTTP requests for the settings singleton
type SettingsHandler struct {
	getHandler    *query.GetSettingsHandler
	updateHandler *command.UpdateSettingsHandler
	logoHandler   *command.StoreLogoHandler
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(
	getHandler *query.GetSettingsHandler,
	updateHandler *command.UpdateSettingsHandler,
	logoHandler *command.StoreLogoHandler,
) *SettingsHandler {
	return &SettingsHandler{
		getHandler:    getHandler,
		updateHandler: updateHandler,
		logoHandler:   logoHandler,
	}
}

// SettingsRequest is the body of PUT /api/settings
type SettingsRequest struct {
	CompanyName              *string `json:"company_name"`
	Currency                 *string `json:"currency"`
	Timezone                 *string `json:"timezone"`
	DefaultLowStockThreshold *int    `json:"default_low_stock_threshold"`
}

// GetSettings handles GET /api/settings. The body is null when no row exists.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.getHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get settings")
		respondError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to update settings")
		return
	}

	settings, err := h.updateHandler.Handle(r.Context(), command.UpdateSettingsCommand{
		CompanyName:              req.CompanyName,
		Currency:                 req.Currency,
		Timezone:                 req.Timezone,
		DefaultLowStockThreshold: req.DefaultLowStockThreshold,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to update settings")
		respondError(w, http.StatusBadRequest, "Failed to update settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// UploadLogo handles POST /api/settings/logo (multipart field "logo")
func (h *SettingsHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		respondError(w, http.StatusBadRequest, "Logo file is required")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Logo file is required")
		return
	}
	defer file.Close()

	stored, err := h.logoHandler.Handle(r.Context(), command.StoreLogoCommand{
		OriginalName: header.Filename,
		Content:      file,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to store logo")
		respondError(w, http.StatusBadRequest, "Failed to upload logo")
		return
	}

	respondJSON(w, http.StatusOK, stored)
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/settings", h.GetSettings).Methods("GET")
	router.HandleFunc("/settings", h.UpdateSettings).Methods("PUT")
	router.HandleFunc("/settings/logo", h.UploadLogo).Methods("POST")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
