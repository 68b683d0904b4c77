package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/ims-admin/internal/dashboard/usecase/query"
	"github.com/tair/ims-admin/pkg/logger"
)

// DashboardHandler serves the aggregate and bundle endpoints
type DashboardHandler struct {
	overviewHandler *query.GetOverviewHandler
	bundleHandler   *query.GetBundleHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(overviewHandler *query.GetOverviewHandler, bundleHandler *query.GetBundleHandler) *DashboardHandler {
	return &DashboardHandler{
		overviewHandler: overviewHandler,
		bundleHandler:   bundleHandler,
	}
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

// Health handles GET /api/health
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Data handles GET /api/data
func (h *DashboardHandler) Data(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bundleHandler.Data(r.Context()))
}

// Login handles POST /api/login. A missing or unreadable body is treated
// as a login without an email.
func (h *DashboardHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Debug(r.Context()).Err(err).Msg("Ignoring unreadable login body")
			req = LoginRequest{}
		}
	}

	respondJSON(w, http.StatusOK, h.bundleHandler.Login(r.Context(), req.Email))
}

// Overview handles GET /api/dashboard/overview
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.overviewHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute overview")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch overview"})
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// RegisterRoutes registers all dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/data", h.Data).Methods("GET")
	router.HandleFunc("/login", h.Login).Methods("POST")
	router.HandleFunc("/dashboard/overview", h.Overview).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
