package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/internal/user/usecase/command"
	"github.com/tair/ims-admin/internal/user/usecase/query"
	"github.com/tair/ims-admin/pkg/logger"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	// Command handlers
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler
	deleteHandler *command.DeleteUserHandler
	resetHandler  *command.ResetPasswordHandler

	// Query handlers
	listHandler *query.ListUsersHandler
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	resetHandler *command.ResetPasswordHandler,
	listHandler *query.ListUsersHandler,
) *UserHandler {
	return &UserHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		resetHandler:  resetHandler,
		listHandler:   listHandler,
	}
}

// UserRequest is the body of POST and PUT /api/users
type UserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// ResetPasswordResponse is returned by the reset-password endpoint
type ResetPasswordResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{
		Search: params.Get("search"),
		Role:   params.Get("role"),
		Status: params.Get("status"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list users")
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	h.respondJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to create user")
		return
	}

	cmd := command.CreateUserCommand{}
	if req.Name != nil {
		cmd.Name = *req.Name
	}
	if req.Email != nil {
		cmd.Email = *req.Email
	}
	if req.Role != nil {
		cmd.Role = *req.Role
	}
	if req.Status != nil {
		cmd.Status = *req.Status
	}

	user, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create user")
		h.respondError(w, http.StatusBadRequest, "Failed to create user")
		return
	}

	h.respondJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to update user")
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to update user")
		return
	}

	user, err := h.updateHandler.Handle(r.Context(), command.UpdateUserCommand{
		ID:     uint(id),
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("user_id", id).Msg("Failed to update user")
		h.respondError(w, http.StatusBadRequest, "Failed to update user")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to delete user")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: uint(id)}); err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("user_id", id).Msg("Failed to delete user")
		h.respondError(w, http.StatusBadRequest, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResetPassword handles POST /api/users/{id}/reset-password
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to reset password")
		return
	}

	user, err := h.resetHandler.Handle(r.Context(), command.ResetPasswordCommand{UserID: uint(id)})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("user_id", id).Msg("Failed to reset password")
		h.respondError(w, http.StatusBadRequest, "Failed to reset password")
		return
	}

	h.respondJSON(w, http.StatusOK, ResetPasswordResponse{Message: "Password reset", User: user})
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.ListUsers).Methods("GET")
	router.HandleFunc("/users", h.CreateUser).Methods("POST")
	router.HandleFunc("/users/{id}", h.UpdateUser).Methods("PUT")
	router.HandleFunc("/users/{id}", h.DeleteUser).Methods("DELETE")
	router.HandleFunc("/users/{id}/reset-password", h.ResetPassword).Methods("POST")
}
