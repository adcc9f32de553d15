package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// userService defines the minimal interface needed by AdminHandler.
type userService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// AdminHandler serves admin user management endpoints.
type AdminHandler struct {
	users userService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{users: users, log: logger.With("handler", "admin")}
}

type usersResponse struct {
	Users []userResponse `json:"users"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := usersResponse{Users: make([]userResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SetRole handles PATCH /api/admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.SetUserRole(r.Context(), userID, domain.UserRole(req.Role))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}
