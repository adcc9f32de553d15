package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Admin   *AdminHandler
	Section *SectionHandler
	Idea    *IdeaHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route table. Authentication runs in middleware
// before the router; authorization happens in the services.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/admin/users", h.Admin.ListUsers)
	mux.HandleFunc("PATCH /api/admin/users/{id}/role", h.Admin.SetRole)

	mux.HandleFunc("POST /api/section/admin", h.Section.Create)
	mux.HandleFunc("GET /api/section/admin", h.Section.AdminSearch)
	mux.HandleFunc("GET /api/section/user/search", h.Section.Search)
	mux.HandleFunc("POST /api/section/{id}/feedback", h.Section.AddFeedback)
	mux.HandleFunc("GET /api/section/{id}/feedback", h.Section.ListFeedback)
	mux.HandleFunc("POST /api/section/{id}/like", h.Section.Like)

	mux.HandleFunc("GET /api/ideas", h.Idea.List)
	mux.HandleFunc("POST /api/ideas", h.Idea.Create)
	mux.HandleFunc("POST /api/ideas/{id}/like", h.Idea.Like)
	mux.HandleFunc("GET /api/ideas/{id}/comments", h.Idea.ListComments)
	mux.HandleFunc("POST /api/ideas/{id}/comments", h.Idea.AddComment)

	return mux
}
