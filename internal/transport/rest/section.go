package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/internal/service/section"
)

// sectionService defines the minimal interface needed by SectionHandler.
type sectionService interface {
	Create(ctx context.Context, input section.CreateInput) (*domain.SectionWithUser, error)
	AdminSearch(ctx context.Context, input section.SearchInput) ([]domain.SectionWithUser, error)
	Search(ctx context.Context, input section.SearchInput) ([]domain.SectionWithUser, error)
	AddFeedback(ctx context.Context, sectionID uuid.UUID, input section.FeedbackInput) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, sectionID uuid.UUID) ([]domain.FeedbackWithAuthor, error)
	Like(ctx context.Context, sectionID uuid.UUID) (*section.LikeResult, error)
}

// SectionHandler serves section scheduling, search, feedback, and likes.
type SectionHandler struct {
	svc sectionService
	log *slog.Logger
}

// NewSectionHandler creates a SectionHandler.
func NewSectionHandler(svc sectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{svc: svc, log: logger.With("handler", "section")}
}

type createSectionRequest struct {
	UserID   string `json:"userId"`
	Category string `json:"category"`
	Topic    string `json:"topic"`
	Date     string `json:"date"`
}

type sectionsResponse struct {
	Sections []sectionResponse `json:"sections"`
}

type addFeedbackRequest struct {
	Comment   string `json:"comment"`
	Anonymous bool   `json:"anonymous"`
}

type feedbackListResponse struct {
	Feedback []feedbackResponse `json:"feedback"`
}

// Create handles POST /api/section/admin.
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), section.CreateInput{
		UserID:   req.UserID,
		Category: req.Category,
		Topic:    req.Topic,
		Date:     req.Date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSectionResponse(*created))
}

// AdminSearch handles GET /api/section/admin. All filters including email
// are honored.
func (h *SectionHandler) AdminSearch(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.AdminSearch(r.Context(), searchInputFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sectionsResponse{Sections: toSectionResponses(sections)})
}

// Search handles GET /api/section/user/search for any signed-in user.
func (h *SectionHandler) Search(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.Search(r.Context(), searchInputFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sectionsResponse{Sections: toSectionResponses(sections)})
}

// AddFeedback handles POST /api/section/{id}/feedback.
func (h *SectionHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	var req addFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddFeedback(r.Context(), sectionID, section.FeedbackInput{
		Comment:   req.Comment,
		Anonymous: req.Anonymous,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID.String()})
}

// ListFeedback handles GET /api/section/{id}/feedback.
func (h *SectionHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	items, err := h.svc.ListFeedback(r.Context(), sectionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, feedbackListResponse{Feedback: toFeedbackResponses(items)})
}

// Like handles POST /api/section/{id}/like.
func (h *SectionHandler) Like(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	result, err := h.svc.Like(r.Context(), sectionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, likeResponse{Liked: result.Liked, LikeCount: result.LikeCount})
}

// searchInputFromQuery maps query parameters to search predicates. Absent
// parameters stay nil so they do not constrain the search.
func searchInputFromQuery(r *http.Request) section.SearchInput {
	q := r.URL.Query()
	var input section.SearchInput
	if v := q.Get("topic"); v != "" {
		input.Topic = &v
	}
	if v := q.Get("username"); v != "" {
		input.Username = &v
	}
	if v := q.Get("email"); v != "" {
		input.Email = &v
	}
	if v := q.Get("category"); v != "" {
		input.Category = &v
	}
	if v := q.Get("date"); v != "" {
		input.Date = &v
	}
	return input
}
