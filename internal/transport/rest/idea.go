package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/internal/service/idea"
)

// ideaService defines the minimal interface needed by IdeaHandler.
type ideaService interface {
	Create(ctx context.Context, input idea.CreateInput) (*domain.Idea, error)
	List(ctx context.Context, category *string) ([]domain.IdeaWithAuthor, error)
	Like(ctx context.Context, ideaID uuid.UUID) (*idea.LikeResult, error)
	AddComment(ctx context.Context, ideaID uuid.UUID, input idea.CommentInput) (*domain.IdeaComment, error)
	ListComments(ctx context.Context, ideaID uuid.UUID) ([]domain.IdeaCommentWithAuthor, error)
}

// IdeaHandler serves improvement idea endpoints.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "idea")}
}

type createIdeaRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Anonymous   bool   `json:"anonymous"`
}

type ideasResponse struct {
	Ideas []ideaResponse `json:"ideas"`
}

type addCommentRequest struct {
	Comment string `json:"comment"`
}

type commentsResponse struct {
	Comments []commentResponse `json:"comments"`
}

// Create handles POST /api/ideas.
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), idea.CreateInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID.String()})
}

// List handles GET /api/ideas?category=PROBLEM.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	var category *string
	if v := r.URL.Query().Get("category"); v != "" {
		category = &v
	}

	items, err := h.svc.List(r.Context(), category)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ideasResponse{Ideas: toIdeaResponses(items)})
}

// Like handles POST /api/ideas/{id}/like.
func (h *IdeaHandler) Like(w http.ResponseWriter, r *http.Request) {
	ideaID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	result, err := h.svc.Like(r.Context(), ideaID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, likeResponse{Liked: result.Liked, LikeCount: result.LikeCount})
}

// AddComment handles POST /api/ideas/{id}/comments.
func (h *IdeaHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ideaID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddComment(r.Context(), ideaID, idea.CommentInput{Comment: req.Comment})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID.String()})
}

// ListComments handles GET /api/ideas/{id}/comments.
func (h *IdeaHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	ideaID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	items, err := h.svc.ListComments(r.Context(), ideaID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsResponse{Comments: toCommentResponses(items)})
}
