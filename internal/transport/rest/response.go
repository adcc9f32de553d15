// Package rest exposes the HTTP API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/pkg/ctxutil"
)

// requireAdmin checks the principal in the request context. Handlers with
// admin-only request bodies call it before decoding, so a non-admin caller
// gets the role rejection rather than a body validation error.
func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors to HTTP statuses. Unknown errors are
// logged and reported as a generic 500 so internals never leak.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	Image     string    `json:"image"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type publicUserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Image    string  `json:"image"`
	Role     string  `json:"role"`
}

func toPublicUserResponse(u domain.PublicUser) publicUserResponse {
	return publicUserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Image:    u.Image,
		Role:     u.Role.String(),
	}
}

type sectionResponse struct {
	ID            string             `json:"id"`
	Category      string             `json:"category"`
	Topic         string             `json:"topic"`
	Date          time.Time          `json:"date"`
	User          publicUserResponse `json:"user"`
	LikeCount     int                `json:"likeCount"`
	FeedbackCount int                `json:"feedbackCount"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func toSectionResponse(s domain.SectionWithUser) sectionResponse {
	return sectionResponse{
		ID:            s.ID.String(),
		Category:      s.Category.String(),
		Topic:         s.Topic,
		Date:          s.Date,
		User:          toPublicUserResponse(s.User),
		LikeCount:     s.LikeCount,
		FeedbackCount: s.FeedbackCount,
		CreatedAt:     s.CreatedAt,
	}
}

func toSectionResponses(items []domain.SectionWithUser) []sectionResponse {
	out := make([]sectionResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toSectionResponse(s))
	}
	return out
}

type feedbackResponse struct {
	ID        string              `json:"id"`
	Comment   string              `json:"comment"`
	Anonymous bool                `json:"anonymous"`
	Author    *publicUserResponse `json:"author"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toFeedbackResponses(items []domain.FeedbackWithAuthor) []feedbackResponse {
	out := make([]feedbackResponse, 0, len(items))
	for _, f := range items {
		resp := feedbackResponse{
			ID:        f.ID.String(),
			Comment:   f.Comment,
			Anonymous: f.Anonymous,
			CreatedAt: f.CreatedAt,
		}
		if f.Author != nil {
			author := toPublicUserResponse(*f.Author)
			resp.Author = &author
		}
		out = append(out, resp)
	}
	return out
}

type ideaResponse struct {
	ID           string              `json:"id"`
	Category     string              `json:"category"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Anonymous    bool                `json:"anonymous"`
	Author       *publicUserResponse `json:"author"`
	LikeCount    int                 `json:"likeCount"`
	CommentCount int                 `json:"commentCount"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func toIdeaResponses(items []domain.IdeaWithAuthor) []ideaResponse {
	out := make([]ideaResponse, 0, len(items))
	for _, i := range items {
		resp := ideaResponse{
			ID:           i.ID.String(),
			Category:     i.Category.String(),
			Title:        i.Title,
			Description:  i.Description,
			Anonymous:    i.Anonymous,
			LikeCount:    i.LikeCount,
			CommentCount: i.CommentCount,
			CreatedAt:    i.CreatedAt,
		}
		if i.Author != nil {
			author := toPublicUserResponse(*i.Author)
			resp.Author = &author
		}
		out = append(out, resp)
	}
	return out
}

type commentResponse struct {
	ID        string             `json:"id"`
	Comment   string             `json:"comment"`
	Author    publicUserResponse `json:"author"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toCommentResponses(items []domain.IdeaCommentWithAuthor) []commentResponse {
	out := make([]commentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, commentResponse{
			ID:        c.ID.String(),
			Comment:   c.Comment,
			Author:    toPublicUserResponse(c.Author),
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}

type likeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
