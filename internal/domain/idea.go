package domain

import (
	"time"

	"github.com/google/uuid"
)

// Idea is an improvement suggestion submitted by a user.
type Idea struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    IdeaCategory
	Title       string
	Description string
	Anonymous   bool
	CreatedAt   time.Time
}

// IdeaWithAuthor is an idea joined with its author's public fields and
// aggregate counts. Author is nil for scrubbed anonymous ideas.
type IdeaWithAuthor struct {
	Idea
	Author       *PublicUser
	LikeCount    int
	CommentCount int
}

// IdeaLike records that a user liked an idea. Same uniqueness invariant
// as SectionLike: at most one row per (UserID, IdeaID) pair.
type IdeaLike struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IdeaID    uuid.UUID
	CreatedAt time.Time
}

// IdeaComment is a comment left on an idea.
type IdeaComment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IdeaID    uuid.UUID
	Comment   string
	CreatedAt time.Time
}

// IdeaCommentWithAuthor carries the commenter's display fields.
type IdeaCommentWithAuthor struct {
	IdeaComment
	Author PublicUser
}
