package domain

import (
	"time"

	"github.com/google/uuid"
)

// Section is a scheduled practice session presented by a single user.
// Date determines past/future classification on the client.
type Section struct {
	ID        uuid.UUID
	UserID    uuid.UUID // presenter
	Category  SectionCategory
	Topic     string
	Date      time.Time
	CreatedAt time.Time
}

// SectionWithUser is a section joined with its presenter's public fields
// and aggregate counts, as served by the search and admin listings.
type SectionWithUser struct {
	Section
	User          PublicUser
	LikeCount     int
	FeedbackCount int
}

// Feedback is a comment left on a completed section. When Anonymous is
// set, the author identity must not be surfaced to clients.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SectionID uuid.UUID
	Comment   string
	Anonymous bool
	CreatedAt time.Time
}

// FeedbackWithAuthor carries the author's display fields for rendering.
// Author is nil when the feedback is anonymous and the row has been
// scrubbed for a non-admin caller.
type FeedbackWithAuthor struct {
	Feedback
	Author *PublicUser
}

// SectionLike records that a user liked a section. At most one row may
// exist per (UserID, SectionID) pair; duplicate inserts are silently
// ignored at the store level.
type SectionLike struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SectionID uuid.UUID
	CreatedAt time.Time
}
