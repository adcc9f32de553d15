package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the pipeline.
type userRepo interface {
	UpsertByExternalID(ctx context.Context, u *domain.User) (*domain.User, error)
}

// sectionRepo defines the section repository interface needed by the pipeline.
type sectionRepo interface {
	CreateBatch(ctx context.Context, sections []domain.Section) error
	DeleteByUserIDs(ctx context.Context, userIDs []uuid.UUID) error
}

// feedbackRepo defines the feedback repository interface needed by the pipeline.
type feedbackRepo interface {
	CreateBatch(ctx context.Context, items []domain.Feedback) error
	DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error
}

// sectionLikeRepo defines the section like repository interface needed by the pipeline.
type sectionLikeRepo interface {
	CreateBatch(ctx context.Context, likes []domain.SectionLike) error
	DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error
}

// ideaRepo defines the idea repository interface needed by the pipeline.
type ideaRepo interface {
	CreateBatch(ctx context.Context, ideas []domain.Idea) error
	DeleteByUserIDs(ctx context.Context, userIDs []uuid.UUID) error
}

// ideaLikeRepo defines the idea like repository interface needed by the pipeline.
type ideaLikeRepo interface {
	CreateBatch(ctx context.Context, likes []domain.IdeaLike) error
	DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error
}

// ideaCommentRepo defines the idea comment repository interface needed by the pipeline.
type ideaCommentRepo interface {
	CreateBatch(ctx context.Context, comments []domain.IdeaComment) error
	DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error
}

// txManager runs a function inside a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pipeline upserts the roster and replaces the demo dataset.
type Pipeline struct {
	log          *slog.Logger
	tx           txManager
	users        userRepo
	sections     sectionRepo
	feedback     feedbackRepo
	sectionLikes sectionLikeRepo
	ideas        ideaRepo
	ideaLikes    ideaLikeRepo
	ideaComments ideaCommentRepo
}

// NewPipeline creates a new seed pipeline instance.
func NewPipeline(
	logger *slog.Logger,
	tx txManager,
	users userRepo,
	sections sectionRepo,
	feedback feedbackRepo,
	sectionLikes sectionLikeRepo,
	ideas ideaRepo,
	ideaLikes ideaLikeRepo,
	ideaComments ideaCommentRepo,
) *Pipeline {
	return &Pipeline{
		log:          logger.With("service", "seed"),
		tx:           tx,
		users:        users,
		sections:     sections,
		feedback:     feedback,
		sectionLikes: sectionLikes,
		ideas:        ideas,
		ideaLikes:    ideaLikes,
		ideaComments: ideaComments,
	}
}

// Run seeds the demo dataset. Roster users are upserted by external ID, so
// accounts survive re-runs, then the previous demo content is cleared and
// the freshly built plan is written, all in one transaction.
func (p *Pipeline) Run(ctx context.Context) error {
	userIDs, err := p.upsertRoster(ctx)
	if err != nil {
		return err
	}

	plan := BuildPlan(time.Now(), userIDs)

	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.clear(ctx, userIDs); err != nil {
			return err
		}
		return p.write(ctx, plan)
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	p.log.InfoContext(ctx, "seed complete",
		slog.Int("users", len(userIDs)),
		slog.Int("sections", len(plan.Sections)),
		slog.Int("feedback", len(plan.Feedback)),
		slog.Int("section_likes", len(plan.SectionLikes)),
		slog.Int("ideas", len(plan.Ideas)),
		slog.Int("idea_likes", len(plan.IdeaLikes)),
		slog.Int("idea_comments", len(plan.IdeaComments)))

	return nil
}

func (p *Pipeline) upsertRoster(ctx context.Context) ([]uuid.UUID, error) {
	roster := Roster()
	userIDs := make([]uuid.UUID, 0, len(roster))
	now := time.Now()

	for _, seedUser := range roster {
		email := seedUser.Email
		user, err := p.users.UpsertByExternalID(ctx, &domain.User{
			ID:         uuid.New(),
			Username:   seedUser.Username,
			Email:      &email,
			Image:      seedUser.Image,
			ExternalID: seedUser.ExternalID,
			Role:       seedUser.Role,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return nil, fmt.Errorf("seed upsert user %s: %w", seedUser.Username, err)
		}
		userIDs = append(userIDs, user.ID)
	}

	return userIDs, nil
}

// clear removes earlier demo content, children before parents.
func (p *Pipeline) clear(ctx context.Context, userIDs []uuid.UUID) error {
	if err := p.sectionLikes.DeleteBySeedUsers(ctx, userIDs); err != nil {
		return fmt.Errorf("clear section likes: %w", err)
	}
	if err := p.feedback.DeleteBySeedUsers(ctx, userIDs); err != nil {
		return fmt.Errorf("clear feedback: %w", err)
	}
	if err := p.sections.DeleteByUserIDs(ctx, userIDs); err != nil {
		return fmt.Errorf("clear sections: %w", err)
	}
	if err := p.ideaLikes.DeleteBySeedUsers(ctx, userIDs); err != nil {
		return fmt.Errorf("clear idea likes: %w", err)
	}
	if err := p.ideaComments.DeleteBySeedUsers(ctx, userIDs); err != nil {
		return fmt.Errorf("clear idea comments: %w", err)
	}
	if err := p.ideas.DeleteByUserIDs(ctx, userIDs); err != nil {
		return fmt.Errorf("clear ideas: %w", err)
	}
	return nil
}

// write inserts the plan, parents before children.
func (p *Pipeline) write(ctx context.Context, plan Plan) error {
	if err := p.sections.CreateBatch(ctx, plan.Sections); err != nil {
		return fmt.Errorf("write sections: %w", err)
	}
	if err := p.feedback.CreateBatch(ctx, plan.Feedback); err != nil {
		return fmt.Errorf("write feedback: %w", err)
	}
	if err := p.sectionLikes.CreateBatch(ctx, plan.SectionLikes); err != nil {
		return fmt.Errorf("write section likes: %w", err)
	}
	if err := p.ideas.CreateBatch(ctx, plan.Ideas); err != nil {
		return fmt.Errorf("write ideas: %w", err)
	}
	if err := p.ideaLikes.CreateBatch(ctx, plan.IdeaLikes); err != nil {
		return fmt.Errorf("write idea likes: %w", err)
	}
	if err := p.ideaComments.CreateBatch(ctx, plan.IdeaComments); err != nil {
		return fmt.Errorf("write idea comments: %w", err)
	}
	return nil
}
