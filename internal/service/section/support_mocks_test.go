package section

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc        func(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	ListBySectionFunc func(ctx context.Context, sectionID uuid.UUID) ([]domain.FeedbackWithAuthor, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			Feedback *domain.Feedback
		}
		ListBySection []struct {
			Ctx       context.Context
			SectionID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockListBySection sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Feedback *domain.Feedback
	}{Ctx: ctx, Feedback: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Feedback *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.FeedbackWithAuthor, error) {
	if mock.ListBySectionFunc == nil {
		panic("feedbackRepoMock.ListBySectionFunc: method is nil but feedbackRepo.ListBySection was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
	}{Ctx: ctx, SectionID: sectionID}
	mock.lockListBySection.Lock()
	mock.calls.ListBySection = append(mock.calls.ListBySection, callInfo)
	mock.lockListBySection.Unlock()
	return mock.ListBySectionFunc(ctx, sectionID)
}

var _ likeRepo = &likeRepoMock{}

type likeRepoMock struct {
	InsertFunc         func(ctx context.Context, l *domain.SectionLike) (bool, error)
	CountBySectionFunc func(ctx context.Context, sectionID uuid.UUID) (int, error)

	calls struct {
		Insert []struct {
			Ctx  context.Context
			Like *domain.SectionLike
		}
		CountBySection []struct {
			Ctx       context.Context
			SectionID uuid.UUID
		}
	}
	lockInsert         sync.RWMutex
	lockCountBySection sync.RWMutex
}

func (mock *likeRepoMock) Insert(ctx context.Context, l *domain.SectionLike) (bool, error) {
	if mock.InsertFunc == nil {
		panic("likeRepoMock.InsertFunc: method is nil but likeRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Like *domain.SectionLike
	}{Ctx: ctx, Like: l}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, l)
}

func (mock *likeRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Like *domain.SectionLike
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *likeRepoMock) CountBySection(ctx context.Context, sectionID uuid.UUID) (int, error) {
	if mock.CountBySectionFunc == nil {
		panic("likeRepoMock.CountBySectionFunc: method is nil but likeRepo.CountBySection was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
	}{Ctx: ctx, SectionID: sectionID}
	mock.lockCountBySection.Lock()
	mock.calls.CountBySection = append(mock.calls.CountBySection, callInfo)
	mock.lockCountBySection.Unlock()
	return mock.CountBySectionFunc(ctx, sectionID)
}
