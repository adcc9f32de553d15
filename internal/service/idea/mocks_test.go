package idea

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc  func(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	ListFunc    func(ctx context.Context, category *domain.IdeaCategory) ([]domain.IdeaWithAuthor, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Idea *domain.Idea
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx      context.Context
			Category *domain.IdeaCategory
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea *domain.Idea
	}{Ctx: ctx, Idea: i}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, i)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Idea *domain.Idea
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
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

func (mock *ideaRepoMock) List(ctx context.Context, category *domain.IdeaCategory) ([]domain.IdeaWithAuthor, error) {
	if mock.ListFunc == nil {
		panic("ideaRepoMock.ListFunc: method is nil but ideaRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category *domain.IdeaCategory
	}{Ctx: ctx, Category: category}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, category)
}

func (mock *ideaRepoMock) ListCalls() []struct {
	Ctx      context.Context
	Category *domain.IdeaCategory
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ likeRepo = &likeRepoMock{}

type likeRepoMock struct {
	InsertFunc      func(ctx context.Context, l *domain.IdeaLike) (bool, error)
	CountByIdeaFunc func(ctx context.Context, ideaID uuid.UUID) (int, error)

	calls struct {
		Insert []struct {
			Ctx  context.Context
			Like *domain.IdeaLike
		}
		CountByIdea []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
		}
	}
	lockInsert      sync.RWMutex
	lockCountByIdea sync.RWMutex
}

func (mock *likeRepoMock) Insert(ctx context.Context, l *domain.IdeaLike) (bool, error) {
	if mock.InsertFunc == nil {
		panic("likeRepoMock.InsertFunc: method is nil but likeRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Like *domain.IdeaLike
	}{Ctx: ctx, Like: l}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, l)
}

func (mock *likeRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Like *domain.IdeaLike
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *likeRepoMock) CountByIdea(ctx context.Context, ideaID uuid.UUID) (int, error) {
	if mock.CountByIdeaFunc == nil {
		panic("likeRepoMock.CountByIdeaFunc: method is nil but likeRepo.CountByIdea was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockCountByIdea.Lock()
	mock.calls.CountByIdea = append(mock.calls.CountByIdea, callInfo)
	mock.lockCountByIdea.Unlock()
	return mock.CountByIdeaFunc(ctx, ideaID)
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.IdeaComment) (*domain.IdeaComment, error)
	ListByIdeaFunc func(ctx context.Context, ideaID uuid.UUID) ([]domain.IdeaCommentWithAuthor, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Comment *domain.IdeaComment
		}
		ListByIdea []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByIdea sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.IdeaComment) (*domain.IdeaComment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Comment *domain.IdeaComment
	}{Ctx: ctx, Comment: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Comment *domain.IdeaComment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]domain.IdeaCommentWithAuthor, error) {
	if mock.ListByIdeaFunc == nil {
		panic("commentRepoMock.ListByIdeaFunc: method is nil but commentRepo.ListByIdea was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockListByIdea.Lock()
	mock.calls.ListByIdea = append(mock.calls.ListByIdea, callInfo)
	mock.lockListByIdea.Unlock()
	return mock.ListByIdeaFunc(ctx, ideaID)
}
