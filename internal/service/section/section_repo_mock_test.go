package section

import (
	"context"
	"sync"

	"github.com/google/uuid"

	sectionrepo "github.com/echospace/echospace-backend/internal/adapter/postgres/section"
	"github.com/echospace/echospace-backend/internal/domain"
)

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	CreateFunc  func(ctx context.Context, s *domain.Section) (*domain.Section, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	SearchFunc  func(ctx context.Context, f sectionrepo.SearchFilter) ([]domain.SectionWithUser, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Section *domain.Section
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			Filter sectionrepo.SearchFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockSearch  sync.RWMutex
}

func (mock *sectionRepoMock) Create(ctx context.Context, s *domain.Section) (*domain.Section, error) {
	if mock.CreateFunc == nil {
		panic("sectionRepoMock.CreateFunc: method is nil but sectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Section *domain.Section
	}{Ctx: ctx, Section: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sectionRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Section *domain.Section
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	if mock.GetByIDFunc == nil {
		panic("sectionRepoMock.GetByIDFunc: method is nil but sectionRepo.GetByID was just called")
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

func (mock *sectionRepoMock) Search(ctx context.Context, f sectionrepo.SearchFilter) ([]domain.SectionWithUser, error) {
	if mock.SearchFunc == nil {
		panic("sectionRepoMock.SearchFunc: method is nil but sectionRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter sectionrepo.SearchFilter
	}{Ctx: ctx, Filter: f}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *sectionRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter sectionrepo.SearchFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
