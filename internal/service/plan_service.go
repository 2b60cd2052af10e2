// Service for the read-only plan catalog.
package service

import (
	"context"
	"time"

	"membership-be/internal/dto"
	"membership-be/internal/entity"
	"membership-be/internal/pkg/apperror"
	"membership-be/internal/repository/specification"
	"membership-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	planCacheTTL     = 1 * time.Minute
	planCacheCleanup = 5 * time.Minute
)

type IPlanService interface {
	// GetPlan returns the plan or a NotFound error. Inactive plans are still
	// returned: the caller decides whether inactivity matters (it does for
	// new checkouts, not for completing an existing session).
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	ListActivePlans(ctx context.Context) ([]*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		// Plans are read-only to this core, so a short-TTL read cache is safe:
		// sessions snapshot the price at creation anyway.
		cache: gocache.New(planCacheTTL, planCacheCleanup),
	}
}

func (s *planService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	if cached, ok := s.cache.Get(id.String()); ok {
		return cached.(*entity.Plan), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan %s not found", id)
	}

	s.cache.SetDefault(id.String(), plan)
	return plan, nil
}

func (s *planService) ListActivePlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, dto.NewPlanResponse(p))
	}
	return res, nil
}
