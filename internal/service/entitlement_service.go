// Entitlement resolution: what does a user currently have access to, derived
// entirely from the active subscription's plan. Content-access checks consume
// this through the same narrow read interface as the HTTP layer.
package service

import (
	"context"
	"time"

	"membership-be/internal/dto"
	"membership-be/internal/entity"
	"membership-be/internal/repository/specification"
	"membership-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEntitlementService interface {
	// GetActiveSubscription returns the user's trial/active subscription
	// whose end date is unset or in the future, or nil when there is none.
	GetActiveSubscription(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error)

	// ResolveFeature answers "does this user have feature X, at what value".
	// No active subscription or feature not on the plan both mean no access.
	ResolveFeature(ctx context.Context, userId uuid.UUID, featureSlug string) (*dto.FeatureAccessResponse, error)

	// ListFeatures returns every feature bundled with the active plan.
	ListFeatures(ctx context.Context, userId uuid.UUID) ([]dto.FeatureAccessResponse, error)
}

type entitlementService struct {
	uowFactory  unitofwork.RepositoryFactory
	planService IPlanService
}

func NewEntitlementService(uowFactory unitofwork.RepositoryFactory, planService IPlanService) IEntitlementService {
	return &entitlementService{
		uowFactory:  uowFactory,
		planService: planService,
	}
}

func (s *entitlementService) GetActiveSubscription(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatuses{Statuses: []string{
			string(entity.SubscriptionStatusActive),
			string(entity.SubscriptionStatusTrial),
		}},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, sub := range subs {
		if sub.IsEntitling(now) {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *entitlementService) ResolveFeature(ctx context.Context, userId uuid.UUID, featureSlug string) (*dto.FeatureAccessResponse, error) {
	res := &dto.FeatureAccessResponse{Slug: featureSlug, HasAccess: false}

	sub, err := s.GetActiveSubscription(ctx, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return res, nil
	}

	plan, err := s.planService.GetPlan(ctx, sub.PlanId)
	if err != nil {
		return nil, err
	}

	if pf, ok := plan.HasFeature(featureSlug); ok {
		res.HasAccess = true
		res.Value = pf.Value
	}
	return res, nil
}

func (s *entitlementService) ListFeatures(ctx context.Context, userId uuid.UUID) ([]dto.FeatureAccessResponse, error) {
	sub, err := s.GetActiveSubscription(ctx, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return []dto.FeatureAccessResponse{}, nil
	}

	plan, err := s.planService.GetPlan(ctx, sub.PlanId)
	if err != nil {
		return nil, err
	}

	features := make([]dto.FeatureAccessResponse, 0, len(plan.Features))
	for _, pf := range plan.Features {
		features = append(features, dto.FeatureAccessResponse{
			Slug:      pf.Feature.Slug,
			HasAccess: true,
			Value:     pf.Value,
		})
	}
	return features, nil
}
