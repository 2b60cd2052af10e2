package service

import (
	"context"
	"errors"
	"time"

	"membership-be/internal/dto"
	"membership-be/internal/entity"
	"membership-be/internal/pkg/apperror"
	"membership-be/internal/pkg/logger"
	"membership-be/internal/repository/specification"
	"membership-be/internal/repository/unitofwork"
	"membership-be/pkg/events"
	pktNats "membership-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// replacedReason is the system-supplied cancel reason when activating a new
// subscription retires the previous one.
const replacedReason = "replaced by new subscription"

// ActivateParams carries everything the lifecycle manager needs to turn a
// completed checkout into a subscription.
type ActivateParams struct {
	UserId         uuid.UUID
	Plan           *entity.Plan
	PromoCodeId    *uuid.UUID
	DiscountAmount *decimal.Decimal
	PaymentMethod  *string
	Now            time.Time
}

type ISubscriptionService interface {
	// ActivateInTx retires any active/trial subscription for the user and
	// creates the new one, all against the repositories of the supplied unit
	// of work. The caller owns the transaction boundary; the checkout
	// completion path runs this inside the same transaction that marks the
	// session completed.
	ActivateInTx(ctx context.Context, uow unitofwork.UnitOfWork, params ActivateParams) (*entity.UserSubscription, error)

	Cancel(ctx context.Context, userId uuid.UUID, reason string) error
	MyCurrent(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	entitlements   IEntitlementService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	entitlements IEntitlementService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		entitlements:   entitlements,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *subscriptionService) ActivateInTx(ctx context.Context, uow unitofwork.UnitOfWork, params ActivateParams) (*entity.UserSubscription, error) {
	repo := uow.SubscriptionRepository()

	// Retire whatever is currently entitling. The uniqueness invariant (at
	// most one active/trial subscription per user) holds because retire and
	// create commit together.
	existing, err := repo.FindAll(ctx,
		specification.UserOwnedBy{UserID: params.UserId},
		specification.ByStatuses{Statuses: []string{
			string(entity.SubscriptionStatusActive),
			string(entity.SubscriptionStatusTrial),
		}},
	)
	if err != nil {
		return nil, err
	}
	for _, old := range existing {
		old.Cancel(replacedReason, params.Now)
		if err := repo.Update(ctx, old); err != nil {
			return nil, err
		}
	}

	sub := &entity.UserSubscription{
		Id:             uuid.New(),
		UserId:         params.UserId,
		PlanId:         params.Plan.Id,
		Status:         entity.SubscriptionStatusActive,
		StartsAt:       params.Now,
		AutoRenew:      true,
		PromoCodeId:    params.PromoCodeId,
		DiscountAmount: params.DiscountAmount,
		PaymentMethod:  params.PaymentMethod,
	}

	if params.Plan.TrialDays > 0 {
		trialEnd := params.Now.AddDate(0, 0, params.Plan.TrialDays)
		sub.Status = entity.SubscriptionStatusTrial
		sub.TrialEndsAt = &trialEnd
	}

	switch params.Plan.BillingInterval {
	case entity.BillingIntervalMonth:
		end := params.Now.AddDate(0, 1, 0)
		sub.EndsAt = &end
	case entity.BillingIntervalYear:
		end := params.Now.AddDate(1, 0, 0)
		sub.EndsAt = &end
	case entity.BillingIntervalLifetime:
		// no end date
	}

	if err := repo.Create(ctx, sub); err != nil {
		// The partial unique index on entitling subscriptions fires when a
		// concurrent activation for the same user committed first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("user already has an active subscription")
		}
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userId uuid.UUID, reason string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.entitlements.GetActiveSubscription(ctx, userId)
	if err != nil {
		return err
	}
	if sub == nil {
		return apperror.NotFound("no active subscription found")
	}

	if reason == "" {
		reason = "canceled by user"
	}
	sub.Cancel(reason, time.Now())
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeSubscriptionCanceled,
			Data: map[string]interface{}{
				"subscription_id": sub.Id,
				"user_id":         userId,
				"plan_id":         sub.PlanId,
				"reason":          reason,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("subscription", "failed to publish cancel event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (s *subscriptionService) MyCurrent(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error) {
	sub, err := s.entitlements.GetActiveSubscription(ctx, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	return dto.NewSubscriptionResponse(sub), nil
}
