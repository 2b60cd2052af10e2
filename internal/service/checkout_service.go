package service

import (
	"context"
	"fmt"
	"time"

	"membership-be/internal/dto"
	"membership-be/internal/entity"
	"membership-be/internal/pkg/apperror"
	"membership-be/internal/pkg/logger"
	"membership-be/internal/repository/specification"
	"membership-be/internal/repository/unitofwork"
	"membership-be/pkg/events"
	pktNats "membership-be/pkg/nats"
	"membership-be/pkg/payment"
	"membership-be/pkg/promo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ICheckoutService interface {
	GetOrCreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error)
	ValidatePromoCode(ctx context.Context, code string, planId uuid.UUID) (*dto.PromoDecisionResponse, error)
	ApplyPromoCode(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, code string) (*dto.SessionResponse, error)
	RemovePromoCode(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error)
	Complete(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.CompleteSessionRequest) (*dto.SubscriptionResponse, error)
}

type CheckoutConfig struct {
	SessionTTL     time.Duration
	PaymentTimeout time.Duration
}

type checkoutService struct {
	uowFactory     unitofwork.RepositoryFactory
	planService    IPlanService
	subscriptions  ISubscriptionService
	gateway        payment.Gateway
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
	cfg            CheckoutConfig
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	planService IPlanService,
	subscriptions ISubscriptionService,
	gateway payment.Gateway,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	cfg CheckoutConfig,
) ICheckoutService {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.PaymentTimeout == 0 {
		cfg.PaymentTimeout = 30 * time.Second
	}
	return &checkoutService{
		uowFactory:     uowFactory,
		planService:    planService,
		subscriptions:  subscriptions,
		gateway:        gateway,
		eventPublisher: eventPublisher,
		log:            log,
		cfg:            cfg,
	}
}

func (s *checkoutService) GetOrCreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	// Idempotent reuse: a pending, unexpired session for this (user, plan)
	// is returned unchanged so page reloads never fork a second session.
	existing, err := uow.CheckoutSessionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ForPlan{PlanID: req.PlanId},
		specification.ByStatus{Status: string(entity.SessionStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.IsExpired(now) {
			return dto.NewSessionResponse(existing), nil
		}
		if err := s.flipExpired(ctx, uow, existing); err != nil {
			return nil, err
		}
	}

	plan, err := s.planService.GetPlan(ctx, req.PlanId)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, apperror.Validation("plan %s is not available for purchase", plan.Slug)
	}

	session := &entity.CheckoutSession{
		Id:             uuid.New(),
		UserId:         userId,
		PlanId:         plan.Id,
		OriginalPrice:  plan.Price,
		DiscountAmount: decimal.Zero,
		FinalPrice:     plan.Price,
		Currency:       plan.Currency,
		Status:         entity.SessionStatusPending,
		ExpiresAt:      now.Add(s.cfg.SessionTTL),
	}

	// Prefill billing contact from the account record when we have one.
	if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}); err == nil && user != nil {
		session.Billing.Email = user.Email
		session.Billing.FirstName, session.Billing.LastName = splitFullName(user.FullName)
		session.Billing.Phone = user.Phone
		session.Billing.Country = user.Country
	}

	// An invalid promo at creation is ignored, not rejected: the session is
	// still created at full price.
	if req.PromoCode != nil && *req.PromoCode != "" {
		code, err := uow.PromoCodeRepository().FindOne(ctx, specification.ByCode{Code: *req.PromoCode})
		if err != nil {
			return nil, err
		}
		if decision := promo.Evaluate(code, plan.Id, session.OriginalPrice, now); decision.Valid {
			session.ApplyDiscount(code.Id, decision.DiscountAmount)
		}
	}

	if err := uow.CheckoutSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(session), nil
}

func (s *checkoutService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		if err := s.flipExpired(ctx, uow, session); err != nil {
			return nil, err
		}
	}
	return dto.NewSessionResponse(session), nil
}

func (s *checkoutService) ValidatePromoCode(ctx context.Context, codeStr string, planId uuid.UUID) (*dto.PromoDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := s.planService.GetPlan(ctx, planId)
	if err != nil {
		return nil, err
	}

	code, err := uow.PromoCodeRepository().FindOne(ctx, specification.ByCode{Code: codeStr})
	if err != nil {
		return nil, err
	}

	decision := promo.Evaluate(code, plan.Id, plan.Price, time.Now())
	return promoDecisionToDTO(decision), nil
}

func (s *checkoutService) ApplyPromoCode(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, codeStr string) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadMutableSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	code, err := uow.PromoCodeRepository().FindOne(ctx, specification.ByCode{Code: codeStr})
	if err != nil {
		return nil, err
	}

	// The engine runs against the snapshotted price, never the live plan
	// price.
	decision := promo.Evaluate(code, session.PlanId, session.OriginalPrice, time.Now())
	if !decision.Valid {
		return nil, apperror.ValidationReason(string(decision.Reason), decision.Reason.Message())
	}

	session.ApplyDiscount(code.Id, decision.DiscountAmount)
	if err := uow.CheckoutSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(session), nil
}

func (s *checkoutService) RemovePromoCode(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadMutableSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	session.ClearDiscount()
	if err := uow.CheckoutSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(session), nil
}

// Complete is the failure-sensitive path: charge first, then one transaction
// for every persistence write. A gateway failure leaves the session pending
// and retryable. If the process dies between a successful charge and the
// commit, the user has been charged without a subscription; the session id
// doubles as the gateway idempotency key, so retrying the same session cannot
// charge twice.
func (s *checkoutService) Complete(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.CompleteSessionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	session, err := s.loadMutableSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	// The plan is not re-validated here: a plan deactivated mid-flow may
	// still be bought through a session that already referenced it.
	plan, err := s.planService.GetPlan(ctx, session.PlanId)
	if err != nil {
		return nil, err
	}

	var chargeAudit []byte
	if session.FinalPrice.IsPositive() {
		if req.PaymentMethod == nil || *req.PaymentMethod == "" {
			return nil, apperror.Validation("payment method is required")
		}

		chargeCtx, cancel := context.WithTimeout(ctx, s.cfg.PaymentTimeout)
		defer cancel()

		result, err := s.gateway.Charge(chargeCtx, payment.ChargeRequest{
			Amount:          session.FinalPrice,
			Currency:        session.Currency,
			PaymentMethodId: *req.PaymentMethod,
			Description:     fmt.Sprintf("Subscription: %s", plan.Name),
			IdempotencyKey:  session.Id.String(),
			Metadata: map[string]interface{}{
				"session_id": session.Id.String(),
				"user_id":    userId.String(),
				"plan_id":    plan.Id.String(),
			},
		})
		if err != nil {
			s.log.Warn("checkout", "payment failed", map[string]interface{}{
				"session_id": session.Id,
				"error":      err.Error(),
			})
			return nil, apperror.PaymentFailed(err.Error(), err)
		}
		chargeAudit = result.RawResponse
	}

	// Payment (if any) has succeeded; every write from here commits or rolls
	// back together so no reader can see a subscription without a completed
	// session, or a bumped promo counter without either.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var discountAmount = session.DiscountAmount
	sub, err := s.subscriptions.ActivateInTx(ctx, uow, ActivateParams{
		UserId:         userId,
		Plan:           plan,
		PromoCodeId:    session.PromoCodeId,
		DiscountAmount: &discountAmount,
		PaymentMethod:  req.PaymentMethod,
		Now:            now,
	})
	if err != nil {
		return nil, err
	}

	if session.PromoCodeId != nil {
		if err := uow.PromoCodeRepository().IncrementUsage(ctx, *session.PromoCodeId); err != nil {
			return nil, err
		}
	}

	if err := session.MarkCompleted(now); err != nil {
		return nil, apperror.Conflict("session %s cannot be completed", session.Id)
	}
	session.Billing = req.Billing.ToContact()
	session.ChargeAudit = chargeAudit
	if err := uow.CheckoutSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeCheckoutCompleted,
			Data: map[string]interface{}{
				"session_id":      session.Id,
				"subscription_id": sub.Id,
				"user_id":         userId,
				"plan_id":         plan.Id,
				"amount":          session.FinalPrice.String(),
				"currency":        session.Currency,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("checkout", "failed to publish completion event", map[string]interface{}{"error": err.Error()})
		}
	}

	return dto.NewSubscriptionResponse(sub), nil
}

// loadOwnedSession fetches a session and enforces ownership.
func (s *checkoutService) loadOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId uuid.UUID) (*entity.CheckoutSession, error) {
	session, err := uow.CheckoutSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("checkout session %s not found", sessionId)
	}
	if session.UserId != userId {
		return nil, apperror.Forbidden("checkout session belongs to a different user")
	}
	return session, nil
}

// loadMutableSession additionally requires the session to be pending and
// unexpired, lazily flipping it to expired when the TTL has elapsed.
func (s *checkoutService) loadMutableSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId uuid.UUID) (*entity.CheckoutSession, error) {
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case entity.SessionStatusCompleted:
		return nil, apperror.Conflict("checkout session is already completed")
	case entity.SessionStatusExpired:
		return nil, apperror.Expired("checkout session has expired")
	}

	if session.IsExpired(time.Now()) {
		if err := s.flipExpired(ctx, uow, session); err != nil {
			return nil, err
		}
		return nil, apperror.Expired("checkout session has expired")
	}
	return session, nil
}

func (s *checkoutService) flipExpired(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.CheckoutSession) error {
	if err := session.MarkExpired(); err != nil {
		return err
	}
	return uow.CheckoutSessionRepository().Update(ctx, session)
}

func promoDecisionToDTO(d promo.Decision) *dto.PromoDecisionResponse {
	res := &dto.PromoDecisionResponse{
		Valid:          d.Valid,
		DiscountAmount: d.DiscountAmount,
		FinalPrice:     d.FinalPrice,
	}
	if !d.Valid {
		res.Reason = string(d.Reason)
		res.Message = d.Reason.Message()
	}
	return res
}

func splitFullName(full string) (first, last string) {
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			return full[:i], full[i+1:]
		}
	}
	return full, ""
}
