package service

import (
	"context"
	"sort"
	"strings"

	"membership-be/internal/entity"
	"membership-be/internal/repository/contract"
	"membership-be/internal/repository/specification"
	"membership-be/internal/repository/unitofwork"
	"membership-be/pkg/payment"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the concrete specification
// structs directly so service tests exercise the same query intent the real
// implementations translate to SQL.

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok && u.Id != byID.ID {
			return false
		}
	}
	return true
}

type fakePlanRepo struct {
	plans []*entity.Plan
}

func (r *fakePlanRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	for _, p := range r.plans {
		if planMatches(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for _, p := range r.plans {
		if planMatches(p, specs) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func planMatches(p *entity.Plan, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if p.Id != spec.ID {
				return false
			}
		case specification.ActiveOnly:
			if !p.IsActive {
				return false
			}
		}
	}
	return true
}

type fakePromoRepo struct {
	codes      []*entity.PromoCode
	increments []uuid.UUID
}

func (r *fakePromoRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.PromoCode, error) {
	for _, c := range r.codes {
		if promoMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakePromoRepo) IncrementUsage(_ context.Context, id uuid.UUID) error {
	r.increments = append(r.increments, id)
	for _, c := range r.codes {
		if c.Id == id {
			c.UsedCount++
		}
	}
	return nil
}

func promoMatches(c *entity.PromoCode, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if c.Id != spec.ID {
				return false
			}
		case specification.ByCode:
			if c.Code != strings.ToUpper(strings.TrimSpace(spec.Code)) {
				return false
			}
		}
	}
	return true
}

type fakeSessionRepo struct {
	sessions []*entity.CheckoutSession
	updates  int
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.CheckoutSession) error {
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *entity.CheckoutSession) error {
	r.updates++
	for i, existing := range r.sessions {
		if existing.Id == s.Id {
			r.sessions[i] = s
			return nil
		}
	}
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.CheckoutSession, error) {
	for _, s := range r.sessions {
		if sessionMatches(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.CheckoutSession, error) {
	var out []*entity.CheckoutSession
	for _, s := range r.sessions {
		if sessionMatches(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func sessionMatches(s *entity.CheckoutSession, specs []specification.Specification) bool {
	for _, raw := range specs {
		switch spec := raw.(type) {
		case specification.ByID:
			if s.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != spec.UserID {
				return false
			}
		case specification.ForPlan:
			if s.PlanId != spec.PlanID {
				return false
			}
		case specification.ByStatus:
			if string(s.Status) != spec.Status {
				return false
			}
		}
	}
	return true
}

type fakeSubscriptionRepo struct {
	subs      []*entity.UserSubscription
	createErr error
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, s *entity.UserSubscription) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.subs = append(r.subs, s)
	return nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, s *entity.UserSubscription) error {
	for i, existing := range r.subs {
		if existing.Id == s.Id {
			r.subs[i] = s
			return nil
		}
	}
	r.subs = append(r.subs, s)
	return nil
}

func (r *fakeSubscriptionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error) {
	var out []*entity.UserSubscription
	for _, s := range r.subs {
		if subMatches(s, specs) {
			out = append(out, s)
		}
	}
	for _, raw := range specs {
		if ob, ok := raw.(specification.OrderBy); ok && ob.Field == "created_at" {
			sort.SliceStable(out, func(i, j int) bool {
				if ob.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func subMatches(s *entity.UserSubscription, specs []specification.Specification) bool {
	for _, raw := range specs {
		switch spec := raw.(type) {
		case specification.ByID:
			if s.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != spec.UserID {
				return false
			}
		case specification.ByStatuses:
			found := false
			for _, st := range spec.Statuses {
				if string(s.Status) == st {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// fakeUnitOfWork hands out the shared fake repositories and records
// transaction boundaries.
type fakeUnitOfWork struct {
	users         *fakeUserRepo
	plans         *fakePlanRepo
	promos        *fakePromoRepo
	sessions      *fakeSessionRepo
	subscriptions *fakeSubscriptionRepo

	begun      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:         &fakeUserRepo{},
		plans:         &fakePlanRepo{},
		promos:        &fakePromoRepo{},
		sessions:      &fakeSessionRepo{},
		subscriptions: &fakeSubscriptionRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { u.begun++; return nil }
func (u *fakeUnitOfWork) Commit() error                 { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error               { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository           { return u.users }
func (u *fakeUnitOfWork) PlanRepository() contract.PlanRepository           { return u.plans }
func (u *fakeUnitOfWork) PromoCodeRepository() contract.PromoCodeRepository { return u.promos }
func (u *fakeUnitOfWork) CheckoutSessionRepository() contract.CheckoutSessionRepository {
	return u.sessions
}
func (u *fakeUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return u.subscriptions
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

// fakeGateway scripts the charge outcome and records every request.
type fakeGateway struct {
	result   *payment.ChargeResult
	err      error
	requests []payment.ChargeRequest
}

func (g *fakeGateway) Charge(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &payment.ChargeResult{TransactionId: "txn-1", Status: "capture", RawResponse: []byte(`{}`)}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
