package service

import (
	"context"
	"testing"
	"time"

	"membership-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entitlementFixture struct {
	uow    *fakeUnitOfWork
	svc    IEntitlementService
	plan   *entity.Plan
	userId uuid.UUID
}

func newEntitlementFixture(t *testing.T) *entitlementFixture {
	t.Helper()

	uow := newFakeUnitOfWork()
	factory := &fakeFactory{uow: uow}

	maxDownloads := "20"
	plan := &entity.Plan{
		Id:              uuid.New(),
		Name:            "Pro",
		Slug:            "pro",
		Price:           decimal.NewFromInt(1000),
		Currency:        "USD",
		BillingInterval: entity.BillingIntervalMonth,
		IsActive:        true,
	}
	plan.Features = []entity.PlanFeature{
		{
			PlanId:  plan.Id,
			Value:   &maxDownloads,
			Feature: entity.Feature{Id: uuid.New(), Slug: "downloads", Name: "Downloads"},
		},
		{
			PlanId:  plan.Id,
			Feature: entity.Feature{Id: uuid.New(), Slug: "hd-streaming", Name: "HD Streaming"},
		},
	}
	uow.plans.plans = append(uow.plans.plans, plan)

	return &entitlementFixture{
		uow:    uow,
		svc:    NewEntitlementService(factory, NewPlanService(factory)),
		plan:   plan,
		userId: uuid.New(),
	}
}

func (f *entitlementFixture) addSubscription(status entity.SubscriptionStatus, endsAt *time.Time) *entity.UserSubscription {
	sub := &entity.UserSubscription{
		Id:       uuid.New(),
		UserId:   f.userId,
		PlanId:   f.plan.Id,
		Status:   status,
		StartsAt: time.Now().Add(-time.Hour),
		EndsAt:   endsAt,
	}
	f.uow.subscriptions.subs = append(f.uow.subscriptions.subs, sub)
	return sub
}

func TestGetActiveSubscription(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name   string
		status entity.SubscriptionStatus
		endsAt *time.Time
		want   bool
	}{
		{name: "active with future end", status: entity.SubscriptionStatusActive, endsAt: &future, want: true},
		{name: "active without end", status: entity.SubscriptionStatusActive, want: true},
		{name: "trial", status: entity.SubscriptionStatusTrial, endsAt: &future, want: true},
		{name: "active but lapsed", status: entity.SubscriptionStatusActive, endsAt: &past, want: false},
		{name: "canceled", status: entity.SubscriptionStatusCanceled, endsAt: &future, want: false},
		{name: "expired", status: entity.SubscriptionStatusExpired, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEntitlementFixture(t)
			f.addSubscription(tt.status, tt.endsAt)

			sub, err := f.svc.GetActiveSubscription(context.Background(), f.userId)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub != nil)
		})
	}
}

func TestResolveFeature(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addSubscription(entity.SubscriptionStatusActive, nil)

	t.Run("feature with value", func(t *testing.T) {
		res, err := f.svc.ResolveFeature(context.Background(), f.userId, "downloads")
		require.NoError(t, err)
		assert.True(t, res.HasAccess)
		require.NotNil(t, res.Value)
		assert.Equal(t, "20", *res.Value)
	})

	t.Run("boolean feature", func(t *testing.T) {
		res, err := f.svc.ResolveFeature(context.Background(), f.userId, "hd-streaming")
		require.NoError(t, err)
		assert.True(t, res.HasAccess)
		assert.Nil(t, res.Value)
	})

	t.Run("feature not on plan", func(t *testing.T) {
		res, err := f.svc.ResolveFeature(context.Background(), f.userId, "offline-mode")
		require.NoError(t, err)
		assert.False(t, res.HasAccess)
	})
}

func TestResolveFeatureWithoutSubscription(t *testing.T) {
	f := newEntitlementFixture(t)

	res, err := f.svc.ResolveFeature(context.Background(), f.userId, "downloads")

	require.NoError(t, err)
	assert.False(t, res.HasAccess)
	assert.Equal(t, "downloads", res.Slug)
}

func TestListFeatures(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addSubscription(entity.SubscriptionStatusTrial, nil)

	features, err := f.svc.ListFeatures(context.Background(), f.userId)

	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "downloads", features[0].Slug)
	assert.True(t, features[0].HasAccess)
	assert.Equal(t, "hd-streaming", features[1].Slug)
}

func TestListFeaturesWithoutSubscription(t *testing.T) {
	f := newEntitlementFixture(t)

	features, err := f.svc.ListFeatures(context.Background(), f.userId)

	require.NoError(t, err)
	assert.Empty(t, features)
}
