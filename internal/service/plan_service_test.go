package service

import (
	"context"
	"testing"

	"ai-stylist-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserUsageStatusFreePlan(t *testing.T) {
	user := testUser()
	user.ScansUsed = 2
	user.WardrobeAddsUsed = 10
	store := newFakeStore(user, nil)
	svc := NewPlanService(&fakeFactory{store: store}, nopLogger{})

	status, err := svc.GetUserUsageStatus(context.Background(), user.Id)

	require.NoError(t, err)
	assert.Equal(t, "free", status.PlanSlug)
	assert.False(t, status.Unlimited)
	assert.Equal(t, 2, status.ScansUsed)
	assert.Equal(t, 3, status.ScansLimit)
	assert.Equal(t, 1, status.ScansRemaining)
	assert.Equal(t, 10, status.AddsUsed)
	assert.Equal(t, 0, status.AddsRemaining, "remaining never goes negative")
}

func TestGetUserUsageStatusUnlimitedPlan(t *testing.T) {
	user := testUser()
	user.ScansUsed = 500
	store := newFakeStore(user, &entity.SubscriptionPlan{
		Name: "Pro", Slug: "pro-monthly", Unlimited: true,
	})
	svc := NewPlanService(&fakeFactory{store: store}, nopLogger{})

	status, err := svc.GetUserUsageStatus(context.Background(), user.Id)

	require.NoError(t, err)
	assert.True(t, status.Unlimited)
	assert.Equal(t, entity.LimitUnlimited, status.ScansLimit)
	assert.Equal(t, entity.LimitUnlimited, status.ScansRemaining)
	assert.Equal(t, 500, status.ScansUsed, "usage still reported")
}

func TestGetUserUsageStatusScanOverride(t *testing.T) {
	override := 20
	user := testUser()
	user.ScanLimitOverride = &override
	user.ScansUsed = 5
	store := newFakeStore(user, nil)
	svc := NewPlanService(&fakeFactory{store: store}, nopLogger{})

	status, err := svc.GetUserUsageStatus(context.Background(), user.Id)

	require.NoError(t, err)
	assert.Equal(t, 20, status.ScansLimit)
	assert.Equal(t, 15, status.ScansRemaining)
}

func TestGetUserUsageStatusUnknownUser(t *testing.T) {
	store := newFakeStore(testUser(), nil)
	svc := NewPlanService(&fakeFactory{store: store}, nopLogger{})

	_, err := svc.GetUserUsageStatus(context.Background(), testUser().Id)

	assert.Error(t, err)
}
