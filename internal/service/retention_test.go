package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
	"github.com/pulsehub/activity-feed-api/internal/mocks"
)

// fixedNow keeps window arithmetic deterministic across the suite.
var fixedNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newRetentionService(t *testing.T, tenant *model.Tenant, selfHosted bool) *RetentionService {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(tenant, nil).AnyTimes()
	return NewRetentionService(RetentionServiceOptions{
		Tenants:    repo,
		SelfHosted: selfHosted,
		Now:        func() time.Time { return fixedNow },
	})
}

func proTenant() *model.Tenant {
	return &model.Tenant{
		ID:           "org-1",
		ServiceLevel: model.ServiceLevelPro,
		CreatedAt:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRetentionResolveDefaultWindow(t *testing.T) {
	svc := newRetentionService(t, proTenant(), false)

	window, err := svc.Resolve(context.Background(), "org-1", "", "")
	require.NoError(t, err)

	assert.Equal(t, fixedNow.Add(-90*24*time.Hour), window.After)
	assert.Equal(t, fixedNow, window.Before)
}

func TestRetentionResolvePassThroughBounds(t *testing.T) {
	svc := newRetentionService(t, proTenant(), false)

	after := fixedNow.Add(-48 * time.Hour)
	before := fixedNow.Add(-24 * time.Hour)
	window, err := svc.Resolve(context.Background(), "org-1",
		after.Format(time.RFC3339), before.Format(time.RFC3339))
	require.NoError(t, err)

	assert.True(t, window.After.Equal(after))
	assert.True(t, window.Before.Equal(before))
}

func TestRetentionResolveInvertedRange(t *testing.T) {
	svc := newRetentionService(t, proTenant(), false)

	_, err := svc.Resolve(context.Background(), "org-1",
		fixedNow.Add(-time.Hour).Format(time.RFC3339),
		fixedNow.Add(-2*time.Hour).Format(time.RFC3339))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRetentionResolveMalformedBound(t *testing.T) {
	svc := newRetentionService(t, proTenant(), false)

	_, err := svc.Resolve(context.Background(), "org-1", "yesterday", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "after", appErr.Field)
}

func TestRetentionResolveExceeded(t *testing.T) {
	svc := newRetentionService(t, proTenant(), false)

	// Two hours past the 90-day allowance, outside the one-hour grace.
	after := fixedNow.Add(-90*24*time.Hour - 2*time.Hour)
	_, err := svc.Resolve(context.Background(), "org-1", after.Format(time.RFC3339), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsRetentionExceeded(err))
	assert.Contains(t, err.Error(), fixedNow.Add(-90*24*time.Hour).Format(time.RFC3339))
}

func TestRetentionResolveGraceBuffer(t *testing.T) {
	svc := newRetentionService(t, proTenant(), false)

	// Thirty minutes past the allowance is still inside the grace buffer.
	after := fixedNow.Add(-90*24*time.Hour - 30*time.Minute)
	window, err := svc.Resolve(context.Background(), "org-1", after.Format(time.RFC3339), "")
	require.NoError(t, err)
	assert.True(t, window.After.Equal(after.UTC()))
}

func TestRetentionResolveSelfHosted(t *testing.T) {
	svc := newRetentionService(t, &model.Tenant{
		ID:           "org-1",
		ServiceLevel: model.ServiceLevelFree,
		CreatedAt:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}, true)

	// Years outside any tier allowance, fine on self-hosted.
	after := fixedNow.Add(-5 * 365 * 24 * time.Hour)
	window, err := svc.Resolve(context.Background(), "org-1", after.Format(time.RFC3339), "")
	require.NoError(t, err)
	assert.True(t, window.After.Equal(after.UTC()))
}

func TestRetentionResolveFreeTierByCreationDate(t *testing.T) {
	legacyFree := &model.Tenant{
		ID:           "org-legacy",
		ServiceLevel: model.ServiceLevelFree,
		CreatedAt:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	modernFree := &model.Tenant{
		ID:           "org-modern",
		ServiceLevel: model.ServiceLevelFree,
		CreatedAt:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("pre-cutover tenant keeps 30 days", func(t *testing.T) {
		svc := newRetentionService(t, legacyFree, false)

		after := fixedNow.Add(-29 * 24 * time.Hour)
		_, err := svc.Resolve(context.Background(), "org-legacy", after.Format(time.RFC3339), "")
		require.NoError(t, err)

		after = fixedNow.Add(-31*24*time.Hour - 2*time.Hour)
		_, err = svc.Resolve(context.Background(), "org-legacy", after.Format(time.RFC3339), "")
		require.Error(t, err)
		assert.True(t, apperrors.IsRetentionExceeded(err))
	})

	t.Run("post-cutover tenant gets 24 hours", func(t *testing.T) {
		svc := newRetentionService(t, modernFree, false)

		after := fixedNow.Add(-12 * time.Hour)
		_, err := svc.Resolve(context.Background(), "org-modern", after.Format(time.RFC3339), "")
		require.NoError(t, err)

		after = fixedNow.Add(-48 * time.Hour)
		_, err = svc.Resolve(context.Background(), "org-modern", after.Format(time.RFC3339), "")
		require.Error(t, err)
		assert.True(t, apperrors.IsRetentionExceeded(err))
	})
}

func TestRetentionResolveUnknownTierFallsBackToEnterprise(t *testing.T) {
	svc := newRetentionService(t, &model.Tenant{
		ID:           "org-1",
		ServiceLevel: model.ServiceLevel("platinum"),
		CreatedAt:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}, false)

	window, err := svc.Resolve(context.Background(), "org-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(-365*24*time.Hour), window.After)
}

func TestRetentionResolveTenantMissing(t *testing.T) {
	svc := newRetentionService(t, nil, false)

	_, err := svc.Resolve(context.Background(), "org-ghost", "", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsIntegrity(err))
}

func TestRetentionResolveRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), "org-1").Return(nil, errors.New("connection refused"))

	svc := NewRetentionService(RetentionServiceOptions{
		Tenants: repo,
		Now:     func() time.Time { return fixedNow },
	})

	_, err := svc.Resolve(context.Background(), "org-1", "", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}
