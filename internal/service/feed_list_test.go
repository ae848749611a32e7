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

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
	"github.com/pulsehub/activity-feed-api/internal/mocks"
)

type listFixture struct {
	legacy      *mocks.MockLegacyFeedRepository
	subscribers *mocks.MockSubscriberRepository
	traces      *mocks.MockTraceLogRepository
	flags       *mocks.MockFeatureFlagService
	service     *FeedListService
}

func newListFixture(t *testing.T) *listFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	tenants := mocks.NewMockTenantRepository(ctrl)
	tenants.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(proTenant(), nil).AnyTimes()

	f := &listFixture{
		legacy:      mocks.NewMockLegacyFeedRepository(ctrl),
		subscribers: mocks.NewMockSubscriberRepository(ctrl),
		traces:      mocks.NewMockTraceLogRepository(ctrl),
		flags:       mocks.NewMockFeatureFlagService(ctrl),
	}
	f.service = NewFeedListService(FeedListServiceOptions{
		Retention: NewRetentionService(RetentionServiceOptions{
			Tenants: tenants,
			Now:     func() time.Time { return fixedNow },
		}),
		Legacy:      f.legacy,
		Subscribers: f.subscribers,
		Enricher:    NewTraceEnricher(TraceEnricherOptions{Traces: f.traces}),
		Flags:       f.flags,
	})
	return f
}

func (f *listFixture) expectEnrichmentFlag(on bool) {
	f.flags.EXPECT().
		GetFlag(gomock.Any(), FlagListTraceEnrichment, false, gomock.Any()).
		Return(on).
		AnyTimes()
}

func listDocs(n int) []*model.RawFeedDocument {
	docs := make([]*model.RawFeedDocument, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, &model.RawFeedDocument{
			ID:             "n-" + string(rune('a'+i)),
			OrganizationID: "org-1",
			EnvironmentID:  "env-1",
			Jobs: []model.RawJobDocument{
				{ID: "job-" + string(rune('a'+i)), Status: "completed"},
			},
			CreatedAt: fixedNow.Add(-time.Duration(i) * time.Hour),
		})
	}
	return docs
}

func TestFeedListDefaults(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(false)

	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error) {
			assert.Equal(t, 10, p.Limit)
			assert.Equal(t, 0, p.Offset)
			assert.Equal(t, fixedNow, p.Window.Before)
			return listDocs(3), nil
		})

	page, err := f.service.List(context.Background(), testScope, model.FeedListOptions{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.False(t, page.HasMore)
}

func TestFeedListHasMoreProbe(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(false)

	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error) {
			assert.Equal(t, 3, p.Limit)
			assert.Equal(t, 6, p.Offset)
			return listDocs(3), nil
		})

	page, err := f.service.List(context.Background(), testScope, model.FeedListOptions{Page: 2, Limit: 3})
	require.NoError(t, err)
	// A full page means there may be more; the next page decides.
	assert.True(t, page.HasMore)
}

func TestFeedListLimitClamp(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(false)

	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error) {
			assert.Equal(t, 100, p.Limit)
			return nil, nil
		})

	_, err := f.service.List(context.Background(), testScope, model.FeedListOptions{Limit: 5000})
	require.NoError(t, err)
}

func TestFeedListGhostSubscriberShortCircuits(t *testing.T) {
	f := newListFixture(t)

	f.subscribers.EXPECT().
		SearchIDs(gomock.Any(), "env-1", model.SubscriberQuery{FreeText: "nobody"}).
		Return([]string{}, nil)
	// The feed store must never be queried when nobody can match.

	page, err := f.service.List(context.Background(), testScope, model.FeedListOptions{Search: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.False(t, page.HasMore)
}

func TestFeedListResolvedSubscribersReachStore(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(false)

	f.subscribers.EXPECT().
		SearchIDs(gomock.Any(), "env-1", model.SubscriberQuery{Emails: []string{"ada@example.com"}}).
		Return([]string{"sub-1", "sub-2"}, nil)
	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error) {
			assert.Equal(t, []string{"sub-1", "sub-2"}, p.SubscriberIDs)
			return listDocs(1), nil
		})

	_, err := f.service.List(context.Background(), testScope, model.FeedListOptions{Emails: []string{"ada@example.com"}})
	require.NoError(t, err)
}

func TestFeedListRetentionFailurePropagates(t *testing.T) {
	f := newListFixture(t)

	after := fixedNow.Add(-200 * 24 * time.Hour)
	_, err := f.service.List(context.Background(), testScope, model.FeedListOptions{
		After: after.Format(time.RFC3339),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsRetentionExceeded(err))
}

func TestFeedListSkipsNilDocuments(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(false)

	docs := listDocs(2)
	docs = append(docs, nil)
	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		Return(docs, nil)

	page, err := f.service.List(context.Background(), testScope, model.FeedListOptions{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}

func TestFeedListEnrichment(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(true)

	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		Return(listDocs(2), nil)
	f.traces.EXPECT().
		ListByEntityIDs(gomock.Any(), testScope, []string{"job-a", "job-b"}).
		Return([]model.TraceRow{
			{ID: "t-1", EntityID: "job-a", Title: "Delivered", Status: "completed"},
		}, nil)

	page, err := f.service.List(context.Background(), testScope, model.FeedListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	enriched := page.Data[0].Jobs[0]
	require.Len(t, enriched.ExecutionDetails, 1)
	assert.Equal(t, "Delivered", enriched.ExecutionDetails[0].Detail)

	// Jobs with no trace rows keep their empty detail list.
	assert.Empty(t, page.Data[1].Jobs[0].ExecutionDetails)
}

func TestFeedListEnrichmentFailureDegrades(t *testing.T) {
	f := newListFixture(t)
	f.expectEnrichmentFlag(true)

	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		Return(listDocs(1), nil)
	f.traces.EXPECT().
		ListByEntityIDs(gomock.Any(), testScope, gomock.Any()).
		Return(nil, errors.New("clickhouse unavailable"))

	page, err := f.service.List(context.Background(), testScope, model.FeedListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Empty(t, page.Data[0].Jobs[0].ExecutionDetails)
}

func TestFeedListStoreErrorWraps(t *testing.T) {
	f := newListFixture(t)

	f.legacy.EXPECT().
		ListByFilters(gomock.Any(), testScope, gomock.Any()).
		Return(nil, errors.New("cursor timeout"))

	_, err := f.service.List(context.Background(), testScope, model.FeedListOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}
