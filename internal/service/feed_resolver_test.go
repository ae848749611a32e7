package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
	"github.com/pulsehub/activity-feed-api/internal/mocks/feedstore"
)

type resolverFixture struct {
	legacy *feedstore.StubLegacyFeedRepository
	runs   *feedstore.StubWorkflowRunRepository
	steps  *feedstore.StubStepRunRepository
	traces *feedstore.StubTraceLogRepository
	flags  *feedstore.StaticFlagService
}

func newResolverFixture(flags map[string]bool) *resolverFixture {
	return &resolverFixture{
		legacy: &feedstore.StubLegacyFeedRepository{},
		runs:   &feedstore.StubWorkflowRunRepository{},
		steps:  &feedstore.StubStepRunRepository{},
		traces: &feedstore.StubTraceLogRepository{},
		flags:  &feedstore.StaticFlagService{Flags: flags},
	}
}

func (f *resolverFixture) resolver() *FeedResolver {
	return NewFeedResolver(FeedResolverOptions{
		Legacy:   f.legacy,
		Runs:     f.runs,
		Steps:    f.steps,
		Enricher: NewTraceEnricher(TraceEnricherOptions{Traces: f.traces}),
		Flags:    f.flags,
	})
}

func allTierFlags() map[string]bool {
	return map[string]bool{
		FlagWorkflowRunReads: true,
		FlagStepRunReads:     true,
		FlagTraceLogReads:    true,
	}
}

var resolverBase = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func sampleRunRow() *model.WorkflowRunRow {
	return &model.WorkflowRunRow{
		RunID:          "n-1",
		OrganizationID: "org-1",
		EnvironmentID:  "env-1",
		WorkflowID:     "wf-1",
		WorkflowName:   "Order shipped",
		SubscriberID:   "sub-1",
		TransactionID:  "txn-1",
		Status:         "completed",
		SubscriberJSON: `{"_id":"sub-1","email":"ada@example.com"}`,
		PayloadJSON:    `{"orderId":"o-9"}`,
		ChannelsJSON:   `["email"]`,
		CreatedAt:      resolverBase,
		UpdatedAt:      resolverBase.Add(time.Minute),
	}
}

func sampleStepRows() []model.StepRunRow {
	return []model.StepRunRow{
		{
			StepRunID:     "sr-1",
			RunID:         "n-1",
			TransactionID: "txn-1",
			StepID:        "step-email",
			StepName:      "Send email",
			StepType:      "email",
			ProviderID:    "sendgrid",
			Status:        "completed",
			CreatedAt:     resolverBase,
			UpdatedAt:     resolverBase.Add(30 * time.Second),
		},
	}
}

func sampleDocument() *model.RawFeedDocument {
	return &model.RawFeedDocument{
		ID:             "n-1",
		OrganizationID: "org-1",
		EnvironmentID:  "env-1",
		TransactionID:  "txn-1",
		Jobs: []model.RawJobDocument{
			{ID: "job-1", Status: "completed", ProviderID: "sendgrid", Type: "email"},
		},
		CreatedAt: resolverBase,
		UpdatedAt: resolverBase.Add(time.Minute),
	}
}

func TestResolveByIDWorkflowRunTier(t *testing.T) {
	f := newResolverFixture(allTierFlags())
	f.runs.LatestFunc = func(_ context.Context, _ model.TenantScope, runID string) (*model.WorkflowRunRow, error) {
		assert.Equal(t, "n-1", runID)
		return sampleRunRow(), nil
	}
	f.steps.ListFunc = func(_ context.Context, _ model.TenantScope, transactionID string) ([]model.StepRunRow, error) {
		assert.Equal(t, "txn-1", transactionID)
		return sampleStepRows(), nil
	}
	f.traces.ListFunc = func(_ context.Context, _ model.TenantScope, ids []string) ([]model.TraceRow, error) {
		assert.Equal(t, []string{"sr-1"}, ids)
		return []model.TraceRow{
			{ID: "t-1", EntityID: "sr-1", Title: "Delivered", Status: "completed", CreatedAt: resolverBase},
		}, nil
	}

	rec, err := f.resolver().ResolveByID(context.Background(), testScope, "n-1")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "n-1", rec.ID)
	assert.Equal(t, "wf-1", rec.TemplateID)
	require.NotNil(t, rec.Subscriber)
	assert.Equal(t, "ada@example.com", rec.Subscriber.Email)
	assert.Equal(t, []string{"email"}, rec.Channels)

	require.Len(t, rec.Jobs, 1)
	job := rec.Jobs[0]
	assert.Equal(t, "sr-1", job.ID)
	assert.Equal(t, model.JobStatusSuccess, job.Status)
	require.Len(t, job.ExecutionDetails, 1)
	assert.Equal(t, "Delivered", job.ExecutionDetails[0].Detail)

	// The richest tier answered, so the legacy store stays untouched.
	assert.Equal(t, 0, f.legacy.FullCalls)
	assert.Equal(t, 0, f.legacy.EnvelopeCalls)
}

func TestResolveByIDStepRunProviderOverlay(t *testing.T) {
	f := newResolverFixture(allTierFlags())
	f.runs.LatestFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.WorkflowRunRow, error) {
		return sampleRunRow(), nil
	}
	f.steps.ListFunc = func(_ context.Context, _ model.TenantScope, _ string) ([]model.StepRunRow, error) {
		return sampleStepRows(), nil
	}
	f.traces.ListFunc = func(_ context.Context, _ model.TenantScope, _ []string) ([]model.TraceRow, error) {
		// Trace rows carry no provider metadata of their own.
		return []model.TraceRow{{ID: "t-1", EntityID: "sr-1", Status: "completed"}}, nil
	}

	rec, err := f.resolver().ResolveByID(context.Background(), testScope, "n-1")
	require.NoError(t, err)
	require.Len(t, rec.Jobs, 1)
	require.Len(t, rec.Jobs[0].ExecutionDetails, 1)
	assert.Equal(t, "sendgrid", rec.Jobs[0].ExecutionDetails[0].ProviderID)
}

func TestResolveByIDFallsBackOnTierError(t *testing.T) {
	f := newResolverFixture(allTierFlags())
	f.runs.LatestFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.WorkflowRunRow, error) {
		return nil, errors.New("workflow-run store timeout")
	}
	f.legacy.GetEnvelopeFunc = func(_ context.Context, _ model.TenantScope, id string) (*model.RawFeedDocument, error) {
		doc := sampleDocument()
		doc.Jobs = nil
		return doc, nil
	}
	f.steps.ListFunc = func(_ context.Context, _ model.TenantScope, _ string) ([]model.StepRunRow, error) {
		return sampleStepRows(), nil
	}
	f.traces.ListFunc = func(_ context.Context, _ model.TenantScope, _ []string) ([]model.TraceRow, error) {
		return nil, nil
	}

	rec, err := f.resolver().ResolveByID(context.Background(), testScope, "n-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "n-1", rec.ID)
	require.Len(t, rec.Jobs, 1)
	assert.Equal(t, "sr-1", rec.Jobs[0].ID)
}

func TestResolveByIDFallsBackOnMissingData(t *testing.T) {
	f := newResolverFixture(allTierFlags())
	// Every analytical tier is empty; only the legacy document exists.
	f.legacy.GetFullFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.RawFeedDocument, error) {
		return sampleDocument(), nil
	}

	rec, err := f.resolver().ResolveByID(context.Background(), testScope, "n-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Len(t, rec.Jobs, 1)
	assert.Equal(t, "job-1", rec.Jobs[0].ID)
	assert.Equal(t, model.JobStatusSuccess, rec.Jobs[0].Status)
}

func TestResolveByIDEntryTierSelection(t *testing.T) {
	cases := []struct {
		name       string
		flags      map[string]bool
		wantRuns   int
		wantSteps  int
		wantTraces int
	}{
		{
			name:       "no flags goes straight to legacy",
			flags:      nil,
			wantRuns:   0,
			wantSteps:  0,
			wantTraces: 0,
		},
		{
			name:       "trace flag alone starts at trace tier",
			flags:      map[string]bool{FlagTraceLogReads: true},
			wantRuns:   0,
			wantSteps:  0,
			wantTraces: 1,
		},
		{
			name:       "step and trace flags start at step tier",
			flags:      map[string]bool{FlagStepRunReads: true, FlagTraceLogReads: true},
			wantRuns:   0,
			wantSteps:  1,
			wantTraces: 1,
		},
		{
			// The workflow-run flag alone cannot move the entry past the
			// tiers its prerequisites gate.
			name:       "workflow flag without the rest stays on legacy",
			flags:      map[string]bool{FlagWorkflowRunReads: true},
			wantRuns:   0,
			wantSteps:  0,
			wantTraces: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newResolverFixture(tc.flags)
			f.legacy.GetFullFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.RawFeedDocument, error) {
				return sampleDocument(), nil
			}
			f.legacy.GetEnvelopeFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.RawFeedDocument, error) {
				return sampleDocument(), nil
			}
			f.steps.ListFunc = func(_ context.Context, _ model.TenantScope, _ string) ([]model.StepRunRow, error) {
				return sampleStepRows(), nil
			}

			_, err := f.resolver().ResolveByID(context.Background(), testScope, "n-1")
			require.NoError(t, err)

			assert.Equal(t, tc.wantRuns, f.runs.Calls, "workflow-run store calls")
			assert.Equal(t, tc.wantSteps, f.steps.Calls, "step-run store calls")
			assert.Equal(t, tc.wantTraces, f.traces.Calls, "trace store calls")
		})
	}
}

func TestResolveByIDNotFound(t *testing.T) {
	f := newResolverFixture(allTierFlags())

	rec, err := f.resolver().ResolveByID(context.Background(), testScope, "n-missing")
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestResolveByIDTerminalTierErrorSurfaces(t *testing.T) {
	f := newResolverFixture(nil)
	f.legacy.GetFullFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.RawFeedDocument, error) {
		return nil, errors.New("mongo primary unreachable")
	}

	_, err := f.resolver().ResolveByID(context.Background(), testScope, "n-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestResolveByIDRepeatedCallsAgree(t *testing.T) {
	f := newResolverFixture(allTierFlags())
	f.runs.LatestFunc = func(_ context.Context, _ model.TenantScope, _ string) (*model.WorkflowRunRow, error) {
		return sampleRunRow(), nil
	}
	f.steps.ListFunc = func(_ context.Context, _ model.TenantScope, _ string) ([]model.StepRunRow, error) {
		return sampleStepRows(), nil
	}

	r := f.resolver()
	first, err := r.ResolveByID(context.Background(), testScope, "n-1")
	require.NoError(t, err)
	second, err := r.ResolveByID(context.Background(), testScope, "n-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
