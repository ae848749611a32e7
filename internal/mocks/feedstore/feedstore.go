package feedstore

// Package feedstore contains simple hand-written test doubles for the feed
// store ports. These are lightweight and suitable for unit tests without
// codegen; assign the Func fields to control behavior per test.

import (
	"context"

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// Ensure compile-time conformance to the core ports.
var (
	_ core.LegacyFeedRepository  = (*StubLegacyFeedRepository)(nil)
	_ core.WorkflowRunRepository = (*StubWorkflowRunRepository)(nil)
	_ core.StepRunRepository     = (*StubStepRunRepository)(nil)
	_ core.TraceLogRepository    = (*StubTraceLogRepository)(nil)
	_ core.FeatureFlagService    = (*StaticFlagService)(nil)
)

// StubLegacyFeedRepository stubs the legacy document store. Unset funcs
// behave as an empty store.
type StubLegacyFeedRepository struct {
	GetFullFunc     func(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error)
	GetEnvelopeFunc func(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error)
	ListFunc        func(ctx context.Context, scope model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error)

	FullCalls     int
	EnvelopeCalls int
	ListCalls     int
}

func (s *StubLegacyFeedRepository) GetFullByID(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error) {
	s.FullCalls++
	if s.GetFullFunc != nil {
		return s.GetFullFunc(ctx, scope, id)
	}
	return nil, nil
}

func (s *StubLegacyFeedRepository) GetEnvelopeByID(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error) {
	s.EnvelopeCalls++
	if s.GetEnvelopeFunc != nil {
		return s.GetEnvelopeFunc(ctx, scope, id)
	}
	return nil, nil
}

func (s *StubLegacyFeedRepository) ListByFilters(ctx context.Context, scope model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error) {
	s.ListCalls++
	if s.ListFunc != nil {
		return s.ListFunc(ctx, scope, p)
	}
	return nil, nil
}

// StubWorkflowRunRepository stubs the workflow-run analytical store.
type StubWorkflowRunRepository struct {
	LatestFunc func(ctx context.Context, scope model.TenantScope, runID string) (*model.WorkflowRunRow, error)

	Calls int
}

func (s *StubWorkflowRunRepository) LatestByRunID(ctx context.Context, scope model.TenantScope, runID string) (*model.WorkflowRunRow, error) {
	s.Calls++
	if s.LatestFunc != nil {
		return s.LatestFunc(ctx, scope, runID)
	}
	return nil, nil
}

// StubStepRunRepository stubs the step-run analytical store.
type StubStepRunRepository struct {
	ListFunc func(ctx context.Context, scope model.TenantScope, transactionID string) ([]model.StepRunRow, error)

	Calls int
}

func (s *StubStepRunRepository) ListByTransactionID(ctx context.Context, scope model.TenantScope, transactionID string) ([]model.StepRunRow, error) {
	s.Calls++
	if s.ListFunc != nil {
		return s.ListFunc(ctx, scope, transactionID)
	}
	return nil, nil
}

// StubTraceLogRepository stubs the trace log analytical store.
type StubTraceLogRepository struct {
	ListFunc func(ctx context.Context, scope model.TenantScope, entityIDs []string) ([]model.TraceRow, error)

	Calls int
}

func (s *StubTraceLogRepository) ListByEntityIDs(ctx context.Context, scope model.TenantScope, entityIDs []string) ([]model.TraceRow, error) {
	s.Calls++
	if s.ListFunc != nil {
		return s.ListFunc(ctx, scope, entityIDs)
	}
	return nil, nil
}

// StaticFlagService answers flag lookups from a fixed map, falling back to
// the caller's default for unknown keys.
type StaticFlagService struct {
	Flags map[string]bool
}

func (s *StaticFlagService) GetFlag(_ context.Context, key string, def bool, _ model.TenantScope) bool {
	if v, ok := s.Flags[key]; ok {
		return v
	}
	return def
}
