// Package core defines the ports between the feed service layer and the
// backing stores (hexagonal architecture). Service implementations depend on
// these interfaces, never on concrete store clients.
package core

import (
	"context"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// TenantRepository looks up organization metadata for retention policy.
type TenantRepository interface {
	// FindByID returns the tenant or (nil, nil) when it does not exist.
	FindByID(ctx context.Context, id string) (*model.Tenant, error)
}

// SubscriberRepository resolves subscriber filter predicates to a concrete
// id set before the feed store is queried.
type SubscriberRepository interface {
	SearchIDs(ctx context.Context, envID string, q model.SubscriberQuery) ([]string, error)
}

// LegacyFeedRepository is the legacy document store holding full feed
// records with embedded jobs.
type LegacyFeedRepository interface {
	// GetFullByID returns the complete record including embedded jobs, or
	// (nil, nil) when absent.
	GetFullByID(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error)
	// GetEnvelopeByID returns the record without jobs or payload — a cheap
	// existence check plus identity envelope. (nil, nil) when absent.
	GetEnvelopeByID(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error)
	// ListByFilters returns a page of records matching the filter set,
	// newest first. Date bounds come pre-validated from the retention
	// resolver.
	ListByFilters(ctx context.Context, scope model.TenantScope, p ListByFiltersParams) ([]*model.RawFeedDocument, error)
}

// ListByFiltersParams groups the listing arguments to keep param count ≤3.
type ListByFiltersParams struct {
	Options model.FeedListOptions
	Window  model.RetentionWindow
	// SubscriberIDs, when non-nil, replaces any subscriber predicates in
	// Options with an already-resolved id set.
	SubscriberIDs []string
	Offset        int
	Limit         int
}

// WorkflowRunRepository is the workflow-run analytical store.
type WorkflowRunRepository interface {
	// LatestByRunID returns the most recent row for the run id, or
	// (nil, nil) when no row exists.
	LatestByRunID(ctx context.Context, scope model.TenantScope, runID string) (*model.WorkflowRunRow, error)
}

// StepRunRepository is the step-run analytical store.
type StepRunRepository interface {
	// ListByTransactionID returns step-run rows for a transaction with
	// duplicate writes per logical step already collapsed to the latest row.
	ListByTransactionID(ctx context.Context, scope model.TenantScope, transactionID string) ([]model.StepRunRow, error)
}

// TraceLogRepository is the trace log analytical store, scoped by a fixed
// entity_type discriminator per query.
type TraceLogRepository interface {
	// ListByEntityIDs returns all trace rows for the given entity ids,
	// ordered by creation time ascending.
	ListByEntityIDs(ctx context.Context, scope model.TenantScope, entityIDs []string) ([]model.TraceRow, error)
}

// FeatureFlagService evaluates a boolean flag for a tenant scope. Flag
// evaluation must never fail a read: implementations return the supplied
// default on any backend error.
type FeatureFlagService interface {
	GetFlag(ctx context.Context, key string, def bool, scope model.TenantScope) bool
}
