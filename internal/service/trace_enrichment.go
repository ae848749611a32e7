package service

import (
	"context"
	"fmt"

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// TraceEnricherOptions groups dependencies for TraceEnricher.
type TraceEnricherOptions struct {
	Traces core.TraceLogRepository
}

// TraceEnricher joins execution trace rows from the analytical log store onto
// feed jobs. Rows for all requested entities are fetched in one batched
// query and grouped client-side; the joiner never loops a query per entity.
type TraceEnricher struct {
	traces core.TraceLogRepository
}

// NewTraceEnricher constructs a new TraceEnricher.
func NewTraceEnricher(opts TraceEnricherOptions) *TraceEnricher {
	return &TraceEnricher{traces: opts.Traces}
}

// Enrich returns execution details grouped by owning entity id. An empty
// input returns an empty map without touching the store. Provider ids are
// left unset; callers holding step-level provider metadata overlay them.
func (e *TraceEnricher) Enrich(ctx context.Context, scope model.TenantScope, entityIDs []string) (map[string][]model.ExecutionDetail, error) {
	if len(entityIDs) == 0 {
		return map[string][]model.ExecutionDetail{}, nil
	}

	rows, err := e.traces.ListByEntityIDs(ctx, scope, entityIDs)
	if err != nil {
		return nil, fmt.Errorf("list trace rows: %w", err)
	}

	grouped := make(map[string][]model.ExecutionDetail, len(entityIDs))
	for _, row := range rows {
		grouped[row.EntityID] = append(grouped[row.EntityID], detailFromTrace(row))
	}
	return grouped, nil
}

// detailFromTrace maps one trace row onto an execution detail, translating
// the store's free-text status into the fixed vocabulary.
func detailFromTrace(row model.TraceRow) model.ExecutionDetail {
	return model.ExecutionDetail{
		ID:         row.ID,
		JobID:      row.EntityID,
		Detail:     row.Title,
		Source:     model.ParseDetailSource(row.Source),
		Status:     model.ParseJobStatus(row.Status),
		IsTest:     row.IsTest,
		IsRetry:    row.IsRetry,
		RawPayload: row.RawData,
		CreatedAt:  row.CreatedAt,
	}
}
