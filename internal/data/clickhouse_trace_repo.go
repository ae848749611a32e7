package data

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// defaultTraceEntityType is the discriminator for step-execution trace rows.
const defaultTraceEntityType = "step_run"

const traceColumns = "id, entity_id, entity_type, organization_id, environment_id, " +
	"title, source, status, is_test, is_retry, raw_data, created_at"

// TraceLogRepo implements the TraceLogRepository port over the
// execution_traces table. Every query carries the fixed entity_type
// discriminator the repo was constructed with.
type TraceLogRepo struct {
	conn       driver.Conn
	entityType string
}

// NewTraceLogRepo creates a TraceLogRepo. An empty entityType selects the
// step-run discriminator.
func NewTraceLogRepo(conn driver.Conn, entityType string) *TraceLogRepo {
	if entityType == "" {
		entityType = defaultTraceEntityType
	}
	return &TraceLogRepo{conn: conn, entityType: entityType}
}

// ListByEntityIDs returns all trace rows for the given entity ids in one
// batched query, ordered by creation time ascending.
func (r *TraceLogRepo) ListByEntityIDs(ctx context.Context, scope model.TenantScope, entityIDs []string) ([]model.TraceRow, error) {
	if len(entityIDs) == 0 {
		return []model.TraceRow{}, nil
	}

	query := `
		SELECT ` + traceColumns + `
		FROM execution_traces
		WHERE organization_id = ? AND environment_id = ? AND entity_type = ? AND entity_id IN (?)
		ORDER BY created_at ASC
	`

	var rows []model.TraceRow
	err := r.conn.Select(ctx, &rows, query, scope.OrganizationID, scope.EnvironmentID, r.entityType, entityIDs)
	if err != nil {
		return nil, fmt.Errorf("query execution traces: %w", err)
	}
	return rows, nil
}
