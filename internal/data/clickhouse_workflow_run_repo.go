package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// workflowRunColumns is the projection shared by workflow-run lookups. The
// semi-structured columns come back as raw JSON strings; parsing happens in
// the service layer with typed defaults.
const workflowRunColumns = "run_id, organization_id, environment_id, workflow_id, workflow_name, " +
	"subscriber_id, transaction_id, status, subscriber, payload, `to`, channels, topics, " +
	"created_at, updated_at, seq"

// WorkflowRunRepo implements the WorkflowRunRepository port over the
// workflow_runs ReplacingMergeTree table.
type WorkflowRunRepo struct {
	Conn driver.Conn
}

// LatestByRunID returns the most recent row for a run id, or (nil, nil) when
// no row exists. FINAL collapses replaced rows server-side; the ORDER BY on
// (updated_at, seq) keeps the tie-break deterministic toward the later
// insert when timestamps collide.
func (r *WorkflowRunRepo) LatestByRunID(ctx context.Context, scope model.TenantScope, runID string) (*model.WorkflowRunRow, error) {
	query := `
		SELECT ` + workflowRunColumns + `
		FROM workflow_runs FINAL
		WHERE organization_id = ? AND environment_id = ? AND run_id = ?
		ORDER BY updated_at DESC, seq DESC
		LIMIT 1
	`

	var row model.WorkflowRunRow
	err := r.Conn.QueryRow(ctx, query, scope.OrganizationID, scope.EnvironmentID, runID).ScanStruct(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query workflow run %s: %w", runID, err)
	}
	return &row, nil
}
