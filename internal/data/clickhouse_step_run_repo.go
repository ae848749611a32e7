package data

import (
	"context"
	"fmt"
	"sort"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

const stepRunColumns = "step_run_id, run_id, organization_id, environment_id, transaction_id, " +
	"step_id, step_name, step_type, provider_id, status, created_at, updated_at, seq"

// StepRunRepo implements the StepRunRepository port over the step_runs
// ReplacingMergeTree table.
type StepRunRepo struct {
	Conn driver.Conn
}

// ListByTransactionID returns the step-run rows for a transaction with
// duplicate writes per logical step collapsed to the latest one, ordered by
// creation time ascending.
func (r *StepRunRepo) ListByTransactionID(ctx context.Context, scope model.TenantScope, transactionID string) ([]model.StepRunRow, error) {
	if transactionID == "" {
		return nil, ErrTransactionIDRequired
	}
	query := `
		SELECT ` + stepRunColumns + `
		FROM step_runs FINAL
		WHERE organization_id = ? AND environment_id = ? AND transaction_id = ?
		ORDER BY updated_at DESC, seq DESC
	`

	var rows []model.StepRunRow
	if err := r.Conn.Select(ctx, &rows, query, scope.OrganizationID, scope.EnvironmentID, transactionID); err != nil {
		return nil, fmt.Errorf("query step runs for transaction %s: %w", transactionID, err)
	}
	return dedupeStepRuns(rows), nil
}

// dedupeStepRuns keeps one row per logical step. Input is ordered
// (updated_at, seq) descending, so the first occurrence is the latest write
// and identical timestamps break toward the higher insert sequence. The
// survivors are re-sorted by creation time so jobs read in execution order.
func dedupeStepRuns(rows []model.StepRunRow) []model.StepRunRow {
	seen := make(map[string]struct{}, len(rows))
	out := make([]model.StepRunRow, 0, len(rows))
	for _, row := range rows {
		key := row.StepID
		if key == "" {
			key = row.StepRunID
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
