package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// Feature flag keys selecting which analytical stores feed reads consult.
// Each flag independently enables one tier's data source.
const (
	FlagWorkflowRunReads    = "feed-workflow-run-reads"
	FlagStepRunReads        = "feed-step-run-reads"
	FlagTraceLogReads       = "feed-trace-log-reads"
	FlagListTraceEnrichment = "feed-list-trace-enrichment"
)

// defaultTierTimeout bounds a single tier attempt so a hung store cannot
// stall the whole fallback chain.
const defaultTierTimeout = 10 * time.Second

// FeedResolverOptions groups dependencies for FeedResolver.
type FeedResolverOptions struct {
	Legacy      core.LegacyFeedRepository
	Runs        core.WorkflowRunRepository
	Steps       core.StepRunRepository
	Enricher    *TraceEnricher
	Flags       core.FeatureFlagService
	Logger      *slog.Logger
	TierTimeout time.Duration
}

// FeedResolver answers single-record feed lookups by walking an ordered
// fallback chain of four data sources, richest first: workflow-run store,
// step-run store, trace-log enrichment over the legacy store, and finally
// the legacy store alone. The entry tier is chosen once per request from
// feature flags; each tier falls further down on absence or error, and only
// the terminal tier's failure surfaces to the caller.
type FeedResolver struct {
	legacy      core.LegacyFeedRepository
	runs        core.WorkflowRunRepository
	steps       core.StepRunRepository
	enricher    *TraceEnricher
	flags       core.FeatureFlagService
	logger      *slog.Logger
	tierTimeout time.Duration
}

// NewFeedResolver constructs a new FeedResolver.
func NewFeedResolver(opts FeedResolverOptions) *FeedResolver {
	timeout := opts.TierTimeout
	if timeout <= 0 {
		timeout = defaultTierTimeout
	}
	return &FeedResolver{
		legacy:      opts.Legacy,
		runs:        opts.Runs,
		steps:       opts.Steps,
		enricher:    opts.Enricher,
		flags:       opts.Flags,
		logger:      resolveLogger(opts.Logger),
		tierTimeout: timeout,
	}
}

// tierAttempt is one entry in the ordered fallback chain. A nil record with
// a nil error means "no data here, try the next tier".
type tierAttempt struct {
	name string
	fn   func(ctx context.Context, scope model.TenantScope, id string) (*model.FeedRecord, error)
}

// ResolveByID resolves one notification's feed record. It fails with
// NotFound only after the legacy tier has also found nothing; a non-terminal
// tier error is logged and absorbed by falling through.
func (r *FeedResolver) ResolveByID(ctx context.Context, scope model.TenantScope, id string) (*model.FeedRecord, error) {
	tiers := []tierAttempt{
		{name: "workflow-run", fn: r.tierWorkflowRun},
		{name: "step-run", fn: r.tierStepRun},
		{name: "trace-log", fn: r.tierTraceLog},
		{name: "legacy", fn: r.tierLegacy},
	}

	start := r.entryTier(ctx, scope)
	for i := start; i < len(tiers); i++ {
		rec, err := r.attempt(ctx, tiers[i], scope, id)
		if err != nil {
			if i == len(tiers)-1 {
				return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "legacy feed lookup for %s", id)
			}
			r.logger.WarnContext(ctx, "feed tier failed, falling back",
				"tier", tiers[i].name,
				"next_tier", tiers[i+1].name,
				"notification_id", id,
				"organization_id", scope.OrganizationID,
				"environment_id", scope.EnvironmentID,
				"error", err)
			continue
		}
		if rec == nil {
			if i < len(tiers)-1 {
				r.logger.InfoContext(ctx, "feed tier returned no data, falling back",
					"tier", tiers[i].name,
					"next_tier", tiers[i+1].name,
					"notification_id", id,
					"organization_id", scope.OrganizationID)
			}
			continue
		}
		return rec, nil
	}

	return nil, apperrors.NotFoundf("notification %s not found", id)
}

// attempt runs one tier under the per-tier timeout.
func (r *FeedResolver) attempt(ctx context.Context, tier tierAttempt, scope model.TenantScope, id string) (*model.FeedRecord, error) {
	tierCtx, cancel := context.WithTimeout(ctx, r.tierTimeout)
	defer cancel()
	return tier.fn(tierCtx, scope, id)
}

// entryTier picks the starting tier index from the three enabling flags.
// Flags are evaluated once here; fallback transitions never re-check them.
func (r *FeedResolver) entryTier(ctx context.Context, scope model.TenantScope) int {
	var workflowRuns, stepRuns, traceLogs bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		workflowRuns = r.flags.GetFlag(gctx, FlagWorkflowRunReads, false, scope)
		return nil
	})
	g.Go(func() error {
		stepRuns = r.flags.GetFlag(gctx, FlagStepRunReads, false, scope)
		return nil
	})
	g.Go(func() error {
		traceLogs = r.flags.GetFlag(gctx, FlagTraceLogReads, false, scope)
		return nil
	})
	// The closures only assign; Wait cannot fail.
	_ = g.Wait()

	switch {
	case workflowRuns && stepRuns && traceLogs:
		return 0
	case stepRuns && traceLogs:
		return 1
	case traceLogs:
		return 2
	default:
		return 3
	}
}

// tierWorkflowRun seeds the record from the workflow-run store and attaches
// jobs via step-run enrichment.
func (r *FeedResolver) tierWorkflowRun(ctx context.Context, scope model.TenantScope, id string) (*model.FeedRecord, error) {
	row, err := r.runs.LatestByRunID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("workflow-run lookup: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	rec := recordFromWorkflowRun(row)
	jobs, err := r.stepRunJobs(ctx, scope, row.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("step-run enrichment: %w", err)
	}
	rec.Jobs = jobs
	return &rec, nil
}

// tierStepRun fetches the identity envelope from the legacy store and builds
// jobs from the step-run store.
func (r *FeedResolver) tierStepRun(ctx context.Context, scope model.TenantScope, id string) (*model.FeedRecord, error) {
	envelope, err := r.legacy.GetEnvelopeByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("legacy envelope lookup: %w", err)
	}
	if envelope == nil {
		return nil, nil
	}

	rec := projectDocument(envelope)
	jobs, err := r.stepRunJobs(ctx, scope, envelope.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("step-run enrichment: %w", err)
	}
	rec.Jobs = jobs
	return &rec, nil
}

// stepRunJobs builds job records for a transaction from the step-run store,
// joining execution details in one batched trace query. The step-run row is
// authoritative for provider id and overlays whatever the trace rows carry.
func (r *FeedResolver) stepRunJobs(ctx context.Context, scope model.TenantScope, transactionID string) ([]model.JobRecord, error) {
	rows, err := r.steps.ListByTransactionID(ctx, scope, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list step runs: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.StepRunID)
	}
	details, err := r.enricher.Enrich(ctx, scope, ids)
	if err != nil {
		return nil, err
	}

	jobs := make([]model.JobRecord, 0, len(rows))
	for _, row := range rows {
		ds := details[row.StepRunID]
		for i := range ds {
			ds[i].ProviderID = row.ProviderID
		}
		jobs = append(jobs, jobFromStepRun(row, ds))
	}
	return jobs, nil
}

// tierTraceLog fetches the full legacy record and replaces each embedded
// job's execution details with freshly joined trace rows.
func (r *FeedResolver) tierTraceLog(ctx context.Context, scope model.TenantScope, id string) (*model.FeedRecord, error) {
	doc, err := r.legacy.GetFullByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("legacy feed lookup: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	rec := projectDocument(doc)
	ids := make([]string, 0, len(rec.Jobs))
	for _, job := range rec.Jobs {
		ids = append(ids, job.ID)
	}
	details, err := r.enricher.Enrich(ctx, scope, ids)
	if err != nil {
		return nil, err
	}
	for i := range rec.Jobs {
		if ds, ok := details[rec.Jobs[i].ID]; ok {
			rec.Jobs[i].ExecutionDetails = ds
		}
	}
	return &rec, nil
}

// tierLegacy is the hard floor: the legacy document alone, no enrichment.
func (r *FeedResolver) tierLegacy(ctx context.Context, scope model.TenantScope, id string) (*model.FeedRecord, error) {
	doc, err := r.legacy.GetFullByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("legacy feed lookup: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	rec := projectDocument(doc)
	return &rec, nil
}

// resolveLogger returns the provided logger or the process default.
func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
