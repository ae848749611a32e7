package service

import (
	"context"
	"log/slog"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// FeedListServiceOptions groups dependencies for FeedListService.
type FeedListServiceOptions struct {
	Retention   *RetentionService
	Legacy      core.LegacyFeedRepository
	Subscribers core.SubscriberRepository
	Enricher    *TraceEnricher
	Flags       core.FeatureFlagService
	Logger      *slog.Logger
}

// FeedListService answers paginated multi-record feed listings. Unlike the
// single-record resolver it has two tiers only: the legacy document store,
// optionally enriched with the trace log store when the list-enrichment flag
// is on. Enrichment failure degrades the page, it never fails it.
type FeedListService struct {
	retention   *RetentionService
	legacy      core.LegacyFeedRepository
	subscribers core.SubscriberRepository
	enricher    *TraceEnricher
	flags       core.FeatureFlagService
	logger      *slog.Logger
}

// NewFeedListService constructs a new FeedListService.
func NewFeedListService(opts FeedListServiceOptions) *FeedListService {
	return &FeedListService{
		retention:   opts.Retention,
		legacy:      opts.Legacy,
		subscribers: opts.Subscribers,
		enricher:    opts.Enricher,
		flags:       opts.Flags,
		logger:      resolveLogger(opts.Logger),
	}
}

// List returns one page of feed records matching the filter set. Retention
// validation runs first and its failures propagate unchanged. Subscriber
// predicates are resolved to a concrete id set before the feed store is
// queried; a resolution that matches nobody short-circuits to an empty page.
func (s *FeedListService) List(ctx context.Context, scope model.TenantScope, opts model.FeedListOptions) (*model.FeedPage, error) {
	window, err := s.retention.Resolve(ctx, scope.OrganizationID, opts.After, opts.Before)
	if err != nil {
		return nil, err
	}

	opts = normalizeListOptions(opts)

	var resolvedSubscribers []string
	if opts.NeedsResolution() {
		ids, err := s.subscribers.SearchIDs(ctx, scope.EnvironmentID, model.SubscriberQuery{
			IDs:      opts.SubscriberIDs,
			Emails:   opts.Emails,
			FreeText: opts.Search,
		})
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "resolve subscriber filters")
		}
		if len(ids) == 0 {
			// No subscriber can match, so no record can either.
			return &model.FeedPage{Data: []model.FeedRecord{}, HasMore: false}, nil
		}
		resolvedSubscribers = ids
	}

	docs, err := s.legacy.ListByFilters(ctx, scope, core.ListByFiltersParams{
		Options:       opts,
		Window:        window,
		SubscriberIDs: resolvedSubscribers,
		Offset:        opts.Page * opts.Limit,
		Limit:         opts.Limit,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "list feed records")
	}

	records := make([]model.FeedRecord, 0, len(docs))
	for _, doc := range docs {
		// The legacy store can return sparse arrays; skip holes instead of
		// projecting them.
		if doc == nil {
			continue
		}
		records = append(records, projectDocument(doc))
	}

	if s.flags.GetFlag(ctx, FlagListTraceEnrichment, false, scope) {
		s.enrichRecords(ctx, scope, records)
	}

	return &model.FeedPage{
		Data:    records,
		HasMore: len(docs) == opts.Limit,
	}, nil
}

// enrichRecords splices trace-log execution details onto every job across
// the page in one batched join. Failure logs and leaves the page
// un-enriched.
func (s *FeedListService) enrichRecords(ctx context.Context, scope model.TenantScope, records []model.FeedRecord) {
	jobIDs := make([]string, 0)
	for i := range records {
		for _, job := range records[i].Jobs {
			jobIDs = append(jobIDs, job.ID)
		}
	}

	details, err := s.enricher.Enrich(ctx, scope, jobIDs)
	if err != nil {
		s.logger.WarnContext(ctx, "feed list enrichment failed, returning un-enriched page",
			"organization_id", scope.OrganizationID,
			"environment_id", scope.EnvironmentID,
			"job_count", len(jobIDs),
			"error", err)
		return
	}

	for i := range records {
		jobs := records[i].Jobs
		for j := range jobs {
			if ds, ok := details[jobs[j].ID]; ok {
				jobs[j].ExecutionDetails = ds
			}
		}
	}
}

// normalizeListOptions applies page/limit guardrails.
func normalizeListOptions(opts model.FeedListOptions) model.FeedListOptions {
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	if opts.Limit > maxListLimit {
		opts.Limit = maxListLimit
	}
	if opts.Page < 0 {
		opts.Page = 0
	}
	return opts
}
