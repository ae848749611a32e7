package service

import (
	"context"
	"time"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

const (
	// retentionGrace compensates for clock and execution skew between the
	// caller and the stores when checking the retention floor.
	retentionGrace = time.Hour
	// legacyFreeRetention is the allowance for free tenants created before
	// the cutover date.
	legacyFreeRetention = 30 * 24 * time.Hour
	// unlimitedRetention stands in for "no limit" on self-hosted
	// deployments. Large but finite so date arithmetic stays safe.
	unlimitedRetention = 100 * 365 * 24 * time.Hour
)

// freeTierCutover is the date after which newly created free tenants get the
// reduced free-tier retention instead of the legacy 30-day allowance.
var freeTierCutover = time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)

// tierRetention maps a billing tier to its feed retention allowance.
var tierRetention = map[model.ServiceLevel]time.Duration{
	model.ServiceLevelFree:       24 * time.Hour,
	model.ServiceLevelPro:        90 * 24 * time.Hour,
	model.ServiceLevelTeam:       90 * 24 * time.Hour,
	model.ServiceLevelEnterprise: 365 * 24 * time.Hour,
}

// RetentionServiceOptions groups dependencies for RetentionService.
type RetentionServiceOptions struct {
	Tenants core.TenantRepository
	// SelfHosted disables tier-based retention limits for single-tenant
	// deployments.
	SelfHosted bool
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// RetentionService computes the oldest queryable timestamp for a tenant and
// validates/normalizes a requested time window against it. It is a pure
// function of tenant state plus wall-clock time; it must run before every
// paginated feed query.
type RetentionService struct {
	tenants    core.TenantRepository
	selfHosted bool
	now        func() time.Time
}

// NewRetentionService constructs a new RetentionService.
func NewRetentionService(opts RetentionServiceOptions) *RetentionService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &RetentionService{tenants: opts.Tenants, selfHosted: opts.SelfHosted, now: now}
}

// Resolve validates the requested [after, before] range for the tenant and
// returns the normalized window. Empty bounds default to the widest allowed
// range. A tenant missing from the store is an integrity fault, not a caller
// mistake.
func (s *RetentionService) Resolve(ctx context.Context, tenantID, after, before string) (model.RetentionWindow, error) {
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return model.RetentionWindow{}, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "look up tenant %s", tenantID)
	}
	if tenant == nil {
		return model.RetentionWindow{}, apperrors.Integrityf("tenant %s not found", tenantID)
	}

	maxRetention := s.maxRetention(tenant)
	now := s.now().UTC()

	afterTime, err := parseBound("after", after)
	if err != nil {
		return model.RetentionWindow{}, err
	}
	beforeTime, err := parseBound("before", before)
	if err != nil {
		return model.RetentionWindow{}, err
	}

	if afterTime.IsZero() {
		afterTime = now.Add(-maxRetention)
	}
	if beforeTime.IsZero() {
		beforeTime = now
	}
	if afterTime.After(beforeTime) {
		return model.RetentionWindow{}, apperrors.Validationf(
			"invalid date range: after %s is later than before %s",
			afterTime.Format(time.RFC3339), beforeTime.Format(time.RFC3339))
	}

	if maxRetention != unlimitedRetention {
		earliest := now.Add(-maxRetention)
		floor := earliest.Add(-retentionGrace)
		if afterTime.Before(floor) || beforeTime.Before(floor) {
			return model.RetentionWindow{}, apperrors.RetentionExceededf(
				"requested range exceeds the plan's retention; earliest accessible date is %s",
				earliest.Format(time.RFC3339))
		}
	}

	return model.RetentionWindow{After: afterTime, Before: beforeTime}, nil
}

// maxRetention resolves the retention allowance for a tenant. Self-hosted
// deployments are effectively unlimited; free tenants created before the
// cutover keep the legacy 30-day allowance.
func (s *RetentionService) maxRetention(tenant *model.Tenant) time.Duration {
	if s.selfHosted {
		return unlimitedRetention
	}
	if tenant.ServiceLevel == model.ServiceLevelFree && tenant.CreatedAt.Before(freeTierCutover) {
		return legacyFreeRetention
	}
	if d, ok := tierRetention[tenant.ServiceLevel]; ok {
		return d
	}
	// Unknown tiers fall back to the most permissive paid allowance rather
	// than locking a tenant out of its own data.
	return tierRetention[model.ServiceLevelEnterprise]
}

// parseBound parses an optional ISO-8601 bound. An empty value yields the
// zero time; an unparsable value is a field-level validation error.
func parseBound(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.ValidationField(field, "must be an ISO-8601 timestamp")
	}
	return t.UTC(), nil
}
