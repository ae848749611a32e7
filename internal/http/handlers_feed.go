package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
	"github.com/pulsehub/activity-feed-api/internal/service"
)

// Tenant scope headers. Authentication and permission enforcement happen
// upstream; these handlers trust the scope the gateway injected.
const (
	headerOrganizationID = "X-Organization-Id"
	headerEnvironmentID  = "X-Environment-Id"
)

// FeedHandlers provides HTTP handlers for activity feed reads.
type FeedHandlers struct {
	Resolver *service.FeedResolver
	Lists    *service.FeedListService
}

// GetActivity handles GET /api/activity/{id}: one notification's full
// execution history.
func (h *FeedHandlers) GetActivity(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("notification id is required")})
		return
	}

	rec, err := h.Resolver.ResolveByID(r.Context(), scope, id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

// ListActivities handles GET /api/activity: a filtered, paginated listing.
func (h *FeedHandlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := model.FeedListOptions{
		Channels:      splitQueryList(q.Get("channels")),
		TemplateIDs:   splitQueryList(q.Get("templates")),
		SubscriberIDs: splitQueryList(q.Get("subscriberIds")),
		Emails:        splitQueryList(q.Get("emails")),
		Search:        q.Get("search"),
		TransactionID: q.Get("transactionId"),
		TopicKey:      q.Get("topicKey"),
		Severity:      q.Get("severity"),
		After:         q.Get("after"),
		Before:        q.Get("before"),
		Page:          parseIntQuery(r, "page", 0),
		Limit:         parseIntQuery(r, "limit", 0),
	}

	page, err := h.Lists.List(r.Context(), scope, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// scopeFromRequest extracts the tenant scope headers, writing a 400 when
// either is missing.
func scopeFromRequest(w http.ResponseWriter, r *http.Request) (model.TenantScope, bool) {
	scope := model.TenantScope{
		OrganizationID: strings.TrimSpace(r.Header.Get(headerOrganizationID)),
		EnvironmentID:  strings.TrimSpace(r.Header.Get(headerEnvironmentID)),
	}
	if scope.OrganizationID == "" || scope.EnvironmentID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_scope",
			Err:     errors.New("organization and environment headers are required"),
		})
		return model.TenantScope{}, false
	}
	return scope, true
}

// splitQueryList splits a comma-separated query value, dropping empties.
func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
