//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// FeedRecord is the externally visible representation of one notification /
// workflow run's history. It is assembled per request from whichever backing
// store answered and is never cached or mutated afterwards.
type FeedRecord struct {
	ID             string             `json:"_id"`
	OrganizationID string             `json:"_organizationId"`
	EnvironmentID  string             `json:"_environmentId"`
	TemplateID     string             `json:"_templateId,omitempty"`
	SubscriberID   string             `json:"_subscriberId,omitempty"`
	TransactionID  string             `json:"transactionId"`
	Subscriber     *SubscriberSummary `json:"subscriber,omitempty"`
	Template       *TemplateSummary   `json:"template,omitempty"`
	Payload        map[string]any     `json:"payload"`
	To             map[string]any     `json:"to"`
	Jobs           []JobRecord        `json:"jobs"`
	Channels       []string           `json:"channels"`
	Topics         []TopicRef         `json:"topics"`
	Severity       string             `json:"severity,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// SubscriberSummary is the denormalized subscriber snapshot embedded in a
// feed record.
type SubscriberSummary struct {
	ID           string `json:"_id"`
	SubscriberID string `json:"subscriberId,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// TemplateSummary is the denormalized workflow/template snapshot embedded in
// a feed record.
type TemplateSummary struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name,omitempty"`
	Triggers []string `json:"triggers,omitempty"`
}

// TopicRef identifies a topic a notification was addressed to.
type TopicRef struct {
	ID  string `json:"_topicId,omitempty"`
	Key string `json:"topicKey,omitempty"`
}

// JobRecord is one channel step execution inside a feed record.
type JobRecord struct {
	ID               string            `json:"_id"`
	Status           JobStatus         `json:"status"`
	Step             StepDescriptor    `json:"step"`
	ProviderID       string            `json:"providerId,omitempty"`
	Type             string            `json:"type,omitempty"`
	Payload          map[string]any    `json:"payload"`
	Overrides        map[string]any    `json:"overrides"`
	ExecutionDetails []ExecutionDetail `json:"executionDetails"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// StepDescriptor describes the workflow step a job executed.
type StepDescriptor struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// ExecutionDetail is one fine-grained trace entry attached to a job. Details
// are always constructed fresh from trace rows, never merged across stores.
type ExecutionDetail struct {
	ID         string       `json:"_id"`
	JobID      string       `json:"_jobId"`
	Detail     string       `json:"detail"`
	Source     DetailSource `json:"source"`
	Status     JobStatus    `json:"status"`
	ProviderID string       `json:"providerId,omitempty"`
	IsTest     bool         `json:"isTest"`
	IsRetry    bool         `json:"isRetry"`
	RawPayload string       `json:"raw,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// JobStatus is the fixed status vocabulary for jobs and execution details.
// No other raw store value ever leaks through this enum.
type JobStatus string

const (
	JobStatusSuccess JobStatus = "success"
	JobStatusFailed  JobStatus = "failed"
	JobStatusWarning JobStatus = "warning"
	JobStatusPending JobStatus = "pending"
	JobStatusQueued  JobStatus = "queued"
)

// Valid returns true if the status is one of the fixed vocabulary values.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusSuccess, JobStatusFailed, JobStatusWarning, JobStatusPending, JobStatusQueued:
		return true
	default:
		return false
	}
}

// String returns the string representation of the job status.
func (s JobStatus) String() string {
	return string(s)
}

// ParseJobStatus maps a free-text store status onto the fixed vocabulary.
// Matching is case-insensitive; unrecognized values map to pending so an
// unknown status can never abort a whole feed response.
func ParseJobStatus(raw string) JobStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "success", "completed":
		return JobStatusSuccess
	case "error", "failed":
		return JobStatusFailed
	case "warning":
		return JobStatusWarning
	case "pending":
		return JobStatusPending
	case "queued":
		return JobStatusQueued
	default:
		return JobStatusPending
	}
}

// DetailSource tags where an execution detail originated.
type DetailSource string

const (
	DetailSourceInternal DetailSource = "internal"
	DetailSourceExternal DetailSource = "external"
)

// ParseDetailSource normalizes a raw source tag, defaulting to internal.
func ParseDetailSource(raw string) DetailSource {
	if strings.EqualFold(strings.TrimSpace(raw), string(DetailSourceExternal)) {
		return DetailSourceExternal
	}
	return DetailSourceInternal
}

// FeedPage is one page of feed records plus the page-probe continuation hint.
type FeedPage struct {
	Data    []FeedRecord `json:"data"`
	HasMore bool         `json:"hasMore"`
}

// TenantScope carries the organization/environment pair every store query is
// scoped by.
type TenantScope struct {
	OrganizationID string
	EnvironmentID  string
}
