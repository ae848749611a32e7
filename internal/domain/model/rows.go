package model

import "time"

// RawFeedDocument is the legacy document store's shape for one notification.
// Field names mirror the historical document schema; the projector translates
// this into the external FeedRecord shape.
type RawFeedDocument struct {
	ID             string             `bson:"_id"`
	OrganizationID string             `bson:"_organizationId"`
	EnvironmentID  string             `bson:"_environmentId"`
	TemplateID     string             `bson:"_templateId,omitempty"`
	SubscriberID   string             `bson:"_subscriberId,omitempty"`
	TransactionID  string             `bson:"transactionId"`
	Subscriber     *SubscriberSummary `bson:"subscriber,omitempty"`
	Template       *TemplateSummary   `bson:"template,omitempty"`
	Payload        map[string]any     `bson:"payload,omitempty"`
	To             map[string]any     `bson:"to,omitempty"`
	Jobs           []RawJobDocument   `bson:"jobs,omitempty"`
	Channels       []string           `bson:"channels,omitempty"`
	Topics         []TopicRef         `bson:"topics,omitempty"`
	Severity       string             `bson:"severity,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// RawJobDocument is a job embedded in a legacy feed document.
type RawJobDocument struct {
	ID         string         `bson:"_id"`
	Status     string         `bson:"status"`
	Step       StepDescriptor `bson:"step,omitempty"`
	ProviderID string         `bson:"providerId,omitempty"`
	Type       string         `bson:"type,omitempty"`
	Payload    map[string]any `bson:"payload,omitempty"`
	Overrides  map[string]any `bson:"overrides,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt"`
	UpdatedAt  time.Time      `bson:"updatedAt"`
}

// WorkflowRunRow is one row of the workflow-run analytical store. The
// semi-structured columns (SubscriberJSON, PayloadJSON, ...) hold
// JSON-encoded sub-objects and are parsed defensively by the projector.
type WorkflowRunRow struct {
	RunID          string    `ch:"run_id"`
	OrganizationID string    `ch:"organization_id"`
	EnvironmentID  string    `ch:"environment_id"`
	WorkflowID     string    `ch:"workflow_id"`
	WorkflowName   string    `ch:"workflow_name"`
	SubscriberID   string    `ch:"subscriber_id"`
	TransactionID  string    `ch:"transaction_id"`
	Status         string    `ch:"status"`
	SubscriberJSON string    `ch:"subscriber"`
	PayloadJSON    string    `ch:"payload"`
	ToJSON         string    `ch:"to"`
	ChannelsJSON   string    `ch:"channels"`
	TopicsJSON     string    `ch:"topics"`
	CreatedAt      time.Time `ch:"created_at"`
	UpdatedAt      time.Time `ch:"updated_at"`
	Seq            uint64    `ch:"seq"`
}

// StepRunRow is one row of the step-run analytical store. Duplicate writes
// for the same StepRunID collapse to the latest row before it reaches the
// service layer.
type StepRunRow struct {
	StepRunID      string    `ch:"step_run_id"`
	RunID          string    `ch:"run_id"`
	OrganizationID string    `ch:"organization_id"`
	EnvironmentID  string    `ch:"environment_id"`
	TransactionID  string    `ch:"transaction_id"`
	StepID         string    `ch:"step_id"`
	StepName       string    `ch:"step_name"`
	StepType       string    `ch:"step_type"`
	ProviderID     string    `ch:"provider_id"`
	Status         string    `ch:"status"`
	CreatedAt      time.Time `ch:"created_at"`
	UpdatedAt      time.Time `ch:"updated_at"`
	Seq            uint64    `ch:"seq"`
}

// TraceRow is one row of the trace log analytical store.
type TraceRow struct {
	ID             string    `ch:"id"`
	EntityID       string    `ch:"entity_id"`
	EntityType     string    `ch:"entity_type"`
	OrganizationID string    `ch:"organization_id"`
	EnvironmentID  string    `ch:"environment_id"`
	Title          string    `ch:"title"`
	Source         string    `ch:"source"`
	Status         string    `ch:"status"`
	IsTest         bool      `ch:"is_test"`
	IsRetry        bool      `ch:"is_retry"`
	RawData        string    `ch:"raw_data"`
	CreatedAt      time.Time `ch:"created_at"`
}
