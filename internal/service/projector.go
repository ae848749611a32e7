package service

import (
	"encoding/json"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

// This file is the response projector: pure mapping from whichever internal
// record shape a tier produced onto the stable external FeedRecord shape.
// Missing optional sub-objects become empty defaults; the output never
// carries nil where the shape promises an array or object.

// projectDocument maps a legacy feed document onto the external shape.
func projectDocument(doc *model.RawFeedDocument) model.FeedRecord {
	rec := model.FeedRecord{
		ID:             doc.ID,
		OrganizationID: doc.OrganizationID,
		EnvironmentID:  doc.EnvironmentID,
		TemplateID:     doc.TemplateID,
		SubscriberID:   doc.SubscriberID,
		TransactionID:  doc.TransactionID,
		Subscriber:     doc.Subscriber,
		Template:       doc.Template,
		Payload:        orEmptyObject(doc.Payload),
		To:             orEmptyObject(doc.To),
		Jobs:           make([]model.JobRecord, 0, len(doc.Jobs)),
		Channels:       orEmptyList(doc.Channels),
		Topics:         orEmptyTopics(doc.Topics),
		Severity:       doc.Severity,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
	for _, j := range doc.Jobs {
		rec.Jobs = append(rec.Jobs, projectJob(j))
	}
	return rec
}

// projectJob maps an embedded legacy job onto the external shape.
func projectJob(j model.RawJobDocument) model.JobRecord {
	return model.JobRecord{
		ID:               j.ID,
		Status:           model.ParseJobStatus(j.Status),
		Step:             j.Step,
		ProviderID:       j.ProviderID,
		Type:             j.Type,
		Payload:          orEmptyObject(j.Payload),
		Overrides:        orEmptyObject(j.Overrides),
		ExecutionDetails: []model.ExecutionDetail{},
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

// recordFromWorkflowRun seeds a feed record from a workflow-run row. The
// semi-structured columns hold JSON-encoded sub-objects; absence or a parse
// failure yields the typed empty default, never an error.
func recordFromWorkflowRun(row *model.WorkflowRunRow) model.FeedRecord {
	rec := model.FeedRecord{
		ID:             row.RunID,
		OrganizationID: row.OrganizationID,
		EnvironmentID:  row.EnvironmentID,
		TemplateID:     row.WorkflowID,
		SubscriberID:   row.SubscriberID,
		TransactionID:  row.TransactionID,
		Subscriber:     decodeSubscriber(row.SubscriberJSON),
		Payload:        decodeObject(row.PayloadJSON),
		To:             decodeObject(row.ToJSON),
		Jobs:           []model.JobRecord{},
		Channels:       decodeStringList(row.ChannelsJSON),
		Topics:         decodeTopics(row.TopicsJSON),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.WorkflowID != "" || row.WorkflowName != "" {
		rec.Template = &model.TemplateSummary{ID: row.WorkflowID, Name: row.WorkflowName}
	}
	return rec
}

// jobFromStepRun maps a step-run row plus its joined execution details onto
// a job record. The step-run store does not track payload/overrides, so
// those stay empty objects.
func jobFromStepRun(row model.StepRunRow, details []model.ExecutionDetail) model.JobRecord {
	if details == nil {
		details = []model.ExecutionDetail{}
	}
	return model.JobRecord{
		ID:     row.StepRunID,
		Status: model.ParseJobStatus(row.Status),
		Step: model.StepDescriptor{
			ID:   row.StepID,
			Name: row.StepName,
			Type: row.StepType,
		},
		ProviderID:       row.ProviderID,
		Type:             row.StepType,
		Payload:          map[string]any{},
		Overrides:        map[string]any{},
		ExecutionDetails: details,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func orEmptyObject(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptyList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyTopics(t []model.TopicRef) []model.TopicRef {
	if t == nil {
		return []model.TopicRef{}
	}
	return t
}

// decodeObject parses a JSON-encoded object column, defaulting to an empty
// object on absence or malformed content.
func decodeObject(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// decodeStringList parses a JSON-encoded string array column, defaulting to
// an empty list.
func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// decodeTopics parses a JSON-encoded topic array column, defaulting to an
// empty list.
func decodeTopics(raw string) []model.TopicRef {
	if raw == "" {
		return []model.TopicRef{}
	}
	var out []model.TopicRef
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []model.TopicRef{}
	}
	return out
}

// decodeSubscriber parses a JSON-encoded subscriber snapshot column,
// defaulting to nil (the external shape allows a missing subscriber).
func decodeSubscriber(raw string) *model.SubscriberSummary {
	if raw == "" {
		return nil
	}
	var out model.SubscriberSummary
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	if out == (model.SubscriberSummary{}) {
		return nil
	}
	return &out
}
