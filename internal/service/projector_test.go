package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

func TestProjectDocumentFillsEmptyDefaults(t *testing.T) {
	rec := projectDocument(&model.RawFeedDocument{
		ID:             "n-1",
		OrganizationID: "org-1",
		EnvironmentID:  "env-1",
	})

	assert.NotNil(t, rec.Payload)
	assert.NotNil(t, rec.To)
	assert.NotNil(t, rec.Jobs)
	assert.NotNil(t, rec.Channels)
	assert.NotNil(t, rec.Topics)

	// The wire shape promises arrays and objects, never null.
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"payload":null`)
	assert.NotContains(t, string(raw), `"jobs":null`)
	assert.NotContains(t, string(raw), `"channels":null`)
}

func TestProjectJobNormalizesStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want model.JobStatus
	}{
		{"completed", model.JobStatusSuccess},
		{"SUCCESS", model.JobStatusSuccess},
		{"error", model.JobStatusFailed},
		{"failed", model.JobStatusFailed},
		{"warning", model.JobStatusWarning},
		{"queued", model.JobStatusQueued},
		{"", model.JobStatusPending},
		{"exploded", model.JobStatusPending},
	}
	for _, tc := range cases {
		job := projectJob(model.RawJobDocument{ID: "job-1", Status: tc.raw})
		assert.Equal(t, tc.want, job.Status, "raw status %q", tc.raw)
	}
}

func TestRecordFromWorkflowRunDecodesColumns(t *testing.T) {
	created := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	rec := recordFromWorkflowRun(&model.WorkflowRunRow{
		RunID:          "n-1",
		OrganizationID: "org-1",
		EnvironmentID:  "env-1",
		WorkflowID:     "wf-1",
		WorkflowName:   "Order shipped",
		SubscriberJSON: `{"_id":"sub-1","firstName":"Ada","email":"ada@example.com"}`,
		PayloadJSON:    `{"orderId":"o-9","amount":12.5}`,
		ToJSON:         `{"email":"ada@example.com"}`,
		ChannelsJSON:   `["email","sms"]`,
		TopicsJSON:     `[{"_topicId":"top-1","topicKey":"orders"}]`,
		CreatedAt:      created,
	})

	assert.Equal(t, "n-1", rec.ID)
	require.NotNil(t, rec.Template)
	assert.Equal(t, "Order shipped", rec.Template.Name)
	require.NotNil(t, rec.Subscriber)
	assert.Equal(t, "Ada", rec.Subscriber.FirstName)
	assert.Equal(t, "o-9", rec.Payload["orderId"])
	assert.Equal(t, []string{"email", "sms"}, rec.Channels)
	require.Len(t, rec.Topics, 1)
	assert.Equal(t, "orders", rec.Topics[0].Key)
}

func TestRecordFromWorkflowRunMalformedColumns(t *testing.T) {
	rec := recordFromWorkflowRun(&model.WorkflowRunRow{
		RunID:          "n-1",
		SubscriberJSON: `{"_id":`,
		PayloadJSON:    `not json`,
		ChannelsJSON:   `{"oops":true}`,
		TopicsJSON:     `null`,
	})

	// Malformed semi-structured columns degrade to typed empties, never error.
	assert.Nil(t, rec.Subscriber)
	assert.Equal(t, map[string]any{}, rec.Payload)
	assert.Equal(t, []string{}, rec.Channels)
	assert.Equal(t, []model.TopicRef{}, rec.Topics)
}

func TestJobFromStepRunDefaults(t *testing.T) {
	job := jobFromStepRun(model.StepRunRow{
		StepRunID: "sr-1",
		StepID:    "step-email",
		StepName:  "Send email",
		StepType:  "email",
		Status:    "queued",
	}, nil)

	assert.Equal(t, "sr-1", job.ID)
	assert.Equal(t, model.JobStatusQueued, job.Status)
	assert.Equal(t, "email", job.Type)
	assert.NotNil(t, job.Payload)
	assert.NotNil(t, job.Overrides)
	assert.NotNil(t, job.ExecutionDetails)
	assert.Empty(t, job.ExecutionDetails)
}
