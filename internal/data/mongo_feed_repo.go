// Package data provides the store adapters behind the feed engine's ports:
// the legacy Mongo document store, the ClickHouse analytical stores, the
// Postgres tenant store, and the Redis-backed feature flags.
package data

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsehub/activity-feed-api/internal/core"
	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

const feedCollection = "notifications"

// MongoFeedRepo implements the LegacyFeedRepository port over the historical
// notification document collection.
type MongoFeedRepo struct {
	col *mongo.Collection
}

// NewMongoFeedRepo creates a new MongoFeedRepo on the given database.
func NewMongoFeedRepo(db *mongo.Database) *MongoFeedRepo {
	return &MongoFeedRepo{col: db.Collection(feedCollection)}
}

// GetFullByID returns the complete document including embedded jobs, or
// (nil, nil) when it does not exist in the tenant's scope.
func (r *MongoFeedRepo) GetFullByID(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error) {
	return r.findOne(ctx, scope, id, nil)
}

// GetEnvelopeByID returns the identity envelope only: jobs and payload are
// projected away so the lookup stays cheap.
func (r *MongoFeedRepo) GetEnvelopeByID(ctx context.Context, scope model.TenantScope, id string) (*model.RawFeedDocument, error) {
	projection := bson.M{"jobs": 0, "payload": 0, "to": 0}
	return r.findOne(ctx, scope, id, projection)
}

func (r *MongoFeedRepo) findOne(ctx context.Context, scope model.TenantScope, id string, projection bson.M) (*model.RawFeedDocument, error) {
	if id == "" {
		return nil, ErrNotificationIDRequired
	}
	filter := bson.M{
		"_id":             id,
		"_environmentId":  scope.EnvironmentID,
		"_organizationId": scope.OrganizationID,
	}
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var doc model.RawFeedDocument
	err := r.col.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find feed document %s: %w", id, err)
	}
	return &doc, nil
}

// ListByFilters returns one page of documents matching the filter set,
// newest first.
func (r *MongoFeedRepo) ListByFilters(ctx context.Context, scope model.TenantScope, p core.ListByFiltersParams) ([]*model.RawFeedDocument, error) {
	filter := buildFeedFilter(scope, p)
	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(p.Offset)).
		SetLimit(int64(p.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list feed documents: %w", err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	var docs []*model.RawFeedDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode feed documents: %w", err)
	}
	return docs, nil
}

// buildFeedFilter translates the validated filter set into a Mongo query.
// Every predicate is AND'd; the retention window always bounds createdAt.
func buildFeedFilter(scope model.TenantScope, p core.ListByFiltersParams) bson.M {
	filter := bson.M{
		"_environmentId":  scope.EnvironmentID,
		"_organizationId": scope.OrganizationID,
		"createdAt":       bson.M{"$gte": p.Window.After, "$lte": p.Window.Before},
	}

	o := p.Options
	if len(o.Channels) > 0 {
		filter["channels"] = bson.M{"$in": o.Channels}
	}
	if len(o.TemplateIDs) > 0 {
		filter["_templateId"] = bson.M{"$in": o.TemplateIDs}
	}
	if len(p.SubscriberIDs) > 0 {
		filter["_subscriberId"] = bson.M{"$in": p.SubscriberIDs}
	}
	if o.TransactionID != "" {
		filter["transactionId"] = o.TransactionID
	}
	if o.TopicKey != "" {
		filter["topics.topicKey"] = o.TopicKey
	}
	if o.Severity != "" {
		filter["severity"] = o.Severity
	}
	return filter
}
