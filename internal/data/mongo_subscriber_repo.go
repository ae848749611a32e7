package data

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsehub/activity-feed-api/internal/domain/model"
)

const subscriberCollection = "subscribers"

// MongoSubscriberRepo implements the SubscriberRepository port. It exists to
// turn fuzzy subscriber predicates (ids, emails, free text) into the concrete
// id set the feed listing filters on.
type MongoSubscriberRepo struct {
	col *mongo.Collection
}

// NewMongoSubscriberRepo creates a new MongoSubscriberRepo on the given database.
func NewMongoSubscriberRepo(db *mongo.Database) *MongoSubscriberRepo {
	return &MongoSubscriberRepo{col: db.Collection(subscriberCollection)}
}

// SearchIDs returns the internal ids of subscribers matching any of the
// supplied predicates within the environment. An empty query matches nobody.
func (r *MongoSubscriberRepo) SearchIDs(ctx context.Context, envID string, q model.SubscriberQuery) ([]string, error) {
	if q.Empty() {
		return []string{}, nil
	}

	filter := bson.M{
		"_environmentId": envID,
		"$or":            buildSubscriberClauses(q),
	}
	findOpts := options.Find().SetProjection(bson.M{"_id": 1})

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("search subscribers: %w", err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode subscriber ids: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// buildSubscriberClauses translates the query predicates into OR'd Mongo
// clauses. Free text matches id, email, and name fields case-insensitively
// with the input treated as a literal, not a pattern.
func buildSubscriberClauses(q model.SubscriberQuery) []bson.M {
	clauses := make([]bson.M, 0, 3)
	if len(q.IDs) > 0 {
		clauses = append(clauses, bson.M{"subscriberId": bson.M{"$in": q.IDs}})
	}
	if len(q.Emails) > 0 {
		emails := make([]string, 0, len(q.Emails))
		for _, e := range q.Emails {
			emails = append(emails, strings.ToLower(strings.TrimSpace(e)))
		}
		clauses = append(clauses, bson.M{"email": bson.M{"$in": emails}})
	}
	if q.FreeText != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(q.FreeText), Options: "i"}
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"subscriberId": rx},
			{"email": rx},
			{"firstName": rx},
			{"lastName": rx},
		}})
	}
	return clauses
}
