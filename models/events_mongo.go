package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEventSource struct {
	col *mongo.Collection
}

// NewMongoEventSource reads the catalog from a collection whose documents
// use the same field names as the JSON form of Event.
func NewMongoEventSource(col *mongo.Collection) EventSource {
	return &mongoEventSource{col: col}
}

func (r *mongoEventSource) LoadEvents(ctx context.Context) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// catalog order is id order
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Event
	for cur.Next(ctx) {
		var e Event
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}
