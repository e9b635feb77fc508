package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Furqankhan76/Vidtube/database"
)

// likeTargets are the mutually exclusive reference fields of a like document.
var likeTargets = []string{"video", "comment", "tweet"}

// EnsureIndexes creates the unique indexes that make toggles safe under
// concurrent requests, plus the lookup indexes used by the list pipelines.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	plan := map[string][]mongo.IndexModel{
		database.ColUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		database.ColSubscriptions: {
			{
				Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_subscriber_channel"),
			},
			{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("by_channel")},
		},
		database.ColVideos: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("by_owner_created")},
		},
		database.ColComments: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("by_video_created")},
		},
		database.ColTweets: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("by_owner_created")},
		},
		database.ColPlaylists: {
			{Keys: bson.D{{Key: "owner", Value: 1}}, Options: options.Index().SetName("by_owner")},
		},
	}

	for _, target := range likeTargets {
		plan[database.ColLikes] = append(plan[database.ColLikes], mongo.IndexModel{
			Keys: bson.D{{Key: "liked_by", Value: 1}, {Key: target, Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_liked_by_" + target).
				SetPartialFilterExpression(bson.D{{Key: target, Value: bson.D{{Key: "$exists", Value: true}}}}),
		})
	}

	for col, models := range plan {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return errors.WithMessagef(err, "create indexes on %s", col)
		}
	}
	return nil
}
