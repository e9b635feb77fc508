package pipeline

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func UserPlaylists(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: owner}}),
		{{Key: "$sort", Value: bson.D{{Key: "updated_at", Value: -1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "total_videos", Value: bson.D{{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$videos", bson.A{}}},
			}}}},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
		}}},
	}
}
