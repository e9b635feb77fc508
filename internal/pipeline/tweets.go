package pipeline

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func UserTweets(owner, viewer bson.ObjectID) mongo.Pipeline {
	return concat(
		mongo.Pipeline{
			match(bson.D{{Key: "owner", Value: owner}}),
			{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		},
		userLookup("owner", "owner_doc"),
		likesStages("tweet", viewer),
		mongo.Pipeline{{{Key: "$project", Value: bson.D{
			{Key: "content", Value: 1},
			{Key: "owner", Value: profileFields("owner_doc")},
			{Key: "reply_to", Value: 1},
			{Key: "likes_count", Value: 1},
			{Key: "is_liked", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
		}}}},
	)
}
