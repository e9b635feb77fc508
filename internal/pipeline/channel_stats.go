package pipeline

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TotalViews sums the view counts of a channel's videos. It yields no
// document when the channel has no videos.
func TotalViews(channel bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: channel}}),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}
}

// TotalLikes counts like documents across all of a channel's videos.
func TotalLikes(channel bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: channel}}),
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: likesCollection},
			{Key: "let", Value: bson.D{{Key: "target", Value: "$_id"}}},
			{Key: "pipeline", Value: mongo.Pipeline{
				match(bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$video", "$$target"}},
				}}}),
				{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}},
			}},
			{Key: "as", Value: "likes"},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_likes", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$size", Value: "$likes"}}}}},
		}}},
	}
}

// ChannelVideos lists every video of a channel, newest first, with its
// like count.
func ChannelVideos(channel bson.ObjectID) mongo.Pipeline {
	return concat(
		mongo.Pipeline{
			match(bson.D{{Key: "owner", Value: channel}}),
			{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		},
		likesStages("video", bson.NilObjectID),
		mongo.Pipeline{{{Key: "$project", Value: bson.D{
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "thumbnail", Value: "$thumbnail.url"},
			{Key: "video_file", Value: "$video_file.url"},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "is_published", Value: 1},
			{Key: "likes_count", Value: 1},
			{Key: "created_at", Value: 1},
		}}}},
	)
}
