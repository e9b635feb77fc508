package pipeline

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func subscriptionLookup(foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: subscriptionsCollection},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

// ChannelProfile resolves a username to its public channel profile with
// subscription counts and whether viewer is subscribed.
func ChannelProfile(username string, viewer bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "username", Value: username}}),
		subscriptionLookup("channel", "subscribers"),
		subscriptionLookup("subscriber", "subscribed_to"),
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribers_count", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channels_subscribed_to_count", Value: bson.D{{Key: "$size", Value: "$subscribed_to"}}},
			{Key: "is_subscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$subscribers.subscriber"}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "full_name", Value: 1},
			{Key: "avatar", Value: "$avatar.url"},
			{Key: "cover_image", Value: "$cover_image.url"},
			{Key: "subscribers_count", Value: 1},
			{Key: "channels_subscribed_to_count", Value: 1},
			{Key: "is_subscribed", Value: 1},
		}}},
	}
}

// ChannelSubscribers lists the users subscribed to channel.
func ChannelSubscribers(channel bson.ObjectID) mongo.Pipeline {
	return subscriptionSide("channel", channel, "subscriber")
}

// SubscribedChannels lists the channels subscriber follows.
func SubscribedChannels(subscriber bson.ObjectID) mongo.Pipeline {
	return subscriptionSide("subscriber", subscriber, "channel")
}

func subscriptionSide(matchField string, id bson.ObjectID, joinField string) mongo.Pipeline {
	return concat(
		mongo.Pipeline{
			match(bson.D{{Key: matchField, Value: id}}),
			{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		},
		userLookup(joinField, "user_doc"),
		mongo.Pipeline{{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user", Value: profileFields("user_doc")},
			{Key: "created_at", Value: 1},
		}}}},
	)
}
