package pipeline

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Collection names referenced from $lookup stages.
const (
	usersCollection         = "users"
	videosCollection        = "videos"
	likesCollection         = "likes"
	subscriptionsCollection = "subscriptions"
)

func match(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

// userLookup joins the user referenced by localField into as, keeping
// documents whose user no longer exists.
func userLookup(localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// profileFields projects the public user fields found under path.
func profileFields(path string) bson.D {
	return bson.D{
		{Key: "_id", Value: "$" + path + "._id"},
		{Key: "username", Value: "$" + path + ".username"},
		{Key: "full_name", Value: "$" + path + ".full_name"},
		{Key: "avatar", Value: "$" + path + ".avatar.url"},
	}
}

// likesStages attaches likes_count and is_liked for documents referenced by
// the given like field ("video", "comment" or "tweet").
func likesStages(field string, viewer bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: likesCollection},
			{Key: "let", Value: bson.D{{Key: "target", Value: "$_id"}}},
			{Key: "pipeline", Value: mongo.Pipeline{
				match(bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$" + field, "$$target"}},
				}}}),
				{{Key: "$project", Value: bson.D{{Key: "liked_by", Value: 1}}}},
			}},
			{Key: "as", Value: "likes"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "likes_count", Value: bson.D{{Key: "$size", Value: "$likes"}}},
			{Key: "is_liked", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$likes.liked_by"}}}},
		}}},
	}
}

func concat(parts ...mongo.Pipeline) mongo.Pipeline {
	var out mongo.Pipeline
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
