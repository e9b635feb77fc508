package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 5000
)

type Video struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	VideoFile   Asset         `json:"videoFile"   bson:"video_file"`
	Thumbnail   Asset         `json:"thumbnail"   bson:"thumbnail"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"is_published"`
	Owner       bson.ObjectID `json:"owner"       bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}

// VideoCard is the listing projection: no likes, comments or publish flag.
type VideoCard struct {
	ID          bson.ObjectID `json:"id"          bson:"_id"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Thumbnail   string        `json:"thumbnail"   bson:"thumbnail"`
	VideoFile   string        `json:"videoFile"   bson:"video_file"`
	Duration    float64       `json:"duration"    bson:"duration"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	Owner       OwnerProfile  `json:"owner"       bson:"owner"`
}

// VideoDetail is a single video as seen by a viewer.
type VideoDetail struct {
	Video
	OwnerProfile OwnerProfile `json:"ownerProfile"`
	LikesCount   int64        `json:"likesCount"`
	IsLiked      bool         `json:"isLiked"`
}

// ChannelVideo is a dashboard row: every video of a channel, published or not.
type ChannelVideo struct {
	ID          bson.ObjectID `json:"id"          bson:"_id"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Thumbnail   string        `json:"thumbnail"   bson:"thumbnail"`
	VideoFile   string        `json:"videoFile"   bson:"video_file"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"is_published"`
	LikesCount  int64         `json:"likesCount"  bson:"likes_count"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
}

type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}
