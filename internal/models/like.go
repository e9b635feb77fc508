package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like references exactly one target. Unset targets are omitted from the
// stored document so the partial unique indexes only see real references.
type Like struct {
	ID        bson.ObjectID  `json:"id"                bson:"_id,omitempty"`
	LikedBy   bson.ObjectID  `json:"likedBy"           bson:"liked_by"`
	Video     *bson.ObjectID `json:"video,omitempty"   bson:"video,omitempty"`
	Comment   *bson.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *bson.ObjectID `json:"tweet,omitempty"   bson:"tweet,omitempty"`
	CreatedAt time.Time      `json:"createdAt"         bson:"created_at"`
}

type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Field is the like document field that holds a reference of this kind.
func (t LikeTarget) Field() string { return string(t) }

func NewLike(user bson.ObjectID, target LikeTarget, id bson.ObjectID, now time.Time) Like {
	l := Like{LikedBy: user, CreatedAt: now}
	switch target {
	case LikeTargetVideo:
		l.Video = &id
	case LikeTargetComment:
		l.Comment = &id
	case LikeTargetTweet:
		l.Tweet = &id
	}
	return l
}

type LikeState struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}
