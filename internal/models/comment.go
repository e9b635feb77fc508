package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const CommentMaxLen = 1000

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	Video     bson.ObjectID `json:"video"     bson:"video"`
	Owner     bson.ObjectID `json:"owner"     bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

type CommentView struct {
	ID         bson.ObjectID `json:"id"         bson:"_id"`
	Content    string        `json:"content"    bson:"content"`
	Video      bson.ObjectID `json:"video"      bson:"video"`
	Owner      OwnerProfile  `json:"owner"      bson:"owner"`
	LikesCount int64         `json:"likesCount" bson:"likes_count"`
	IsLiked    bool          `json:"isLiked"    bson:"is_liked"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt"  bson:"updated_at"`
}
