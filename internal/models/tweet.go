package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const TweetMaxLen = 280

type Tweet struct {
	ID        bson.ObjectID  `json:"id"                bson:"_id,omitempty"`
	Content   string         `json:"content"           bson:"content"`
	Owner     bson.ObjectID  `json:"owner"             bson:"owner"`
	ReplyTo   *bson.ObjectID `json:"replyTo,omitempty" bson:"reply_to,omitempty"`
	CreatedAt time.Time      `json:"createdAt"         bson:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt"         bson:"updated_at"`
}

type TweetView struct {
	ID         bson.ObjectID  `json:"id"                bson:"_id"`
	Content    string         `json:"content"           bson:"content"`
	Owner      OwnerProfile   `json:"owner"             bson:"owner"`
	ReplyTo    *bson.ObjectID `json:"replyTo,omitempty" bson:"reply_to,omitempty"`
	LikesCount int64          `json:"likesCount"        bson:"likes_count"`
	IsLiked    bool           `json:"isLiked"           bson:"is_liked"`
	CreatedAt  time.Time      `json:"createdAt"         bson:"created_at"`
	UpdatedAt  time.Time      `json:"updatedAt"         bson:"updated_at"`
}
