package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID   `json:"id"                   bson:"_id,omitempty"`
	Username     string          `json:"username"             bson:"username"`
	Email        string          `json:"email"                bson:"email"`
	FullName     string          `json:"fullName"             bson:"full_name"`
	Avatar       Asset           `json:"avatar"               bson:"avatar"`
	CoverImage   *Asset          `json:"coverImage,omitempty" bson:"cover_image,omitempty"`
	WatchHistory []bson.ObjectID `json:"watchHistory"         bson:"watch_history"`
	PasswordHash string          `json:"-"                    bson:"password_hash"`
	RefreshToken string          `json:"-"                    bson:"refresh_token,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"            bson:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt"            bson:"updated_at"`
}

// OwnerProfile is the public slice of a user joined onto other documents.
type OwnerProfile struct {
	ID       bson.ObjectID `json:"id"       bson:"_id"`
	Username string        `json:"username" bson:"username"`
	FullName string        `json:"fullName" bson:"full_name"`
	Avatar   string        `json:"avatar"   bson:"avatar"`
}

type ChannelProfile struct {
	ID                        bson.ObjectID `json:"id"                        bson:"_id"`
	Username                  string        `json:"username"                  bson:"username"`
	Email                     string        `json:"email"                     bson:"email"`
	FullName                  string        `json:"fullName"                  bson:"full_name"`
	Avatar                    string        `json:"avatar"                    bson:"avatar"`
	CoverImage                string        `json:"coverImage"                bson:"cover_image"`
	SubscribersCount          int64         `json:"subscribersCount"          bson:"subscribers_count"`
	ChannelsSubscribedToCount int64         `json:"channelsSubscribedToCount" bson:"channels_subscribed_to_count"`
	IsSubscribed              bool          `json:"isSubscribed"              bson:"is_subscribed"`
}
