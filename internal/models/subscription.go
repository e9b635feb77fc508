package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Subscription struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    bson.ObjectID `json:"channel"    bson:"channel"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}

type SubscriptionState struct {
	Subscribed       bool  `json:"subscribed"`
	SubscribersCount int64 `json:"subscribersCount"`
}

// SubscriptionView is one side of a subscription joined to its user.
type SubscriptionView struct {
	User         OwnerProfile `json:"user"         bson:"user"`
	SubscribedAt time.Time    `json:"subscribedAt" bson:"created_at"`
}
