package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Furqankhan76/Vidtube/database"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

type SubscriptionRepository struct {
	ColSubscriptions *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{ColSubscriptions: db.Collection(database.ColSubscriptions)}
}

// Toggle follows the same delete-then-insert scheme as likes, relying on the
// unique (subscriber, channel) index.
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	filter := bson.M{"subscriber": subscriber, "channel": channel}
	res, err := r.ColSubscriptions.DeleteOne(ctx, filter)
	if err != nil {
		return false, errors.WithMessage(err, "unsubscribe")
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.ColSubscriptions.InsertOne(ctx, models.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return false, errors.WithMessage(err, "subscribe")
	}
	return true, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error) {
	n, err := r.ColSubscriptions.CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return 0, errors.WithMessage(err, "count subscribers")
	}
	return n, nil
}

func (r *SubscriptionRepository) Subscribers(ctx context.Context, channel bson.ObjectID) ([]models.SubscriptionView, error) {
	return aggregateAll[models.SubscriptionView](ctx, r.ColSubscriptions, pipeline.ChannelSubscribers(channel))
}

func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.SubscriptionView, error) {
	return aggregateAll[models.SubscriptionView](ctx, r.ColSubscriptions, pipeline.SubscribedChannels(subscriber))
}
