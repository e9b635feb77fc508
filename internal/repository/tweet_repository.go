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

type TweetRepository struct {
	ColTweets *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{ColTweets: db.Collection(database.ColTweets)}
}

func (r *TweetRepository) Insert(ctx context.Context, t *models.Tweet) error {
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	if _, err := r.ColTweets.InsertOne(ctx, t); err != nil {
		return writeErr(err, "insert tweet")
	}
	return nil
}

func (r *TweetRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Tweet, error) {
	var t models.Tweet
	if err := r.ColTweets.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, findErr(err, "find tweet")
	}
	return &t, nil
}

func (r *TweetRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	return exists(ctx, r.ColTweets, bson.M{"_id": id})
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner, viewer bson.ObjectID) ([]models.TweetView, error) {
	return aggregateAll[models.TweetView](ctx, r.ColTweets, pipeline.UserTweets(owner, viewer))
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string, now time.Time) error {
	res, err := r.ColTweets.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updated_at": now}},
	)
	if err != nil {
		return errors.WithMessage(err, "update tweet")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.ColTweets.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.WithMessage(err, "delete tweet")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
