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

type LikeRepository struct {
	ColLikes *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{ColLikes: db.Collection(database.ColLikes)}
}

func likeFilter(user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) bson.M {
	return bson.M{"liked_by": user, target.Field(): id}
}

// Toggle removes the user's like on the target if there is one, otherwise
// inserts it. The unique (liked_by, target) index turns a concurrent second
// insert into a duplicate-key error, which still means the target is liked.
func (r *LikeRepository) Toggle(ctx context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error) {
	res, err := r.ColLikes.DeleteOne(ctx, likeFilter(user, target, id))
	if err != nil {
		return false, errors.WithMessage(err, "unlike")
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	if _, err := InsertLike(ctx, r.ColLikes, models.NewLike(user, target, id, time.Now().UTC())); err != nil {
		return false, err
	}
	return true, nil
}

// InsertLike stores doc, treating a duplicate (liked_by, target) pair as
// already liked.
func InsertLike(ctx context.Context, likesCol *mongo.Collection, doc models.Like) (dup bool, err error) {
	_, err = likesCol.InsertOne(ctx, doc)
	if err == nil {
		return false, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	return false, errors.WithMessage(err, "insert like")
}

func (r *LikeRepository) Count(ctx context.Context, target models.LikeTarget, id bson.ObjectID) (int64, error) {
	n, err := r.ColLikes.CountDocuments(ctx, bson.M{target.Field(): id})
	if err != nil {
		return 0, errors.WithMessage(err, "count likes")
	}
	return n, nil
}

func (r *LikeRepository) IsLiked(ctx context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error) {
	if user.IsZero() {
		return false, nil
	}
	return exists(ctx, r.ColLikes, likeFilter(user, target, id))
}

// DeleteByTargets drops every like pointing at one of ids.
func (r *LikeRepository) DeleteByTargets(ctx context.Context, target models.LikeTarget, ids ...bson.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.ColLikes.DeleteMany(ctx, bson.M{target.Field(): bson.M{"$in": ids}})
	return errors.WithMessage(err, "delete likes")
}

// LikedVideos lists the cards of videos user has liked, latest like first.
func (r *LikeRepository) LikedVideos(ctx context.Context, user bson.ObjectID) ([]models.VideoCard, error) {
	return aggregateAll[models.VideoCard](ctx, r.ColLikes, pipeline.LikedVideos(user))
}
