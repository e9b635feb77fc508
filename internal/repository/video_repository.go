package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Furqankhan76/Vidtube/database"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

type VideoRepository struct {
	ColVideos *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{ColVideos: db.Collection(database.ColVideos)}
}

// List runs the listing composer and returns one page of cards plus the
// total number of matching videos.
func (r *VideoRepository) List(ctx context.Context, p pipeline.ListVideosParams) ([]models.VideoCard, int64, error) {
	return aggregatePage[models.VideoCard](ctx, r.ColVideos, pipeline.BuildVideoListPipeline(p))
}

func (r *VideoRepository) Insert(ctx context.Context, v *models.Video) error {
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	if _, err := r.ColVideos.InsertOne(ctx, v); err != nil {
		return writeErr(err, "insert video")
	}
	return nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Video, error) {
	var v models.Video
	if err := r.ColVideos.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, findErr(err, "find video")
	}
	return &v, nil
}

func (r *VideoRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	return exists(ctx, r.ColVideos, bson.M{"_id": id})
}

// Update persists the mutable fields of v. Owner and media file never change.
func (r *VideoRepository) Update(ctx context.Context, v *models.Video) error {
	res, err := r.ColVideos.UpdateOne(ctx,
		bson.M{"_id": v.ID},
		bson.M{"$set": bson.M{
			"title":        v.Title,
			"description":  v.Description,
			"thumbnail":    v.Thumbnail,
			"is_published": v.IsPublished,
			"updated_at":   v.UpdatedAt,
		}},
	)
	if err != nil {
		return errors.WithMessage(err, "update video")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.ColVideos.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return errors.WithMessage(err, "increment views")
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.ColVideos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.WithMessage(err, "delete video")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CardsByIDs returns listing cards in the order of ids, skipping ids that
// no longer resolve to a video.
func (r *VideoRepository) CardsByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.VideoCard, error) {
	if len(ids) == 0 {
		return []models.VideoCard{}, nil
	}
	cards, err := aggregateAll[models.VideoCard](ctx, r.ColVideos, pipeline.VideoCardsByIDs(ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[bson.ObjectID]models.VideoCard, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}
	out := make([]models.VideoCard, 0, len(cards))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
