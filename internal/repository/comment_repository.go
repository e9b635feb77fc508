package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Furqankhan76/Vidtube/database"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

type CommentRepository struct {
	ColComments *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{ColComments: db.Collection(database.ColComments)}
}

// ListByVideo pages through a video's comments, newest first.
func (r *CommentRepository) ListByVideo(ctx context.Context, video, viewer bson.ObjectID, p pipeline.Pagination) ([]models.CommentView, int64, error) {
	return aggregatePage[models.CommentView](ctx, r.ColComments, pipeline.VideoComments(video, viewer, p))
}

func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	if _, err := r.ColComments.InsertOne(ctx, c); err != nil {
		return writeErr(err, "insert comment")
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := r.ColComments.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, findErr(err, "find comment")
	}
	return &c, nil
}

func (r *CommentRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	return exists(ctx, r.ColComments, bson.M{"_id": id})
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string, now time.Time) error {
	res, err := r.ColComments.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updated_at": now}},
	)
	if err != nil {
		return errors.WithMessage(err, "update comment")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.ColComments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.WithMessage(err, "delete comment")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByVideo removes every comment on video and returns their ids so
// the caller can clear the likes that pointed at them.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, video bson.ObjectID) ([]bson.ObjectID, error) {
	cur, err := r.ColComments.Find(ctx, bson.M{"video": video}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, errors.WithMessage(err, "find comments")
	}
	var rows []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.WithMessage(err, "decode comments")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]bson.ObjectID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	if _, err := r.ColComments.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return nil, errors.WithMessage(err, "delete comments")
	}
	return ids, nil
}
