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

type PlaylistRepository struct {
	ColPlaylists *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{ColPlaylists: db.Collection(database.ColPlaylists)}
}

func (r *PlaylistRepository) Insert(ctx context.Context, p *models.Playlist) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.Videos == nil {
		p.Videos = []bson.ObjectID{}
	}
	if _, err := r.ColPlaylists.InsertOne(ctx, p); err != nil {
		return writeErr(err, "insert playlist")
	}
	return nil
}

func (r *PlaylistRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error) {
	var p models.Playlist
	if err := r.ColPlaylists.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, findErr(err, "find playlist")
	}
	return &p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]models.PlaylistSummary, error) {
	return aggregateAll[models.PlaylistSummary](ctx, r.ColPlaylists, pipeline.UserPlaylists(owner))
}

func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string, now time.Time) error {
	res, err := r.ColPlaylists.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "description": description, "updated_at": now}},
	)
	if err != nil {
		return errors.WithMessage(err, "update playlist")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.ColPlaylists.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.WithMessage(err, "delete playlist")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddVideo appends video unless the playlist already holds it. changed is
// false when nothing was appended.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, video bson.ObjectID, now time.Time) (changed bool, err error) {
	res, err := r.ColPlaylists.UpdateOne(ctx,
		bson.M{"_id": id, "videos": bson.M{"$ne": video}},
		bson.M{
			"$push": bson.M{"videos": video},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return false, errors.WithMessage(err, "add playlist video")
	}
	return res.ModifiedCount > 0, nil
}

// RemoveVideo pulls video from the playlist. changed is false when the
// playlist did not hold it.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, video bson.ObjectID, now time.Time) (changed bool, err error) {
	res, err := r.ColPlaylists.UpdateOne(ctx,
		bson.M{"_id": id, "videos": video},
		bson.M{
			"$pull": bson.M{"videos": video},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return false, errors.WithMessage(err, "remove playlist video")
	}
	return res.ModifiedCount > 0, nil
}

// PullVideoEverywhere drops video from every playlist that references it.
func (r *PlaylistRepository) PullVideoEverywhere(ctx context.Context, video bson.ObjectID) error {
	_, err := r.ColPlaylists.UpdateMany(ctx,
		bson.M{"videos": video},
		bson.M{"$pull": bson.M{"videos": video}},
	)
	return errors.WithMessage(err, "pull video from playlists")
}
