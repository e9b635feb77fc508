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

// DashboardRepository computes channel statistics at call time. Each metric
// is a separate query with no shared snapshot.
type DashboardRepository struct {
	ColVideos        *mongo.Collection
	ColSubscriptions *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		ColVideos:        db.Collection(database.ColVideos),
		ColSubscriptions: db.Collection(database.ColSubscriptions),
	}
}

func (r *DashboardRepository) ChannelStats(ctx context.Context, channel bson.ObjectID) (models.ChannelStats, error) {
	var stats models.ChannelStats

	n, err := r.ColVideos.CountDocuments(ctx, bson.M{"owner": channel})
	if err != nil {
		return stats, errors.WithMessage(err, "count videos")
	}
	stats.TotalVideos = n

	views, err := aggregateAll[struct {
		TotalViews int64 `bson:"total_views"`
	}](ctx, r.ColVideos, pipeline.TotalViews(channel))
	if err != nil {
		return stats, err
	}
	if len(views) > 0 {
		stats.TotalViews = views[0].TotalViews
	}

	subs, err := r.ColSubscriptions.CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return stats, errors.WithMessage(err, "count subscribers")
	}
	stats.TotalSubscribers = subs

	likes, err := aggregateAll[struct {
		TotalLikes int64 `bson:"total_likes"`
	}](ctx, r.ColVideos, pipeline.TotalLikes(channel))
	if err != nil {
		return stats, err
	}
	if len(likes) > 0 {
		stats.TotalLikes = likes[0].TotalLikes
	}
	return stats, nil
}

func (r *DashboardRepository) ChannelVideos(ctx context.Context, channel bson.ObjectID) ([]models.ChannelVideo, error) {
	return aggregateAll[models.ChannelVideo](ctx, r.ColVideos, pipeline.ChannelVideos(channel))
}
