package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/models"
)

type DashboardService struct {
	Dashboard DashboardStore
}

func (s *DashboardService) Stats(ctx context.Context, channel bson.ObjectID) (*models.ChannelStats, error) {
	stats, err := s.Dashboard.ChannelStats(ctx, channel)
	if err != nil {
		return nil, internal(err, "failed to compute channel stats")
	}
	return &stats, nil
}

func (s *DashboardService) Videos(ctx context.Context, channel bson.ObjectID) ([]models.ChannelVideo, error) {
	videos, err := s.Dashboard.ChannelVideos(ctx, channel)
	if err != nil {
		return nil, internal(err, "failed to fetch channel videos")
	}
	return videos, nil
}
