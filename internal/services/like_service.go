package services

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/metrics"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

// LikeService toggles likes on videos, comments and tweets through the one
// like collection.
type LikeService struct {
	Likes    LikeStore
	Videos   VideoStore
	Comments CommentStore
	Tweets   TweetStore
}

func (s *LikeService) targetExists(ctx context.Context, target models.LikeTarget, id bson.ObjectID) (bool, error) {
	switch target {
	case models.LikeTargetVideo:
		return s.Videos.Exists(ctx, id)
	case models.LikeTargetComment:
		return s.Comments.Exists(ctx, id)
	case models.LikeTargetTweet:
		return s.Tweets.Exists(ctx, id)
	}
	return false, apperror.Validationf("unknown like target %q", target)
}

func (s *LikeService) Toggle(ctx context.Context, viewer bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (*models.LikeState, error) {
	ok, err := s.targetExists(ctx, target, id)
	if err != nil {
		return nil, internal(err, "failed to look up "+string(target))
	}
	if !ok {
		return nil, apperror.NotFound(string(target) + " not found")
	}

	liked, err := s.Likes.Toggle(ctx, viewer, target, id)
	if err != nil {
		return nil, internal(err, "failed to toggle like")
	}
	metrics.Toggles.WithLabelValues(string(target), strconv.FormatBool(liked)).Inc()

	count, err := s.Likes.Count(ctx, target, id)
	if err != nil {
		return nil, internal(err, "failed to count likes")
	}
	return &models.LikeState{Liked: liked, LikesCount: count}, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, viewer bson.ObjectID) ([]models.VideoCard, error) {
	cards, err := s.Likes.LikedVideos(ctx, viewer)
	if err != nil {
		return nil, internal(err, "failed to fetch liked videos")
	}
	return cards, nil
}
