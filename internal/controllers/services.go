package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/services"
)

// Handlers depend on these narrow views of the services package so they can
// be tested against stubs.

type VideoService interface {
	List(ctx context.Context, q dto.ListVideosQuery) (*dto.Page[models.VideoCard], error)
	Publish(ctx context.Context, viewer bson.ObjectID, in services.PublishVideoInput) (*models.Video, error)
	Get(ctx context.Context, viewer, id bson.ObjectID) (*models.VideoDetail, error)
	Update(ctx context.Context, viewer, id bson.ObjectID, in services.UpdateVideoInput) (*models.Video, error)
	Delete(ctx context.Context, viewer, id bson.ObjectID) error
	TogglePublish(ctx context.Context, viewer, id bson.ObjectID) (*models.Video, error)
}

type CommentService interface {
	List(ctx context.Context, viewer, video bson.ObjectID, page, limit int64) (*dto.Page[models.CommentView], error)
	Add(ctx context.Context, viewer, video bson.ObjectID, content string) (*models.Comment, error)
	Update(ctx context.Context, viewer, id bson.ObjectID, content string) (*models.Comment, error)
	Delete(ctx context.Context, viewer, id bson.ObjectID) error
}

type LikeService interface {
	Toggle(ctx context.Context, viewer bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (*models.LikeState, error)
	LikedVideos(ctx context.Context, viewer bson.ObjectID) ([]models.VideoCard, error)
}

type TweetService interface {
	Create(ctx context.Context, viewer bson.ObjectID, content string, replyTo *bson.ObjectID) (*models.Tweet, error)
	ListByUser(ctx context.Context, viewer, user bson.ObjectID) ([]models.TweetView, error)
	Update(ctx context.Context, viewer, id bson.ObjectID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, viewer, id bson.ObjectID) error
}

type SubscriptionService interface {
	Toggle(ctx context.Context, viewer, channel bson.ObjectID) (*models.SubscriptionState, error)
	Subscribers(ctx context.Context, channel bson.ObjectID) ([]models.SubscriptionView, error)
	SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.SubscriptionView, error)
}

type PlaylistService interface {
	Create(ctx context.Context, viewer bson.ObjectID, name, description string) (*models.Playlist, error)
	ListByUser(ctx context.Context, user bson.ObjectID) ([]models.PlaylistSummary, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.PlaylistView, error)
	Update(ctx context.Context, viewer, id bson.ObjectID, name, description *string) (*models.Playlist, error)
	Delete(ctx context.Context, viewer, id bson.ObjectID) error
	AddVideo(ctx context.Context, viewer, video, id bson.ObjectID) (*models.Playlist, error)
	RemoveVideo(ctx context.Context, viewer, video, id bson.ObjectID) (*models.Playlist, error)
}

type DashboardService interface {
	Stats(ctx context.Context, channel bson.ObjectID) (*models.ChannelStats, error)
	Videos(ctx context.Context, channel bson.ObjectID) ([]models.ChannelVideo, error)
}

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, email, password string) (*models.User, *services.Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (*services.Tokens, error)
	Logout(ctx context.Context, viewer bson.ObjectID) error
	ChangePassword(ctx context.Context, viewer bson.ObjectID, oldPassword, newPassword string) error
	Current(ctx context.Context, viewer bson.ObjectID) (*models.User, error)
	UpdateAccount(ctx context.Context, viewer bson.ObjectID, fullName, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, viewer bson.ObjectID, path string) (*models.User, error)
	UpdateCoverImage(ctx context.Context, viewer bson.ObjectID, path string) (*models.User, error)
	ChannelProfile(ctx context.Context, viewer bson.ObjectID, username string) (*models.ChannelProfile, error)
	WatchHistory(ctx context.Context, viewer bson.ObjectID) ([]models.VideoCard, error)
}
