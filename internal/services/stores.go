package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

// The store interfaces below are satisfied by the repository package.

type VideoStore interface {
	List(ctx context.Context, p pipeline.ListVideosParams) ([]models.VideoCard, int64, error)
	Insert(ctx context.Context, v *models.Video) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Video, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	Update(ctx context.Context, v *models.Video) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	Delete(ctx context.Context, id bson.ObjectID) error
	CardsByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.VideoCard, error)
}

type LikeStore interface {
	Toggle(ctx context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error)
	Count(ctx context.Context, target models.LikeTarget, id bson.ObjectID) (int64, error)
	IsLiked(ctx context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error)
	DeleteByTargets(ctx context.Context, target models.LikeTarget, ids ...bson.ObjectID) error
	LikedVideos(ctx context.Context, user bson.ObjectID) ([]models.VideoCard, error)
}

type CommentStore interface {
	ListByVideo(ctx context.Context, video, viewer bson.ObjectID, p pipeline.Pagination) ([]models.CommentView, int64, error)
	Insert(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string, now time.Time) error
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByVideo(ctx context.Context, video bson.ObjectID) ([]bson.ObjectID, error)
}

type TweetStore interface {
	Insert(ctx context.Context, t *models.Tweet) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Tweet, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	ListByOwner(ctx context.Context, owner, viewer bson.ObjectID) ([]models.TweetView, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string, now time.Time) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type PlaylistStore interface {
	Insert(ctx context.Context, p *models.Playlist) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]models.PlaylistSummary, error)
	UpdateDetails(ctx context.Context, id bson.ObjectID, name, description string, now time.Time) error
	Delete(ctx context.Context, id bson.ObjectID) error
	AddVideo(ctx context.Context, id, video bson.ObjectID, now time.Time) (bool, error)
	RemoveVideo(ctx context.Context, id, video bson.ObjectID, now time.Time) (bool, error)
	PullVideoEverywhere(ctx context.Context, video bson.ObjectID) error
}

type SubscriptionStore interface {
	Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error)
	CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error)
	Subscribers(ctx context.Context, channel bson.ObjectID) ([]models.SubscriptionView, error)
	SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.SubscriptionView, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByLogin(ctx context.Context, username, email string) (*models.User, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	SetPasswordHash(ctx context.Context, id bson.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) error
	SetAvatar(ctx context.Context, id bson.ObjectID, a models.Asset) error
	SetCoverImage(ctx context.Context, id bson.ObjectID, a models.Asset) error
	PushWatchHistory(ctx context.Context, id, video bson.ObjectID) error
	ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*models.ChannelProfile, error)
	Profile(ctx context.Context, id bson.ObjectID) (*models.OwnerProfile, error)
}

type DashboardStore interface {
	ChannelStats(ctx context.Context, channel bson.ObjectID) (models.ChannelStats, error)
	ChannelVideos(ctx context.Context, channel bson.ObjectID) ([]models.ChannelVideo, error)
}
