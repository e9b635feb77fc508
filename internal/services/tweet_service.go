package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

type TweetService struct {
	Tweets TweetStore
	Users  UserStore
	Likes  LikeStore
}

func validTweet(c string) (string, error) {
	return textField("content", c, 1, models.TweetMaxLen)
}

// Create stores a tweet; replyTo, when set, must reference an existing tweet.
func (s *TweetService) Create(ctx context.Context, viewer bson.ObjectID, content string, replyTo *bson.ObjectID) (*models.Tweet, error) {
	content, err := validTweet(content)
	if err != nil {
		return nil, err
	}
	if replyTo != nil {
		ok, err := s.Tweets.Exists(ctx, *replyTo)
		if err != nil {
			return nil, internal(err, "failed to look up tweet")
		}
		if !ok {
			return nil, apperror.NotFound("tweet being replied to not found")
		}
	}

	now := utcNow()
	t := &models.Tweet{Content: content, Owner: viewer, ReplyTo: replyTo, CreatedAt: now, UpdatedAt: now}
	if err := s.Tweets.Insert(ctx, t); err != nil {
		return nil, internal(err, "failed to create tweet")
	}
	return t, nil
}

func (s *TweetService) ListByUser(ctx context.Context, viewer, user bson.ObjectID) ([]models.TweetView, error) {
	ok, err := s.Users.Exists(ctx, user)
	if err != nil {
		return nil, internal(err, "failed to look up user")
	}
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	tweets, err := s.Tweets.ListByOwner(ctx, user, viewer)
	if err != nil {
		return nil, internal(err, "failed to fetch tweets")
	}
	return tweets, nil
}

func (s *TweetService) owned(ctx context.Context, viewer, id bson.ObjectID) (*models.Tweet, error) {
	t, err := s.Tweets.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "tweet not found")
	}
	if t.Owner != viewer {
		return nil, apperror.Forbidden("you are not the owner of this tweet")
	}
	return t, nil
}

func (s *TweetService) Update(ctx context.Context, viewer, id bson.ObjectID, content string) (*models.Tweet, error) {
	content, err := validTweet(content)
	if err != nil {
		return nil, err
	}
	t, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	now := utcNow()
	if err := s.Tweets.UpdateContent(ctx, id, content, now); err != nil {
		return nil, storeErr(err, "tweet not found")
	}
	t.Content = content
	t.UpdatedAt = now
	return t, nil
}

func (s *TweetService) Delete(ctx context.Context, viewer, id bson.ObjectID) error {
	if _, err := s.owned(ctx, viewer, id); err != nil {
		return err
	}
	if err := s.Tweets.Delete(ctx, id); err != nil {
		return storeErr(err, "tweet not found")
	}
	if err := s.Likes.DeleteByTargets(ctx, models.LikeTargetTweet, id); err != nil {
		logger.Log.Warn().Err(err).Str("tweet", id.Hex()).Msg("delete likes of tweet")
	}
	return nil
}
