package services

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/metrics"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

type SubscriptionService struct {
	Subscriptions SubscriptionStore
	Users         UserStore
}

func (s *SubscriptionService) userMustExist(ctx context.Context, id bson.ObjectID, what string) error {
	ok, err := s.Users.Exists(ctx, id)
	if err != nil {
		return internal(err, "failed to look up "+what)
	}
	if !ok {
		return apperror.NotFound(what + " not found")
	}
	return nil
}

// Toggle subscribes viewer to channel, or unsubscribes when already subscribed.
func (s *SubscriptionService) Toggle(ctx context.Context, viewer, channel bson.ObjectID) (*models.SubscriptionState, error) {
	if viewer == channel {
		return nil, apperror.Validation("you cannot subscribe to your own channel")
	}
	if err := s.userMustExist(ctx, channel, "channel"); err != nil {
		return nil, err
	}

	subscribed, err := s.Subscriptions.Toggle(ctx, viewer, channel)
	if err != nil {
		return nil, internal(err, "failed to toggle subscription")
	}
	metrics.Toggles.WithLabelValues("subscription", strconv.FormatBool(subscribed)).Inc()

	count, err := s.Subscriptions.CountSubscribers(ctx, channel)
	if err != nil {
		return nil, internal(err, "failed to count subscribers")
	}
	return &models.SubscriptionState{Subscribed: subscribed, SubscribersCount: count}, nil
}

func (s *SubscriptionService) Subscribers(ctx context.Context, channel bson.ObjectID) ([]models.SubscriptionView, error) {
	if err := s.userMustExist(ctx, channel, "channel"); err != nil {
		return nil, err
	}
	subs, err := s.Subscriptions.Subscribers(ctx, channel)
	if err != nil {
		return nil, internal(err, "failed to fetch subscribers")
	}
	return subs, nil
}

func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.SubscriptionView, error) {
	if err := s.userMustExist(ctx, subscriber, "subscriber"); err != nil {
		return nil, err
	}
	chans, err := s.Subscriptions.SubscribedChannels(ctx, subscriber)
	if err != nil {
		return nil, internal(err, "failed to fetch subscribed channels")
	}
	return chans, nil
}
