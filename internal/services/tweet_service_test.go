package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

func TestTweets(t *testing.T) {
	tweets, users, likes := newFakeTweets(), newFakeUsers(), &fakeLikes{}
	svc := &TweetService{Tweets: tweets, Users: users, Likes: likes}
	alice, bob := users.add("alice"), users.add("bob")

	tw, err := svc.Create(ctx, alice, "hello world", nil)
	require.NoError(t, err)

	reply, err := svc.Create(ctx, bob, "hi alice", &tw.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ReplyTo)

	missing := bson.NewObjectID()
	_, err = svc.Create(ctx, bob, "into the void", &missing)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	list, err := svc.ListByUser(ctx, bob, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByUser(ctx, bob, bson.NewObjectID())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = svc.Update(ctx, bob, tw.ID, "not mine")
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
	assert.Equal(t, "hello world", tweets.docs[tw.ID].Content)

	_, err = svc.Update(ctx, alice, tw.ID, "hello again")
	require.NoError(t, err)

	_, _ = likes.Toggle(ctx, bob, models.LikeTargetTweet, tw.ID)
	assert.True(t, apperror.Is(svc.Delete(ctx, bob, tw.ID), apperror.KindForbidden))
	require.NoError(t, svc.Delete(ctx, alice, tw.ID))
	assert.NotContains(t, tweets.docs, tw.ID)
	assert.Empty(t, likes.docs)
}

func TestTweets_ContentRules(t *testing.T) {
	svc := &TweetService{Tweets: newFakeTweets(), Users: newFakeUsers(), Likes: &fakeLikes{}}

	_, err := svc.Create(ctx, bson.NewObjectID(), " \t\n ", nil)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = svc.Create(ctx, bson.NewObjectID(), strings.Repeat("a", models.TweetMaxLen+1), nil)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = svc.Create(ctx, bson.NewObjectID(), strings.Repeat("a", models.TweetMaxLen), nil)
	assert.NoError(t, err)
}
