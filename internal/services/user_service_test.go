package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/authtoken"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

func newUserFixture() (*UserService, *fakeUsers, *fakeVideos, *fakeGateway) {
	users, videos, gw := newFakeUsers(), newFakeVideos(), newFakeGateway()
	svc := &UserService{
		Users:  users,
		Videos: videos,
		Media:  gw,
		Tokens: authtoken.NewIssuer("access-secret", time.Hour, "refresh-secret", 24*time.Hour),
	}
	return svc, users, videos, gw
}

func register(t *testing.T, svc *UserService) *models.User {
	t.Helper()
	u, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice A", Email: "Alice@Example.com", Username: "Alice",
		Password: "secret123", AvatarPath: "avatar.png",
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	svc, users, _, gw := newUserFixture()

	u := register(t, svc)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "pid-avatar.png", u.Avatar.PublicID)
	assert.Nil(t, u.CoverImage)
	assert.NotEqual(t, "secret123", users.docs[u.ID].PasswordHash)

	_, err := svc.Register(ctx, RegisterInput{
		FullName: "Other", Email: "alice@example.com", Username: "other",
		Password: "x", AvatarPath: "a.png",
	})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Len(t, gw.uploaded, 1, "no upload for a rejected registration")

	_, err = svc.Register(ctx, RegisterInput{FullName: "Bob", Email: "b@example.com", Username: "bob", Password: "x"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestLoginRefreshLogout(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	u := register(t, svc)

	_, _, err := svc.Login(ctx, "alice", "", "wrong")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	_, _, err = svc.Login(ctx, "nobody", "", "secret123")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, _, err = svc.Login(ctx, "", "", "secret123")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	got, toks, err := svc.Login(ctx, "", "ALICE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, toks.Refresh, users.docs[u.ID].RefreshToken)

	claims, err := svc.Tokens.ParseAccess(toks.Access)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UID)

	_, err = svc.Refresh(ctx, toks.Access)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized), "access token is not a refresh token")

	_, err = svc.Refresh(ctx, toks.Refresh)
	require.NoError(t, err)

	users.docs[u.ID].RefreshToken = "rotated-elsewhere"
	_, err = svc.Refresh(ctx, toks.Refresh)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	require.NoError(t, svc.Logout(ctx, u.ID))
	assert.Empty(t, users.docs[u.ID].RefreshToken)
}

func TestChangePassword(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	u := register(t, svc)

	err := svc.ChangePassword(ctx, u.ID, "wrong", "newpass1")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "secret123", "newpass1"))
	_, _, err = svc.Login(ctx, "alice", "", "newpass1")
	assert.NoError(t, err)
}

func TestUpdateAccountAndImages(t *testing.T) {
	svc, users, _, gw := newUserFixture()
	u := register(t, svc)
	bob := users.add("bob")

	got, err := svc.UpdateAccount(ctx, u.ID, "Alice B", "NEW@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)

	_, err = svc.UpdateAccount(ctx, bob, "Bob", "new@example.com")
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	got, err = svc.UpdateAvatar(ctx, u.ID, "second.png")
	require.NoError(t, err)
	assert.Equal(t, "pid-second.png", got.Avatar.PublicID)
	assert.Equal(t, []string{"pid-avatar.png"}, gw.removed)

	got, err = svc.UpdateCoverImage(ctx, u.ID, "cover.png")
	require.NoError(t, err)
	require.NotNil(t, got.CoverImage)
	assert.Equal(t, "pid-cover.png", users.docs[u.ID].CoverImage.PublicID)

	gw.failUpload["broken.png"] = true
	_, err = svc.UpdateAvatar(ctx, u.ID, "broken.png")
	assert.Equal(t, 500, apperror.KindOf(err).Status())
	assert.Equal(t, "pid-second.png", users.docs[u.ID].Avatar.PublicID)
}

func TestChannelProfileAndHistory(t *testing.T) {
	svc, users, videos, _ := newUserFixture()
	u := register(t, svc)

	p, err := svc.ChannelProfile(ctx, bson.NilObjectID, " Alice ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.ID)

	_, err = svc.ChannelProfile(ctx, bson.NilObjectID, "ghost")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	v1 := videos.add(models.Video{Title: "one"})
	v2 := videos.add(models.Video{Title: "two"})
	require.NoError(t, users.PushWatchHistory(ctx, u.ID, v1.ID))
	require.NoError(t, users.PushWatchHistory(ctx, u.ID, v2.ID))
	require.NoError(t, users.PushWatchHistory(ctx, u.ID, v1.ID))

	cards, err := svc.WatchHistory(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, v1.ID, cards[0].ID)
	assert.Equal(t, v2.ID, cards[1].ID)
}

func TestImages_RejectNonImageFiles(t *testing.T) {
	svc, _, _, gw := newUserFixture()

	_, err := svc.Register(ctx, RegisterInput{
		FullName: "Carol", Email: "c@example.com", Username: "carol",
		Password: "secret123", AvatarPath: "avatar.mp4",
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = svc.Register(ctx, RegisterInput{
		FullName: "Carol", Email: "c@example.com", Username: "carol",
		Password: "secret123", AvatarPath: "avatar.png", CoverPath: "cover",
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Empty(t, gw.uploaded)

	u := register(t, svc)
	_, err = svc.UpdateAvatar(ctx, u.ID, "me.bin")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	_, err = svc.UpdateCoverImage(ctx, u.ID, "banner.mov")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Equal(t, []string{"avatar.png"}, gw.uploaded)
}
