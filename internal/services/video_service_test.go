package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

type videoFixture struct {
	svc       *VideoService
	videos    *fakeVideos
	likes     *fakeLikes
	comments  *fakeComments
	playlists *fakePlaylists
	users     *fakeUsers
	gw        *fakeGateway
}

func newVideoFixture() *videoFixture {
	f := &videoFixture{
		videos:    newFakeVideos(),
		likes:     &fakeLikes{},
		comments:  newFakeComments(),
		playlists: newFakePlaylists(),
		users:     newFakeUsers(),
		gw:        newFakeGateway(),
	}
	f.svc = &VideoService{
		Videos:    f.videos,
		Likes:     f.likes,
		Comments:  f.comments,
		Playlists: f.playlists,
		Users:     f.users,
		Media:     f.gw,
	}
	return f
}

func TestPublish_LengthBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		title, desc string
		wantErr     bool
	}{
		{"minimums accepted", "abc", "0123456789", false},
		{"title too short", "ab", "0123456789", true},
		{"description too short", "abc", "012345678", true},
		{"title too long", strings.Repeat("x", 101), "0123456789", true},
		{"title trimmed before counting", "  ab  ", "0123456789", true},
		{"multibyte counted as characters", "äöü", "0123456789", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVideoFixture()
			owner := f.users.add("alice")

			v, err := f.svc.Publish(ctx, owner, PublishVideoInput{
				Title: tt.title, Description: tt.desc, VideoPath: "clip.mp4", ThumbnailPath: "thumb.png",
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, apperror.KindOf(err).Status())
				assert.Empty(t, f.gw.uploaded, "validation must happen before any upload")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owner, v.Owner)
			assert.True(t, v.IsPublished)
		})
	}
}

func TestPublish_StoresAssetsAndDuration(t *testing.T) {
	f := newVideoFixture()
	f.gw.duration = 42.5
	owner := f.users.add("alice")

	v, err := f.svc.Publish(ctx, owner, PublishVideoInput{
		Title: "My video", Description: "a long enough description", VideoPath: "clip.mp4", ThumbnailPath: "thumb.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "pid-clip.mp4", v.VideoFile.PublicID)
	assert.Equal(t, "pid-thumb.png", v.Thumbnail.PublicID)
	assert.Equal(t, 42.5, v.Duration)
	assert.Contains(t, f.videos.docs, v.ID)
}

func TestPublish_MissingFilesAndUploadFailure(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	in := PublishVideoInput{Title: "title", Description: "description!", ThumbnailPath: "thumb.png"}

	_, err := f.svc.Publish(ctx, owner, in)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	in.VideoPath = "clip.mp4"
	f.gw.failUpload["clip.mp4"] = true
	_, err = f.svc.Publish(ctx, owner, in)
	require.Error(t, err)
	assert.Equal(t, 500, apperror.KindOf(err).Status())
	assert.Empty(t, f.videos.docs)
}

func TestList_Pagination(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	for i := 0; i < 25; i++ {
		f.videos.add(models.Video{Title: "video", Owner: owner, IsPublished: true})
	}

	page, err := f.svc.List(ctx, dto.ListVideosQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 10)
	assert.Equal(t, int64(25), page.TotalDocs)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.True(t, page.HasNextPage)

	last, err := f.svc.List(ctx, dto.ListVideosQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, last.Docs, 5)
	assert.False(t, last.HasNextPage)
}

func TestList_EmptyIsSuccess(t *testing.T) {
	f := newVideoFixture()
	page, err := f.svc.List(ctx, dto.ListVideosQuery{UserID: bson.NewObjectID().Hex()})
	require.NoError(t, err)
	assert.NotNil(t, page.Docs)
	assert.Empty(t, page.Docs)
	assert.Equal(t, int64(0), page.TotalPages)
}

func TestList_InvalidParams(t *testing.T) {
	f := newVideoFixture()
	_, err := f.svc.List(ctx, dto.ListVideosQuery{UserID: "zzz"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = f.svc.List(ctx, dto.ListVideosQuery{SortBy: "owner"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestGet_CountsViewAndHistory(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	viewer := f.users.add("bob")
	v := f.videos.add(models.Video{Title: "video", Owner: owner, IsPublished: true})
	_, _ = f.likes.Toggle(ctx, viewer, models.LikeTargetVideo, v.ID)

	d, err := f.svc.Get(ctx, viewer, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Views)
	assert.Equal(t, int64(1), d.LikesCount)
	assert.True(t, d.IsLiked)
	assert.Equal(t, "alice", d.OwnerProfile.Username)
	assert.Equal(t, []bson.ObjectID{v.ID}, f.users.docs[viewer].WatchHistory)
}

func TestGet_UnpublishedOnlyForOwner(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	other := f.users.add("bob")
	v := f.videos.add(models.Video{Title: "draft", Owner: owner, IsPublished: false})

	_, err := f.svc.Get(ctx, other, v.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = f.svc.Get(ctx, owner, v.ID)
	assert.NoError(t, err)

	_, err = f.svc.Get(ctx, owner, bson.NewObjectID())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestUpdate_OwnerOnlyAndThumbnailReplacement(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	other := f.users.add("bob")
	v := f.videos.add(models.Video{
		Title: "original", Description: "original description", Owner: owner,
		Thumbnail: models.Asset{PublicID: "old-thumb"},
	})

	title := "changed"
	_, err := f.svc.Update(ctx, other, v.ID, UpdateVideoInput{Title: &title})
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
	assert.Equal(t, "original", f.videos.docs[v.ID].Title)

	got, err := f.svc.Update(ctx, owner, v.ID, UpdateVideoInput{Title: &title, ThumbnailPath: "new.png"})
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, "pid-new.png", f.videos.docs[v.ID].Thumbnail.PublicID)
	assert.Equal(t, []string{"old-thumb"}, f.gw.removed)

	_, err = f.svc.Update(ctx, owner, v.ID, UpdateVideoInput{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestDelete_MediaFailureKeepsDocument(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	v := f.videos.add(models.Video{
		Title: "video", Owner: owner,
		VideoFile: models.Asset{PublicID: "abc"},
		Thumbnail: models.Asset{PublicID: "thumb"},
	})
	f.gw.failRemove["abc"] = true

	err := f.svc.Delete(ctx, owner, v.ID)
	require.Error(t, err)
	assert.Equal(t, 500, apperror.KindOf(err).Status())

	still, err := f.videos.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", still.VideoFile.PublicID)
	assert.Empty(t, f.gw.removed, "thumbnail must not be removed after the video file failed")
}

func TestPublish_RejectsUnrecognisedFileKinds(t *testing.T) {
	tests := []struct {
		name             string
		video, thumbnail string
	}{
		{"unknown video extension", "clip.bin", "thumb.png"},
		{"no extension", "blob", "thumb.png"},
		{"image as video", "clip.png", "thumb.png"},
		{"video as thumbnail", "clip.mp4", "thumb.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVideoFixture()
			owner := f.users.add("alice")
			_, err := f.svc.Publish(ctx, owner, PublishVideoInput{
				Title: "title", Description: "description!", VideoPath: tt.video, ThumbnailPath: tt.thumbnail,
			})
			require.Error(t, err)
			assert.Equal(t, 400, apperror.KindOf(err).Status())
			assert.Empty(t, f.gw.uploaded)
			assert.Empty(t, f.videos.docs)
		})
	}
}

func TestPublishThenDelete_RemovesEveryAsset(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")

	v, err := f.svc.Publish(ctx, owner, PublishVideoInput{
		Title: "title", Description: "description!", VideoPath: "clip.webm", ThumbnailPath: "thumb.jpg",
	})
	require.NoError(t, err)
	require.Len(t, f.gw.stored, 2)

	_, err = f.svc.Update(ctx, owner, v.ID, UpdateVideoInput{ThumbnailPath: "new.png"})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, owner, v.ID))
	assert.Empty(t, f.gw.stored, "every uploaded object is removed from the bucket it was stored in")
}

func TestUpdate_RejectsVideoThumbnail(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	v := f.videos.add(models.Video{Title: "video", Owner: owner})

	_, err := f.svc.Update(ctx, owner, v.ID, UpdateVideoInput{ThumbnailPath: "thumb.mov"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Empty(t, f.gw.uploaded)
}

func TestDelete_CascadesAndRequiresOwner(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	other := f.users.add("bob")
	v := f.videos.add(models.Video{
		Title: "video", Owner: owner,
		VideoFile: models.Asset{PublicID: "file"},
		Thumbnail: models.Asset{PublicID: "thumb"},
	})
	c := &models.Comment{Content: "hi", Video: v.ID, Owner: other}
	require.NoError(t, f.comments.Insert(ctx, c))
	_, _ = f.likes.Toggle(ctx, other, models.LikeTargetVideo, v.ID)
	_, _ = f.likes.Toggle(ctx, other, models.LikeTargetComment, c.ID)
	pl := &models.Playlist{Name: "mix", Owner: other, Videos: []bson.ObjectID{v.ID}}
	require.NoError(t, f.playlists.Insert(ctx, pl))

	err := f.svc.Delete(ctx, other, v.ID)
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
	assert.Contains(t, f.videos.docs, v.ID)

	require.NoError(t, f.svc.Delete(ctx, owner, v.ID))
	assert.NotContains(t, f.videos.docs, v.ID)
	assert.Equal(t, []string{"file", "thumb"}, f.gw.removed)
	assert.Empty(t, f.comments.docs)
	assert.Empty(t, f.likes.docs)
	assert.Empty(t, f.playlists.docs[pl.ID].Videos)
}

func TestTogglePublish(t *testing.T) {
	f := newVideoFixture()
	owner := f.users.add("alice")
	v := f.videos.add(models.Video{Title: "video", Owner: owner, IsPublished: true})

	got, err := f.svc.TogglePublish(ctx, owner, v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)

	got, err = f.svc.TogglePublish(ctx, owner, v.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)

	_, err = f.svc.TogglePublish(ctx, bson.NewObjectID(), v.ID)
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
}
