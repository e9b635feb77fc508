package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/authtoken"
	"github.com/Furqankhan76/Vidtube/internal/middleware"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/services"
)

// Stubs embed the interface so only the methods a test needs are defined.

type stubVideos struct {
	VideoService
	list    func(dto.ListVideosQuery) (*dto.Page[models.VideoCard], error)
	delete  func(viewer, id bson.ObjectID) error
	publish func(viewer bson.ObjectID, in services.PublishVideoInput) (*models.Video, error)
	update  func(viewer, id bson.ObjectID, in services.UpdateVideoInput) (*models.Video, error)
}

func (s *stubVideos) List(_ context.Context, q dto.ListVideosQuery) (*dto.Page[models.VideoCard], error) {
	return s.list(q)
}

func (s *stubVideos) Delete(_ context.Context, viewer, id bson.ObjectID) error {
	return s.delete(viewer, id)
}

func (s *stubVideos) Publish(_ context.Context, viewer bson.ObjectID, in services.PublishVideoInput) (*models.Video, error) {
	return s.publish(viewer, in)
}

func (s *stubVideos) Update(_ context.Context, viewer, id bson.ObjectID, in services.UpdateVideoInput) (*models.Video, error) {
	return s.update(viewer, id, in)
}

type stubLikes struct {
	LikeService
	gotTarget models.LikeTarget
	gotViewer bson.ObjectID
}

func (s *stubLikes) Toggle(_ context.Context, viewer bson.ObjectID, target models.LikeTarget, _ bson.ObjectID) (*models.LikeState, error) {
	s.gotTarget, s.gotViewer = target, viewer
	return &models.LikeState{Liked: true, LikesCount: 1}, nil
}

type stubComments struct {
	CommentService
	added bool
}

func (s *stubComments) Add(_ context.Context, viewer, video bson.ObjectID, content string) (*models.Comment, error) {
	s.added = true
	return &models.Comment{ID: bson.NewObjectID(), Content: content, Video: video, Owner: viewer}, nil
}

type stubUsers struct {
	UserService
	login func(username, email, password string) (*models.User, *services.Tokens, error)
}

func (s *stubUsers) Login(_ context.Context, username, email, password string) (*models.User, *services.Tokens, error) {
	return s.login(username, email, password)
}

type testEnv struct {
	app      *fiber.App
	issuer   *authtoken.Issuer
	tmp      string
	videos   *stubVideos
	likes    *stubLikes
	comments *stubComments
	users    *stubUsers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		issuer:   authtoken.NewIssuer("access", time.Hour, "refresh", time.Hour),
		tmp:      t.TempDir(),
		videos:   &stubVideos{},
		likes:    &stubLikes{},
		comments: &stubComments{},
		users:    &stubUsers{},
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(middleware.JWTUidOnly(env.issuer))
	auth := middleware.RequireAuth()
	api := app.Group("/api/v1")
	api.Get("/healthcheck", Healthcheck)

	vh := NewVideoHandler(env.videos, env.tmp)
	api.Get("/videos", vh.ListVideos)
	api.Post("/videos", auth, vh.PublishVideo)
	api.Get("/videos/:videoId", vh.GetVideoByID)
	api.Patch("/videos/:videoId", auth, vh.UpdateVideo)
	api.Delete("/videos/:videoId", auth, vh.DeleteVideo)

	lh := NewLikeHandler(env.likes)
	api.Post("/likes/toggle/v/:videoId", auth, lh.ToggleVideoLike)
	api.Post("/likes/toggle/t/:tweetId", auth, lh.ToggleTweetLike)

	ch := NewCommentHandler(env.comments)
	api.Post("/comments/:videoId", auth, ch.AddComment)

	uh := NewUserHandler(env.users, t.TempDir(), false)
	api.Post("/users/login", uh.LoginUser)

	env.app = app
	return env
}

func (e *testEnv) token(t *testing.T, uid bson.ObjectID) string {
	t.Helper()
	tok, err := e.issuer.Access(uid.Hex(), "alice", "alice@example.com")
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp, out
}

type formFile struct {
	field, name, content string
}

// multipartBody encodes fields and files as multipart/form-data and returns
// the body with its content type.
func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func (e *testEnv) doForm(t *testing.T, method, path string, body io.Reader, contentType, token string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp, out
}

func TestHealthcheck(t *testing.T) {
	env := newTestEnv(t)
	resp, out := env.do(t, http.MethodGet, "/api/v1/healthcheck", "", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", out["message"])
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(200), out["statusCode"])
}

func TestListVideos_EmptyIsSuccess(t *testing.T) {
	env := newTestEnv(t)
	var got dto.ListVideosQuery
	env.videos.list = func(q dto.ListVideosQuery) (*dto.Page[models.VideoCard], error) {
		got = q
		return &dto.Page[models.VideoCard]{Docs: []models.VideoCard{}, Page: 2, Limit: 5}, nil
	}

	resp, out := env.do(t, http.MethodGet, "/api/v1/videos?page=2&limit=5&sortBy=views&sortType=asc&query=cat", "", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, dto.ListVideosQuery{Page: 2, Limit: 5, Query: "cat", SortBy: "views", SortType: "asc"}, got)

	data := out["data"].(map[string]any)
	assert.Equal(t, []any{}, data["docs"])
	assert.Equal(t, false, data["hasNextPage"])
}

func TestListVideos_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	env.videos.list = func(dto.ListVideosQuery) (*dto.Page[models.VideoCard], error) {
		return nil, apperror.Validation("invalid sortBy")
	}
	resp, out := env.do(t, http.MethodGet, "/api/v1/videos?sortBy=password", "", "")
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "invalid sortBy", out["message"])
	assert.Equal(t, false, out["success"])
	assert.NotContains(t, out, "data")
}

func TestGetVideo_BadID(t *testing.T) {
	env := newTestEnv(t)
	resp, out := env.do(t, http.MethodGet, "/api/v1/videos/not-an-id", "", "")
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "invalid videoId", out["message"])
	assert.NotContains(t, out, "data")
}

func TestDeleteVideo(t *testing.T) {
	env := newTestEnv(t)
	uid := bson.NewObjectID()
	id := bson.NewObjectID()

	t.Run("anonymous", func(t *testing.T) {
		resp, out := env.do(t, http.MethodDelete, "/api/v1/videos/"+id.Hex(), "", "")
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, false, out["success"])
		assert.NotContains(t, out, "data")
	})

	t.Run("media failure", func(t *testing.T) {
		env.videos.delete = func(viewer, got bson.ObjectID) error {
			assert.Equal(t, uid, viewer)
			assert.Equal(t, id, got)
			return apperror.Upstream("error while deleting video file", errors.New("abc"))
		}
		resp, out := env.do(t, http.MethodDelete, "/api/v1/videos/"+id.Hex(), "", env.token(t, uid))
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, "error while deleting video file", out["message"])
	})

	t.Run("unclassified error hides details", func(t *testing.T) {
		env.videos.delete = func(bson.ObjectID, bson.ObjectID) error {
			return errors.New("connection reset by peer")
		}
		resp, out := env.do(t, http.MethodDelete, "/api/v1/videos/"+id.Hex(), "", env.token(t, uid))
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, "internal server error", out["message"])
	})

	t.Run("ok", func(t *testing.T) {
		env.videos.delete = func(bson.ObjectID, bson.ObjectID) error { return nil }
		resp, out := env.do(t, http.MethodDelete, "/api/v1/videos/"+id.Hex(), "", env.token(t, uid))
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, map[string]any{}, out["data"])
	})
}

func TestToggleLike_RoutesTarget(t *testing.T) {
	env := newTestEnv(t)
	uid := bson.NewObjectID()

	resp, out := env.do(t, http.MethodPost, "/api/v1/likes/toggle/t/"+bson.NewObjectID().Hex(), "", env.token(t, uid))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, models.LikeTargetTweet, env.likes.gotTarget)
	assert.Equal(t, uid, env.likes.gotViewer)
	assert.Equal(t, "Liked successfully", out["message"])
	data := out["data"].(map[string]any)
	assert.Equal(t, true, data["liked"])
	assert.Equal(t, float64(1), data["likesCount"])

	_, _ = env.do(t, http.MethodPost, "/api/v1/likes/toggle/v/"+bson.NewObjectID().Hex(), "", env.token(t, uid))
	assert.Equal(t, models.LikeTargetVideo, env.likes.gotTarget)
}

func TestAddComment_Validation(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, bson.NewObjectID())
	path := "/api/v1/comments/" + bson.NewObjectID().Hex()

	resp, out := env.do(t, http.MethodPost, path, `{"content":""}`, tok)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "validation failed", out["message"])
	assert.NotEmpty(t, out["errors"])
	assert.False(t, env.comments.added)

	resp, out = env.do(t, http.MethodPost, path, `{"content":"nice video"}`, tok)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "nice video", out["data"].(map[string]any)["content"])
	assert.True(t, env.comments.added)
}

func TestLogin_SetsCookies(t *testing.T) {
	env := newTestEnv(t)
	env.users.login = func(username, email, password string) (*models.User, *services.Tokens, error) {
		assert.Equal(t, "alice", username)
		assert.Equal(t, "pw123456", password)
		return &models.User{Username: "alice", PasswordHash: "secret-hash"},
			&services.Tokens{Access: "acc", Refresh: "ref"}, nil
	}

	resp, out := env.do(t, http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"pw123456"}`, "")
	require.Equal(t, 200, resp.StatusCode)

	cookies := map[string]*http.Cookie{}
	for _, ck := range resp.Cookies() {
		cookies[ck.Name] = ck
	}
	require.Contains(t, cookies, middleware.AccessTokenCookie)
	require.Contains(t, cookies, RefreshTokenCookie)
	assert.Equal(t, "acc", cookies[middleware.AccessTokenCookie].Value)
	assert.True(t, cookies[RefreshTokenCookie].HttpOnly)

	data := out["data"].(map[string]any)
	assert.Equal(t, "acc", data["accessToken"])
	user := data["user"].(map[string]any)
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, user, "refreshToken")
}

func TestLogin_BadEmail(t *testing.T) {
	env := newTestEnv(t)
	resp, out := env.do(t, http.MethodPost, "/api/v1/users/login", `{"email":"nope","password":"x"}`, "")
	assert.Equal(t, 400, resp.StatusCode)
	assert.NotContains(t, out, "data")
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)
	resp, out := env.do(t, http.MethodGet, "/api/v1/nowhere", "", "")
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, float64(404), out["statusCode"])
}

func TestPublishVideo_Multipart(t *testing.T) {
	env := newTestEnv(t)
	uid := bson.NewObjectID()

	var got services.PublishVideoInput
	var videoBytes, thumbBytes string
	env.videos.publish = func(viewer bson.ObjectID, in services.PublishVideoInput) (*models.Video, error) {
		assert.Equal(t, uid, viewer)
		got = in
		b, err := os.ReadFile(in.VideoPath)
		require.NoError(t, err)
		videoBytes = string(b)
		b, err = os.ReadFile(in.ThumbnailPath)
		require.NoError(t, err)
		thumbBytes = string(b)
		return &models.Video{ID: bson.NewObjectID(), Title: in.Title, Owner: viewer}, nil
	}

	body, ct := multipartBody(t,
		map[string]string{"title": "My cat", "description": "a cat doing cat things"},
		formFile{"videoFile", "Clip.MP4", "video-bytes"},
		formFile{"thumbnail", "thumb.png", "png-bytes"},
	)
	resp, out := env.doForm(t, http.MethodPost, "/api/v1/videos", body, ct, env.token(t, uid))
	require.Equal(t, 201, resp.StatusCode, out)
	assert.Equal(t, "My cat", out["data"].(map[string]any)["title"])

	assert.Equal(t, "My cat", got.Title)
	assert.Equal(t, "a cat doing cat things", got.Description)
	assert.Equal(t, env.tmp, filepath.Dir(got.VideoPath))
	assert.Equal(t, ".mp4", filepath.Ext(got.VideoPath))
	assert.Equal(t, ".png", filepath.Ext(got.ThumbnailPath))
	assert.Equal(t, "video-bytes", videoBytes)
	assert.Equal(t, "png-bytes", thumbBytes)

	// local copies are gone once the request is done
	for _, p := range []string{got.VideoPath, got.ThumbnailPath} {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), p)
	}
}

func TestPublishVideo_MultipartValidation(t *testing.T) {
	env := newTestEnv(t)
	called := false
	env.videos.publish = func(bson.ObjectID, services.PublishVideoInput) (*models.Video, error) {
		called = true
		return nil, nil
	}

	body, ct := multipartBody(t,
		map[string]string{"title": "ab", "description": "a cat doing cat things"},
		formFile{"videoFile", "clip.mp4", "video-bytes"},
	)
	resp, out := env.doForm(t, http.MethodPost, "/api/v1/videos", body, ct, env.token(t, bson.NewObjectID()))
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "validation failed", out["message"])
	assert.False(t, called)

	entries, err := os.ReadDir(env.tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateVideo_MultipartFields(t *testing.T) {
	env := newTestEnv(t)
	uid := bson.NewObjectID()
	id := bson.NewObjectID()

	var got services.UpdateVideoInput
	env.videos.update = func(viewer, gotID bson.ObjectID, in services.UpdateVideoInput) (*models.Video, error) {
		assert.Equal(t, uid, viewer)
		assert.Equal(t, id, gotID)
		got = in
		return &models.Video{ID: gotID}, nil
	}
	path := "/api/v1/videos/" + id.Hex()

	tests := []struct {
		name      string
		fields    map[string]string
		files     []formFile
		wantTitle *string
		wantDesc  *string
		wantThumb bool
	}{
		{
			name:      "title only",
			fields:    map[string]string{"title": "New title"},
			wantTitle: ptr("New title"),
		},
		{
			name:      "empty field is sent through",
			fields:    map[string]string{"title": "New title", "description": ""},
			wantTitle: ptr("New title"),
			wantDesc:  ptr(""),
		},
		{
			name:      "thumbnail only",
			files:     []formFile{{"thumbnail", "Next.JPG", "jpg-bytes"}},
			wantThumb: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = services.UpdateVideoInput{}
			body, ct := multipartBody(t, tt.fields, tt.files...)
			resp, out := env.doForm(t, http.MethodPatch, path, body, ct, env.token(t, uid))
			require.Equal(t, 200, resp.StatusCode, out)

			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantDesc, got.Description)
			if tt.wantThumb {
				assert.Equal(t, ".jpg", filepath.Ext(got.ThumbnailPath))
				_, err := os.Stat(got.ThumbnailPath)
				assert.True(t, os.IsNotExist(err))
			} else {
				assert.Empty(t, got.ThumbnailPath)
			}
		})
	}
}

func ptr(s string) *string { return &s }
