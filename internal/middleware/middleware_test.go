package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/authtoken"
)

func newTestApp(issuer *authtoken.Issuer) *fiber.App {
	app := fiber.New()
	app.Use(JWTUidOnly(issuer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		uid, err := UIDObjectID(c)
		if err != nil {
			return c.SendString("anonymous")
		}
		return c.SendString(uid.Hex())
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestJWTUidOnly(t *testing.T) {
	issuer := authtoken.NewIssuer("s3cret", time.Hour, "r3fresh", time.Hour)
	app := newTestApp(issuer)
	uid := bson.NewObjectID()
	tok, err := issuer.Access(uid.Hex(), "alice", "a@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		wantStatus int
		wantBody   string
	}{
		{"anonymous", func(*http.Request) {}, 200, "anonymous"},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }, 200, uid.Hex()},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+tok) }, 200, uid.Hex()},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tok}) }, 200, uid.Hex()},
		{"stale cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "expired"}) }, 200, "anonymous"},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, 401, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.prepare(req)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, body(t, resp))
			}
		})
	}
}

func TestJWTUidOnly_RejectsRefreshToken(t *testing.T) {
	issuer := authtoken.NewIssuer("s3cret", time.Hour, "r3fresh", time.Hour)
	app := newTestApp(issuer)
	refresh, err := issuer.Refresh(bson.NewObjectID().Hex())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuth(t *testing.T) {
	issuer := authtoken.NewIssuer("s3cret", time.Hour, "r3fresh", time.Hour)
	app := newTestApp(issuer)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	tok, err := issuer.Access(bson.NewObjectID().Hex(), "", "")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMetricsAndLogger_PassThrough(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics(), RequestLogger(), RequestTimeout(time.Second))
	app.Get("/ok", func(c *fiber.Ctx) error {
		_, hasDeadline := c.UserContext().Deadline()
		if !hasDeadline {
			return fiber.ErrInternalServerError
		}
		return c.SendStatus(204)
	})
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/metrics", MetricsHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
