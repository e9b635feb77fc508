package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Furqankhan76/Vidtube/internal/authtoken"
	"github.com/Furqankhan76/Vidtube/internal/controllers"
	"github.com/Furqankhan76/Vidtube/internal/media"
	"github.com/Furqankhan76/Vidtube/internal/middleware"
	"github.com/Furqankhan76/Vidtube/internal/repository"
)

// Deps is what the route groups need to build their repositories and
// services.
type Deps struct {
	DB            *mongo.Database
	Media         media.Gateway
	Tokens        *authtoken.Issuer
	TempDir       string
	SecureCookies bool
}

type repos struct {
	videos        *repository.VideoRepository
	likes         *repository.LikeRepository
	comments      *repository.CommentRepository
	tweets        *repository.TweetRepository
	playlists     *repository.PlaylistRepository
	subscriptions *repository.SubscriptionRepository
	users         *repository.UserRepository
	dashboard     *repository.DashboardRepository
}

func newRepos(db *mongo.Database) *repos {
	return &repos{
		videos:        repository.NewVideoRepository(db),
		likes:         repository.NewLikeRepository(db),
		comments:      repository.NewCommentRepository(db),
		tweets:        repository.NewTweetRepository(db),
		playlists:     repository.NewPlaylistRepository(db),
		subscriptions: repository.NewSubscriptionRepository(db),
		users:         repository.NewUserRepository(db),
		dashboard:     repository.NewDashboardRepository(db),
	}
}

// Setup mounts every resource under /api/v1 and the Prometheus endpoint.
func Setup(app *fiber.App, d Deps) {
	r := newRepos(d.DB)
	api := app.Group("/api/v1")

	api.Get("/healthcheck", controllers.Healthcheck)
	UserRoutes(api, r, d)
	VideoRoutes(api, r, d)
	CommentRoutes(api, r)
	LikeRoutes(api, r)
	TweetRoutes(api, r)
	SubscriptionRoutes(api, r)
	PlaylistRoutes(api, r)
	DashboardRoutes(api, r)

	app.Get("/metrics", middleware.MetricsHandler())
}
