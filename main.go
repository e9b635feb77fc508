// @title VidTube API
// @version 1.0
// @description Video sharing backend: videos, comments, likes, tweets, playlists, subscriptions and channel dashboards.
// @host localhost:8000
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/Furqankhan76/Vidtube/docs"

	"github.com/Furqankhan76/Vidtube/bootstrap"
	"github.com/Furqankhan76/Vidtube/config"
	"github.com/Furqankhan76/Vidtube/database"
	"github.com/Furqankhan76/Vidtube/internal/authtoken"
	"github.com/Furqankhan76/Vidtube/internal/controllers"
	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/media"
	"github.com/Furqankhan76/Vidtube/internal/metrics"
	"github.com/Furqankhan76/Vidtube/internal/middleware"
	"github.com/Furqankhan76/Vidtube/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", "vidtube")
		logger.Log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel, "vidtube")
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	client, err := database.ConnectMongo(startCtx, cfg.MongoURI)
	if err != nil {
		cancel()
		logger.Log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.MongoDB)

	// unique usernames/emails, one like per target, one subscription per pair
	if err := bootstrap.EnsureIndexes(startCtx, db); err != nil {
		cancel()
		logger.Log.Fatal().Err(err).Msg("ensure indexes")
	}

	gateway, err := media.NewMinioGateway(media.MinioConfig{
		Endpoint:    cfg.MinioEndpoint,
		AccessKey:   cfg.MinioAccessKey,
		SecretKey:   cfg.MinioSecretKey,
		UseSSL:      cfg.MinioUseSSL,
		VideoBucket: cfg.MinioVideoBucket,
		ImageBucket: cfg.MinioImageBucket,
		PublicURL:   cfg.MediaPublicURL,
	})
	if err != nil {
		cancel()
		logger.Log.Fatal().Err(err).Msg("init media gateway")
	}
	if err := gateway.EnsureBuckets(startCtx); err != nil {
		cancel()
		logger.Log.Fatal().Err(err).Msg("ensure buckets")
	}
	cancel()

	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		logger.Log.Fatal().Err(err).Str("dir", cfg.TempDir).Msg("create temp dir")
	}

	issuer := authtoken.NewIssuer(
		cfg.AccessTokenSecret, cfg.AccessTokenExpiry,
		cfg.RefreshTokenSecret, cfg.RefreshTokenExpiry,
	)

	app := fiber.New(fiber.Config{
		AppName:      "vidtube",
		ErrorHandler: controllers.ErrorHandler,
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))
	app.Use(middleware.Metrics())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTUidOnly(issuer))
	routes.Setup(app, routes.Deps{
		DB:            db,
		Media:         gateway,
		Tokens:        issuer,
		TempDir:       cfg.TempDir,
		SecureCookies: cfg.IsProduction(),
	})

	go func() {
		<-ctx.Done()
		logger.Log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Log.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("listen")
	}
}
