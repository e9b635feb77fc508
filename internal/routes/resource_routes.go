package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/internal/controllers"
	"github.com/Furqankhan76/Vidtube/internal/middleware"
	"github.com/Furqankhan76/Vidtube/internal/services"
)

func UserRoutes(api fiber.Router, r *repos, d Deps) {
	svc := &services.UserService{Users: r.users, Videos: r.videos, Media: d.Media, Tokens: d.Tokens}
	h := controllers.NewUserHandler(svc, d.TempDir, d.SecureCookies)
	auth := middleware.RequireAuth()

	users := api.Group("/users")
	users.Post("/register", h.RegisterUser)
	users.Post("/login", h.LoginUser)
	users.Post("/refresh-token", h.RefreshAccessToken)
	users.Get("/c/:username", h.GetUserChannelProfile)

	users.Post("/logout", auth, h.LogoutUser)
	users.Post("/change-password", auth, h.ChangePassword)
	users.Get("/current-user", auth, h.GetCurrentUser)
	users.Patch("/update-account", auth, h.UpdateAccountDetails)
	users.Patch("/avatar", auth, h.UpdateUserAvatar)
	users.Patch("/cover-image", auth, h.UpdateUserCoverImage)
	users.Get("/history", auth, h.GetWatchHistory)
}

func VideoRoutes(api fiber.Router, r *repos, d Deps) {
	svc := &services.VideoService{
		Videos:    r.videos,
		Likes:     r.likes,
		Comments:  r.comments,
		Playlists: r.playlists,
		Users:     r.users,
		Media:     d.Media,
	}
	h := controllers.NewVideoHandler(svc, d.TempDir)
	auth := middleware.RequireAuth()

	videos := api.Group("/videos")
	videos.Get("/", h.ListVideos)
	videos.Post("/", auth, h.PublishVideo)
	// registered before /:videoId so "toggle" is never taken for an id
	videos.Patch("/toggle/publish/:videoId", auth, h.TogglePublishStatus)
	videos.Get("/:videoId", h.GetVideoByID)
	videos.Patch("/:videoId", auth, h.UpdateVideo)
	videos.Delete("/:videoId", auth, h.DeleteVideo)
}

func CommentRoutes(api fiber.Router, r *repos) {
	svc := &services.CommentService{Comments: r.comments, Videos: r.videos, Likes: r.likes}
	h := controllers.NewCommentHandler(svc)
	auth := middleware.RequireAuth()

	comments := api.Group("/comments")
	comments.Patch("/c/:commentId", auth, h.UpdateComment)
	comments.Delete("/c/:commentId", auth, h.DeleteComment)
	comments.Get("/:videoId", h.GetVideoComments)
	comments.Post("/:videoId", auth, h.AddComment)
}

func LikeRoutes(api fiber.Router, r *repos) {
	svc := &services.LikeService{Likes: r.likes, Videos: r.videos, Comments: r.comments, Tweets: r.tweets}
	h := controllers.NewLikeHandler(svc)

	likes := api.Group("/likes", middleware.RequireAuth())
	likes.Post("/toggle/v/:videoId", h.ToggleVideoLike)
	likes.Post("/toggle/c/:commentId", h.ToggleCommentLike)
	likes.Post("/toggle/t/:tweetId", h.ToggleTweetLike)
	likes.Get("/videos", h.GetLikedVideos)
}

func TweetRoutes(api fiber.Router, r *repos) {
	svc := &services.TweetService{Tweets: r.tweets, Users: r.users, Likes: r.likes}
	h := controllers.NewTweetHandler(svc)
	auth := middleware.RequireAuth()

	tweets := api.Group("/tweets")
	tweets.Post("/", auth, h.CreateTweet)
	tweets.Get("/user/:userId", h.GetUserTweets)
	tweets.Patch("/:tweetId", auth, h.UpdateTweet)
	tweets.Delete("/:tweetId", auth, h.DeleteTweet)
}

func SubscriptionRoutes(api fiber.Router, r *repos) {
	svc := &services.SubscriptionService{Subscriptions: r.subscriptions, Users: r.users}
	h := controllers.NewSubscriptionHandler(svc)

	subs := api.Group("/subscriptions")
	subs.Post("/c/:channelId", middleware.RequireAuth(), h.ToggleSubscription)
	subs.Get("/c/:channelId", h.GetChannelSubscribers)
	subs.Get("/u/:subscriberId", h.GetSubscribedChannels)
}

func PlaylistRoutes(api fiber.Router, r *repos) {
	svc := &services.PlaylistService{Playlists: r.playlists, Videos: r.videos, Users: r.users}
	h := controllers.NewPlaylistHandler(svc)
	auth := middleware.RequireAuth()

	pl := api.Group("/playlist")
	pl.Post("/", auth, h.CreatePlaylist)
	pl.Get("/user/:userId", h.GetUserPlaylists)
	pl.Patch("/add/:videoId/:playlistId", auth, h.AddVideoToPlaylist)
	pl.Patch("/remove/:videoId/:playlistId", auth, h.RemoveVideoFromPlaylist)
	pl.Get("/:playlistId", h.GetPlaylistByID)
	pl.Patch("/:playlistId", auth, h.UpdatePlaylist)
	pl.Delete("/:playlistId", auth, h.DeletePlaylist)
}

func DashboardRoutes(api fiber.Router, r *repos) {
	svc := &services.DashboardService{Dashboard: r.dashboard}
	h := controllers.NewDashboardHandler(svc)

	dash := api.Group("/dashboard", middleware.RequireAuth())
	dash.Get("/stats", h.GetChannelStats)
	dash.Get("/videos", h.GetChannelVideos)
}
