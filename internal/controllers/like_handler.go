package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/internal/models"
)

type LikeHandler struct {
	Svc LikeService
}

func NewLikeHandler(svc LikeService) *LikeHandler {
	return &LikeHandler{Svc: svc}
}

func (h *LikeHandler) toggle(target models.LikeTarget, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, param)
		if err != nil {
			return Fail(c, err)
		}
		state, err := h.Svc.Toggle(c.UserContext(), viewer(c), target, id)
		if err != nil {
			return Fail(c, err)
		}
		msg := "Unliked successfully"
		if state.Liked {
			msg = "Liked successfully"
		}
		return OK(c, fiber.StatusOK, state, msg)
	}
}

// ToggleVideoLike godoc
// @Summary      Like or unlike a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string  true  "video id"
// @Success      200  {object}  dto.Response  "data is {liked, likesCount}"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *fiber.Ctx) error {
	return h.toggle(models.LikeTargetVideo, "videoId")(c)
}

// ToggleCommentLike godoc
// @Summary   Like or unlike a comment
// @Tags      likes
// @Security  BearerAuth
// @Param     commentId  path  string  true  "comment id"
// @Success   200  {object}  dto.Response
// @Router    /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *fiber.Ctx) error {
	return h.toggle(models.LikeTargetComment, "commentId")(c)
}

// ToggleTweetLike godoc
// @Summary   Like or unlike a tweet
// @Tags      likes
// @Security  BearerAuth
// @Param     tweetId  path  string  true  "tweet id"
// @Success   200  {object}  dto.Response
// @Router    /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *fiber.Ctx) error {
	return h.toggle(models.LikeTargetTweet, "tweetId")(c)
}

// GetLikedVideos godoc
// @Summary   Videos the caller liked
// @Tags      likes
// @Security  BearerAuth
// @Success   200  {object}  dto.Response
// @Router    /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *fiber.Ctx) error {
	videos, err := h.Svc.LikedVideos(c.UserContext(), viewer(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, videos, "Liked videos fetched successfully")
}
