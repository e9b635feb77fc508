package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/utils"
)

type TweetHandler struct {
	Svc TweetService
}

func NewTweetHandler(svc TweetService) *TweetHandler {
	return &TweetHandler{Svc: svc}
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Description  replyTo, when given, must reference an existing tweet.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTweetReq  true  "tweet"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *fiber.Ctx) error {
	var req dto.CreateTweetReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	var replyTo *bson.ObjectID
	if s := strings.TrimSpace(req.ReplyTo); s != "" {
		id, err := utils.ParseID("replyTo", s)
		if err != nil {
			return Fail(c, err)
		}
		replyTo = &id
	}
	t, err := h.Svc.Create(c.UserContext(), viewer(c), req.Content, replyTo)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusCreated, t, "Tweet created successfully")
}

// GetUserTweets godoc
// @Summary  List a user's tweets
// @Tags     tweets
// @Param    userId  path  string  true  "user id"
// @Success  200  {object}  dto.Response
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /tweets/user/{userId} [get]
func (h *TweetHandler) GetUserTweets(c *fiber.Ctx) error {
	user, err := pathID(c, "userId")
	if err != nil {
		return Fail(c, err)
	}
	tweets, err := h.Svc.ListByUser(c.UserContext(), viewer(c), user)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet godoc
// @Summary   Edit a tweet
// @Tags      tweets
// @Security  BearerAuth
// @Param     tweetId  path  string              true  "tweet id"
// @Param     body     body  dto.UpdateTweetReq  true  "new content"
// @Success   200  {object}  dto.Response
// @Router    /tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *fiber.Ctx) error {
	id, err := pathID(c, "tweetId")
	if err != nil {
		return Fail(c, err)
	}
	var req dto.UpdateTweetReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	t, err := h.Svc.Update(c.UserContext(), viewer(c), id, req.Content)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, t, "Tweet updated successfully")
}

// DeleteTweet godoc
// @Summary   Delete a tweet
// @Tags      tweets
// @Security  BearerAuth
// @Param     tweetId  path  string  true  "tweet id"
// @Success   200  {object}  dto.Response
// @Router    /tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *fiber.Ctx) error {
	id, err := pathID(c, "tweetId")
	if err != nil {
		return Fail(c, err)
	}
	if err := h.Svc.Delete(c.UserContext(), viewer(c), id); err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, nil, "Tweet deleted successfully")
}
