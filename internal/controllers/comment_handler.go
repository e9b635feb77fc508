package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/dto"
)

type CommentHandler struct {
	Svc CommentService
}

func NewCommentHandler(svc CommentService) *CommentHandler {
	return &CommentHandler{Svc: svc}
}

// GetVideoComments godoc
// @Summary      List comments of a video
// @Tags         comments
// @Produce      json
// @Param        videoId  path   string  true   "video id"
// @Param        page     query  int     false  "page"
// @Param        limit    query  int     false  "page size"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) GetVideoComments(c *fiber.Ctx) error {
	video, err := pathID(c, "videoId")
	if err != nil {
		return Fail(c, err)
	}
	page, err := h.Svc.List(c.UserContext(), viewer(c), video,
		int64(c.QueryInt("page", 1)), int64(c.QueryInt("limit", 10)))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, page, "Comments fetched successfully")
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string                true  "video id"
// @Param        body     body  dto.CreateCommentReq  true  "comment"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	video, err := pathID(c, "videoId")
	if err != nil {
		return Fail(c, err)
	}
	var req dto.CreateCommentReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	cm, err := h.Svc.Add(c.UserContext(), viewer(c), video, req.Content)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusCreated, cm, "Comment added successfully")
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Security     BearerAuth
// @Param        commentId  path  string                true  "comment id"
// @Param        body       body  dto.UpdateCommentReq  true  "new content"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /comments/c/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := pathID(c, "commentId")
	if err != nil {
		return Fail(c, err)
	}
	var req dto.UpdateCommentReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	cm, err := h.Svc.Update(c.UserContext(), viewer(c), id, req.Content)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, cm, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary   Delete a comment and its likes
// @Tags      comments
// @Security  BearerAuth
// @Param     commentId  path  string  true  "comment id"
// @Success   200  {object}  dto.Response
// @Router    /comments/c/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := pathID(c, "commentId")
	if err != nil {
		return Fail(c, err)
	}
	if err := h.Svc.Delete(c.UserContext(), viewer(c), id); err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, nil, "Comment deleted successfully")
}
