package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/services"
)

type VideoHandler struct {
	Svc     VideoService
	TempDir string
}

func NewVideoHandler(svc VideoService, tempDir string) *VideoHandler {
	return &VideoHandler{Svc: svc, TempDir: tempDir}
}

// ListVideos godoc
// @Summary      List videos
// @Description  Search, filter by owner, sort and paginate videos.
// @Tags         videos
// @Produce      json
// @Param        page      query  int     false  "page (default 1)"
// @Param        limit     query  int     false  "page size (default 10, max 100)"
// @Param        query     query  string  false  "search in title and description"
// @Param        sortBy    query  string  false  "createdAt | updatedAt | views | duration | title"
// @Param        sortType  query  string  false  "asc | desc"
// @Param        userId    query  string  false  "owner id"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	var q dto.ListVideosQuery
	if err := c.QueryParser(&q); err != nil {
		return Fail(c, errInvalidQuery)
	}
	page, err := h.Svc.List(c.UserContext(), q)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, page, "Videos fetched successfully")
}

// PublishVideo godoc
// @Summary      Publish a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true  "title"
// @Param        description  formData  string  true  "description"
// @Param        videoFile    formData  file    true  "video file"
// @Param        thumbnail    formData  file    true  "thumbnail image"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *fiber.Ctx) error {
	var req dto.PublishVideoReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}

	up := newUploads(h.TempDir)
	defer up.cleanup()
	videoPath, err := up.save(c, "videoFile")
	if err != nil {
		return Fail(c, err)
	}
	thumbPath, err := up.save(c, "thumbnail")
	if err != nil {
		return Fail(c, err)
	}

	v, err := h.Svc.Publish(c.UserContext(), viewer(c), services.PublishVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusCreated, v, "Video published successfully")
}

// GetVideoByID godoc
// @Summary      Get a video
// @Description  Counts a view and records it in the caller's watch history.
// @Tags         videos
// @Produce      json
// @Param        videoId  path  string  true  "video id"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) GetVideoByID(c *fiber.Ctx) error {
	id, err := pathID(c, "videoId")
	if err != nil {
		return Fail(c, err)
	}
	v, err := h.Svc.Get(c.UserContext(), viewer(c), id)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, v, "Video fetched successfully")
}

// UpdateVideo godoc
// @Summary      Update a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId      path      string  true   "video id"
// @Param        title        formData  string  false  "title"
// @Param        description  formData  string  false  "description"
// @Param        thumbnail    formData  file    false  "new thumbnail"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	id, err := pathID(c, "videoId")
	if err != nil {
		return Fail(c, err)
	}

	var req dto.UpdateVideoReq
	if isMultipart(c) {
		req.Title = formValue(c, "title")
		req.Description = formValue(c, "description")
		if err := check(&req); err != nil {
			return Fail(c, err)
		}
	} else if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return Fail(c, err)
		}
	}

	up := newUploads(h.TempDir)
	defer up.cleanup()
	thumbPath, err := up.save(c, "thumbnail")
	if err != nil {
		return Fail(c, err)
	}

	v, err := h.Svc.Update(c.UserContext(), viewer(c), id, services.UpdateVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, v, "Video updated successfully")
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Tags         videos
// @Security     BearerAuth
// @Param        videoId  path  string  true  "video id"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	id, err := pathID(c, "videoId")
	if err != nil {
		return Fail(c, err)
	}
	if err := h.Svc.Delete(c.UserContext(), viewer(c), id); err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, nil, "Video deleted successfully")
}

// TogglePublishStatus godoc
// @Summary  Flip a video's published flag
// @Tags     videos
// @Security BearerAuth
// @Param    videoId  path  string  true  "video id"
// @Success  200  {object}  dto.Response
// @Router   /videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublishStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "videoId")
	if err != nil {
		return Fail(c, err)
	}
	v, err := h.Svc.TogglePublish(c.UserContext(), viewer(c), id)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, v, "Publish status toggled successfully")
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

// formValue is nil when the field was not sent at all.
func formValue(c *fiber.Ctx, name string) *string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	vals, ok := form.Value[name]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}
