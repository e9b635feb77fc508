package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
)

type PlaylistHandler struct {
	Svc PlaylistService
}

func NewPlaylistHandler(svc PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{Svc: svc}
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePlaylistReq  true  "playlist"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /playlist [post]
func (h *PlaylistHandler) CreatePlaylist(c *fiber.Ctx) error {
	var req dto.CreatePlaylistReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	p, err := h.Svc.Create(c.UserContext(), viewer(c), req.Name, req.Description)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusCreated, p, "Playlist created successfully")
}

// GetUserPlaylists godoc
// @Summary  List a user's playlists
// @Tags     playlists
// @Param    userId  path  string  true  "user id"
// @Success  200  {object}  dto.Response
// @Router   /playlist/user/{userId} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *fiber.Ctx) error {
	user, err := pathID(c, "userId")
	if err != nil {
		return Fail(c, err)
	}
	lists, err := h.Svc.ListByUser(c.UserContext(), user)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, lists, "Playlists fetched successfully")
}

// GetPlaylistByID godoc
// @Summary  Get a playlist with its videos
// @Tags     playlists
// @Param    playlistId  path  string  true  "playlist id"
// @Success  200  {object}  dto.Response
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /playlist/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylistByID(c *fiber.Ctx) error {
	id, err := pathID(c, "playlistId")
	if err != nil {
		return Fail(c, err)
	}
	p, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, p, "Playlist fetched successfully")
}

// UpdatePlaylist godoc
// @Summary   Rename or re-describe a playlist
// @Tags      playlists
// @Security  BearerAuth
// @Param     playlistId  path  string                 true  "playlist id"
// @Param     body        body  dto.UpdatePlaylistReq  true  "fields to change"
// @Success   200  {object}  dto.Response
// @Router    /playlist/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *fiber.Ctx) error {
	id, err := pathID(c, "playlistId")
	if err != nil {
		return Fail(c, err)
	}
	var req dto.UpdatePlaylistReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	p, err := h.Svc.Update(c.UserContext(), viewer(c), id, req.Name, req.Description)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, p, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary   Delete a playlist
// @Tags      playlists
// @Security  BearerAuth
// @Param     playlistId  path  string  true  "playlist id"
// @Success   200  {object}  dto.Response
// @Router    /playlist/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *fiber.Ctx) error {
	id, err := pathID(c, "playlistId")
	if err != nil {
		return Fail(c, err)
	}
	if err := h.Svc.Delete(c.UserContext(), viewer(c), id); err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, nil, "Playlist deleted successfully")
}

func videoAndPlaylist(c *fiber.Ctx) (video, playlist bson.ObjectID, err error) {
	if video, err = pathID(c, "videoId"); err != nil {
		return
	}
	playlist, err = pathID(c, "playlistId")
	return
}

// AddVideoToPlaylist godoc
// @Summary   Append a video to a playlist
// @Tags      playlists
// @Security  BearerAuth
// @Param     videoId     path  string  true  "video id"
// @Param     playlistId  path  string  true  "playlist id"
// @Success   200  {object}  dto.Response
// @Failure   400  {object}  dto.ErrorResponse  "already in playlist"
// @Failure   404  {object}  dto.ErrorResponse
// @Router    /playlist/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideoToPlaylist(c *fiber.Ctx) error {
	video, id, err := videoAndPlaylist(c)
	if err != nil {
		return Fail(c, err)
	}
	p, err := h.Svc.AddVideo(c.UserContext(), viewer(c), video, id)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, p, "Video added to playlist")
}

// RemoveVideoFromPlaylist godoc
// @Summary   Remove a video from a playlist
// @Tags      playlists
// @Security  BearerAuth
// @Param     videoId     path  string  true  "video id"
// @Param     playlistId  path  string  true  "playlist id"
// @Success   200  {object}  dto.Response
// @Failure   400  {object}  dto.ErrorResponse  "not in playlist"
// @Router    /playlist/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *fiber.Ctx) error {
	video, id, err := videoAndPlaylist(c)
	if err != nil {
		return Fail(c, err)
	}
	p, err := h.Svc.RemoveVideo(c.UserContext(), viewer(c), video, id)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, p, "Video removed from playlist")
}
