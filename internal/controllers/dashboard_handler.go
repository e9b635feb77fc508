package controllers

import "github.com/gofiber/fiber/v2"

type DashboardHandler struct {
	Svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// GetChannelStats godoc
// @Summary      Channel totals for the caller
// @Description  totalVideos, totalViews, totalSubscribers and totalLikes.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetChannelStats(c *fiber.Ctx) error {
	stats, err := h.Svc.Stats(c.UserContext(), viewer(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// GetChannelVideos godoc
// @Summary   All of the caller's videos, published or not
// @Tags      dashboard
// @Security  BearerAuth
// @Success   200  {object}  dto.Response
// @Router    /dashboard/videos [get]
func (h *DashboardHandler) GetChannelVideos(c *fiber.Ctx) error {
	videos, err := h.Svc.Videos(c.UserContext(), viewer(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
