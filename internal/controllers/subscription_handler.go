package controllers

import "github.com/gofiber/fiber/v2"

type SubscriptionHandler struct {
	Svc SubscriptionService
}

func NewSubscriptionHandler(svc SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Svc: svc}
}

// ToggleSubscription godoc
// @Summary      Subscribe to or unsubscribe from a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId  path  string  true  "channel (user) id"
// @Success      200  {object}  dto.Response  "data is {subscribed, subscribersCount}"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *fiber.Ctx) error {
	channel, err := pathID(c, "channelId")
	if err != nil {
		return Fail(c, err)
	}
	state, err := h.Svc.Toggle(c.UserContext(), viewer(c), channel)
	if err != nil {
		return Fail(c, err)
	}
	msg := "Unsubscribed successfully"
	if state.Subscribed {
		msg = "Subscribed successfully"
	}
	return OK(c, fiber.StatusOK, state, msg)
}

// GetChannelSubscribers godoc
// @Summary  Subscribers of a channel
// @Tags     subscriptions
// @Param    channelId  path  string  true  "channel id"
// @Success  200  {object}  dto.Response
// @Router   /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *fiber.Ctx) error {
	channel, err := pathID(c, "channelId")
	if err != nil {
		return Fail(c, err)
	}
	subs, err := h.Svc.Subscribers(c.UserContext(), channel)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, subs, "Subscribers fetched successfully")
}

// GetSubscribedChannels godoc
// @Summary  Channels a user is subscribed to
// @Tags     subscriptions
// @Param    subscriberId  path  string  true  "subscriber id"
// @Success  200  {object}  dto.Response
// @Router   /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *fiber.Ctx) error {
	sub, err := pathID(c, "subscriberId")
	if err != nil {
		return Fail(c, err)
	}
	chans, err := h.Svc.SubscribedChannels(c.UserContext(), sub)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, chans, "Subscribed channels fetched successfully")
}
