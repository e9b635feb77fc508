package controllers

import "github.com/gofiber/fiber/v2"

// Healthcheck godoc
// @Summary  Liveness probe
// @Tags     healthcheck
// @Success  200  {object}  dto.Response
// @Router   /healthcheck [get]
func Healthcheck(c *fiber.Ctx) error {
	return OK(c, fiber.StatusOK, nil, "OK")
}
