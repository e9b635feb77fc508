package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/logger"
)

func OK(c *fiber.Ctx, status int, data any, message string) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(dto.Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// Fail is the single place where error kinds become HTTP status codes.
func Fail(c *fiber.Ctx, err error) error {
	ae := apperror.From(err)
	status := ae.Kind.Status()
	msg := ae.Message

	switch ae.Kind {
	case apperror.KindInternal, apperror.KindUpstream:
		logger.Log.Error().
			Err(ae.Err).
			Str("kind", ae.Kind.String()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(msg)
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		StatusCode: status,
		Message:    msg,
		Success:    false,
		Errors:     ae.Details,
	})
}

// ErrorHandler renders errors that escape handlers and middleware, such as
// fiber.NewError from the auth middleware or an unknown route, in the same
// envelope as Fail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{
			StatusCode: fe.Code,
			Message:    fe.Message,
			Success:    false,
		})
	}
	return Fail(c, err)
}
