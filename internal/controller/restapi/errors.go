package restapi

import (
	"errors"
	"net/http"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler answers every error that escapes the handlers with the
// {error_code, message} envelope. Details of server errors stay in the log.
func NewErrorHandler(l logger.Interface) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := http.StatusInternalServerError
		msg := response.UnknownErrorMessage

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code < http.StatusInternalServerError {
				msg = fe.Message
			}
		}

		if code >= http.StatusInternalServerError {
			l.Error(err, "restapi - errorHandler - "+ctx.Method()+" "+ctx.Path())
		} else {
			l.Debug("restapi - errorHandler - %s %s: %d %s", ctx.Method(), ctx.Path(), code, msg)
		}

		return ctx.Status(code).JSON(response.Error{ErrorCode: code, Message: msg})
	}
}
