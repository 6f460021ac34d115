package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
)

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// statusFor maps an error kind to an HTTP status code.
func statusFor(k common.Kind) int {
	switch k {
	case common.KindValidation:
		return fiber.StatusBadRequest
	case common.KindNotFound:
		return fiber.StatusNotFound
	case common.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// errorHandler renders any error returned by a handler or a middleware.
func errorHandler(c fiber.Ctx, err error) error {
	body := errorBody{
		StatusCode:    fiber.StatusInternalServerError,
		StatusMessage: http.StatusText(http.StatusInternalServerError),
	}

	var ce *common.Error
	var fe *fiber.Error
	switch {
	case errors.As(err, &ce):
		body.StatusCode = statusFor(ce.Kind)
		body.StatusMessage = ce.Message
	case errors.As(err, &fe):
		body.StatusCode = fe.Code
		body.StatusMessage = fe.Message
	}

	return c.Status(body.StatusCode).JSON(body)
}
