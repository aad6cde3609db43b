package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the success shape shared by every endpoint:
// {status, message, payload}.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

func respondOK(c echo.Context, message string, payload any) error {
	return c.JSON(http.StatusOK, envelope{
		Status:  http.StatusOK,
		Message: message,
		Payload: payload,
	})
}
