package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the canonical response shape for every endpoint:
// {"code": <status>, "message": "<msg>", "data": <payload>}.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PageData is the canonical list payload carried inside Envelope.Data.
type PageData struct {
	List    any   `json:"list"`
	Total   int64 `json:"total"`
	Current int   `json:"current"`
	Size    int   `json:"size"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Message: "ok", Data: data})
}

func okMessage(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Message: message, Data: data})
}
