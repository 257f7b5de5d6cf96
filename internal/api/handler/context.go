package handler

import (
	"github.com/labstack/echo/v4"
)

// ctxUsername extracts the authenticated principal injected by the Auth
// middleware. Mutation handlers use it to stamp creator/modifier fields; an
// empty result means the route was wired without the middleware, which is a
// configuration mistake, so "system" is used rather than failing the request.
func ctxUsername(c echo.Context) string {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "system"
	}
	return username
}

// ctxToken returns the raw bearer token for the current request, if any.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
