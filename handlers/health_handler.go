package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/constants"
)

// Health ใช้สำหรับ /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": constants.AppVersion,
	})
}
