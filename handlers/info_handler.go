package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/constants"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler { return &InfoHandler{} }

// GET /info/criteria — เกณฑ์ 5ส ทั้งห้าข้อ (ลำดับคงที่)
func (h *InfoHandler) Criteria(c echo.Context) error {
	return c.JSON(http.StatusOK, constants.FiveSCriteria)
}

// GET /info/classrooms
func (h *InfoHandler) Classrooms(c echo.Context) error {
	return c.JSON(http.StatusOK, constants.Classrooms)
}

// GET /info/buildings — ผังอาคารสำหรับหน้าแผนที่โรงเรียน
func (h *InfoHandler) Buildings(c echo.Context) error {
	return c.JSON(http.StatusOK, constants.BuildingRoomMapping)
}
