package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/constants"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

/* ====================== Config & Helpers ====================== */

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	if secret == "" {
		secret = "dev-secret" // กันล่มในเครื่อง dev (โปรดตั้งใน .env จริง)
	}
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ====================== DTOs ====================== */

type TeacherLoginReq struct {
	Code string `json:"code"`
}

type AdminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/* ====================== Handlers ====================== */

// POST /auth/teacher/login
// ครูผู้ตรวจ login ด้วยรหัสประจำตัวอย่างเดียว เทียบกับ roster
func (h *AuthHandler) TeacherLogin(c echo.Context) error {
	var req TeacherLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	teacher, ok := constants.FindTeacher(code)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CODE"})
	}

	token, err := h.signJWT(teacher.Code, "teacher", teacher.Name, 12*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"code": teacher.Code, "name": teacher.Name, "role": "teacher"},
	})
}

// POST /admin/login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var u models.User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(u.Username, u.Role, u.Name, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"id": u.ID, "role": u.Role, "username": u.Username, "name": u.Name},
	})
}
