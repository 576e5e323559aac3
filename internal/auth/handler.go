package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// Login
// ===============================

type loginReq struct {
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a bearer token used on /admin routes
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body loginReq true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	tokens, err := h.service.Login(LoginInput{Password: req.Password})
	switch {
	case errors.Is(err, ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin login is disabled"})
		return
	case err != nil:
		log.Warn().Str("ip", c.ClientIP()).Msg("⚠️ Failed admin login")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}
