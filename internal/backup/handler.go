package backup

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBackup godoc
// @Summary Snapshot the store to S3
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Result
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/backups [post]
func (h *Handler) CreateBackup(c *gin.Context) {
	result, err := h.service.Snapshot(c.Request.Context())
	if errors.Is(err, ErrNoDestination) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backups are not configured"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("❌ Backup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create backup"})
		return
	}
	c.JSON(http.StatusOK, result)
}
