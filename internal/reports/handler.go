package reports

import (
	"errors"
	"fmt"
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

// Export godoc
// @Summary Export a collection
// @Description Downloads every record of a collection as CSV, Excel or PDF (admin only)
// @Tags Admin
// @Produce octet-stream
// @Security BearerAuth
// @Param collection path string true "event-registrations, donations, volunteers, partnerships, contacts or audit-logs"
// @Param format query string false "csv (default), excel or pdf"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/exports/{collection} [get]
func (h *Handler) Export(c *gin.Context) {
	collection := c.Param("collection")
	format := c.DefaultQuery("format", FormatCSV)

	file, err := h.service.Export(c.Request.Context(), collection, format)
	switch {
	case errors.Is(err, ErrUnknownCollection):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	case errors.Is(err, ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format. Use csv, excel or pdf"})
		return
	case err != nil:
		log.Error().Err(err).Str("collection", collection).Str("format", format).Msg("❌ Export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export " + collection})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
