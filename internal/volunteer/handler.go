package volunteer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/submission"
	"github.com/dclhub/dcl-hub-backend/middleware"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Apply godoc
// @Summary Submit a volunteer application
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security PublicKey
// @Param request body CreateApplicationRequest true "Application"
// @Success 200 {object} CreateApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /volunteer [post]
func (h *Handler) Apply(c *gin.Context) {
	var req CreateApplicationRequest
	if !submission.BindJSON(c, &req) {
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), req, middleware.GetIPFromContext(c))
	if err != nil {
		log.Error().Err(err).Msg("Error creating volunteer application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create volunteer application"})
		return
	}

	c.JSON(http.StatusOK, CreateApplicationResponse{Success: true, VolunteerID: app.ID, Volunteer: *app})
}

// List godoc
// @Summary List volunteer applications
// @Tags Volunteers
// @Produce json
// @Success 200 {object} ApplicationListResponse
// @Failure 500 {object} map[string]string
// @Router /volunteers [get]
func (h *Handler) List(c *gin.Context) {
	apps, err := h.svc.ListApplications(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching volunteers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteers"})
		return
	}
	c.JSON(http.StatusOK, ApplicationListResponse{Volunteers: apps})
}
