package eventregistration

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

// ===========================
// 📝 Register For Event
// ===========================

// Register godoc
// @Summary Register for an event
// @Tags Events
// @Accept json
// @Produce json
// @Security PublicKey
// @Param request body CreateRegistrationRequest true "Registration"
// @Success 200 {object} CreateRegistrationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /event-registration [post]
func (h *Handler) Register(c *gin.Context) {
	var req CreateRegistrationRequest
	if !submission.BindJSON(c, &req) {
		return
	}

	reg, err := h.svc.Register(c.Request.Context(), req, middleware.GetIPFromContext(c))
	if err != nil {
		log.Error().Err(err).Msg("Error creating event registration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create registration"})
		return
	}

	c.JSON(http.StatusOK, CreateRegistrationResponse{
		Success:        true,
		RegistrationID: reg.ID,
		Registration:   *reg,
	})
}

// ===========================
// 📋 Registrations For Event
// ===========================

// ListByEvent godoc
// @Summary List registrations for an event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} RegistrationListResponse
// @Failure 500 {object} map[string]string
// @Router /event-registrations/{eventId} [get]
func (h *Handler) ListByEvent(c *gin.Context) {
	registrations, err := h.svc.ListByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		log.Error().Err(err).Msg("Error fetching event registrations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}
	c.JSON(http.StatusOK, RegistrationListResponse{Registrations: registrations})
}

// GetEventStats godoc
// @Summary Registration count for an event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} EventStats
// @Failure 500 {object} map[string]string
// @Router /event-stats/{eventId} [get]
func (h *Handler) GetEventStats(c *gin.Context) {
	stats, err := h.svc.GetEventStats(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		log.Error().Err(err).Msg("Error fetching event stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
