package contact

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

// Submit godoc
// @Summary Send a contact form message
// @Tags Contact
// @Accept json
// @Produce json
// @Security PublicKey
// @Param request body CreateMessageRequest true "Message"
// @Success 200 {object} CreateMessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contact [post]
func (h *Handler) Submit(c *gin.Context) {
	var req CreateMessageRequest
	if !submission.BindJSON(c, &req) {
		return
	}

	msg, err := h.svc.Submit(c.Request.Context(), req, middleware.GetIPFromContext(c))
	if err != nil {
		log.Error().Err(err).Msg("Error creating contact form submission")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact submission"})
		return
	}

	c.JSON(http.StatusOK, CreateMessageResponse{Success: true, ContactID: msg.ID, Contact: *msg})
}

// List godoc
// @Summary List contact form messages
// @Tags Contact
// @Produce json
// @Success 200 {object} MessageListResponse
// @Failure 500 {object} map[string]string
// @Router /contacts [get]
func (h *Handler) List(c *gin.Context) {
	msgs, err := h.svc.ListMessages(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, MessageListResponse{Contacts: msgs})
}
