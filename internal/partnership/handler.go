package partnership

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

// CreateInquiry godoc
// @Summary Submit a partnership inquiry
// @Tags Partnerships
// @Accept json
// @Produce json
// @Security PublicKey
// @Param request body CreateInquiryRequest true "Inquiry"
// @Success 200 {object} CreateInquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /partnership [post]
func (h *Handler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if !submission.BindJSON(c, &req) {
		return
	}

	inquiry, err := h.svc.CreateInquiry(c.Request.Context(), req, middleware.GetIPFromContext(c))
	if err != nil {
		log.Error().Err(err).Msg("Error creating partnership inquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partnership inquiry"})
		return
	}

	c.JSON(http.StatusOK, CreateInquiryResponse{Success: true, PartnershipID: inquiry.ID, Partnership: *inquiry})
}

// List godoc
// @Summary List partnership inquiries
// @Tags Partnerships
// @Produce json
// @Success 200 {object} InquiryListResponse
// @Failure 500 {object} map[string]string
// @Router /partnerships [get]
func (h *Handler) List(c *gin.Context) {
	inquiries, err := h.svc.ListInquiries(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching partnerships")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partnerships"})
		return
	}
	c.JSON(http.StatusOK, InquiryListResponse{Partnerships: inquiries})
}
