package donation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/submission"
	"github.com/dclhub/dcl-hub-backend/middleware"
)

// Handler represents the donation HTTP handler
type Handler struct {
	svc Service
}

// NewHandler creates a new donation handler
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ==============================
// 🌟 Create Donation
// ==============================

// CreateDonation godoc
// @Summary Record a donation
// @Description Records a completed donation and adds its amount to the campaign total when campaignId is given
// @Tags Donations
// @Accept json
// @Produce json
// @Security PublicKey
// @Param request body CreateDonationRequest true "Donation"
// @Success 200 {object} CreateDonationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /donation [post]
func (h *Handler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if !submission.BindJSON(c, &req) {
		return
	}

	donation, err := h.svc.CreateDonation(c.Request.Context(), req, middleware.GetIPFromContext(c))
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": submission.MsgMissingFields})
			return
		}
		log.Error().Err(err).Msg("Error processing donation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process donation"})
		return
	}

	c.JSON(http.StatusOK, CreateDonationResponse{
		Success:    true,
		DonationID: donation.ID,
		Donation:   *donation,
	})
}

// ==============================
// 📋 List Donations
// ==============================

// ListDonations godoc
// @Summary List donations
// @Tags Donations
// @Produce json
// @Success 200 {object} DonationListResponse
// @Failure 500 {object} map[string]string
// @Router /donations [get]
func (h *Handler) ListDonations(c *gin.Context) {
	donations, err := h.svc.ListDonations(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching donations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}
	c.JSON(http.StatusOK, DonationListResponse{Donations: donations})
}

// ==============================
// 📊 Campaign Stats
// ==============================

// GetCampaignStats godoc
// @Summary Campaign total raised
// @Tags Donations
// @Produce json
// @Param campaignId path string true "Campaign ID"
// @Success 200 {object} CampaignStats
// @Failure 500 {object} map[string]string
// @Router /campaign-stats/{campaignId} [get]
func (h *Handler) GetCampaignStats(c *gin.Context) {
	stats, err := h.svc.GetCampaignStats(c.Request.Context(), c.Param("campaignId"))
	if err != nil {
		log.Error().Err(err).Str("campaign_id", c.Param("campaignId")).Msg("Error fetching campaign stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
