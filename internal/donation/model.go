package donation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	KeyPrefix           = "donation"
	IDPrefix            = "donation_"
	CampaignTotalPrefix = "campaign_total"

	StatusCompleted = "completed"

	ActionCreated = "DONATION_CREATED"
)

// Donation is stored under "donation:<id>". Amount is always numeric once stored.
type Donation struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Frequency     string  `json:"frequency"`
	PaymentMethod string  `json:"paymentMethod"`
	CampaignID    string  `json:"campaignId,omitempty"`
	Email         string  `json:"email,omitempty"` // receipt address, optional
	DonatedAt     string  `json:"donatedAt"`
	Status        string  `json:"status"`
}

// Amount accepts either a JSON number or a JSON string and keeps its textual form.
// A numeric zero counts as absent; the string "0" does not.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or string: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*a = ""
		return nil
	}
	*a = Amount(n.String())
	return nil
}

// Float parses the amount. Leading and trailing spaces are ignored.
func (a Amount) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
}

// CreateDonationRequest is the body of POST /donation
type CreateDonationRequest struct {
	Amount        Amount `json:"amount" binding:"required" swaggertype:"string" example:"50"`
	Frequency     string `json:"frequency" binding:"required" example:"one-time"`
	PaymentMethod string `json:"paymentMethod" binding:"required" example:"card"`
	CampaignID    string `json:"campaignId,omitempty" example:"camp-1"`
	Email         string `json:"email,omitempty"`
}

type CreateDonationResponse struct {
	Success    bool     `json:"success"`
	DonationID string   `json:"donationId"`
	Donation   Donation `json:"donation"`
}

type DonationListResponse struct {
	Donations []Donation `json:"donations"`
}

// CampaignStats is the read side of the campaign_total counter
type CampaignStats struct {
	CampaignID  string  `json:"campaignId"`
	TotalRaised float64 `json:"totalRaised"`
}
