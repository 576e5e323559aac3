package partnership

const (
	KeyPrefix     = "partnership"
	IDPrefix      = "partnership_"
	StatusPending = "pending"
	ActionCreated = "PARTNERSHIP_CREATED"
)

// Inquiry is stored under "partnership:<id>"
type Inquiry struct {
	ID               string `json:"id"`
	OrganizationName string `json:"organizationName"`
	ContactPerson    string `json:"contactPerson"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PartnershipType  string `json:"partnershipType"`
	Message          string `json:"message"`
	SubmittedAt      string `json:"submittedAt"`
	Status           string `json:"status"`
}

type CreateInquiryRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	ContactPerson    string `json:"contactPerson" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	PartnershipType  string `json:"partnershipType" binding:"required" example:"corporate"`
	Message          string `json:"message" binding:"required"`
}

type CreateInquiryResponse struct {
	Success       bool    `json:"success"`
	PartnershipID string  `json:"partnershipId"`
	Partnership   Inquiry `json:"partnership"`
}

type InquiryListResponse struct {
	Partnerships []Inquiry `json:"partnerships"`
}
