package eventregistration

const (
	KeyPrefix   = "event_registration"
	IDPrefix    = "event_reg_"
	CountPrefix = "event_registration_count"

	ActionCreated = "EVENT_REGISTRATION_CREATED"
)

// Registration is stored under "event_registration:<id>"
type Registration struct {
	ID             string `json:"id"`
	EventID        string `json:"eventId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AttendanceType string `json:"attendanceType"`
	Organization   string `json:"organization,omitempty"`
	RegisteredAt   string `json:"registeredAt"`
}

type CreateRegistrationRequest struct {
	EventID        string `json:"eventId" binding:"required" example:"summit-2025"`
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	AttendanceType string `json:"attendanceType" binding:"required" example:"in-person"`
	Organization   string `json:"organization,omitempty"`
}

type CreateRegistrationResponse struct {
	Success        bool         `json:"success"`
	RegistrationID string       `json:"registrationId"`
	Registration   Registration `json:"registration"`
}

type RegistrationListResponse struct {
	Registrations []Registration `json:"registrations"`
}

type EventStats struct {
	EventID           string `json:"eventId"`
	RegistrationCount int64  `json:"registrationCount"`
}
