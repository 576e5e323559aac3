package volunteer

const (
	KeyPrefix     = "volunteer"
	IDPrefix      = "volunteer_"
	StatusPending = "pending"
	ActionCreated = "VOLUNTEER_CREATED"
)

// Application is stored under "volunteer:<id>"
type Application struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
	Message      string `json:"message,omitempty"`
	AppliedAt    string `json:"appliedAt"`
	Status       string `json:"status"`
}

type CreateApplicationRequest struct {
	Name         string `json:"name" binding:"required" example:"Grace M."`
	Email        string `json:"email" binding:"required" example:"grace@example.org"`
	Phone        string `json:"phone" binding:"required"`
	Skills       string `json:"skills" binding:"required" example:"teaching"`
	Availability string `json:"availability" binding:"required" example:"weekends"`
	Message      string `json:"message,omitempty"`
}

type CreateApplicationResponse struct {
	Success     bool        `json:"success"`
	VolunteerID string      `json:"volunteerId"`
	Volunteer   Application `json:"volunteer"`
}

type ApplicationListResponse struct {
	Volunteers []Application `json:"volunteers"`
}
