package contact

const (
	KeyPrefix     = "contact"
	IDPrefix      = "contact_"
	StatusUnread  = "unread"
	ActionCreated = "CONTACT_CREATED"
)

// Message is a contact form submission stored under "contact:<id>"
type Message struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
	Status      string `json:"status"`
}

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type CreateMessageResponse struct {
	Success   bool    `json:"success"`
	ContactID string  `json:"contactId"`
	Contact   Message `json:"contact"`
}

type MessageListResponse struct {
	Contacts []Message `json:"contacts"`
}
