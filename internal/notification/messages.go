package notification

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dclhub/dcl-hub-backend/internal/events"
)

// submissionFields holds the record fields any message template reads.
type submissionFields struct {
	Email            string      `json:"email"`
	FullName         string      `json:"fullName"`
	Name             string      `json:"name"`
	EventID          string      `json:"eventId"`
	AttendanceType   string      `json:"attendanceType"`
	Amount           json.Number `json:"amount"`
	Frequency        string      `json:"frequency"`
	CampaignID       string      `json:"campaignId"`
	Skills           string      `json:"skills"`
	Availability     string      `json:"availability"`
	OrganizationName string      `json:"organizationName"`
	ContactPerson    string      `json:"contactPerson"`
	PartnershipType  string      `json:"partnershipType"`
	Subject          string      `json:"subject"`
	Message          string      `json:"message"`
}

// Compose renders the submitter confirmation and the staff alert for ev.
// Either may be nil when the kind has nothing to send on that side.
func Compose(ev events.SubmissionCreated, staffTopic string) (confirmation, staff *Message, err error) {
	var f submissionFields
	if err := json.Unmarshal(ev.Record, &f); err != nil {
		return nil, nil, fmt.Errorf("decoding %s record: %w", ev.Key, err)
	}

	switch ev.Kind {
	case "event_registration":
		confirmation = &Message{
			To:      []string{f.Email},
			Subject: "Your event registration is confirmed",
			Body: fmt.Sprintf("Hi %s,\n\nThanks for registering for %s (%s attendance). Your registration ID is %s.",
				f.FullName, f.EventID, f.AttendanceType, ev.ID),
		}
	case "donation":
		if f.Email != "" {
			campaign := ""
			if f.CampaignID != "" {
				campaign = " to campaign " + f.CampaignID
			}
			confirmation = &Message{
				To:      []string{f.Email},
				Subject: "Thank you for your donation",
				Body: fmt.Sprintf("We received your %s donation of %s%s.\nReceipt number: %s",
					f.Frequency, f.Amount.String(), campaign, ev.ID),
			}
		}
	case "volunteer":
		confirmation = &Message{
			To:      []string{f.Email},
			Subject: "We received your volunteer application",
			Body:    fmt.Sprintf("Hi %s,\n\nThank you for offering your time. Our team will review your application and reach out soon.", f.Name),
		}
		staff = &Message{
			Subject: "New volunteer application",
			Body:    fmt.Sprintf("%s (%s), available %s", f.Name, f.Skills, f.Availability),
		}
	case "partnership":
		confirmation = &Message{
			To:      []string{f.Email},
			Subject: "We received your partnership inquiry",
			Body:    fmt.Sprintf("Hi %s,\n\nThank you for reaching out on behalf of %s. We will be in touch shortly.", f.ContactPerson, f.OrganizationName),
		}
		staff = &Message{
			Subject: "New partnership inquiry",
			Body:    fmt.Sprintf("%s (%s) from %s", f.OrganizationName, f.PartnershipType, f.ContactPerson),
		}
	case "contact":
		staff = &Message{
			Subject: "New contact message",
			Body:    fmt.Sprintf("%s: %s", f.Name, truncate(f.Subject, 120)),
		}
	default:
		return nil, nil, fmt.Errorf("unknown submission kind %q", ev.Kind)
	}

	if confirmation != nil && strings.TrimSpace(f.Email) == "" {
		confirmation = nil
	}
	if staff != nil {
		if staffTopic == "" {
			staff = nil
		} else {
			staff.To = []string{staffTopic}
		}
	}
	return confirmation, staff, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
