package reports

import (
	"context"
	"strconv"

	"github.com/dclhub/dcl-hub-backend/internal/auditlog"
	"github.com/dclhub/dcl-hub-backend/internal/contact"
	"github.com/dclhub/dcl-hub-backend/internal/donation"
	"github.com/dclhub/dcl-hub-backend/internal/eventregistration"
	"github.com/dclhub/dcl-hub-backend/internal/partnership"
	"github.com/dclhub/dcl-hub-backend/internal/volunteer"
)

// Source loads one collection as a Table.
type Source func(ctx context.Context) (Table, error)

// Sources wires every exportable collection to its repository.
type Sources struct {
	EventRegistrations eventregistration.Repository
	Donations          donation.Repository
	Volunteers         volunteer.Repository
	Partnerships       partnership.Repository
	Contacts           contact.Repository
	AuditLogs          auditlog.Service
}

// Map returns the configured sources keyed by collection name.
func (s Sources) Map() map[string]Source {
	m := make(map[string]Source)
	if s.EventRegistrations != nil {
		m[CollectionEventRegistrations] = eventRegistrationTable(s.EventRegistrations)
	}
	if s.Donations != nil {
		m[CollectionDonations] = donationTable(s.Donations)
	}
	if s.Volunteers != nil {
		m[CollectionVolunteers] = volunteerTable(s.Volunteers)
	}
	if s.Partnerships != nil {
		m[CollectionPartnerships] = partnershipTable(s.Partnerships)
	}
	if s.Contacts != nil {
		m[CollectionContacts] = contactTable(s.Contacts)
	}
	if s.AuditLogs != nil {
		m[CollectionAuditLogs] = auditLogTable(s.AuditLogs)
	}
	return m
}

func eventRegistrationTable(repo eventregistration.Repository) Source {
	return func(ctx context.Context) (Table, error) {
		regs, err := repo.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{
			Title:   "Event Registrations",
			Headers: []string{"ID", "Event", "Full Name", "Email", "Phone", "Attendance", "Organization", "Registered At"},
			Widths:  []float64{45, 30, 35, 45, 28, 25, 35, 34},
		}
		for _, r := range regs {
			t.Rows = append(t.Rows, []string{r.ID, r.EventID, r.FullName, r.Email, r.Phone, r.AttendanceType, r.Organization, r.RegisteredAt})
		}
		return t, nil
	}
}

func donationTable(repo donation.Repository) Source {
	return func(ctx context.Context) (Table, error) {
		donations, err := repo.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{
			Title:   "Donations",
			Headers: []string{"ID", "Amount", "Frequency", "Payment Method", "Campaign", "Email", "Status", "Donated At"},
			Widths:  []float64{45, 22, 25, 30, 30, 50, 22, 40},
		}
		for _, d := range donations {
			t.Rows = append(t.Rows, []string{
				d.ID,
				strconv.FormatFloat(d.Amount, 'f', 2, 64),
				d.Frequency,
				d.PaymentMethod,
				d.CampaignID,
				d.Email,
				d.Status,
				d.DonatedAt,
			})
		}
		return t, nil
	}
}

func volunteerTable(repo volunteer.Repository) Source {
	return func(ctx context.Context) (Table, error) {
		apps, err := repo.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{
			Title:   "Volunteers",
			Headers: []string{"ID", "Name", "Email", "Phone", "Skills", "Availability", "Status", "Applied At"},
			Widths:  []float64{45, 30, 45, 25, 40, 30, 20, 40},
		}
		for _, a := range apps {
			t.Rows = append(t.Rows, []string{a.ID, a.Name, a.Email, a.Phone, a.Skills, a.Availability, a.Status, a.AppliedAt})
		}
		return t, nil
	}
}

func partnershipTable(repo partnership.Repository) Source {
	return func(ctx context.Context) (Table, error) {
		inquiries, err := repo.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{
			Title:   "Partnerships",
			Headers: []string{"ID", "Organization", "Contact", "Email", "Phone", "Type", "Status", "Submitted At"},
			Widths:  []float64{45, 40, 30, 45, 25, 25, 20, 40},
		}
		for _, p := range inquiries {
			t.Rows = append(t.Rows, []string{p.ID, p.OrganizationName, p.ContactPerson, p.Email, p.Phone, p.PartnershipType, p.Status, p.SubmittedAt})
		}
		return t, nil
	}
}

func contactTable(repo contact.Repository) Source {
	return func(ctx context.Context) (Table, error) {
		msgs, err := repo.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{
			Title:   "Contacts",
			Headers: []string{"ID", "Name", "Email", "Subject", "Message", "Status", "Submitted At"},
			Widths:  []float64{45, 30, 45, 40, 75, 17, 25},
		}
		for _, m := range msgs {
			t.Rows = append(t.Rows, []string{m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status, m.SubmittedAt})
		}
		return t, nil
	}
}

// auditLogTable exports the most recent audit entries, newest first.
func auditLogTable(svc auditlog.Service) Source {
	return func(ctx context.Context) (Table, error) {
		page, err := svc.GetAuditLogs(ctx, auditlog.AuditLogFilter{Page: 1, Limit: 1000})
		if err != nil {
			return Table{}, err
		}
		t := Table{
			Title:   "Audit Logs",
			Headers: []string{"ID", "Action", "Key", "Status", "IP Address", "Timestamp", "Details"},
			Widths:  []float64{12, 45, 55, 18, 28, 35, 84},
		}
		for _, l := range page.Data {
			t.Rows = append(t.Rows, []string{
				strconv.FormatUint(uint64(l.ID), 10),
				l.Action,
				l.EntityKey,
				l.Status,
				l.IPAddress,
				l.CreatedAt.Format("2006-01-02 15:04:05"),
				string(l.Details),
			})
		}
		return t, nil
	}
}
