package reports

// Report format constants
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Exportable collections, as they appear in /admin/exports/:collection
const (
	CollectionEventRegistrations = "event-registrations"
	CollectionDonations          = "donations"
	CollectionVolunteers         = "volunteers"
	CollectionPartnerships       = "partnerships"
	CollectionContacts           = "contacts"
	CollectionAuditLogs          = "audit-logs"
)

const (
	contentTypeCSV   = "text/csv"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
)

// Table is a collection flattened for export. Widths are PDF column widths in mm
// and must have one entry per header.
type Table struct {
	Title   string
	Headers []string
	Widths  []float64
	Rows    [][]string
}
