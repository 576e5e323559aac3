package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/dclhub/dcl-hub-backend/internal/auditlog"
	"github.com/dclhub/dcl-hub-backend/internal/donation"
	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
	"github.com/dclhub/dcl-hub-backend/internal/volunteer"
)

func seededService(t *testing.T) Service {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	audit := auditlog.NewService(auditlog.NewMemoryRepository(10))
	recorder := submission.NewRecorder(audit, nil)

	donations := donation.NewRepository(store, kvstore.NewCounter(store, kvstore.CounterAtomic))
	donationSvc := donation.NewService(donations, idgen.NanoID{}, recorder)
	for _, amount := range []donation.Amount{"50", "12.5"} {
		if _, err := donationSvc.CreateDonation(ctx, donation.CreateDonationRequest{
			Amount: amount, Frequency: "one-time", PaymentMethod: "card", CampaignID: "camp-1",
		}, ""); err != nil {
			t.Fatalf("CreateDonation() error: %v", err)
		}
	}

	volunteers := volunteer.NewRepository(store)
	if _, err := volunteer.NewService(volunteers, idgen.NanoID{}, recorder).Apply(ctx, volunteer.CreateApplicationRequest{
		Name: "Grace M.", Email: "grace@example.org", Phone: "555", Skills: "teaching, mentoring", Availability: "weekends",
	}, ""); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	sources := Sources{Donations: donations, Volunteers: volunteers, AuditLogs: audit}.Map()
	return NewService(NewReportExporter(), sources)
}

func TestExportCSV(t *testing.T) {
	svc := seededService(t)
	file, err := svc.Export(context.Background(), CollectionVolunteers, FormatCSV)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if file.ContentType != "text/csv" || !strings.HasPrefix(file.Filename, "volunteers_report_") || !strings.HasSuffix(file.Filename, ".csv") {
		t.Errorf("file = %q (%s)", file.Filename, file.ContentType)
	}

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(records))
	}
	if records[1][1] != "Grace M." || records[1][4] != "teaching, mentoring" {
		t.Errorf("row = %v", records[1])
	}
}

func TestExportExcel(t *testing.T) {
	svc := seededService(t)
	file, err := svc.Export(context.Background(), CollectionDonations, FormatExcel)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Donations")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][1] != "Amount" {
		t.Errorf("header = %v", rows[0])
	}
}

func TestExportPDF(t *testing.T) {
	svc := seededService(t)
	for _, collection := range []string{CollectionDonations, CollectionAuditLogs} {
		file, err := svc.Export(context.Background(), collection, FormatPDF)
		if err != nil {
			t.Fatalf("Export(%s) error: %v", collection, err)
		}
		if !bytes.HasPrefix(file.Data, []byte("%PDF")) {
			t.Errorf("%s: not a PDF", collection)
		}
	}
}

func TestExportErrors(t *testing.T) {
	svc := seededService(t)
	if _, err := svc.Export(context.Background(), "members", FormatCSV); !errors.Is(err, ErrUnknownCollection) {
		t.Errorf("unknown collection error = %v", err)
	}
	if _, err := svc.Export(context.Background(), CollectionDonations, "docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unsupported format error = %v", err)
	}

	failing := NewService(NewReportExporter(), map[string]Source{
		"broken": func(context.Context) (Table, error) { return Table{}, errors.New("store offline") },
	})
	if _, err := failing.Export(context.Background(), "broken", FormatCSV); err == nil {
		t.Error("Export() error = nil, want source failure")
	}
}

func TestExportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/exports/:collection", NewHandler(seededService(t)).Export)

	tests := []struct {
		path string
		want int
	}{
		{"/admin/exports/donations", http.StatusOK},
		{"/admin/exports/donations?format=pdf", http.StatusOK},
		{"/admin/exports/donations?format=docx", http.StatusBadRequest},
		{"/admin/exports/members", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("GET %s: status = %d, want %d", tt.path, w.Code, tt.want)
		}
		if tt.want == http.StatusOK && !strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment; filename=donations_report_") {
			t.Errorf("GET %s: Content-Disposition = %q", tt.path, w.Header().Get("Content-Disposition"))
		}
	}
}
