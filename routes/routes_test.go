package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dclhub/dcl-hub-backend/config"
	"github.com/dclhub/dcl-hub-backend/internal/auditlog"
	"github.com/dclhub/dcl-hub-backend/internal/events"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

const anonKey = "anon-test-key"

type server struct {
	store  *kvstore.MemoryStore
	bus    *events.LocalBus
	router *gin.Engine
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	cfg := &config.Config{
		ServicePrefix:      "/make-server",
		PublicAnonKey:      anonKey,
		CounterMode:        "atomic",
		AdminJWTSecret:     "jwt-secret",
		AdminPasswordHash:  string(hash),
		AdminTokenTTLHours: 1,
		AdminRateLimit:     1000,
		BackupPrefix:       "backups",
	}

	s := &server{store: kvstore.NewMemoryStore(), bus: events.NewLocalBus(), router: gin.New()}
	Setup(s.router, cfg, Infra{
		Store:     s.store,
		Publisher: s.bus,
		AuditRepo: auditlog.NewMemoryRepository(100),
	})
	return s
}

func (s *server) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/make-server"+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/make-server"+path, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"ok"}` {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
}

func TestVolunteerEndToEnd(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodPost, "/volunteer", anonKey,
		`{"name":"Grace M.","email":"grace@example.org","phone":"555-0199","skills":"teaching","availability":"weekends"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		Success     bool   `json:"success"`
		VolunteerID string `json:"volunteerId"`
		Volunteer   struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"volunteer"`
	}
	decode(t, w, &created)
	if !created.Success || created.Volunteer.Status != "pending" || created.Volunteer.Name != "Grace M." {
		t.Errorf("created = %+v", created)
	}

	var list struct {
		Volunteers []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"volunteers"`
	}
	decode(t, s.do(http.MethodGet, "/volunteers", "", ""), &list)
	if len(list.Volunteers) != 1 || list.Volunteers[0].ID != created.VolunteerID {
		t.Errorf("volunteers = %+v", list.Volunteers)
	}
}

func TestCampaignTotalsEndToEnd(t *testing.T) {
	s := newServer(t)
	body := `{"amount":"50","frequency":"one-time","paymentMethod":"card","campaignId":"camp-1"}`

	ids := map[string]bool{}
	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPost, "/donation", anonKey, body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			DonationID string `json:"donationId"`
		}
		decode(t, w, &resp)
		ids[resp.DonationID] = true
	}
	if len(ids) != 2 {
		t.Errorf("duplicate payloads produced %d distinct ids, want 2", len(ids))
	}

	raw, err := s.store.Get(context.Background(), "campaign_total:camp-1")
	if err != nil {
		t.Fatalf("campaign_total missing: %v", err)
	}
	if got := kvstore.ParseNumber(raw); got != 100 {
		t.Errorf("campaign_total:camp-1 = %v, want 100", got)
	}

	w := s.do(http.MethodGet, "/campaign-stats/camp-1", "", "")
	if w.Body.String() != `{"campaignId":"camp-1","totalRaised":100}` {
		t.Errorf("campaign stats = %s", w.Body.String())
	}
	w = s.do(http.MethodGet, "/campaign-stats/camp-empty", "", "")
	if w.Body.String() != `{"campaignId":"camp-empty","totalRaised":0}` {
		t.Errorf("empty campaign stats = %s", w.Body.String())
	}

	var list struct {
		Donations []json.RawMessage `json:"donations"`
	}
	decode(t, s.do(http.MethodGet, "/donations", "", ""), &list)
	if len(list.Donations) != 2 {
		t.Errorf("donations = %d, want 2", len(list.Donations))
	}
}

func TestMissingFieldWritesNothing(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodPost, "/contact", anonKey, `{"name":"Sam","email":"sam@example.org","subject":"Hi"}`)
	if w.Code != http.StatusBadRequest || w.Body.String() != `{"error":"Missing required fields"}` {
		t.Fatalf("response = %d %s", w.Code, w.Body.String())
	}
	if s.store.Len() != 0 {
		t.Errorf("store has %d keys, want 0", s.store.Len())
	}
}

func TestUnauthorizedPostWritesNothing(t *testing.T) {
	s := newServer(t)
	body := `{"name":"Sam","email":"sam@example.org","subject":"Hi","message":"Hello"}`
	for _, bearer := range []string{"", "wrong-key"} {
		w := s.do(http.MethodPost, "/contact", bearer, body)
		if w.Code != http.StatusUnauthorized || w.Body.String() != `{"error":"Unauthorized"}` {
			t.Errorf("bearer %q: response = %d %s", bearer, w.Code, w.Body.String())
		}
	}
	if s.store.Len() != 0 {
		t.Errorf("store has %d keys, want 0", s.store.Len())
	}
}

func TestListingCountsMatchWrites(t *testing.T) {
	s := newServer(t)
	for i := 0; i < 3; i++ {
		s.do(http.MethodPost, "/partnership", anonKey,
			`{"organizationName":"Acme","contactPerson":"Jo","email":"jo@acme.org","phone":"555","partnershipType":"corporate","message":"hi"}`)
		s.do(http.MethodPost, "/event-registration", anonKey,
			`{"eventId":"gala","fullName":"Ada","email":"ada@x.org","phone":"555","attendanceType":"virtual"}`)
	}

	var partnerships struct {
		Partnerships []json.RawMessage `json:"partnerships"`
	}
	decode(t, s.do(http.MethodGet, "/partnerships", "", ""), &partnerships)
	if len(partnerships.Partnerships) != 3 {
		t.Errorf("partnerships = %d, want 3", len(partnerships.Partnerships))
	}

	var regs struct {
		Registrations []json.RawMessage `json:"registrations"`
	}
	decode(t, s.do(http.MethodGet, "/event-registrations/gala", "", ""), &regs)
	if len(regs.Registrations) != 3 {
		t.Errorf("registrations = %d, want 3", len(regs.Registrations))
	}

	w := s.do(http.MethodGet, "/event-stats/gala", "", "")
	if w.Body.String() != `{"eventId":"gala","registrationCount":3}` {
		t.Errorf("event stats = %s", w.Body.String())
	}

	for _, path := range []string{"/contacts", "/volunteers"} {
		w := s.do(http.MethodGet, path, "", "")
		if !strings.Contains(w.Body.String(), "[]") {
			t.Errorf("GET %s = %s, want empty array", path, w.Body.String())
		}
	}
}

func TestSubmissionPublishesEvent(t *testing.T) {
	s := newServer(t)
	ch, cancel, err := s.bus.Subscribe(events.TopicAllSubmissions)
	if err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}
	defer cancel()

	s.do(http.MethodPost, "/donation", anonKey, `{"amount":5,"frequency":"monthly","paymentMethod":"card"}`)
	var ev events.SubmissionCreated
	if err := json.Unmarshal(<-ch, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Topic != events.TopicDonationCreated {
		t.Errorf("topic = %q", ev.Topic)
	}
}

func TestAdminRoutes(t *testing.T) {
	s := newServer(t)
	s.do(http.MethodPost, "/contact", anonKey, `{"name":"Sam","email":"sam@example.org","subject":"Hi","message":"Hello"}`)

	if w := s.do(http.MethodGet, "/admin/audit-logs", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("audit logs without token = %d, want 401", w.Code)
	}
	if w := s.do(http.MethodGet, "/admin/audit-logs", anonKey, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("audit logs with anon key = %d, want 401", w.Code)
	}

	w := s.do(http.MethodPost, "/admin/login", "", `{"password":"admin-pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body.String())
	}
	var tok struct {
		AccessToken string `json:"accessToken"`
	}
	decode(t, w, &tok)

	var logs auditlog.PaginatedAuditLogs
	w = s.do(http.MethodGet, "/admin/audit-logs?action=contact", tok.AccessToken, "")
	decode(t, w, &logs)
	if logs.Total != 1 || logs.Data[0].Action != "CONTACT_CREATED" {
		t.Errorf("audit logs = %+v", logs)
	}

	w = s.do(http.MethodGet, "/admin/exports/contacts?format=csv", tok.AccessToken, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Sam") {
		t.Errorf("export = %d %s", w.Code, w.Body.String())
	}

	if w := s.do(http.MethodPost, "/admin/backups", tok.AccessToken, ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("backup without destination = %d, want 503", w.Code)
	}
}

func TestCORSAndNotFound(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/make-server/donation", nil)
	req.Header.Set("Origin", "https://dcl.example.org")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("preflight = %d, allow-origin %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}

	if w := s.do(http.MethodGet, "/nope", "", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown route = %d, want 404", w.Code)
	}
}
