package backup

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

type memDestination struct {
	objects map[string][]byte
}

func (m *memDestination) Write(_ context.Context, key string, data []byte) error {
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = append([]byte(nil), data...)
	return nil
}

func seed(t *testing.T) *kvstore.MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	for key, value := range map[string]string{
		"donation:donation_a":            `{"id":"donation_a","amount":50}`,
		"campaign_total:camp-1":          `100`,
		"volunteer:volunteer_a":          `{"id":"volunteer_a","name":"Grace M."}`,
		"event_registration:event_reg_a": `{"id":"event_reg_a","eventId":"gala"}`,
		"event_registration_count:gala":  `"1"`,
		"contact:contact_a":              `{"id":"contact_a"}`,
		"partnership:partnership_a":      `{"id":"partnership_a"}`,
		"unrelated:key":                  `true`,
	} {
		if err := store.Set(ctx, key, json.RawMessage(value)); err != nil {
			t.Fatalf("Set() error: %v", err)
		}
	}
	return store
}

func TestSnapshotWritesEveryKey(t *testing.T) {
	dest := &memDestination{}
	svc := NewService(seed(t), dest, "backups").(*service)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "run-1" }

	res, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if res.Key != "backups/20250301T120000Z-run-1.ndjson" {
		t.Errorf("Key = %q", res.Key)
	}
	if res.Entries != 7 {
		t.Errorf("Entries = %d, want 7", res.Entries)
	}

	seen := map[string]bool{}
	sc := bufio.NewScanner(bytes.NewReader(dest.objects[res.Key]))
	for sc.Scan() {
		var e kvstore.Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		seen[e.Key] = true
	}
	for _, key := range []string{"donation:donation_a", "campaign_total:camp-1", "event_registration_count:gala", "partnership:partnership_a"} {
		if !seen[key] {
			t.Errorf("snapshot missing %s", key)
		}
	}
	if seen["unrelated:key"] {
		t.Error("snapshot contains unrelated:key")
	}
}

func TestSnapshotWithoutDestination(t *testing.T) {
	svc := NewService(kvstore.NewMemoryStore(), nil, "backups")
	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, ErrNoDestination) {
		t.Errorf("Snapshot() error = %v, want ErrNoDestination", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/backups", NewHandler(svc).CreateBackup)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/backups", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	data, _ := io.ReadAll(in.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestS3DestinationWrite(t *testing.T) {
	fake := &fakePutter{}
	dest := &S3Destination{client: fake, bucket: "dcl-backups"}
	if err := dest.Write(context.Background(), "backups/x.ndjson", []byte("{}\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if *fake.input.Bucket != "dcl-backups" || *fake.input.Key != "backups/x.ndjson" {
		t.Errorf("input = %+v", fake.input)
	}
	if *fake.input.ContentType != "application/x-ndjson" || strings.TrimSpace(fake.body) != "{}" {
		t.Errorf("content type %q body %q", *fake.input.ContentType, fake.body)
	}
}
