package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dclhub/dcl-hub-backend/config"
	"github.com/dclhub/dcl-hub-backend/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.Status(http.StatusNoContent) }

func TestPublicKeyAuth(t *testing.T) {
	r := gin.New()
	r.POST("/x", PublicKeyAuth(&config.Config{PublicAnonKey: "anon-123"}), okHandler)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer anon-123", http.StatusNoContent},
		{"lowercase scheme", "bearer anon-123", http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"wrong key", "Bearer anon-999", http.StatusUnauthorized},
		{"no scheme", "anon-123", http.StatusUnauthorized},
		{"basic", "Basic anon-123", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && w.Body.String() != `{"error":"Unauthorized"}` {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}

func TestPublicKeyAuthEmptyKeyRejectsEverything(t *testing.T) {
	r := gin.New()
	r.POST("/x", PublicKeyAuth(&config.Config{}), okHandler)
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuth(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	svc := auth.NewService(&config.Config{AdminJWTSecret: "s", AdminPasswordHash: string(hash), AdminTokenTTLHours: 1})
	tok, err := svc.Login(auth.LoginInput{Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	r := gin.New()
	r.GET("/admin", AdminAuth(svc), func(c *gin.Context) {
		if _, ok := c.Get("admin_claims"); !ok {
			t.Error("admin_claims not set")
		}
		c.Status(http.StatusNoContent)
	})

	for header, want := range map[string]int{
		"Bearer " + tok.AccessToken: http.StatusNoContent,
		"Bearer forged":             http.StatusUnauthorized,
		"":                          http.StatusUnauthorized,
	} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("Authorization %q: status = %d, want %d", header, w.Code, want)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.POST("/x", okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Errorf("Max-Age = %q, want 600", got)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := gin.New()
	r.Use(ClientIP())
	var got string
	r.GET("/ip", func(c *gin.Context) {
		got = GetIPFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got != "203.0.113.7" {
		t.Errorf("ip = %q, want 203.0.113.7", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "not-an-ip")
	req.RemoteAddr = "198.51.100.2:5555"
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got != "198.51.100.2" {
		t.Errorf("ip = %q, want 198.51.100.2", got)
	}
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimiter(2), okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [204 204 429]", codes)
	}
}
