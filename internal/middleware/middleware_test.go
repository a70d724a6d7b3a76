package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func authRouter(guard ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(&config.Config{JWTSecret: secret})}, guard...)
	chain = append(chain, func(c *gin.Context) {
		id := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "role": id.Role})
	})
	r.GET("/", chain...)
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.MapClaims{"sub": 3, "role": "BARBER", "exp": time.Now().Add(time.Hour).Unix()}

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"wrong key", sign(t, valid, "other"), http.StatusUnauthorized},
		{"expired", sign(t, jwt.MapClaims{"sub": 3, "role": "barber", "exp": time.Now().Add(-time.Minute).Unix()}, secret), http.StatusUnauthorized},
		{"no exp", sign(t, jwt.MapClaims{"sub": 3, "role": "barber"}, secret), http.StatusUnauthorized},
		{"no sub", sign(t, jwt.MapClaims{"role": "barber", "exp": time.Now().Add(time.Hour).Unix()}, secret), http.StatusUnauthorized},
		{"zero sub", sign(t, jwt.MapClaims{"sub": 0, "role": "barber", "exp": time.Now().Add(time.Hour).Unix()}, secret), http.StatusUnauthorized},
		{"fractional sub", sign(t, jwt.MapClaims{"sub": 3.7, "role": "barber", "exp": time.Now().Add(time.Hour).Unix()}, secret), http.StatusUnauthorized},
		{"oversized sub", sign(t, jwt.MapClaims{"sub": 1e20, "role": "barber", "exp": time.Now().Add(time.Hour).Unix()}, secret), http.StatusUnauthorized},
		{"string sub", sign(t, jwt.MapClaims{"sub": "3", "role": "barber", "exp": time.Now().Add(time.Hour).Unix()}, secret), http.StatusUnauthorized},
		{"valid", sign(t, valid, secret), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(authRouter(), tc.token)
			if w.Code != tc.want {
				t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
			}
			if tc.want == http.StatusUnauthorized {
				var body map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["success"] != false || body["message"] != unauthorizedMessage {
					t.Fatalf("unexpected envelope %v", body)
				}
			}
		})
	}
}

func TestAuthMiddleware_NormalizesRole(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": 3, "role": "Barber", "exp": time.Now().Add(time.Hour).Unix()}, secret)
	w := do(authRouter(RequireRole(account.RoleBarber)), token)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		guard   account.Role
		code    string
		message string
	}{
		{"customer on barber route", "customer", account.RoleBarber, "not_a_barber", "Access denied: Not a barber"},
		{"barber on admin route", "barber", account.RoleAdmin, "not_an_admin", "Access denied: Not an admin"},
		{"admin on customer route", "admin", account.RoleCustomer, "not_a_customer", "Access denied: Not a customer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := sign(t, jwt.MapClaims{"sub": 8, "role": tc.role, "exp": time.Now().Add(time.Hour).Unix()}, secret)
			w := do(authRouter(RequireRole(tc.guard)), token)
			if w.Code != http.StatusForbidden {
				t.Fatalf("code=%d", w.Code)
			}

			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["error_code"] != tc.code || body["message"] != tc.message {
				t.Fatalf("unexpected body %v", body)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(RequestIDHeader) == "" || w.Body.String() != w.Header().Get(RequestIDHeader) {
		t.Fatalf("request id not propagated")
	}

	const incoming = "0b8a7c52-3f43-4c2e-9f0e-0d3a5b8a1c11"
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != incoming {
		t.Fatalf("incoming id not reused")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "<script>" {
		t.Fatalf("malformed id must be replaced")
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "https://app.example" {
		t.Fatalf("preflight: code=%d headers=%v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unlisted origin must not be reflected")
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		limit  int
		expect int
	}{
		{name: "within limit", reqs: 2, limit: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, limit: 3, expect: http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RateLimiter(NewMemoryRateStore(), tc.limit, time.Minute))
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestMemoryRateStore_WindowResets(t *testing.T) {
	s := NewMemoryRateStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_, _ = s.Incr(context.Background(), "ip", time.Minute)
	}
	now = now.Add(time.Minute)
	if n, _ := s.Incr(context.Background(), "ip", time.Minute); n != 1 {
		t.Fatalf("window should have reset, got %d", n)
	}
}

func TestMemoryRateStore_ReleasesExpiredKeys(t *testing.T) {
	s := NewMemoryRateStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for i := 0; i < 10000; i++ {
		_, _ = s.Incr(context.Background(), "10.0."+strconv.Itoa(i/256)+"."+strconv.Itoa(i%256), time.Minute)
	}
	if len(s.buckets) != 10000 {
		t.Fatalf("want 10000 live buckets, got %d", len(s.buckets))
	}

	now = now.Add(time.Hour)
	_, _ = s.Incr(context.Background(), "10.9.9.9", time.Minute)

	if len(s.buckets) != 1 {
		t.Fatalf("expired buckets kept: %d", len(s.buckets))
	}
}

func TestMemoryRateStore_KeepsLiveKeysOnSweep(t *testing.T) {
	s := NewMemoryRateStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, _ = s.Incr(context.Background(), "old", time.Minute)
	now = now.Add(50 * time.Second)
	_, _ = s.Incr(context.Background(), "fresh", time.Minute)
	now = now.Add(20 * time.Second)
	_, _ = s.Incr(context.Background(), "other", time.Minute)

	if _, ok := s.buckets["old"]; ok {
		t.Fatalf("expired bucket survived the sweep")
	}
	if n, _ := s.Incr(context.Background(), "fresh", time.Minute); n != 2 {
		t.Fatalf("live bucket reset by sweep, count %d", n)
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("redis down")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(failingStore{}, 1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("store failure must not block, got %d", w.Code)
		}
	}
}
