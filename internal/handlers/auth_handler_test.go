package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/glowslot/salon-scheduler/internal/config"
)

func newAuthAPI(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}

	h := NewAuthHandler(db, cfg)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/refresh", h.Refresh)
	return r, cfg
}

func registerAdmin(t *testing.T, r http.Handler) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Admin","email":"admin@velvetcut.in","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d (body %s)", w.Code, w.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode register body: %v", err)
	}
	if body.Token == "" {
		t.Fatal("register returned no token")
	}
	return body.Token
}

func TestRefresh_IssuesFreshToken(t *testing.T) {
	r, cfg := newAuthAPI(t)
	token := registerAdmin(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("refresh: status = %d (body %s)", w.Code, w.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode refresh body: %v", err)
	}
	if body.Token == "" {
		t.Fatal("refresh returned no token")
	}

	parsed, err := jwt.Parse(body.Token, func(tok *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("refreshed token does not verify: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("refreshed token has no map claims")
	}
	if claims["role"] != "admin" {
		t.Fatalf("role claim = %v, want admin", claims["role"])
	}
}

func TestRefresh_RejectsMissingAndGarbageTokens(t *testing.T) {
	r, _ := newAuthAPI(t)

	headers := []string{"", "Bearer not.a.jwt", "Basic abc"}
	for _, header := range headers {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(""))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestRefresh_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	r, _ := newAuthAPI(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  1,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := forged.SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
