package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eclypse-shop/internal/config"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	if got := resolveAllowedOrigin("https://a.com", []string{"*"}, false); got != "*" {
		t.Fatalf("wildcard want * got %s", got)
	}
	if got := resolveAllowedOrigin("https://a.com", []string{"*"}, true); got != "https://a.com" {
		t.Fatalf("wildcard with credentials want echo origin got %s", got)
	}
	if got := resolveAllowedOrigin("https://a.com", []string{"https://a.com", "https://b.com"}, false); got != "https://a.com" {
		t.Fatalf("allow-list want https://a.com got %s", got)
	}
	if got := resolveAllowedOrigin("https://evil.com", []string{"https://a.com"}, false); got != "" {
		t.Fatalf("unmatched origin want empty got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	t.Run("echoes incoming header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		r.ServeHTTP(w, req)
		if w.Header().Get("X-Request-ID") != "req-123" {
			t.Fatalf("header want req-123 got %s", w.Header().Get("X-Request-ID"))
		}
		if w.Body.String() != "req-123" {
			t.Fatalf("context value want req-123 got %s", w.Body.String())
		}
	})

	t.Run("generates when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("generated request id should not be empty")
		}
	})
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}}))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("allow-origin want https://shop.example.com got %s", got)
	}
}
