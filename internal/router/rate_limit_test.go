package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddlewarePassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rule := RateLimitRule{Prefix: "test:rate", WindowSeconds: 60, MaxRequests: 5}

	cases := []struct {
		name string
		rule RateLimitRule
	}{
		{"nil client", rule},
		{"zero window", RateLimitRule{Prefix: "test:rate", WindowSeconds: 0, MaxRequests: 5}},
		{"zero max", RateLimitRule{Prefix: "test:rate", WindowSeconds: 60, MaxRequests: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimitMiddleware(nil, tc.rule, KeyByIP))
			r.POST("/orders", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("status want 200 got %d", w.Code)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		value interface{}
		want  int64
		ok    bool
	}{
		{int64(7), 7, true},
		{int(3), 3, true},
		{float64(2.9), 2, true},
		{"nope", 0, false},
	}
	for _, tc := range cases {
		got, ok := toInt64(tc.value)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("toInt64(%v) want (%d,%v) got (%d,%v)", tc.value, tc.want, tc.ok, got, ok)
		}
	}
}
