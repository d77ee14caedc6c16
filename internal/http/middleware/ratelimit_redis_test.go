package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"bitrush_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func initRedisFromEnv(t *testing.T) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	pass := os.Getenv("REDIS_PASSWORD")
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	InitRedisRateLimiter(addr, pass, db)
}

// Integration-style test: runs only if REDIS_ADDR env is set.
func TestRedisRateLimitIntegration(t *testing.T) {
	initRedisFromEnv(t)

	w := 2 * time.Second
	limit := 2

	r := gin.New()
	r.GET("/test", RedisRateLimit(limit, w), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := &http.Client{}

	for i := 0; i < limit; i++ {
		res, err := client.Get(srv.URL + "/test")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != 200 {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
	}

	res, err := client.Get(srv.URL + "/test")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 429 {
		t.Fatalf("expected 429 got %d", res.StatusCode)
	}
}

func TestActionRateLimitIntegration(t *testing.T) {
	initRedisFromEnv(t)
	service.InitJWT("test-secret")

	w := 2 * time.Second
	limit := 3

	r := gin.New()
	r.POST("/tap", JWT(), ActionRateLimit(limit, w), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	token, err := service.GenerateJWT(4242)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	client := &http.Client{}
	do := func() int {
		req, _ := http.NewRequest("POST", srv.URL+"/tap", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		res.Body.Close()
		return res.StatusCode
	}

	for i := 0; i < limit; i++ {
		if code := do(); code != 200 {
			t.Fatalf("expected 200 got %d", code)
		}
	}
	if code := do(); code != 429 {
		t.Fatalf("expected 429 got %d", code)
	}
}
