package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"create2earn/internal/adapter/http/middleware"
	redisStore "create2earn/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store middleware.Limiter, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	handlers := append(pre, middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/test", handlers...)
	return r
}

func newStore(t *testing.T) (*miniredis.Miniredis, *redisStore.RateLimitStore) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, redisStore.NewRateLimitStore(client)
}

func get(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := get(router)
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router).Code)
	}

	w := get(router)
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_KeysByCaller(t *testing.T) {
	mr, store := newStore(t)
	account := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	setCaller := func(c *gin.Context) {
		c.Set(middleware.CtxAccount, account)
		c.Next()
	}
	router := setupRateLimitRouter(store, setCaller)

	assert.Equal(t, 200, get(router).Code)

	found := false
	for _, k := range mr.Keys() {
		if strings.Contains(k, account.Hex()+":test:") {
			found = true
		}
	}
	assert.True(t, found, "rate limit key should be scoped by caller")
}

func TestRateLimiter_DegradedModeOnRedisFailure(t *testing.T) {
	mr, store := newStore(t)
	router := setupRateLimitRouter(store)
	mr.Close()

	w := get(router)
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules(60)
	assert.Equal(t, int64(60), rules[middleware.GroupWrite].Limit)
	assert.Equal(t, int64(300), rules[middleware.GroupRead].Limit)
	assert.Equal(t, int64(10), rules[middleware.GroupSignIn].Limit)

	fallback := middleware.DefaultRateLimitRules(0)
	assert.Equal(t, int64(120), fallback[middleware.GroupWrite].Limit)
}
