package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRateLimiterStore_EvictsIdleClients(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	store := newRateLimiterStore(60)
	store.now = clock.Now

	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")
	assert.Len(t, store.limiters, 2)

	// 10.0.0.2 stays active, 10.0.0.1 goes quiet.
	clock.Advance(2 * time.Minute)
	store.getLimiter("10.0.0.2")
	clock.Advance(2 * time.Minute)
	store.getLimiter("10.0.0.3")

	assert.NotContains(t, store.limiters, "10.0.0.1")
	assert.Contains(t, store.limiters, "10.0.0.2")
	assert.Contains(t, store.limiters, "10.0.0.3")
}

func TestRateLimiterStore_KeepsLimiterWhileActive(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	store := newRateLimiterStore(60)
	store.now = clock.Now

	first := store.getLimiter("10.0.0.1")
	for i := 0; i < 5; i++ {
		clock.Advance(time.Minute)
		assert.Same(t, first, store.getLimiter("10.0.0.1"))
	}
}

func TestRateLimitMiddleware_Rejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
