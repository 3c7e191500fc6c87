package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAllowEnforcesSlidingWindow(t *testing.T) {
	rl := NewRateLimiter(100*time.Millisecond, 3, "slow down")

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// A different client is unaffected
	assert.True(t, rl.Allow("5.6.7.8"))

	// The window slides: after it elapses the client is admitted again
	time.Sleep(150 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestMiddlewareRespondsWith429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(time.Minute, 2, "Too many requests from this IP, please try again after 15 minutes")

	router := gin.New()
	router.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)

	rec := do("10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests from this IP")

	// Limit is keyed per client address
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000").Code)
}
