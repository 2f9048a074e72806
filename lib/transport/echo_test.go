package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/uepb/eventos.go/lib"
	"github.com/uepb/eventos.go/lib/service"
)

func newRateLimitedEcho(limit int) *echo.Echo {
	e := InitEcho(&service.Config{BodyLimit: "250K", DefaultRateLimit: limit}, lib.Logger("", "off"))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func burst(e *echo.Echo, n int) (statuses map[int]int) {
	statuses = map[int]int{}
	for i := 0; i < n; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		statuses[rec.Code]++
	}
	return statuses
}

func TestRateLimiterDisabledByDefault(t *testing.T) {
	statuses := burst(newRateLimitedEcho(0), 200)
	assert.Equal(t, 200, statuses[http.StatusOK])
	assert.Zero(t, statuses[http.StatusTooManyRequests])
}

func TestRateLimiterRejectsBurst(t *testing.T) {
	statuses := burst(newRateLimitedEcho(1), 20)
	assert.Positive(t, statuses[http.StatusOK])
	assert.Positive(t, statuses[http.StatusTooManyRequests])
}
