package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maintenance-hub-backend/internal/auth"
	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", nil)
		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Logger(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(router, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allowed origin", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://evil.example.com"})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := serve(router, http.MethodOptions, "/ping", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wildcard", func(t *testing.T) {
		open := gin.New()
		open.Use(CORS([]string{"*"}))
		open.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(open, http.MethodGet, "/ping", map[string]string{"Origin": "https://app.example.com"})
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(NewIPRateLimiter(rate.Every(time.Hour), 2)))
	router.POST("/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodPost, "/login", nil).Code)
}

func TestIPRateLimiterPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 1)

	assert.True(t, limiter.GetLimiter("10.0.0.1").Allow())
	assert.False(t, limiter.GetLimiter("10.0.0.1").Allow())
	assert.True(t, limiter.GetLimiter("10.0.0.2").Allow())
}

func TestResponseCache(t *testing.T) {
	rc := NewResponseCache(time.Minute)
	calls := 0
	role := models.RoleCommon

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(auth.ActorKey, &service.Actor{UserID: uuid.New(), Role: role})
		c.Next()
	})
	group := router.Group("/videos", rc.Cache(), rc.FlushOnWrite())
	group.GET("", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	group.POST("", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	group.GET("/missing", func(c *gin.Context) {
		calls++
		c.Status(http.StatusNotFound)
	})

	first := serve(router, http.MethodGet, "/videos", nil)
	second := serve(router, http.MethodGet, "/videos", nil)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)

	// Different role, different entry
	role = models.RoleSuperAdmin
	serve(router, http.MethodGet, "/videos", nil)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, rc.Len())

	// Errors are not cached
	serve(router, http.MethodGet, "/videos/missing", nil)
	serve(router, http.MethodGet, "/videos/missing", nil)
	assert.Equal(t, 4, calls)

	// Writes flush
	assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/videos", nil).Code)
	assert.Equal(t, 0, rc.Len())
	serve(router, http.MethodGet, "/videos", nil)
	assert.Equal(t, 5, calls)
}
