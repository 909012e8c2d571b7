package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(logger *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(RequestIDKey)})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	router := newRouter(logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body["request_id"])
}

func TestRequestIDPropagated(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	router := newRouter(logger)
	incoming := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerFields(t *testing.T) {
	var out bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&out)
	logger.SetFormatter(&logrus.JSONFormatter{})
	router := newRouter(logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/boom", entry["path"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
}
