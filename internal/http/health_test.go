package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/etymology/internal/dataset/datasettest"
)

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when dataset is open", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := datasettest.Open(t, datasettest.Sample())

		controller := NewHealthController(store, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["dataset"])
		assert.Equal(t, t.Name(), response.Checks["dataset_source"])
		assert.NotEmpty(t, response.Checks["dataset_bytes"])
		assert.NotEmpty(t, response.Time)
	})

	t.Run("returns unhealthy when dataset is nil", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		controller := NewHealthController(nil, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response HealthResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "not configured", response.Checks["dataset"])
	})

	t.Run("returns unhealthy when dataset is closed", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := datasettest.Open(t, datasettest.Sample())
		require.NoError(t, store.Close())

		controller := NewHealthController(store, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "error:")
	})
}
