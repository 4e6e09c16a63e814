package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseLimitQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		want     int
		wantOK   bool
		wantCode int
	}{
		{"absent uses fallback", "", 10, true, http.StatusOK},
		{"explicit", "?limit=3", 3, true, http.StatusOK},
		{"zero passes through", "?limit=0", 0, true, http.StatusOK},
		{"negative", "?limit=-1", 0, false, http.StatusBadRequest},
		{"not a number", "?limit=ten", 0, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/api/suggest"+tt.query, nil)

			got, ok := parseLimitQuery(c, "limit", 10)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
