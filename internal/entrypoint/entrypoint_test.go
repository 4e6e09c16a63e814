package entrypoint

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/etymology/internal/config"
	"github.com/mrlokans/etymology/internal/dataset"
	"github.com/mrlokans/etymology/internal/dataset/datasettest"
	http_controllers "github.com/mrlokans/etymology/internal/http"
	"github.com/mrlokans/etymology/internal/suggest"
)

func TestDatasetSource(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Dataset
		want dataset.Source
	}{
		{
			name: "path wins over url",
			cfg:  config.Dataset{Path: "/data/words.db", URL: "https://example.test/words.db"},
			want: dataset.FileSource{Path: "/data/words.db"},
		},
		{
			name: "url",
			cfg:  config.Dataset{URL: "https://example.test/words.db", CacheDir: "cache", MaxBytes: 10},
			want: &dataset.HTTPSource{URL: "https://example.test/words.db", CacheDir: "cache", MaxBytes: 10},
		},
		{
			name: "embedded",
			want: dataset.EmbeddedSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DatasetSource(&config.Config{Dataset: tt.cfg}, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRouterConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := datasettest.Open(t, datasettest.Sample())

	t.Run("repository suggestions", func(t *testing.T) {
		cfg := &config.Config{Suggest: config.Suggest{DefaultLimit: 10}}

		routerCfg, err := NewRouterConfig(cfg, store, "test")

		require.NoError(t, err)
		assert.Nil(t, routerCfg.DictionaryClient)
		assert.NotNil(t, routerCfg.Words)
		assert.Equal(t, "test", routerCfg.Version)
	})

	t.Run("index suggestions and dictionary", func(t *testing.T) {
		cfg := &config.Config{
			Suggest:    config.Suggest{DefaultLimit: 10, IndexEnabled: true},
			Dictionary: config.Dictionary{Enabled: true, URL: "http://127.0.0.1:1/"},
		}

		routerCfg, err := NewRouterConfig(cfg, store, "test")

		require.NoError(t, err)
		index, ok := routerCfg.Suggestions.(*suggest.Index)
		require.True(t, ok)
		assert.Equal(t, len(datasettest.Sample().Words), index.Len())
		assert.NotNil(t, routerCfg.DictionaryClient)

		router := http_controllers.NewRouter(routerCfg)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/suggest?q=tele", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "telegraph")
	})
}
