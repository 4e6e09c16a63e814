package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/etymology/internal/config"
	"github.com/mrlokans/etymology/internal/database/lexicon"
	"github.com/mrlokans/etymology/internal/dictionary"
	http_controllers "github.com/mrlokans/etymology/internal/http"
	"github.com/mrlokans/etymology/internal/logger"
	"github.com/mrlokans/etymology/internal/services"
	"github.com/mrlokans/etymology/internal/suggest"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	l := logger.New("server")
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal("listen", "err", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT; SIGKILL can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	l.Info("shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error("server shutdown", "err", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	l.Info("server exiting")
}

// NewRouterConfig wires the lookups over an opened dataset.
func NewRouterConfig(cfg *config.Config, store interface {
	lexicon.Querier
	http_controllers.DatasetChecker
}, version string) (http_controllers.RouterConfig, error) {
	repo := lexicon.NewRepository(store)

	var suggestions http_controllers.SuggestionSource = repo
	if cfg.Suggest.IndexEnabled {
		headwords, err := repo.Headwords()
		if err != nil {
			return http_controllers.RouterConfig{}, fmt.Errorf("build suggestion index: %w", err)
		}
		index := suggest.Build(headwords)
		logger.New("suggest").Info("suggestion index built", "words", index.Len())
		suggestions = index
	}

	var dictClient dictionary.Client
	if cfg.Dictionary.Enabled {
		dictClient = dictionary.NewFreeDictionaryClient(dictionary.WithBaseURL(cfg.Dictionary.URL))
	}

	return http_controllers.RouterConfig{
		Words:               services.NewLookupService(repo),
		Suggestions:         suggestions,
		Roots:               repo,
		Dataset:             store,
		DictionaryClient:    dictClient,
		DefaultSuggestLimit: cfg.Suggest.DefaultLimit,
		Version:             version,
		Logger:              logger.New("http"),
	}, nil
}

func Run(cfg *config.Config, version string) {
	level := logger.SetLevel(cfg.Logging.Level)
	if level > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	l := logger.New("etymology")
	l.Info("starting", "version", version)

	store, err := OpenDataset(context.Background(), cfg)
	if err != nil {
		l.Fatal("failed to open dataset", "err", err)
	}

	routerCfg, err := NewRouterConfig(cfg, store, version)
	if err != nil {
		store.Close()
		l.Fatal("failed to initialise lookups", "err", err)
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if err := store.Close(); err != nil {
			l.Error("closing dataset", "err", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
