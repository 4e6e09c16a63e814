package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := loggerOrDefault(cfg.Logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogger(logger))

	health := NewHealthController(cfg.Dataset, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	if cfg.Words != nil {
		words := NewWordsController(cfg.Words, cfg.DictionaryClient, logger)
		api.GET("/words/:word", words.GetWord)
		api.GET("/words/:word/definitions", words.GetDefinitions)
	}

	if cfg.Suggestions != nil {
		suggest := NewSuggestController(cfg.Suggestions, cfg.DefaultSuggestLimit, logger)
		api.GET("/suggest", suggest.Suggest)
	}

	if cfg.Roots != nil {
		roots := NewRootsController(cfg.Roots, logger)
		api.GET("/roots/:root/words", roots.GetWordsByRoot)
	}

	return router
}
