package http

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/etymology/internal/entities"
)

type SuggestController struct {
	source       SuggestionSource
	defaultLimit int
	logger       *log.Logger
}

func NewSuggestController(source SuggestionSource, defaultLimit int, logger *log.Logger) *SuggestController {
	return &SuggestController{
		source:       source,
		defaultLimit: defaultLimit,
		logger:       loggerOrDefault(logger),
	}
}

// Suggest returns autocomplete entries for a prefix.
// GET /api/suggest?q=prefix&limit=10
func (sc *SuggestController) Suggest(c *gin.Context) {
	prefix := strings.TrimSpace(c.Query("q"))
	limit, ok := parseLimitQuery(c, "limit", sc.defaultLimit)
	if !ok {
		return
	}

	if prefix == "" {
		c.JSON(http.StatusOK, []entities.Suggestion{})
		return
	}

	suggestions, err := sc.source.PrefixSearch(prefix, limit)
	if err != nil {
		respondInternalError(c, sc.logger, err, "prefix search")
		return
	}
	if suggestions == nil {
		suggestions = []entities.Suggestion{}
	}

	c.JSON(http.StatusOK, suggestions)
}
