package http

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/etymology/internal/entities"
)

// RootWordsResponse is the body of GET /api/roots/:root/words.
type RootWordsResponse struct {
	Root  string          `json:"root"`
	Kind  string          `json:"kind"`
	Words []entities.Word `json:"words"`
}

type RootsController struct {
	roots  RootLookup
	logger *log.Logger
}

func NewRootsController(roots RootLookup, logger *log.Logger) *RootsController {
	return &RootsController{roots: roots, logger: loggerOrDefault(logger)}
}

// GetWordsByRoot lists every word sharing a root. An unknown root gives
// an empty list.
// GET /api/roots/:root/words
func (rc *RootsController) GetWordsByRoot(c *gin.Context) {
	root := strings.TrimSpace(c.Param("root"))
	if root == "" {
		respondBadRequest(c, "root is required")
		return
	}

	words, err := rc.roots.WordsByRoot(root)
	if err != nil {
		respondInternalError(c, rc.logger, err, "words by root")
		return
	}
	if words == nil {
		words = []entities.Word{}
	}

	c.JSON(http.StatusOK, RootWordsResponse{
		Root:  root,
		Kind:  entities.Root{Root: root}.Kind().String(),
		Words: words,
	})
}
