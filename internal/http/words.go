package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/etymology/internal/dictionary"
	"github.com/mrlokans/etymology/internal/entities"
)

// WordView is a word as the word page renders it.
type WordView struct {
	ID             int64    `json:"id"`
	Word           string   `json:"word"`
	Frequency      string   `json:"frequency"`
	FrequencyLabel string   `json:"frequency_label"`
	Etymology      string   `json:"etymology"`
	Context        string   `json:"context"`
	Related        []string `json:"related"`
	Similar        []string `json:"similar"`
	Antonyms       []string `json:"antonyms"`
	Synonyms       []string `json:"synonyms"`
	Derivatives    []string `json:"derivatives"`
}

type OtherLanguageView struct {
	Lang         string `json:"lang"`
	LanguageName string `json:"language_name,omitempty"`
	Meaning      string `json:"meaning"`
	Words        string `json:"words"`
}

type RootView struct {
	Root string `json:"root"`
	Kind string `json:"kind"`
}

// WordDetailResponse is the body of GET /api/words/:word.
type WordDetailResponse struct {
	Word           WordView               `json:"word"`
	Collocations   []entities.Collocation `json:"collocations"`
	OtherLanguages []OtherLanguageView    `json:"other_languages"`
	Roots          []RootView             `json:"roots"`
	ReferenceURL   string                 `json:"reference_url"`
}

type WordsController struct {
	words      WordDetailLooker
	dictClient dictionary.Client
	logger     *log.Logger
}

func NewWordsController(words WordDetailLooker, dictClient dictionary.Client, logger *log.Logger) *WordsController {
	return &WordsController{
		words:      words,
		dictClient: dictClient,
		logger:     loggerOrDefault(logger),
	}
}

// GetWord returns a word with its collocations, glosses and roots.
// GET /api/words/:word
func (wc *WordsController) GetWord(c *gin.Context) {
	term := strings.TrimSpace(c.Param("word"))
	if term == "" {
		respondBadRequest(c, "word is required")
		return
	}

	detail, err := wc.words.LookupWordDetail(term)
	if err != nil {
		respondInternalError(c, wc.logger, err, "lookup word detail")
		return
	}
	if detail == nil {
		respondNotFound(c, "word")
		return
	}

	c.JSON(http.StatusOK, newWordDetailResponse(detail))
}

// GetDefinitions proxies the online dictionary for a word.
// GET /api/words/:word/definitions
func (wc *WordsController) GetDefinitions(c *gin.Context) {
	if wc.dictClient == nil {
		respondNotFound(c, "online dictionary")
		return
	}
	term := strings.TrimSpace(c.Param("word"))
	if term == "" {
		respondBadRequest(c, "word is required")
		return
	}

	result, err := wc.dictClient.Lookup(c.Request.Context(), term)
	if errors.Is(err, dictionary.ErrNotFound) {
		respondNotFound(c, "definition")
		return
	}
	if err != nil {
		wc.logger.Warn("dictionary lookup failed", "provider", wc.dictClient.Name(), "word", term, "err", err)
		respondError(c, http.StatusBadGateway, "online dictionary unavailable")
		return
	}

	c.JSON(http.StatusOK, result)
}

func newWordDetailResponse(detail *entities.WordDetail) WordDetailResponse {
	w := detail.Word
	resp := WordDetailResponse{
		Word: WordView{
			ID:             w.ID,
			Word:           w.Word,
			Frequency:      string(w.Frequency),
			FrequencyLabel: w.Frequency.Label(),
			Etymology:      w.Etymology,
			Context:        w.Context,
			Related:        w.RelatedList(),
			Similar:        w.SimilarList(),
			Antonyms:       w.AntonymList(),
			Synonyms:       w.SynonymsWithRelated(),
			Derivatives:    w.DerivativeList(),
		},
		Collocations:   detail.Collocations,
		OtherLanguages: make([]OtherLanguageView, 0, len(detail.OtherLanguages)),
		Roots:          make([]RootView, 0, len(detail.Roots)),
		ReferenceURL:   dictionary.ReferenceURL(w.Word),
	}
	if resp.Collocations == nil {
		resp.Collocations = []entities.Collocation{}
	}
	for _, o := range detail.OtherLanguages {
		name, _ := o.Name()
		resp.OtherLanguages = append(resp.OtherLanguages, OtherLanguageView{
			Lang:         o.Lang,
			LanguageName: name,
			Meaning:      o.Meaning,
			Words:        o.Words,
		})
	}
	for _, r := range entities.SortRootsForDisplay(detail.Roots) {
		resp.Roots = append(resp.Roots, RootView{Root: r.Root, Kind: r.Kind().String()})
	}
	return resp
}
