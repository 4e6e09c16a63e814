package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultFreeDictionaryURL is the English entries endpoint.
const DefaultFreeDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// FreeDictionaryClient implements Client using the Free Dictionary API.
// API docs: https://dictionaryapi.dev/
type FreeDictionaryClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if since := time.Since(r.lastCall); since < r.interval {
		timer := time.NewTimer(r.interval - since)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	r.lastCall = time.Now()
	return nil
}

// ClientOption configures a FreeDictionaryClient.
type ClientOption func(*FreeDictionaryClient)

// WithBaseURL points the client at another endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *FreeDictionaryClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *FreeDictionaryClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMinInterval sets the minimum spacing between outgoing requests.
func WithMinInterval(d time.Duration) ClientOption {
	return func(c *FreeDictionaryClient) {
		c.rateLimiter = newRateLimiter(d)
	}
}

// NewFreeDictionaryClient creates a new Free Dictionary API client.
func NewFreeDictionaryClient(opts ...ClientOption) *FreeDictionaryClient {
	c := &FreeDictionaryClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     DefaultFreeDictionaryURL,
		rateLimiter: newRateLimiter(500 * time.Millisecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *FreeDictionaryClient) Name() string {
	return "freedictionary"
}

// Lookup fetches word definitions from the Free Dictionary API.
func (c *FreeDictionaryClient) Lookup(ctx context.Context, word string) (*LookupResult, error) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return nil, fmt.Errorf("empty word")
	}

	if err := c.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Etymology/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch definition: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResponse []freeDictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(apiResponse) == 0 {
		return nil, fmt.Errorf("%w: empty response for %s", ErrNotFound, word)
	}

	return c.convertToLookupResult(word, apiResponse[0]), nil
}

func (c *FreeDictionaryClient) convertToLookupResult(word string, resp freeDictionaryResponse) *LookupResult {
	result := &LookupResult{
		Word:        word,
		Phonetics:   []Phonetic{},
		Definitions: []Definition{},
		Source:      c.Name(),
	}

	for _, phonetic := range resp.Phonetics {
		if phonetic.Text == "" && phonetic.Audio == "" {
			continue
		}
		result.Phonetics = append(result.Phonetics, Phonetic{Text: phonetic.Text, Audio: phonetic.Audio})
		if result.Pronunciation == "" && phonetic.Text != "" {
			result.Pronunciation = phonetic.Text
		}
		if result.AudioURL == "" && phonetic.Audio != "" {
			result.AudioURL = phonetic.Audio
		}
	}

	for _, meaning := range resp.Meanings {
		for _, def := range meaning.Definitions {
			result.Definitions = append(result.Definitions, Definition{
				PartOfSpeech: meaning.PartOfSpeech,
				Definition:   def.Definition,
				Example:      def.Example,
			})
		}
	}

	return result
}

// Free Dictionary API response types

type freeDictionaryResponse struct {
	Word      string             `json:"word"`
	Phonetics []freeDictPhonetic `json:"phonetics"`
	Meanings  []freeDictMeaning  `json:"meanings"`
}

type freeDictPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type freeDictMeaning struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []freeDictDefinition `json:"definitions"`
}

type freeDictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
