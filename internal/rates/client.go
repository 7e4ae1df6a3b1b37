package rates

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"ratesbot/internal/domain"

	"go.uber.org/zap"
)

// DefaultURL is the CBR daily rates feed.
const DefaultURL = "https://www.cbr-xml-daily.ru/daily_json.js"

const fetchTimeout = 3 * time.Second

// feedDocument mirrors the relevant part of the CBR daily JSON.
type feedDocument struct {
	Valute map[string]feedEntry `json:"Valute"`
}

type feedEntry struct {
	Value   float64 `json:"Value"`
	Nominal float64 `json:"Nominal"`
}

// Client fetches currency rates from the feed. It fails soft: any transport
// or decode error yields an empty result and a warning in the log.
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a rates client for the given feed URL.
func NewClient(url string, logger *zap.Logger) *Client {
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Fetch returns the feed's currency codes (sorted, home currency included)
// and unit values per one unit of the home currency. On any failure both
// results are empty.
func (c *Client) Fetch() ([]string, map[string]float64) {
	resp, err := c.http.Get(c.url)
	if err != nil {
		c.logger.Warn("Rate feed request failed", zap.Error(err))
		return nil, map[string]float64{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Rate feed returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, map[string]float64{}
	}

	var doc feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		c.logger.Warn("Failed to decode rate feed", zap.Error(err))
		return nil, map[string]float64{}
	}

	values := map[string]float64{domain.HomeCurrency: 1.0}
	for code, entry := range doc.Valute {
		if entry.Nominal == 0 {
			continue
		}
		values[code] = entry.Value / entry.Nominal
	}

	codes := make([]string, 0, len(values))
	for code := range values {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes, values
}
