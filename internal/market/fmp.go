// Package market retrieves the valid-ticker universe from the Financial
// Modeling Prep API. The rest of the system treats the result as an opaque
// symbol set; no market-data shape leaks into parsing.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"trendfin/internal/parse"
)

const defaultBaseURL = "https://financialmodelingprep.com/api/v3"

// Stock is one entry of the tradable list or screener response. Only the
// fields the universe builder needs are decoded.
type Stock struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"companyName"`
	Exchange string `json:"exchangeShortName"`
}

// Client talks to the FMP API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an FMP client with the given developer key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Tickers returns the full requestable stock list.
func (c *Client) Tickers(ctx context.Context) ([]Stock, error) {
	return c.fetchStocks(ctx, "stock/list", nil)
}

// Screen runs the FMP stock screener with the given filter parameters
// (e.g. marketCapMoreThan, exchange, limit).
func (c *Client) Screen(ctx context.Context, filters map[string]string) ([]Stock, error) {
	return c.fetchStocks(ctx, "stock-screener", filters)
}

func (c *Client) fetchStocks(ctx context.Context, endpoint string, params map[string]string) ([]Stock, error) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("apikey", c.apiKey)

	target := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fmp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fmp returned %d for %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var stocks []Stock
	if err := json.Unmarshal(body, &stocks); err != nil {
		return nil, fmt.Errorf("fmp response decode: %w", err)
	}
	return stocks, nil
}

// UniverseSource adapts the client to the SymbolSource contract, using the
// screener when filters are configured and the plain tradable list otherwise.
type UniverseSource struct {
	client  *Client
	filters map[string]string
}

// NewUniverseSource builds a symbol source. filters may be nil.
func NewUniverseSource(client *Client, filters map[string]string) *UniverseSource {
	return &UniverseSource{client: client, filters: filters}
}

// Symbols returns the ticker universe for lexicon construction. FMP lists
// warrants, units, and index symbols that are not ticker-shaped ("BRK-B",
// "^GSPC"); those are dropped here so lexicon construction never fails on
// upstream noise.
func (u *UniverseSource) Symbols(ctx context.Context) ([]string, error) {
	var (
		stocks []Stock
		err    error
	)
	if len(u.filters) > 0 {
		stocks, err = u.client.Screen(ctx, u.filters)
	} else {
		stocks, err = u.client.Tickers(ctx)
	}
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(stocks))
	for _, s := range stocks {
		if parse.ValidSymbol(s.Symbol) {
			symbols = append(symbols, s.Symbol)
		}
	}
	return symbols, nil
}
