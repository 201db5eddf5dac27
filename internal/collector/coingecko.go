package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"CryptoLive/internal/model"

	"github.com/shopspring/decimal"
)

// CoinGeckoFetcher implements Fetcher using the CoinGecko public markets API.
type CoinGeckoFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
// A zero timeout leaves the HTTP client unbounded.
func NewCoinGeckoFetcher(baseURL, proxyURL string, timeout time.Duration) *CoinGeckoFetcher {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// coinGeckoMarket is one element of the /coins/markets response.
type coinGeckoMarket struct {
	Name                     string              `json:"name"`
	Symbol                   string              `json:"symbol"`
	CurrentPrice             decimal.NullDecimal `json:"current_price"`
	MarketCap                decimal.Decimal     `json:"market_cap"`
	TotalVolume              decimal.Decimal     `json:"total_volume"`
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
}

func (m coinGeckoMarket) snapshot() model.AssetSnapshot {
	return model.AssetSnapshot{
		Name:           m.Name,
		Symbol:         strings.ToUpper(m.Symbol),
		Price:          m.CurrentPrice,
		MarketCap:      m.MarketCap,
		Volume24h:      m.TotalVolume,
		PriceChange24h: m.PriceChangePercentage24h,
	}
}

func (f *CoinGeckoFetcher) marketsURL() string {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(model.MaxAssets))
	q.Set("page", "1")
	return f.BaseURL + "/coins/markets?" + q.Encode()
}

// FetchMarkets retrieves the top assets by market cap, in the order returned.
func (f *CoinGeckoFetcher) FetchMarkets(ctx context.Context) (model.SnapshotTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.marketsURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CryptoLive/1.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var markets []coinGeckoMarket
	if err := json.NewDecoder(resp.Body).Decode(&markets); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	if len(markets) > model.MaxAssets {
		markets = markets[:model.MaxAssets]
	}

	table := make(model.SnapshotTable, len(markets))
	for i, m := range markets {
		table[i] = m.snapshot()
	}
	return table, nil
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("coingecko: status %d, body: %s", e.Code, e.Body)
}
