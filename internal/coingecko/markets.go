// Package coingecko fetches market data from the CoinGecko API.
package coingecko

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"resty.dev/v3"

	"cryptoreporter/internal/fetcher"
	"cryptoreporter/internal/ratelimit"
)

// MarketRecord is one entry from the /coins/markets endpoint.
// Only the fields the report consumes are decoded. The percentage-change
// fields are pointers because the API omits them for thinly traded coins.
type MarketRecord struct {
	ID           string   `json:"id"`
	CurrentPrice float64  `json:"current_price"`
	Change24h    *float64 `json:"price_change_percentage_24h_in_currency"`
	Change7d     *float64 `json:"price_change_percentage_7d_in_currency"`
	Change30d    *float64 `json:"price_change_percentage_30d_in_currency"`
}

// MarketsFetcher fetches current prices and change percentages for a set
// of coins in a single request.
type MarketsFetcher struct {
	client *resty.Client
}

// NewMarketsFetcher creates a fetcher against the given API base URL.
func NewMarketsFetcher(baseURL string) *MarketsFetcher {
	return &MarketsFetcher{
		client: fetcher.NewHTTPClient(baseURL),
	}
}

// Fetch retrieves market data for all coinIDs in one request. The page is
// sized to the id count so no pagination is needed. Coins the API does not
// recognize are simply absent from the result, not an error.
func (f *MarketsFetcher) Fetch(ctx context.Context, coinIDs []string) ([]MarketRecord, error) {
	if len(coinIDs) == 0 {
		return nil, fetcher.NewValidationError("no coins to fetch")
	}

	if err := ratelimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait canceled: %w", err)
	}

	var records []MarketRecord

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency":             "usd",
			"ids":                     strings.Join(coinIDs, ","),
			"order":                   "market_cap_desc",
			"per_page":                strconv.Itoa(len(coinIDs)),
			"page":                    "1",
			"sparkline":               "false",
			"price_change_percentage": "24h,7d,30d",
		}).
		SetResult(&records).
		Get("/coins/markets")

	if err != nil {
		return nil, fetcher.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	return records, nil
}
