// Package watchlist resolves the configured set of coin ids to report on.
package watchlist

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// DefaultCoins is used when no watch list is configured at all.
var DefaultCoins = []string{"bitcoin", "ethereum"}

// Resolve turns the raw watch-list configuration into an ordered list of
// coin ids. Two input forms are supported, in precedence order:
//
//  1. jsonList: a JSON string array, e.g. `["bitcoin", "ethereum"]`
//  2. csvList: a comma-separated list, e.g. `bitcoin,ethereum,solana`
//
// A jsonList that fails to parse is skipped with a warning rather than
// aborting; the csvList form is tried next. If neither form is set the
// default pair is returned. Entries are whitespace-trimmed and empty
// entries are dropped; order is preserved and duplicates are kept.
func Resolve(jsonList, csvList string) []string {
	if jsonList != "" {
		var coins []string
		if err := json.Unmarshal([]byte(jsonList), &coins); err != nil {
			slog.Warn("WATCHED_COINS is not valid JSON, trying WATCHED_COINS_LIST", "error", err)
		} else {
			return clean(coins)
		}
	}

	if csvList != "" {
		return clean(strings.Split(csvList, ","))
	}

	return DefaultCoins
}

// clean trims whitespace and drops empty entries, preserving order.
func clean(coins []string) []string {
	out := make([]string, 0, len(coins))
	for _, c := range coins {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
