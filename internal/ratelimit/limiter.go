// Package ratelimit guards outbound calls to the price API.
//
// The CoinGecko free tier allows roughly 30 requests per minute; the
// limiter stays well under that so a short update interval cannot get
// the process temporarily banned.
package ratelimit

import (
	"context"
	"os"
	"sync"

	"golang.org/x/time/rate"
)

var (
	instance *rate.Limiter
	once     sync.Once
)

// GetLimiter returns the singleton rate limiter for the price API.
func GetLimiter() *rate.Limiter {
	once.Do(func() {
		// In test mode, use an unlimited rate to avoid slowing down tests
		if os.Getenv("GO_TESTING") == "1" || isTestMode() {
			instance = rate.NewLimiter(rate.Inf, 1)
			return
		}

		// One request every two seconds, conservative for the free tier
		instance = rate.NewLimiter(rate.Limit(0.5), 1)
	})
	return instance
}

// isTestMode checks if we're running in test mode
func isTestMode() bool {
	for _, arg := range os.Args {
		if len(arg) > 6 && arg[:6] == "-test." {
			return true
		}
	}
	return false
}

// Wait blocks until the limiter permits a request or the context is canceled.
func Wait(ctx context.Context) error {
	return GetLimiter().Wait(ctx)
}
