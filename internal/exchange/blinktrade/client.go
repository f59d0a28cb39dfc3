package blinktrade

import (
	"net/http"
	"time"

	"trailbot/internal/logger"
)

func New(baseURL, apiKey, secret string, brokerID int, currency string, log *logger.Logger) *Client {
	c := &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		secret:   secret,
		brokerID: brokerID,
		currency: currency,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
	c.nonce.Store(time.Now().UnixMicro())
	return c
}

// Pair возвращает торгуемую пару, например BTCBRL.
func (c *Client) Pair() string {
	return "BTC" + c.currency
}

func (c *Client) nextNonce() int64 {
	return c.nonce.Add(1)
}
