package blinktrade

import (
	"context"
	"fmt"
	"strings"

	"trailbot/internal/models"
)

func (c *Client) GetTicker(ctx context.Context) (models.Ticker, error) {
	var raw map[string]any
	if err := c.getPublic(ctx, "/api/v1/"+c.currency+"/ticker", &raw); err != nil {
		return models.Ticker{}, err
	}

	ticker := models.Ticker{
		Pair:        getString(raw, "pair"),
		Last:        floatValue(raw, "last"),
		High:        floatValue(raw, "high"),
		Low:         floatValue(raw, "low"),
		BestBuy:     floatValue(raw, "buy"),
		BestSell:    floatValue(raw, "sell"),
		VolCrypto:   floatValue(raw, "vol"),
		VolCurrency: floatValue(raw, "vol_"+strings.ToLower(c.currency)),
	}

	if ticker.Last <= 0 {
		return models.Ticker{}, fmt.Errorf("Тикер без цены последней сделки: %v", raw)
	}

	return ticker, nil
}

func floatValue(record map[string]any, key string) float64 {
	if v, ok := record[key].(float64); ok {
		return v
	}
	return 0
}
