package ws

import (
	"github.com/shopspring/decimal"

	"trailbot/internal/exchange"
	"trailbot/internal/models"
)

var (
	cryptoScale = decimal.New(1, 8)
	fiatScale   = decimal.New(1, 2)
)

// handleEntries обновляет локальную картину рынка и публикует событие
// тикера после каждой сделки.
func (w *Client) handleEntries(msg Message, entries []MDEntry) {
	for _, entry := range entries {
		price, _ := decimal.New(entry.MDEntryPx, 0).Div(fiatScale).Float64()

		switch entry.MDEntryType {
		case "0":
			w.bestBuy = price
		case "1":
			w.bestSell = price
		case "2":
			w.last = price
			size, _ := decimal.New(entry.MDEntrySize, 0).Div(cryptoScale).Float64()
			w.emitTicker(msg, size)
		}
	}
}

func (w *Client) emitTicker(msg Message, size float64) {
	pair := msg.Symbol
	if pair == "" {
		pair = w.pair
	}

	ticker := &models.Ticker{
		Pair:      pair,
		Last:      w.last,
		BestBuy:   w.bestBuy,
		BestSell:  w.bestSell,
		VolCrypto: size,
	}

	select {
	case w.events <- exchange.Event{Type: exchange.EventTypeTicker, Ticker: ticker}:
	default:
		w.logEntry().Warn("Канал событий переполнен, тикер отброшен.")
	}
}
