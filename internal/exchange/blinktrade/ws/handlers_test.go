package ws

import (
	"testing"

	"trailbot/internal/exchange"
	"trailbot/internal/logger"
)

func testClient() *Client {
	return New("wss://example.invalid/trade/", logger.New(logger.Config{Level: "panic"}))
}

func TestHandleEntriesEmitsTickerOnTrade(t *testing.T) {
	w := testClient()

	msg := Message{MsgType: "W", Symbol: "BTCBRL"}
	entries := []MDEntry{
		{MDEntryType: "0", MDEntryPx: 2534000},
		{MDEntryType: "1", MDEntryPx: 2536000},
		{MDEntryType: "2", MDEntryPx: 2535050, MDEntrySize: 50000000},
	}

	w.handleEntries(msg, entries)

	select {
	case event := <-w.Events():
		if event.Type != exchange.EventTypeTicker {
			t.Fatalf("expected ticker event, got %s", event.Type)
		}
		if event.Ticker.Pair != "BTCBRL" {
			t.Fatalf("unexpected pair: %s", event.Ticker.Pair)
		}
		if event.Ticker.Last != 25350.5 {
			t.Fatalf("trade price must convert from cents, got %f", event.Ticker.Last)
		}
		if event.Ticker.BestBuy != 25340 || event.Ticker.BestSell != 25360 {
			t.Fatalf("unexpected book: %f / %f", event.Ticker.BestBuy, event.Ticker.BestSell)
		}
		if event.Ticker.VolCrypto != 0.5 {
			t.Fatalf("trade size must convert from satoshi, got %f", event.Ticker.VolCrypto)
		}
	default:
		t.Fatalf("expected an event after a trade entry")
	}
}

func TestHandleEntriesBookOnlyStaysSilent(t *testing.T) {
	w := testClient()

	w.handleEntries(Message{MsgType: "X"}, []MDEntry{
		{MDEntryType: "0", MDEntryPx: 2534000},
		{MDEntryType: "1", MDEntryPx: 2536000},
	})

	select {
	case event := <-w.Events():
		t.Fatalf("book updates must not emit events, got %s", event.Type)
	default:
	}

	if w.bestBuy != 25340 || w.bestSell != 25360 {
		t.Fatalf("book must still update: %f / %f", w.bestBuy, w.bestSell)
	}
}

func TestNextBackoffCapped(t *testing.T) {
	w := testClient()

	backoff := w.reconnectMin
	for i := 0; i < 10; i++ {
		backoff = w.nextBackoff(backoff)
	}
	if backoff != w.reconnectMax {
		t.Fatalf("backoff must cap at the maximum, got %s", backoff)
	}
}
