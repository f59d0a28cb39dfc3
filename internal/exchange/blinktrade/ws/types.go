package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"trailbot/internal/exchange"
	"trailbot/internal/logger"
)

type Client struct {
	url    string
	log    *logger.Logger
	conn   *websocket.Conn
	events chan exchange.Event

	stopCh   chan struct{}
	stopOnce sync.Once

	pair     string
	mdReqID  int64
	bestBuy  float64
	bestSell float64
	last     float64

	reconnectMin time.Duration
	reconnectMax time.Duration
}

// Message — кадр рыночных данных: W это полный снимок, X инкремент.
type Message struct {
	MsgType   string    `json:"MsgType"`
	MDReqID   int64     `json:"MDReqID"`
	Symbol    string    `json:"Symbol"`
	MDFullGrp []MDEntry `json:"MDFullGrp"`
	MDIncGrp  []MDEntry `json:"MDIncGrp"`
}

// MDEntry: MDEntryType 0 — бид, 1 — офер, 2 — сделка. Цена в центах,
// объём в сатоши.
type MDEntry struct {
	MDEntryType string `json:"MDEntryType"`
	MDEntryPx   int64  `json:"MDEntryPx"`
	MDEntrySize int64  `json:"MDEntrySize"`
	MDEntryDate string `json:"MDEntryDate"`
	MDEntryTime string `json:"MDEntryTime"`
	Symbol      string `json:"Symbol"`
}

type marketDataRequest struct {
	MsgType                 string   `json:"MsgType"`
	MDReqID                 int64    `json:"MDReqID"`
	SubscriptionRequestType string   `json:"SubscriptionRequestType"`
	MarketDepth             int      `json:"MarketDepth"`
	MDUpdateType            string   `json:"MDUpdateType"`
	MDEntryTypes            []string `json:"MDEntryTypes"`
	Instruments             []string `json:"Instruments"`
}
