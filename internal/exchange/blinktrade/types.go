package blinktrade

import (
	"net/http"
	"sync/atomic"

	"trailbot/internal/logger"
)

// Типы сообщений торгового канала (FIX-подобный JSON поверх HTTP).
const (
	msgTypePlaceOrder  = "D"
	msgTypeCancelOrder = "F"
	msgTypeBalance     = "U2"
	msgTypeOrderList   = "U4"

	msgTypeExecutionReport   = "8"
	msgTypeOrderListResponse = "U5"
	msgTypeBalanceResponse   = "U3"
)

type Client struct {
	baseURL  string
	apiKey   string
	secret   string
	brokerID int
	currency string

	httpClient *http.Client
	log        *logger.Logger
	nonce      atomic.Int64
}

type rawResponse struct {
	Status    int              `json:"Status"`
	Responses []map[string]any `json:"Responses"`
}
