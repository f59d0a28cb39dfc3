package exchange

import (
	"context"

	"trailbot/internal/models"
)

type EventType string

const (
	EventTypeTicker    EventType = "Ticker"
	EventTypeReconnect EventType = "Reconnect"
)

type Event struct {
	Type   EventType
	Ticker *models.Ticker
}

// OrderResult — нормализованный ответ торгового канала: список ордеров
// плюс баланс, если биржа прислала его в том же ответе.
type OrderResult struct {
	Orders  []models.Order
	Balance *models.Balance
}

type Client interface {
	PlaceOrder(ctx context.Context, side models.OrderSide, ordType models.OrderType, price, qty float64) (OrderResult, error)
	CancelOrder(ctx context.Context, clOrdID int64) (OrderResult, error)
	GetPendingOrders(ctx context.Context, page, pageSize int) (OrderResult, error)
	GetExecutedOrders(ctx context.Context, page, pageSize int) (OrderResult, error)
	GetBalance(ctx context.Context) (*models.Balance, error)
	GetTicker(ctx context.Context) (models.Ticker, error)
}
