package models

import "github.com/shopspring/decimal"

type OrderSide string
type OrderType string
type OrderStatus string

const (
	OrderSideBuy  OrderSide = "1"
	OrderSideSell OrderSide = "2"

	OrderTypeMarket OrderType = "1"
	OrderTypeLimit  OrderType = "2"

	OrderStatusNew             OrderStatus = "0"
	OrderStatusPartiallyFilled OrderStatus = "1"
	OrderStatusFilled          OrderStatus = "2"
	OrderStatusCanceled        OrderStatus = "4"
	OrderStatusRejected        OrderStatus = "8"
)

func (s OrderSide) Opposite() OrderSide {
	if s == OrderSideBuy {
		return OrderSideSell
	}
	return OrderSideBuy
}

// Order — единое представление ордера независимо от формы ответа биржи
// (плоская запись или строка табличного ответа). Числовые поля хранятся
// в минимальных единицах биржи; отсутствующее, пустое или нулевое значение
// в ответе даёт nil, а не ноль.
type Order struct {
	OrderID      *int64
	ClOrdID      *int64
	ExecID       *int64
	Symbol       string
	Side         OrderSide
	Type         OrderType
	Status       OrderStatus
	ExecType     string
	ExecSide     string
	TimeInForce  string
	RejectReason string
	MsgType      string
	Price        *int64
	AvgPrice     *int64
	LastPrice    *int64
	Qty          *int64
	CumQty       *int64
	LeavesQty    *int64
	LastQty      *int64
	CxlQty       *int64
	Volume       *int64
}

func (o Order) IsFilled() bool {
	return o.Status == OrderStatusFilled
}

// Balance — доступные и заблокированные средства по валюте и криптоактиву,
// уже переведённые из минимальных единиц в валютные.
type Balance struct {
	Currency       decimal.Decimal
	CurrencyLocked decimal.Decimal
	Crypto         decimal.Decimal
	CryptoLocked   decimal.Decimal
}

type Ticker struct {
	Pair        string
	Last        float64
	High        float64
	Low         float64
	BestBuy     float64
	BestSell    float64
	VolCrypto   float64
	VolCurrency float64
}
