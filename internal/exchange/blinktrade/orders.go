package blinktrade

import (
	"context"

	"github.com/sirupsen/logrus"

	"trailbot/internal/exchange"
	"trailbot/internal/models"
)

func (c *Client) PlaceOrder(ctx context.Context, side models.OrderSide, ordType models.OrderType, price, qty float64) (exchange.OrderResult, error) {
	msg := map[string]any{
		"MsgType":  msgTypePlaceOrder,
		"ClOrdID":  c.nextNonce(),
		"Symbol":   c.Pair(),
		"Side":     side,
		"OrdType":  ordType,
		"Price":    toFiatUnits(price),
		"OrderQty": toCryptoUnits(qty),
		"BrokerID": c.brokerID,
	}

	c.logEntry().WithFields(logrus.Fields{
		"side":  side,
		"type":  ordType,
		"price": price,
		"qty":   qty,
	}).Info("Постановка ордера.")

	resp, err := c.sendMessage(ctx, msg)
	if err != nil {
		return exchange.OrderResult{}, err
	}
	return c.normalize(resp)
}

func (c *Client) CancelOrder(ctx context.Context, clOrdID int64) (exchange.OrderResult, error) {
	msg := map[string]any{
		"MsgType": msgTypeCancelOrder,
		"ClOrdID": clOrdID,
	}

	c.logEntry().WithField("order_id", clOrdID).Info("Отмена ордера.")

	resp, err := c.sendMessage(ctx, msg)
	if err != nil {
		return exchange.OrderResult{}, err
	}
	return c.normalize(resp)
}

func (c *Client) GetPendingOrders(ctx context.Context, page, pageSize int) (exchange.OrderResult, error) {
	return c.getOrders(ctx, []string{"has_leaves_qty eq 1"}, page, pageSize)
}

func (c *Client) GetExecutedOrders(ctx context.Context, page, pageSize int) (exchange.OrderResult, error) {
	return c.getOrders(ctx, []string{"has_cum_qty eq 1"}, page, pageSize)
}

func (c *Client) getOrders(ctx context.Context, filter []string, page, pageSize int) (exchange.OrderResult, error) {
	msg := map[string]any{
		"MsgType":     msgTypeOrderList,
		"OrdersReqID": c.nextNonce(),
		"Page":        page,
		"PageSize":    pageSize,
		"Filter":      filter,
	}

	resp, err := c.sendMessage(ctx, msg)
	if err != nil {
		return exchange.OrderResult{}, err
	}
	return c.normalize(resp)
}

func (c *Client) normalize(resp rawResponse) (exchange.OrderResult, error) {
	orders, balance, err := normalizeResponse(resp, c.brokerID, c.currency)
	if err != nil {
		return exchange.OrderResult{}, err
	}
	return exchange.OrderResult{Orders: orders, Balance: balance}, nil
}
