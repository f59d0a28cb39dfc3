package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"trailbot/internal/models"
)

// Каждый цикл исполняет ровно одну команду.
type command interface {
	execute(ctx context.Context, lastQuote float64) error
}

type buyCommand struct {
	engine *Engine
}

func (c buyCommand) execute(ctx context.Context, lastQuote float64) error {
	e := c.engine

	if e.isTracking && lastQuote >= e.buyPrice() {
		return e.placeOrder(ctx, models.OrderSideBuy, e.buyPrice())
	}

	if !e.isTracking && lastQuote <= e.setup.StartValue {
		e.isTracking = true
		e.logEntry().WithField("last_quote", lastQuote).Info("Котировка вошла в зону покупки, начато отслеживание.")
	}

	return nil
}

type sellCommand struct {
	engine *Engine
}

func (c sellCommand) execute(ctx context.Context, lastQuote float64) error {
	e := c.engine

	if e.isTracking && lastQuote <= e.sellPrice() {
		return e.placeOrder(ctx, models.OrderSideSell, e.sellPrice())
	}

	if !e.isTracking && lastQuote >= e.setup.StopValue {
		e.isTracking = true
		e.logEntry().WithField("last_quote", lastQuote).Info("Котировка вошла в зону продажи, начато отслеживание.")
	}

	return nil
}

type evaluatePendingOrdersCommand struct {
	engine *Engine
}

// Исполненный ордер завершает цикл и разворачивает сторону; частично
// исполненные и открытые ордера ждут следующего цикла. Отложенная
// покупка снимается, если котировка провалилась ниже стоп-лосса.
func (c evaluatePendingOrdersCommand) execute(ctx context.Context, lastQuote float64) error {
	e := c.engine

	for _, order := range e.pendingOrders {
		if order.IsFilled() {
			fields := logrus.Fields{"side": sideName(order.Side)}
			if order.OrderID != nil {
				fields["order_id"] = *order.OrderID
			}
			e.logEntry().WithFields(fields).Info("Ордер исполнен, цикл завершён.")

			e.setNextOperation(order.Side.Opposite())
			e.isTracking = false
			continue
		}

		if order.Side == models.OrderSideBuy && order.ClOrdID != nil && lastQuote <= e.stopLossPrice() {
			e.logEntry().WithFields(logrus.Fields{
				"last_quote":      lastQuote,
				"stop_loss_price": e.stopLossPrice(),
			}).Warn("Котировка ниже стоп-лосса, отложенная покупка снимается.")

			if _, err := e.client.CancelOrder(ctx, *order.ClOrdID); err != nil {
				return fmt.Errorf("Не удалось отменить ордер: %w", err)
			}
		}
	}

	return nil
}
