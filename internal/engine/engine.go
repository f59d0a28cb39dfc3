package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"trailbot/internal/config"
	"trailbot/internal/exchange"
	"trailbot/internal/logger"
	"trailbot/internal/models"
)

type Engine struct {
	cfg    *config.Config
	client exchange.Client
	log    *logger.Logger

	setup         Setup
	isTracking    bool
	balance       *models.Balance
	pendingOrders []models.Order
}

func New(cfg *config.Config, client exchange.Client, bootstrap Bootstrap, log *logger.Logger) (*Engine, error) {
	setup, err := bootstrap.InitialSetup()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		client: client,
		log:    log,
		setup:  setup,
	}
	e.logSetup()
	return e, nil
}

func (e *Engine) Start(ctx context.Context) error {
	e.logRecentActivity(ctx)

	interval := time.Duration(e.cfg.Bot.IntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := e.runCycle(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				e.logEntry().WithError(err).Error("Цикл завершился с ошибкой, состояние не менялось.")
			}
		}
	}
}

// logRecentActivity сверяет журнал при старте: показывает последнюю
// исполненную сделку, чтобы рестарт был виден в логе. Ошибка здесь
// не мешает запуску.
func (e *Engine) logRecentActivity(ctx context.Context) {
	executed, err := e.client.GetExecutedOrders(ctx, 0, 1)
	if err != nil {
		e.logEntry().WithError(err).Warn("Не удалось получить историю сделок при старте.")
		return
	}
	if len(executed.Orders) == 0 {
		e.logEntry().Info("История сделок пуста.")
		return
	}

	last := executed.Orders[0]
	fields := logrus.Fields{"side": sideName(last.Side), "status": last.Status}
	if last.OrderID != nil {
		fields["order_id"] = *last.OrderID
	}
	if last.AvgPrice != nil {
		fields["avg_price"] = *last.AvgPrice
	}
	e.logEntry().WithFields(fields).Info("Последняя сделка перед запуском.")
}

// runCycle выполняет ровно один цикл: три чтения, одна команда, затем
// пересчёт границ. Пересчёт идёт строго последним — любая ошибка до него
// оставляет Setup и флаг отслеживания нетронутыми.
func (e *Engine) runCycle(ctx context.Context) error {
	pending, err := e.client.GetPendingOrders(ctx, 0, e.cfg.Bot.PageSize)
	if err != nil {
		return fmt.Errorf("Не удалось получить отложенные ордера: %w", err)
	}

	balance, err := e.client.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("Не удалось получить баланс: %w", err)
	}

	ticker, err := e.client.GetTicker(ctx)
	if err != nil {
		return fmt.Errorf("Не удалось получить тикер: %w", err)
	}

	e.pendingOrders = pending.Orders
	e.balance = balance

	if err := e.command().execute(ctx, ticker.Last); err != nil {
		return err
	}

	e.updateStartStop(ticker.Last)
	return nil
}

// Сверка отложенных ордеров всегда в приоритете: пока висит
// неразрешённый ордер, новая позиция не открывается.
func (e *Engine) command() command {
	if len(e.pendingOrders) > 0 {
		return evaluatePendingOrdersCommand{engine: e}
	}
	if e.setup.NextOperation == models.OrderSideBuy {
		return buyCommand{engine: e}
	}
	return sellCommand{engine: e}
}

func (e *Engine) updateStartStop(lastQuote float64) {
	next, changed := ratchetSetup(e.setup, lastQuote)
	if !changed {
		return
	}
	e.setup = next

	e.logEntry().WithFields(logrus.Fields{
		"last_quote":      lastQuote,
		"start_value":     next.StartValue,
		"stop_value":      next.StopValue,
		"buy_price":       e.buyPrice(),
		"sell_price":      e.sellPrice(),
		"stop_loss_price": e.stopLossPrice(),
	}).Info("Границы START/STOP подтянуты за рынком.")
}

func (e *Engine) setNextOperation(side models.OrderSide) {
	e.setup = e.setup.withNextOperation(side)
	e.logEntry().WithField("next_operation", sideName(side)).Info("Смена стороны следующей операции.")
}

func (e *Engine) buyPrice() float64 {
	return CalcBuyPrice(e.setup.StartValue, e.setup.ReversalPct)
}

func (e *Engine) sellPrice() float64 {
	return CalcSellPrice(e.setup.StopValue, e.setup.ReversalPct)
}

func (e *Engine) stopLossPrice() float64 {
	return CalcStopLossPrice(e.setup.StartValue, e.setup.StopLossPct)
}

func (e *Engine) placeOrder(ctx context.Context, side models.OrderSide, price float64) error {
	qty := e.orderQty(side, price)
	if qty <= 0 {
		return fmt.Errorf("Недостаточно средств для ордера: side=%s price=%.2f", sideName(side), price)
	}

	if e.cfg.Runtime.DryRun {
		e.logEntry().WithFields(logrus.Fields{
			"side":  sideName(side),
			"price": price,
			"qty":   qty,
		}).Info("Dry-run: ордер не отправлен.")
	} else {
		result, err := e.client.PlaceOrder(ctx, side, models.OrderTypeLimit, price, qty)
		if err != nil {
			return err
		}
		for _, order := range result.Orders {
			fields := logrus.Fields{
				"side":   sideName(side),
				"price":  price,
				"qty":    qty,
				"status": order.Status,
			}
			if order.OrderID != nil {
				fields["order_id"] = *order.OrderID
			}
			e.logEntry().WithFields(fields).Info("Ордер поставлен.")
		}
		if result.Balance != nil {
			e.balance = result.Balance
		}
	}

	e.setNextOperation(side.Opposite())
	e.isTracking = false
	return nil
}

// orderQty считает объём из доступного (не заблокированного) остатка:
// покупка тратит фиат по цене ордера, продажа отдаёт криптоактив.
func (e *Engine) orderQty(side models.OrderSide, price float64) float64 {
	if e.balance == nil {
		return 0
	}

	if side == models.OrderSideBuy {
		if price <= 0 {
			return 0
		}
		available, _ := e.balance.Currency.Float64()
		available -= e.setup.OperationalCost
		if available <= 0 {
			return 0
		}
		return RoundQtyDown(available / price)
	}

	available, _ := e.balance.Crypto.Float64()
	return RoundQtyDown(available)
}

func (e *Engine) logSetup() {
	buyPrice := e.buyPrice()
	sellPrice := e.sellPrice()
	grossMargin := 0.0
	if buyPrice > 0 {
		grossMargin = RoundPrice((sellPrice/buyPrice - 1) * 100)
	}

	e.logEntry().WithFields(logrus.Fields{
		"next_operation":  sideName(e.setup.NextOperation),
		"start_value":     e.setup.StartValue,
		"stop_value":      e.setup.StopValue,
		"buy_price":       buyPrice,
		"sell_price":      sellPrice,
		"reversal_pct":    e.setup.ReversalPct,
		"stop_loss_pct":   e.setup.StopLossPct,
		"stop_loss_price": e.stopLossPrice(),
		"gross_margin":    grossMargin,
	}).Info("Система запущена со следующими параметрами.")
}
