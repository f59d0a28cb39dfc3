package engine

import (
	"github.com/sirupsen/logrus"

	"trailbot/internal/models"
)

func (e *Engine) logEntry() *logrus.Entry {
	entry := e.log.WithComponent("engine")
	if e.cfg != nil && e.cfg.Exchange.Currency != "" {
		entry = entry.WithField("pair", "BTC"+e.cfg.Exchange.Currency)
	}
	return entry
}

func sideName(side models.OrderSide) string {
	if side == models.OrderSideBuy {
		return "BUY"
	}
	return "SELL"
}
