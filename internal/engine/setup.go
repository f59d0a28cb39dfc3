package engine

import (
	"fmt"
	"strings"

	"trailbot/internal/config"
	"trailbot/internal/models"
)

// Setup — неизменяемая конфигурация трейлинг-цикла. Любое изменение
// порождает новое значение, поля на месте не правятся.
type Setup struct {
	NextOperation   models.OrderSide
	StartValue      float64
	StopValue       float64
	ReversalPct     float64
	StopLossPct     float64
	OperationalCost float64
	ProfitPct       float64
}

func (s Setup) withValues(startValue, stopValue float64) Setup {
	next := s
	next.StartValue = startValue
	next.StopValue = stopValue
	return next
}

func (s Setup) withNextOperation(side models.OrderSide) Setup {
	next := s
	next.NextOperation = side
	return next
}

// ratchetSetup подтягивает границы START/STOP за рынком: когда котировка
// выходит из коридора в сторону улучшения входа или выхода, обе границы
// масштабируются на отношение last_quote к пройденной границе.
// Возвращает false, когда пересчёт не нужен.
func ratchetSetup(s Setup, lastQuote float64) (Setup, bool) {
	if s.NextOperation == models.OrderSideBuy && lastQuote >= s.StartValue {
		return s, false
	}
	if s.NextOperation == models.OrderSideSell && lastQuote <= s.StopValue {
		return s, false
	}

	reference := s.StartValue
	if lastQuote >= s.StartValue {
		reference = s.StopValue
	}
	ratio := lastQuote / reference

	return s.withValues(RoundPrice(s.StartValue*ratio), RoundPrice(s.StopValue*ratio)), true
}

// Bootstrap поставляет стартовые параметры цикла. Интерактивный ввод,
// если он нужен, остаётся за пределами движка.
type Bootstrap interface {
	InitialSetup() (Setup, error)
}

type configBootstrap struct {
	cfg *config.Config
}

func NewConfigBootstrap(cfg *config.Config) Bootstrap {
	return configBootstrap{cfg: cfg}
}

func (b configBootstrap) InitialSetup() (Setup, error) {
	side, err := parseSide(b.cfg.Bot.NextOperation)
	if err != nil {
		return Setup{}, err
	}

	bot := b.cfg.Bot
	if bot.StartValue <= 0 || bot.StopValue <= 0 {
		return Setup{}, fmt.Errorf("Границы START/STOP должны быть положительными: start=%f stop=%f", bot.StartValue, bot.StopValue)
	}
	if bot.StartValue >= bot.StopValue {
		return Setup{}, fmt.Errorf("Граница START должна быть ниже STOP: start=%f stop=%f", bot.StartValue, bot.StopValue)
	}
	if bot.ReversalPct <= 0 {
		return Setup{}, fmt.Errorf("Процент разворота должен быть положительным: %f", bot.ReversalPct)
	}

	return Setup{
		NextOperation:   side,
		StartValue:      bot.StartValue,
		StopValue:       bot.StopValue,
		ReversalPct:     bot.ReversalPct,
		StopLossPct:     bot.StopLossPct,
		OperationalCost: bot.OperationalCost,
		ProfitPct:       bot.ProfitPct,
	}, nil
}

func parseSide(side string) (models.OrderSide, error) {
	switch strings.ToUpper(strings.TrimSpace(side)) {
	case "BUY":
		return models.OrderSideBuy, nil
	case "SELL":
		return models.OrderSideSell, nil
	default:
		return "", fmt.Errorf("Некорректная сторона операции: %s", side)
	}
}
