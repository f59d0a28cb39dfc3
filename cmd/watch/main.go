package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"trailbot/internal/config"
	"trailbot/internal/exchange"
	"trailbot/internal/exchange/blinktrade/ws"
	"trailbot/internal/logger"
)

// watch подписывается на поток рыночных данных и печатает сделки.
// Торговых команд не отправляет.
func main() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logger.New(logger.Config{
		Level:  cfg.Runtime.Log.Level,
		Format: cfg.Runtime.Log.Format,
	})

	pair := "BTC" + cfg.Exchange.Currency

	client := ws.New(cfg.Exchange.WSUrl, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		logger.WithError(err).Fatal("Не удалось подключиться к потоку рыночных данных.")
	}
	defer client.Close()

	if err := client.SubscribeMarketData(ctx, pair); err != nil {
		logger.WithError(err).Fatal("Не удалось подписаться на рыночные данные.")
	}

	logger.WithPair(pair).Info("Наблюдение за рынком запущено.")

	go func() {
		for event := range client.Events() {
			switch event.Type {
			case exchange.EventTypeTicker:
				logger.WithFields(logrus.Fields{
					"pair":       event.Ticker.Pair,
					"last":       event.Ticker.Last,
					"best_buy":   event.Ticker.BestBuy,
					"best_sell":  event.Ticker.BestSell,
					"vol_crypto": event.Ticker.VolCrypto,
				}).Info("Сделка.")
			case exchange.EventTypeReconnect:
				logger.Warn("Поток рыночных данных переподключён.")
			}
		}
	}()

	<-sigCh

	logger.Info("Наблюдение остановлено.")
}
