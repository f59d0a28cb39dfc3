package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Exchange ExchangeConfig
	Bot      BotConfig
	Runtime  RuntimeConfig
}

type ExchangeConfig struct {
	BaseUrl  string
	WSUrl    string
	ApiKey   string
	Secret   string
	BrokerID int
	Currency string
}

type BotConfig struct {
	NextOperation   string
	StartValue      float64
	StopValue       float64
	ReversalPct     float64
	StopLossPct     float64
	OperationalCost float64
	ProfitPct       float64
	IntervalSec     int
	PageSize        int
}

type RuntimeConfig struct {
	DryRun bool
	Log    LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func Load() (*Config, error) {

	cfg := &Config{}
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetDefault("bot.interval_sec", 3)
	viper.SetDefault("bot.page_size", 5)
	viper.ReadInConfig()

	cfg.Exchange = ExchangeConfig{
		BaseUrl:  viper.GetString("exchange.base_url"),
		WSUrl:    viper.GetString("exchange.ws_url"),
		ApiKey:   envSub("exchange.api_key"),
		Secret:   envSub("exchange.secret"),
		BrokerID: viper.GetInt("exchange.broker_id"),
		Currency: viper.GetString("exchange.currency"),
	}

	cfg.Bot = BotConfig{
		NextOperation:   viper.GetString("bot.next_operation"),
		StartValue:      viper.GetFloat64("bot.start_value"),
		StopValue:       viper.GetFloat64("bot.stop_value"),
		ReversalPct:     viper.GetFloat64("bot.reversal_pct"),
		StopLossPct:     viper.GetFloat64("bot.stop_loss_pct"),
		OperationalCost: viper.GetFloat64("bot.operational_cost"),
		ProfitPct:       viper.GetFloat64("bot.profit_pct"),
		IntervalSec:     viper.GetInt("bot.interval_sec"),
		PageSize:        viper.GetInt("bot.page_size"),
	}

	cfg.Runtime = RuntimeConfig{
		DryRun: viper.GetBool("runtime.dry_run"),
		Log: LogConfig{
			Level:      viper.GetString("runtime.log.level"),
			Format:     viper.GetString("runtime.log.format"),
			File:       viper.GetString("runtime.log.file"),
			MaxSize:    viper.GetInt("runtime.log.max_size"),
			MaxBackups: viper.GetInt("runtime.log.max_backups"),
			MaxAge:     viper.GetInt("runtime.log.max_age"),
			Compress:   viper.GetBool("runtime.log.compress"),
		},
	}

	return cfg, nil
}

func envSub(key string) string {
	val := viper.GetString(key)
	if val == "" {
		return ""
	}

	re := regexp.MustCompile(`\$\{(\w+)\}`)
	return re.ReplaceAllStringFunc(val, func(match string) string {
		envKey := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(envKey)
	})
}
