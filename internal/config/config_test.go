package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestEnvSubReplacesPlaceholder(t *testing.T) {
	t.Setenv("TRAILBOT_TEST_KEY", "k-123")
	viper.Set("exchange.api_key", "${TRAILBOT_TEST_KEY}")

	if got := envSub("exchange.api_key"); got != "k-123" {
		t.Fatalf("expected substituted value, got %q", got)
	}
}

func TestEnvSubKeepsPlainValue(t *testing.T) {
	viper.Set("exchange.secret", "plain-secret")

	if got := envSub("exchange.secret"); got != "plain-secret" {
		t.Fatalf("expected plain value, got %q", got)
	}
}

func TestEnvSubMissingEnvGivesEmpty(t *testing.T) {
	viper.Set("exchange.api_key", "${TRAILBOT_UNSET_ENV_VAR}")

	if got := envSub("exchange.api_key"); got != "" {
		t.Fatalf("expected empty value for unset env, got %q", got)
	}
}

func TestEnvSubMixedValue(t *testing.T) {
	t.Setenv("TRAILBOT_TEST_SUFFIX", "tail")
	viper.Set("exchange.api_key", "head-${TRAILBOT_TEST_SUFFIX}")

	if got := envSub("exchange.api_key"); got != "head-tail" {
		t.Fatalf("expected mixed substitution, got %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bot.IntervalSec != 3 {
		t.Fatalf("expected default interval 3, got %d", cfg.Bot.IntervalSec)
	}
	if cfg.Bot.PageSize != 5 {
		t.Fatalf("expected default page size 5, got %d", cfg.Bot.PageSize)
	}
}
