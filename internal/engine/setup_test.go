package engine

import (
	"testing"

	"trailbot/internal/config"
	"trailbot/internal/models"
)

func TestRatchetSetupBuyBelowStart(t *testing.T) {
	setup := Setup{
		NextOperation: models.OrderSideBuy,
		StartValue:    25000,
		StopValue:     26000,
	}

	next, changed := ratchetSetup(setup, 24000)
	if !changed {
		t.Fatalf("expected rescale for quote below start")
	}
	if next.StartValue != 24000 {
		t.Fatalf("expected start 24000, got %f", next.StartValue)
	}
	if next.StopValue != 24960 {
		t.Fatalf("expected stop 24960, got %f", next.StopValue)
	}
}

func TestRatchetSetupBuyNoOpAboveStart(t *testing.T) {
	setup := Setup{
		NextOperation: models.OrderSideBuy,
		StartValue:    25000,
		StopValue:     26000,
	}

	next, changed := ratchetSetup(setup, 25500)
	if changed {
		t.Fatalf("expected no rescale for quote above start on buy side")
	}
	if next != setup {
		t.Fatalf("setup must be unchanged, got %+v", next)
	}
}

func TestRatchetSetupIdempotentAtBoundary(t *testing.T) {
	setup := Setup{
		NextOperation: models.OrderSideBuy,
		StartValue:    25000,
		StopValue:     26000,
	}

	if _, changed := ratchetSetup(setup, 25000); changed {
		t.Fatalf("quote equal to start must not rescale")
	}

	sellSetup := setup.withNextOperation(models.OrderSideSell)
	if _, changed := ratchetSetup(sellSetup, 26000); changed {
		t.Fatalf("quote equal to stop must not rescale on sell side")
	}
}

func TestRatchetSetupSellAboveStop(t *testing.T) {
	setup := Setup{
		NextOperation: models.OrderSideSell,
		StartValue:    25000,
		StopValue:     26000,
	}

	next, changed := ratchetSetup(setup, 27300)
	if !changed {
		t.Fatalf("expected rescale for quote above stop")
	}
	if next.StopValue != 27300 {
		t.Fatalf("expected stop 27300, got %f", next.StopValue)
	}
	if next.StartValue != 26250 {
		t.Fatalf("expected start 26250, got %f", next.StartValue)
	}
}

func TestWithValuesDoesNotMutateOriginal(t *testing.T) {
	setup := Setup{
		NextOperation: models.OrderSideBuy,
		StartValue:    100,
		StopValue:     110,
		ReversalPct:   1,
	}

	next := setup.withValues(90, 99)
	if setup.StartValue != 100 || setup.StopValue != 110 {
		t.Fatalf("original setup mutated: %+v", setup)
	}
	if next.StartValue != 90 || next.StopValue != 99 {
		t.Fatalf("unexpected derived setup: %+v", next)
	}
	if next.ReversalPct != 1 {
		t.Fatalf("other fields must carry over, got %+v", next)
	}
}

func TestConfigBootstrapValidSetup(t *testing.T) {
	cfg := &config.Config{}
	cfg.Bot = config.BotConfig{
		NextOperation: "buy",
		StartValue:    24800,
		StopValue:     25500,
		ReversalPct:   1.5,
		StopLossPct:   5,
	}

	setup, err := NewConfigBootstrap(cfg).InitialSetup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setup.NextOperation != models.OrderSideBuy {
		t.Fatalf("expected buy side, got %s", setup.NextOperation)
	}
	if setup.StartValue != 24800 || setup.StopValue != 25500 {
		t.Fatalf("unexpected boundaries: %+v", setup)
	}
}

func TestConfigBootstrapRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		bot  config.BotConfig
	}{
		{"bad side", config.BotConfig{NextOperation: "hold", StartValue: 100, StopValue: 110, ReversalPct: 1}},
		{"zero start", config.BotConfig{NextOperation: "BUY", StartValue: 0, StopValue: 110, ReversalPct: 1}},
		{"start above stop", config.BotConfig{NextOperation: "BUY", StartValue: 120, StopValue: 110, ReversalPct: 1}},
		{"zero reversal", config.BotConfig{NextOperation: "BUY", StartValue: 100, StopValue: 110, ReversalPct: 0}},
	}

	for _, tc := range cases {
		cfg := &config.Config{Bot: tc.bot}
		if _, err := NewConfigBootstrap(cfg).InitialSetup(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestParseSideNormalizesInput(t *testing.T) {
	side, err := parseSide("  sell ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if side != models.OrderSideSell {
		t.Fatalf("expected sell, got %s", side)
	}
}
