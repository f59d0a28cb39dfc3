package blinktrade

import "testing"

func TestCryptoUnitsRoundTrip(t *testing.T) {
	if got := toCryptoUnits(0.03936700); got != 3936700 {
		t.Fatalf("expected 3936700 satoshi, got %d", got)
	}
	if got := fromCryptoUnits(3936700).String(); got != "0.039367" {
		t.Fatalf("expected 0.039367, got %s", got)
	}
}

func TestFiatUnitsRoundTrip(t *testing.T) {
	if got := toFiatUnits(25375.00); got != 2537500 {
		t.Fatalf("expected 2537500 cents, got %d", got)
	}
	if got := fromFiatUnits(2537500).String(); got != "25375" {
		t.Fatalf("expected 25375, got %s", got)
	}
}

func TestScalesDiffer(t *testing.T) {
	// Один и тот же сырой номинал читается по-разному в зависимости
	// от класса актива.
	raw := int64(100000000)
	if got := fromCryptoUnits(raw).String(); got != "1" {
		t.Fatalf("expected 1 BTC, got %s", got)
	}
	if got := fromFiatUnits(raw).String(); got != "1000000" {
		t.Fatalf("expected 1000000 fiat, got %s", got)
	}
}

func TestToUnitsTruncates(t *testing.T) {
	if got := toFiatUnits(0.019); got != 1 {
		t.Fatalf("expected truncation to 1 cent, got %d", got)
	}
}
