package engine

import "testing"

func TestCalcBuyPriceAboveStart(t *testing.T) {
	price := CalcBuyPrice(25000, 1.5)
	if price != 25375 {
		t.Fatalf("expected 25375, got %f", price)
	}
	if price <= 25000 {
		t.Fatalf("buy price must exceed start for positive reversal")
	}
}

func TestCalcSellPriceBelowStop(t *testing.T) {
	price := CalcSellPrice(26000, 1.5)
	if price != 25610 {
		t.Fatalf("expected 25610, got %f", price)
	}
	if price >= 26000 {
		t.Fatalf("sell price must be below stop for positive reversal")
	}
}

func TestCalcStopLossPriceBelowStart(t *testing.T) {
	price := CalcStopLossPrice(25000, 5)
	if price != 23750 {
		t.Fatalf("expected 23750, got %f", price)
	}
}

func TestApplyPctRoundsToTick(t *testing.T) {
	price := CalcBuyPrice(100.10, 0.33)
	if price != 100.43 {
		t.Fatalf("expected 100.43, got %f", price)
	}
}

func TestRoundQtyDownTruncates(t *testing.T) {
	qty := RoundQtyDown(0.123456789)
	if qty != 0.12345678 {
		t.Fatalf("expected 0.12345678, got %.10f", qty)
	}
}
