package engine

import "github.com/shopspring/decimal"

// Минимальный шаг котировки биржи: 0.01. Та же точность используется
// и в расчёте цен, и в пересчёте границ, иначе значения расползаются
// между циклами.
const priceDecimals = 2

func CalcBuyPrice(startValue, reversalPct float64) float64 {
	return applyPct(startValue, reversalPct)
}

func CalcSellPrice(stopValue, reversalPct float64) float64 {
	return applyPct(stopValue, -reversalPct)
}

func CalcStopLossPrice(startValue, stopLossPct float64) float64 {
	return applyPct(startValue, -stopLossPct)
}

func applyPct(value, pct float64) float64 {
	factor := decimal.NewFromFloat(pct).
		Div(decimal.NewFromInt(100)).
		Add(decimal.NewFromInt(1))
	out, _ := decimal.NewFromFloat(value).Mul(factor).Round(priceDecimals).Float64()
	return out
}

func RoundPrice(value float64) float64 {
	out, _ := decimal.NewFromFloat(value).Round(priceDecimals).Float64()
	return out
}

// RoundQtyDown округляет объём вниз до лота биржи (один сатоши).
func RoundQtyDown(qty float64) float64 {
	out, _ := decimal.NewFromFloat(qty).RoundFloor(8).Float64()
	return out
}
