package blinktrade

import "github.com/shopspring/decimal"

// Биржа передаёт суммы целыми в минимальных единицах: криптоактив
// в сатоши (1e8), фиат в центах (1e2). Перевод только через decimal,
// чтобы не копить двоичную погрешность.
var (
	cryptoScale = decimal.New(1, 8)
	fiatScale   = decimal.New(1, 2)
)

func fromCryptoUnits(v int64) decimal.Decimal {
	return decimal.NewFromInt(v).Div(cryptoScale)
}

func fromFiatUnits(v int64) decimal.Decimal {
	return decimal.NewFromInt(v).Div(fiatScale)
}

func toCryptoUnits(v float64) int64 {
	return decimal.NewFromFloat(v).Mul(cryptoScale).IntPart()
}

func toFiatUnits(v float64) int64 {
	return decimal.NewFromFloat(v).Mul(fiatScale).IntPart()
}
