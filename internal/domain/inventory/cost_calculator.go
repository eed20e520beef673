// Package inventory contiene reglas de dominio del stock sin dependencias de aplicación.
package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost costo promedio ponderado tras una entrada de mercancía, redondeado a centavos.
// NuevoCosto = ((Existencia * CostoActual) + (CantEntrada * CostoEntrada)) / (Existencia + CantEntrada)
// Sin unidades resultantes el costo queda en cero.
func WeightedAverageCost(onHand int, currentCost decimal.Decimal, received int, unitCost decimal.Decimal) decimal.Decimal {
	total := onHand + received
	if total <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(int64(onHand)).Mul(currentCost).
		Add(decimal.NewFromInt(int64(received)).Mul(unitCost))
	return num.Div(decimal.NewFromInt(int64(total))).Round(2)
}
