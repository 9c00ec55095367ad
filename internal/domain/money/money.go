// Package money concentra la aritmética decimal de la facturación.
//
// Toda multiplicación (cantidad × precio), aplicación de impuesto y suma de
// totales pasa por aquí con shopspring/decimal: nunca float64, para que el
// total mostrado sea exactamente la suma de las líneas mostradas.
//
// Regla de redondeo: cada componente de línea se redondea a 2 decimales con
// half-up, y los agregados de la factura se calculan sumando líneas YA
// redondeadas (no re-derivando desde componentes sin redondear). Así no hay
// corrimiento de centavos entre el detalle y el total.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// Scale es la cantidad de decimales de todo monto persistido o expuesto.
const Scale = 2

var hundred = decimal.NewFromInt(100)

// LineAmounts son los montos calculados de una línea de factura,
// cada uno ya redondeado a Scale decimales.
type LineAmounts struct {
	Subtotal decimal.Decimal // qty × unitPrice
	Tax      decimal.Decimal // Subtotal × taxRate/100
	Total    decimal.Decimal // Subtotal + Tax
}

// ComputeLine calcula los montos de una línea.
//
//	qty       entero no negativo
//	unitPrice decimal no negativo (2 decimales)
//	taxRate   porcentaje en [0, 100]
//
// decimal.Round usa half-away-from-zero, que para montos no negativos es
// exactamente half-up.
func ComputeLine(qty int64, unitPrice, taxRate decimal.Decimal) (LineAmounts, error) {
	if qty < 0 {
		return LineAmounts{}, fmt.Errorf("%w: cantidad negativa (%d)", domain.ErrInvalidInput, qty)
	}
	if unitPrice.IsNegative() {
		return LineAmounts{}, fmt.Errorf("%w: precio unitario negativo (%s)", domain.ErrInvalidInput, unitPrice)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		return LineAmounts{}, fmt.Errorf("%w: tasa de impuesto fuera de [0,100] (%s)", domain.ErrInvalidInput, taxRate)
	}

	subtotal := decimal.NewFromInt(qty).Mul(unitPrice).Round(Scale)
	tax := subtotal.Mul(taxRate).Div(hundred).Round(Scale)
	total := subtotal.Add(tax)
	return LineAmounts{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// SumLines agrega líneas ya redondeadas en los totales de la factura.
// Garantiza total == subTotal + taxTotal y que el total coincide con la suma
// literal de los totales de línea.
func SumLines(lines []LineAmounts) (subTotal, taxTotal, total decimal.Decimal) {
	subTotal, taxTotal = decimal.Zero, decimal.Zero
	for _, l := range lines {
		subTotal = subTotal.Add(l.Subtotal)
		taxTotal = taxTotal.Add(l.Tax)
	}
	return subTotal, taxTotal, subTotal.Add(taxTotal)
}
