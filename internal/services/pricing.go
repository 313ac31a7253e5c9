package services

import (
	"github.com/hypernova-labs/garage-service/internal/models"
	"github.com/shopspring/decimal"
)

// Precios fijos del taller por línea de factura
const (
	preventiveItemName = "Preventive maintenance items"
	criticalItemName   = "Critical repair items"
	baseFeeItemName    = "Base inspection fee"

	preventiveItemPrice = 25.00
	criticalItemPrice   = 60.00
	baseFeePrice        = 49.00
)

// taxRate es la tasa de impuesto aplicada al subtotal
var taxRate = decimal.RequireFromString("0.08")

// DeriveInvoice deriva una factura a partir del checklist de una
// inspección. Cuenta los estados attention y fail de todas las
// secciones (ok y valores no reconocidos no se cuentan), arma las
// líneas en orden fijo omitiendo las de cantidad cero, y calcula
// subtotal, impuestos (8%, redondeo a 2 decimales) y total con
// aritmética decimal exacta. La factura resultante siempre nace con
// paid=false; persistirla es responsabilidad del caller.
func DeriveInvoice(checks models.CheckMap) *models.Invoice {
	attention, fail := 0, 0
	for _, section := range checks {
		for _, status := range section {
			switch models.CheckStatus(status) {
			case models.CheckStatusAttention:
				attention++
			case models.CheckStatusFail:
				fail++
			}
		}
	}

	var lineItems []models.LineItem
	if attention > 0 {
		lineItems = append(lineItems, models.LineItem{
			Name:  preventiveItemName,
			Qty:   attention,
			Price: preventiveItemPrice,
		})
	}
	if fail > 0 {
		lineItems = append(lineItems, models.LineItem{
			Name:  criticalItemName,
			Qty:   fail,
			Price: criticalItemPrice,
		})
	}
	lineItems = append(lineItems, models.LineItem{
		Name:  baseFeeItemName,
		Qty:   1,
		Price: baseFeePrice,
	})

	subtotal := decimal.Zero
	for _, item := range lineItems {
		lineTotal := decimal.NewFromInt(int64(item.Qty)).Mul(decimal.NewFromFloat(item.Price))
		subtotal = subtotal.Add(lineTotal)
	}

	taxes := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(taxes).Round(2)

	return &models.Invoice{
		LineItems: lineItems,
		Subtotal:  subtotal.InexactFloat64(),
		Taxes:     taxes.InexactFloat64(),
		Total:     total.InexactFloat64(),
		Paid:      false,
	}
}
