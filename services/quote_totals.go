package services

// IGVRate is the fixed Peruvian sales tax rate applied to every quotation.
const IGVRate = 0.18

// QuoteTotals holds the three summary amounts printed under the item table.
type QuoteTotals struct {
	TaxableBase float64 // "Gravado (S/.)"
	TaxAmount   float64 // "IGV 18% (S/.)"
	GrandTotal  float64 // "Total Carrito (S/.)"
}

// CalcQuoteTotals derives the summary rows from the order's authoritative
// monetary fields. The tax line is backed out of the tax-inclusive final
// amount rather than recomputed from the taxable base, so final_amount stays
// the ground truth even when the two stored fields drift apart upstream.
func CalcQuoteTotals(order *QuoteOrder) QuoteTotals {
	return QuoteTotals{
		TaxableBase: order.TotalAmount,
		TaxAmount:   order.FinalAmount / (1 + IGVRate) * IGVRate,
		GrandTotal:  order.FinalAmount,
	}
}
