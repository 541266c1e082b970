// Package quote derives the financial figures for a repair and assembles
// the printable quote document.
package quote

// VATRate is the Bulgarian standard VAT rate applied to every quote.
const VATRate = 0.20

// VAT and Total are computed at render time and never persisted: cost can
// change on edit, so caching them on the record would go stale.
func VAT(cost float64) float64 {
	return cost * VATRate
}

func Total(cost float64) float64 {
	return cost * (1 + VATRate)
}
