package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
