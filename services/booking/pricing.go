package booking

import "github.com/shopspring/decimal"

var (
	serviceFeeRate = decimal.NewFromFloat(0.10)
	taxRate        = decimal.NewFromFloat(0.18)
)

// Quote is the price breakdown for a booking. The base amount is the hourly
// price times the duration, rounded to 2 decimals; the service fee and tax
// are rounded to whole currency units, half away from zero, matching what
// payment receipts display.
type Quote struct {
	Base       float64 `json:"base"`
	ServiceFee float64 `json:"service_fee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// ComputeQuote derives the total amount for booking a slot at pricePerHour
// for the given number of hours. Tax applies to base plus fee.
func ComputeQuote(pricePerHour float64, hours int) Quote {
	base := decimal.NewFromFloat(pricePerHour).Mul(decimal.NewFromInt(int64(hours))).Round(2)
	fee := base.Mul(serviceFeeRate).Round(0)
	tax := base.Add(fee).Mul(taxRate).Round(0)
	total := base.Add(fee).Add(tax)

	return Quote{
		Base:       base.InexactFloat64(),
		ServiceFee: fee.InexactFloat64(),
		Tax:        tax.InexactFloat64(),
		Total:      total.InexactFloat64(),
	}
}
