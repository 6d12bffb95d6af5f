package trip

// Money is a price amount with its ISO currency code.
type Money struct {
	Amount   float64
	Currency string
}

func (m Money) IsZero() bool {
	return m.Amount == 0 && m.Currency == ""
}

// liftPriceFields is the lookup table of lift price field names the
// upstream schema has carried over time, highest priority first. Review
// this list whenever the upstream schema changes; do not add scattered
// conditional checks elsewhere.
var liftPriceFields = []string{
	"sellerPrice",
	"totalPrice",
	"quotedPrice",
	"price",
}

// NormalizeLiftPrice resolves the canonical price from the set of legacy
// price fields present on a lift record. Returns false when no usable
// inline price exists and a secondary quote fetch is required.
func NormalizeLiftPrice(fields map[string]Money) (Money, bool) {
	for _, name := range liftPriceFields {
		m, ok := fields[name]
		if ok && m.Amount > 0 {
			return m, true
		}
	}
	return Money{}, false
}
