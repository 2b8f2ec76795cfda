package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Normalize converts a free-form price value into a decimal amount.
// Sources hand prices over either as strings with a currency symbol and
// grouping separators ("₹1,299.00") or as bare numbers. A nil or
// unparsable value normalizes to 0; downstream validation treats a
// zero price as absent and flags it through the positivity rule.
func Normalize(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		return NormalizeString(v)
	default:
		return 0
	}
}

// NormalizeString strips every rune that is not a digit or a decimal
// point and parses the remainder. Locale-agnostic on purpose: commas
// are always treated as grouping separators, never as decimal marks.
func NormalizeString(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
