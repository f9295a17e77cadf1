package tosstrades

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberRe matches a plain statement figure: digits with optional thousands
// separators and an optional decimal part.
var numberRe = regexp.MustCompile(`^-?[\d,]+(\.\d+)?$`)

func isNumber(s string) bool { return numberRe.MatchString(s) }

// parseValue returns the numeric value of a raw statement field, or nil when
// the field is absent or not a number. Compound cross-border fields keep only
// the leading KRW component, before any space or parenthesis.
func parseValue(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if i := strings.IndexAny(v, " ("); i >= 0 {
		v = v[:i]
	}
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

// number converts an exact decimal into a JSON number token.
func number(d decimal.Decimal) json.Number { return json.Number(d.String()) }

// normDate rewrites a statement date "2024.01.15" into ISO form "2024-01-15".
func normDate(d string) string { return strings.ReplaceAll(d, ".", "-") }

// toMonth truncates an ISO date to its month, "2024-01-15" -> "2024-01".
func toMonth(d string) string {
	if len(d) < 7 {
		return d
	}
	return d[:7]
}
