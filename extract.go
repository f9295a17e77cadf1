package tosstrades

import (
	"regexp"
	"strings"
)

// Trade-type vocabularies driving extraction. Membership is tested on the
// kind root, the part before any parenthesized qualifier.
var (
	// cashKinds never carry a symbol: cash transfers, interest, conversions
	// and foreign-currency cash legs. Shared by both dialect extractors.
	cashKinds = map[string]bool{
		"환전":      true,
		"입금":      true,
		"출금":      true,
		"이체입금":    true,
		"이체출금":    true,
		"이자입금":    true,
		"예탁금이용료입금": true,
		"외화입금":    true,
		"외화출금":    true,
		"환전입금":    true,
		"환전출금":    true,
	}
	// transferKinds name their security in a single token.
	transferKinds = map[string]bool{
		"입고":   true,
		"출고":   true,
		"대체입고": true,
		"대체출고": true,
	}
)

// conversionMarker flags currency-conversion rows, which carry the target
// currency and the exchange rate right after the trade type.
const conversionMarker = "환전"

// codeRe matches the trailing instrument code of a domestic symbol,
// e.g. "에이비씨(12345)".
var codeRe = regexp.MustCompile(`\([0-9A-Za-z]+\)$`)

// IsCrossBorder reports whether a logical record uses the cross-border
// dual-currency layout. This is a structural heuristic: the row is wide
// (dual-currency encoding at least doubles the numeric fields) and carries a
// dollar marker. The token threshold is tied to the current export format and
// therefore lives in Policy.
func IsCrossBorder(line string, pol Policy) bool {
	return len(strings.Fields(line)) >= pol.CrossBorderMinTokens && strings.Contains(line, "$")
}

// Extract maps one logical record string to a Record. It reports ok=false
// only for strings too short to be a statement entry; within a well-formed
// entry, missing fields degrade to nil and extraction never fails.
func Extract(line string, pol Policy) (Record, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 4 {
		return Record{}, false
	}
	if IsCrossBorder(line, pol) {
		return extractCrossBorder(tokens), true
	}
	return extractDomestic(tokens), true
}

// ParseText runs the full Segment + Extract pipeline over a raw statement.
func ParseText(raw string, pol Policy) []Record {
	var records []Record
	for _, line := range Segment(raw) {
		if r, ok := Extract(line, pol); ok {
			records = append(records, r)
		}
	}
	return records
}

// kindRoot strips a parenthesized qualifier: "대체출고(이관)" -> "대체출고".
func kindRoot(kind string) string {
	if i := strings.Index(kind, "("); i >= 0 {
		kind = kind[:i]
	}
	return strings.TrimSpace(kind)
}

func extractDomestic(tokens []string) Record {
	c := newCursor(tokens)
	var r Record
	r.TradeDate, _ = c.take()

	kind, _ := c.take()
	// A parenthesized qualifier may spill over several tokens:
	// "대체출고 (계좌 이관)". Fold tokens until the closing parenthesis.
	if strings.Contains(kind, "(") && !strings.Contains(kind, ")") {
		parts := []string{kind}
		for {
			t, ok := c.take()
			if !ok {
				break
			}
			parts = append(parts, t)
			if strings.Contains(t, ")") {
				break
			}
		}
		kind = strings.Join(parts, " ")
	}
	r.TradeType = kind

	root := kindRoot(kind)
	switch {
	case cashKinds[root]:
		// no symbol
	case transferKinds[root]:
		if s, ok := c.take(); ok {
			r.Symbol = &s
		}
	default:
		r.Symbol = takeSymbol(c)
	}

	// Conversion rows name the target currency and the exchange rate next.
	// Exact root match: 환전입금/환전출금 are plain cash rows, not conversions.
	if root == conversionMarker {
		if s, ok := c.take(); ok {
			r.Symbol = &s
		}
		if fx, ok := c.take(); ok {
			r.FxRate = &fx
		}
	}

	for _, f := range []**string{
		&r.Quantity, &r.UnitPrice, &r.Amount,
		&r.Fee, &r.TransactionTax, &r.OtherTax, &r.PenaltyTotal,
		&r.Holdings, &r.Balance,
	} {
		t, ok := c.take()
		if !ok {
			break
		}
		v := t
		*f = &v
	}
	return r
}

// takeSymbol reads a domestic security name: tokens are folded until one ends
// in the instrument code. When no code appears in the remaining tokens the
// symbol degrades to a single token.
func takeSymbol(c *cursor) *string {
	m := c.mark()
	var parts []string
	for {
		t, ok := c.take()
		if !ok {
			break
		}
		parts = append(parts, t)
		if codeRe.MatchString(t) {
			s := strings.Join(parts, " ")
			return &s
		}
	}
	c.reset(m)
	if t, ok := c.take(); ok {
		return &t
	}
	return nil
}

func extractCrossBorder(tokens []string) Record {
	c := newCursor(tokens)
	var r Record
	r.TradeDate, _ = c.take()
	r.TradeType, _ = c.take()

	if !cashKinds[kindRoot(r.TradeType)] {
		r.Symbol = takeForeignSymbol(c)
	}

	r.FxRate = takeCompound(c)
	r.Quantity = takeSingle(c)
	r.Amount = takeCompound(c)
	r.UnitPrice = takeCompound(c)
	r.Fee = takeCompound(c)
	r.TransactionTax = takeCompound(c)
	r.OtherTax = takeCompound(c)
	r.Holdings = takeSingle(c)
	r.Balance = takeCompound(c)
	return r
}

// takeForeignSymbol reads a cross-border security name: tokens up to the
// first boundary, a token ending in a closing parenthesis or a plain number.
// The boundary itself is left for the numeric fields. With no boundary in
// sight the symbol degrades to a single token.
func takeForeignSymbol(c *cursor) *string {
	m := c.mark()
	parts, found := c.takeUntil(func(t string) bool {
		return strings.HasSuffix(t, ")") || isNumber(t)
	})
	if !found {
		c.reset(m)
		if t, ok := c.take(); ok {
			return &t
		}
		return nil
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " ")
	return &s
}

func takeSingle(c *cursor) *string {
	t, ok := c.take()
	if !ok {
		return nil
	}
	return &t
}

// takeCompound reads one value that may pair a KRW figure with a
// parenthesized dollar equivalent, e.g. "13,500,000 ($ 10,000.00)". Tokens
// are skipped until the KRW figure; the dollar part, when present, runs from
// the next opening parenthesis to the token ending in the closing one.
func takeCompound(c *cursor) *string {
	var krw string
	for {
		t, ok := c.take()
		if !ok {
			return nil
		}
		if isNumber(t) {
			krw = t
			break
		}
	}
	parts := []string{krw}
	if n, ok := c.peek(); ok && strings.HasPrefix(n, "(") {
		for {
			t, ok := c.take()
			if !ok {
				break
			}
			parts = append(parts, t)
			if strings.HasSuffix(t, ")") {
				break
			}
		}
	}
	s := strings.Join(parts, " ")
	return &s
}
