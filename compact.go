package tosstrades

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Target selects the primary grouping dimension of a summary.
type Target int

const (
	BySymbol Target = iota
	ByDate
)

func (t Target) String() string {
	switch t {
	case BySymbol:
		return "symbol"
	case ByDate:
		return "date"
	default:
		panic(fmt.Sprintf("unknown target %d", t))
	}
}

// ParseTarget parses an aggregation target selector.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "symbol":
		return BySymbol, nil
	case "date":
		return ByDate, nil
	default:
		return BySymbol, fmt.Errorf("unknown target %q (want date or symbol)", s)
	}
}

// Period selects the aggregation granularity of a summary.
type Period int

const (
	Monthly Period = iota
	Daily
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "month"
	case Daily:
		return "day"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses an aggregation period selector.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "month", "monthly":
		return Monthly, nil
	case "day", "daily":
		return Daily, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q (want day or month)", s)
	}
}

// Trade classification. Kinds are matched exactly on the trimmed trade type;
// everything else is an "other" cash event.
var (
	buyKinds  = map[string]bool{"매수": true, "구매": true}
	sellKinds = map[string]bool{"매도": true, "판매": true}
)

// outflow reports cash or securities leaving the account (withdrawal or
// delivery-out), including composite kinds such as "대체출고(이관)".
func outflow(kind string) bool {
	return strings.Contains(kind, "출금") || strings.Contains(kind, "출고")
}

// tradeEvent is a normalized buy or sell. Quantity and amount are signed:
// negative for sells.
type tradeEvent struct {
	date   string
	symbol string
	qty    decimal.Decimal
	price  decimal.Decimal
	amount decimal.Decimal
}

// otherEvent is a non-trade cash movement. Amount is signed: negative for
// outflows.
type otherEvent struct {
	date   string
	kind   string
	amount decimal.Decimal
}

// Compact folds extracted records into a compact summary, grouped by target
// and aggregated per period. Buckets keep first-seen order. The call is pure:
// it shares no state across invocations and the returned Summary is not
// mutated afterwards.
func Compact(records []Record, target Target, period Period, pol Policy) *Summary {
	trades, others, totals := classify(records, pol)
	s := newSummary()
	if period == Daily {
		fillDaily(s, trades, others, target)
	} else {
		fillMonthly(s, trades, others, target)
	}
	s.Totals = totals
	return s
}

// classify splits records into normalized trade and other events and tracks
// the portfolio-level running totals.
func classify(records []Record, pol Policy) ([]tradeEvent, []otherEvent, *Totals) {
	threshold := decimal.NewFromFloat(pol.SwapThreshold)
	swapTol := decimal.NewFromFloat(pol.SwapTolerance)
	tol := decimal.NewFromFloat(pol.AmountTolerance)

	var trades []tradeEvent
	var others []otherEvent
	invested := decimal.Zero
	var lastBalance *decimal.Decimal

	for _, r := range records {
		kind := strings.TrimSpace(r.TradeType)
		date := normDate(r.TradeDate)
		if b := parseValue(r.Balance); b != nil {
			lastBalance = b
		}

		if !buyKinds[kind] && !sellKinds[kind] {
			others = append(others, otherEvent{date: date, kind: kind, amount: otherAmount(r, kind)})
			continue
		}

		qty, price := reconcile(parseValue(r.Quantity), parseValue(r.UnitPrice), parseValue(r.Amount), threshold, swapTol, tol)
		if r.Symbol == nil || qty == nil || price == nil || qty.IsZero() {
			// not enough information to be a meaningful trade
			continue
		}
		q, p := *qty, *price
		a := p.Mul(q)
		if sellKinds[kind] {
			q = q.Abs().Neg()
			a = a.Abs().Neg()
		}
		trades = append(trades, tradeEvent{date: date, symbol: strings.TrimSpace(*r.Symbol), qty: q, price: p, amount: a})
		if buyKinds[kind] {
			invested = invested.Add(a)
		}
	}
	return trades, others, newTotals(invested, lastBalance)
}

// otherAmount picks the nominal magnitude of a non-trade event: the first
// usable (non-nil, non-zero) value among amount, unit price and quantity.
// The text export collapses empty columns, so a transfer's figure can land in
// any of the three. Outflows are negated.
func otherAmount(r Record, kind string) decimal.Decimal {
	amt := decimal.Zero
	for _, f := range []*string{r.Amount, r.UnitPrice, r.Quantity} {
		if d := parseValue(f); d != nil && !d.IsZero() {
			amt = *d
			break
		}
	}
	if outflow(kind) {
		amt = amt.Neg()
	}
	return amt
}

// reconcile applies the value-consistency heuristics to a parsed trade and
// returns the corrected quantity and unit price.
//
// With all three values present and quantity*price off the printed amount by
// more than the tolerance, two corrections are tried in order: swapping price
// and amount (statements occasionally print them in each other's column; the
// swap is only trusted when the printed price is implausibly large and the
// swapped product reconciles within its own, slightly looser tolerance),
// then re-deriving the price from amount and quantity. With one value
// missing it is derived from the other two.
func reconcile(qty, price, amount *decimal.Decimal, threshold, swapTol, tol decimal.Decimal) (q, p *decimal.Decimal) {
	q, p = qty, price
	if q != nil && p != nil && amount != nil {
		if p.Mul(*q).Sub(*amount).Abs().LessThanOrEqual(tol) {
			return q, p
		}
		if p.GreaterThan(threshold) && amount.LessThan(*p) && p.Sub(amount.Mul(*q)).Abs().LessThanOrEqual(swapTol) {
			return q, amount
		}
		if !q.IsZero() {
			v := amount.Div(*q)
			return q, &v
		}
		return q, p
	}
	switch {
	case p == nil && amount != nil && q != nil && !q.IsZero():
		v := amount.Div(*q)
		p = &v
	case q == nil && amount != nil && p != nil && !p.IsZero():
		v := amount.Div(*p)
		q = &v
	}
	return q, p
}

func fillDaily(s *Summary, trades []tradeEvent, others []otherEvent, target Target) {
	for _, t := range trades {
		key, complement := t.date, t.symbol
		if target == BySymbol {
			key, complement = t.symbol, t.date
		}
		s.append(key, Row{complement, number(t.qty), number(t.price.Round(0))})
	}
	for _, o := range others {
		s.others = append(s.others, Row{o.date, o.kind, number(o.amount)})
	}
}

func fillMonthly(s *Summary, trades []tradeEvent, others []otherEvent, target Target) {
	type acc struct {
		qty decimal.Decimal
		sum decimal.Decimal
	}
	type key struct{ k1, k2 string }

	groups := make(map[key]*acc)
	var k1s []string
	k2s := make(map[string][]string)

	for _, t := range trades {
		m := toMonth(t.date)
		k := key{t.symbol, m}
		if target == ByDate {
			k = key{m, t.symbol}
		}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
			if len(k2s[k.k1]) == 0 {
				k1s = append(k1s, k.k1)
			}
			k2s[k.k1] = append(k2s[k.k1], k.k2)
		}
		g.qty = g.qty.Add(t.qty)
		g.sum = g.sum.Add(t.amount)
	}

	for _, k1 := range k1s {
		for _, k2 := range k2s[k1] {
			g := groups[key{k1, k2}]
			// a group whose buys and sells cancel out has no average price
			var avg any
			if !g.qty.IsZero() {
				avg = number(g.sum.Div(g.qty).Round(0))
			}
			s.append(k1, Row{k2, number(g.qty.Round(6)), avg, number(g.sum.Round(0))})
		}
	}

	sums := make(map[key]decimal.Decimal)
	var order []key
	for _, o := range others {
		k := key{toMonth(o.date), o.kind}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(o.amount)
	}
	for _, k := range order {
		s.others = append(s.others, Row{k.k1, k.k2, number(sums[k].Round(0))})
	}
}
