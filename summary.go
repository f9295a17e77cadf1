package tosstrades

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Row is one emitted summary line. Elements are strings and JSON numbers,
// following the _schema legend.
type Row []any

// Summary is the compact aggregation artifact. Buckets are keyed by symbol
// or date and keep first-seen order, which the custom marshaller preserves.
// A Summary is immutable once returned by Compact.
type Summary struct {
	Schema   []string
	Currency string
	// Totals is the optional portfolio-level closing block.
	Totals *Totals

	keys    []string
	buckets map[string][]Row
	others  []Row
}

func newSummary() *Summary {
	return &Summary{
		Schema:   []string{"d", "s", "q", "avgP", "sum"},
		Currency: "KRW",
		buckets:  make(map[string][]Row),
		others:   []Row{},
	}
}

// Keys returns the bucket keys in first-seen order.
func (s *Summary) Keys() []string { return s.keys }

// Rows returns the rows of one bucket.
func (s *Summary) Rows(key string) []Row { return s.buckets[key] }

// Others returns the non-trade event rows.
func (s *Summary) Others() []Row { return s.others }

func (s *Summary) append(key string, r Row) {
	if _, ok := s.buckets[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.buckets[key] = append(s.buckets[key], r)
}

// MarshalJSON writes the summary with a stable field order: the schema and
// currency descriptors, the buckets in first-seen order, the OTHERS list,
// then the closing totals.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("_schema", s.Schema)
	w.Append("_currency", s.Currency)
	for _, k := range s.keys {
		w.Append(k, s.buckets[k])
	}
	w.Append("OTHERS", s.others)
	if s.Totals != nil {
		w.Append("_summary", s.Totals)
	}
	return w.MarshalJSON()
}

// Totals is the portfolio-level closing block of a summary.
type Totals struct {
	// TotalInvestment accumulates every retained buy, in whole KRW.
	TotalInvestment decimal.Decimal
	// LastBalance is the last balance printed on the statement, when any.
	LastBalance *decimal.Decimal
	// EstimatedProfit is LastBalance - TotalInvestment.
	EstimatedProfit *decimal.Decimal
	// EstimatedProfitRate is the profit in percent of the investment, absent
	// when nothing was invested. Never NaN or infinite.
	EstimatedProfitRate *decimal.Decimal
}

// newTotals builds the closing block, or nil when the statement yields
// nothing to report.
func newTotals(invested decimal.Decimal, lastBalance *decimal.Decimal) *Totals {
	if invested.IsZero() && lastBalance == nil {
		return nil
	}
	t := &Totals{TotalInvestment: invested.Round(0)}
	if lastBalance != nil {
		b := lastBalance.Round(0)
		t.LastBalance = &b
		p := b.Sub(t.TotalInvestment)
		t.EstimatedProfit = &p
		if !t.TotalInvestment.IsZero() {
			r := p.Div(t.TotalInvestment).Mul(decimal.NewFromInt(100)).Round(2)
			t.EstimatedProfitRate = &r
		}
	}
	return t
}

func (t *Totals) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalInvestment", number(t.TotalInvestment))
	w.Optional("lastBalance", maybeNumber(t.LastBalance))
	w.Optional("estimatedProfit", maybeNumber(t.EstimatedProfit))
	w.Optional("estimatedProfitRate", maybeNumber(t.EstimatedProfitRate))
	return w.MarshalJSON()
}

func maybeNumber(d *decimal.Decimal) json.Number {
	if d == nil {
		return ""
	}
	return number(*d)
}
