// Package renderer turns compact trade summaries into markdown reports.
package renderer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"tosstrades"
)

// SummaryMarkdown renders a summary to a markdown string. The report carries
// one section per bucket, an other-events section and the closing totals.
func SummaryMarkdown(s *tosstrades.Summary, target tosstrades.Target, period tosstrades.Period) string {
	r := &summaryRenderer{Builder: &strings.Builder{}}

	r.Printf("# Trading Summary by %s, per %s\n\n", target, period)

	for _, key := range s.Keys() {
		r.Printf("## %s\n\n", key)
		r.table(bucketHeader(target, period), s.Rows(key))
	}

	if rows := s.Others(); len(rows) > 0 {
		r.Printf("## Other Events\n\n")
		r.table(othersHeader(period), rows)
	}

	if s.Totals != nil {
		r.renderTotals(s.Totals)
	}
	return r.String()
}

func bucketHeader(target tosstrades.Target, period tosstrades.Period) []string {
	// the complement of the bucket key leads each row
	first := "Date"
	if target == tosstrades.ByDate {
		first = "Symbol"
	}
	if period == tosstrades.Daily {
		return []string{first, "Quantity", "Price"}
	}
	if target == tosstrades.BySymbol {
		first = "Month"
	}
	return []string{first, "Quantity", "Avg Price", "Amount"}
}

func othersHeader(period tosstrades.Period) []string {
	first := "Date"
	if period == tosstrades.Monthly {
		first = "Month"
	}
	return []string{first, "Kind", "Amount"}
}

func (r *summaryRenderer) renderTotals(t *tosstrades.Totals) {
	r.Printf("## Totals\n\n")
	rows := []tosstrades.Row{{"Total investment", won(t.TotalInvestment)}}
	if t.LastBalance != nil {
		rows = append(rows, tosstrades.Row{"Last balance", won(*t.LastBalance)})
	}
	if t.EstimatedProfit != nil {
		rows = append(rows, tosstrades.Row{"Estimated profit", won(*t.EstimatedProfit)})
	}
	if t.EstimatedProfitRate != nil {
		rows = append(rows, tosstrades.Row{"Estimated profit rate", t.EstimatedProfitRate.StringFixed(2) + " %"})
	}
	r.table([]string{"Metric", "Value"}, rows)
}

// summaryRenderer formats the report into a markdown string.
type summaryRenderer struct {
	*strings.Builder
}

func (r *summaryRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *summaryRenderer) table(header []string, rows []tosstrades.Row) {
	r.Printf("| %s |\n", strings.Join(header, " | "))
	r.Printf("|%s\n", strings.Repeat("---|", len(header)))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cell(v)
		}
		r.Printf("| %s |\n", strings.Join(cells, " | "))
	}
	r.Printf("\n")
}

// cell formats one summary row element. A nil element (an undefined average
// price) renders as a dash.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// won formats a whole-KRW decimal with the currency's display rules.
func won(d decimal.Decimal) string {
	return money.New(d.Round(0).IntPart(), money.KRW).Display()
}
