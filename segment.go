package tosstrades

import (
	"regexp"
	"strings"
)

// Statement noise, dropped before records are merged.
var (
	// dateRe marks the start of a statement entry.
	dateRe = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}`)
	// pageRe matches pagination counters such as "1 / 3".
	pageRe = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	// headerRe matches the column header, repeated on every page.
	headerRe = regexp.MustCompile(`거래일자\s+거래구분`)
	// footerRe matches the issuance footer of the export.
	footerRe = regexp.MustCompile(`발급일|출력일`)
	// unitRe matches unit declarations such as "(단위: 원, 주)".
	unitRe = regexp.MustCompile(`^[\[(]?\s*단위`)
	// sectionRe matches the KRW / USD section titles.
	sectionRe = regexp.MustCompile(`^(원화|외화)\s*거래`)
	// dollarWrapRe matches a wrapped secondary dollar-equivalent line.
	dollarWrapRe = regexp.MustCompile(`^\(\$`)
)

func isNoise(line string) bool {
	return pageRe.MatchString(line) ||
		headerRe.MatchString(line) ||
		footerRe.MatchString(line) ||
		unitRe.MatchString(line) ||
		sectionRe.MatchString(line) ||
		dollarWrapRe.MatchString(line)
}

// droppedEntry reports statement entries that carry no actionable quantity or
// price for the aggregator: corporate actions (stock split or reverse split)
// and deposit interest postings.
func droppedEntry(kind string) bool {
	return strings.Contains(kind, "액면분할") ||
		strings.Contains(kind, "액면병합") ||
		kind == "예탁금이용료입금"
}

// Segment splits a raw statement into logical record strings, one per
// statement entry, in input order. A line starting with a date token opens a
// record; following non-date lines are folded into it separated by a single
// space. Every returned record starts with a date token, so segmenting
// already-segmented input returns it unchanged.
func Segment(raw string) []string {
	var merged []string
	var buf string
	started := false

	flush := func() {
		if started && buf != "" {
			merged = append(merged, strings.TrimSpace(buf))
		}
	}

	for _, ln := range strings.Split(raw, "\n") {
		l := strings.TrimSpace(ln)
		switch {
		case l == "" || isNoise(l):
			continue
		case dateRe.MatchString(l):
			flush()
			buf = l
			started = true
		case !started:
			// header material before the first entry
			continue
		default:
			buf += " " + l
		}
	}
	flush()

	records := merged[:0]
	for _, rec := range merged {
		if f := strings.Fields(rec); len(f) >= 2 && droppedEntry(f[1]) {
			continue
		}
		records = append(records, rec)
	}
	return records
}
