package tosstrades

import (
	"reflect"
	"strings"
	"testing"
)

func sp(s string) *string { return &s }

func TestIsCrossBorder(t *testing.T) {
	pol := DefaultPolicy()
	wide := "2024.03.10 구매 테슬라 (TSLA) 1,350.00 10 13,500,000 ($ 10,000.00) 1,350,000 ($ 1,000.00) 4,050 ($ 3.00) 0 ($ 0.00) 0 ($ 0.00) 10 15,000,000 ($ 11,111.11)"

	if !IsCrossBorder(wide, pol) {
		t.Error("wide dollar-marked row not detected as cross-border")
	}
	if IsCrossBorder("2024.01.15 매수 에이비씨(12345) 10 1,000 10,000", pol) {
		t.Error("narrow domestic row detected as cross-border")
	}
	// wide but without a dollar marker
	if IsCrossBorder(strings.ReplaceAll(wide, "$", "#"), pol) {
		t.Error("dollar marker is required")
	}
	// the token threshold is configuration, not an invariant
	pol.CrossBorderMinTokens = 100
	if IsCrossBorder(wide, pol) {
		t.Error("threshold raised to 100, row should no longer qualify")
	}
}

func TestExtract_Domestic(t *testing.T) {
	pol := DefaultPolicy()
	testCases := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "buy with instrument code",
			line: "2024.01.15 매수 에이비씨(12345) 10 1,000 10,000 0 0 0 0 10 10,000",
			want: Record{
				TradeDate: "2024.01.15", TradeType: "매수", Symbol: sp("에이비씨(12345)"),
				Quantity: sp("10"), UnitPrice: sp("1,000"), Amount: sp("10,000"),
				Fee: sp("0"), TransactionTax: sp("0"), OtherTax: sp("0"), PenaltyTotal: sp("0"),
				Holdings: sp("10"), Balance: sp("10,000"),
			},
		},
		{
			name: "multi-token symbol folded up to the code",
			line: "2024.01.15 매수 삼성전자 우선주(005935) 2 50,000 100,000 0 0 0 0 2 900,000",
			want: Record{
				TradeDate: "2024.01.15", TradeType: "매수", Symbol: sp("삼성전자 우선주(005935)"),
				Quantity: sp("2"), UnitPrice: sp("50,000"), Amount: sp("100,000"),
				Fee: sp("0"), TransactionTax: sp("0"), OtherTax: sp("0"), PenaltyTotal: sp("0"),
				Holdings: sp("2"), Balance: sp("900,000"),
			},
		},
		{
			name: "symbol without code degrades to a single token",
			line: "2024.01.15 매수 삼성전자 2 50,000 100,000 0 0 0 0 2 900,000",
			want: Record{
				TradeDate: "2024.01.15", TradeType: "매수", Symbol: sp("삼성전자"),
				Quantity: sp("2"), UnitPrice: sp("50,000"), Amount: sp("100,000"),
				Fee: sp("0"), TransactionTax: sp("0"), OtherTax: sp("0"), PenaltyTotal: sp("0"),
				Holdings: sp("2"), Balance: sp("900,000"),
			},
		},
		{
			name: "cash transfer carries no symbol",
			line: "2024.01.20 이체입금 1,000,000 0 0 0 0 0 0 0 1,990,000",
			want: Record{
				TradeDate: "2024.01.20", TradeType: "이체입금",
				Quantity: sp("1,000,000"), UnitPrice: sp("0"), Amount: sp("0"),
				Fee: sp("0"), TransactionTax: sp("0"), OtherTax: sp("0"), PenaltyTotal: sp("0"),
				Holdings: sp("0"), Balance: sp("1,990,000"),
			},
		},
		{
			name: "securities transfer names its symbol in a single token",
			line: "2024.02.05 출고 에이비씨 10 0 0 0",
			want: Record{
				TradeDate: "2024.02.05", TradeType: "출고", Symbol: sp("에이비씨"),
				Quantity: sp("10"), UnitPrice: sp("0"), Amount: sp("0"), Fee: sp("0"),
			},
		},
		{
			name: "composite trade type folds its parenthesized qualifier",
			line: "2024.02.05 대체출고(계좌 이관) 에이비씨 10 0 0 0",
			want: Record{
				TradeDate: "2024.02.05", TradeType: "대체출고(계좌 이관)", Symbol: sp("에이비씨"),
				Quantity: sp("10"), UnitPrice: sp("0"), Amount: sp("0"), Fee: sp("0"),
			},
		},
		{
			name: "conversion re-reads currency and exchange rate",
			line: "2024.02.20 환전 달러 1,350.50 100 135,050 0 0",
			want: Record{
				TradeDate: "2024.02.20", TradeType: "환전", Symbol: sp("달러"), FxRate: sp("1,350.50"),
				Quantity: sp("100"), UnitPrice: sp("135,050"), Amount: sp("0"), Fee: sp("0"),
			},
		},
		{
			name: "fx deposit carries no symbol",
			line: "2024.03.12 외화입금 1,350,000 0 0 0 0 0 0 0 1,000,000",
			want: Record{
				TradeDate: "2024.03.12", TradeType: "외화입금",
				Quantity: sp("1,350,000"), UnitPrice: sp("0"), Amount: sp("0"),
				Fee: sp("0"), TransactionTax: sp("0"), OtherTax: sp("0"), PenaltyTotal: sp("0"),
				Holdings: sp("0"), Balance: sp("1,000,000"),
			},
		},
		{
			name: "fx conversion deposit is a plain cash row, no rate re-read",
			line: "2024.03.13 환전입금 500,000 0 0 0",
			want: Record{
				TradeDate: "2024.03.13", TradeType: "환전입금",
				Quantity: sp("500,000"), UnitPrice: sp("0"), Amount: sp("0"), Fee: sp("0"),
			},
		},
		{
			name: "interest row with exhausted tail degrades to nil fields",
			line: "2024.03.02 이자입금 1,234 0",
			want: Record{
				TradeDate: "2024.03.02", TradeType: "이자입금",
				Quantity: sp("1,234"), UnitPrice: sp("0"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Extract(tc.line, pol)
			if !ok {
				t.Fatal("Extract reported not ok")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Extract() mismatch\n got = %s\nwant = %s", dump(got), dump(tc.want))
			}
		})
	}
}

func TestExtract_CrossBorder(t *testing.T) {
	pol := DefaultPolicy()
	line := "2024.03.10 구매 테슬라 (TSLA) 1,350.00 10 13,500,000 ($ 10,000.00) 1,350,000 ($ 1,000.00) 4,050 ($ 3.00) 0 ($ 0.00) 0 ($ 0.00) 10 15,000,000 ($ 11,111.11)"
	want := Record{
		TradeDate: "2024.03.10", TradeType: "구매", Symbol: sp("테슬라"),
		FxRate:         sp("1,350.00"),
		Quantity:       sp("10"),
		Amount:         sp("13,500,000 ($ 10,000.00)"),
		UnitPrice:      sp("1,350,000 ($ 1,000.00)"),
		Fee:            sp("4,050 ($ 3.00)"),
		TransactionTax: sp("0 ($ 0.00)"),
		OtherTax:       sp("0 ($ 0.00)"),
		Holdings:       sp("10"),
		Balance:        sp("15,000,000 ($ 11,111.11)"),
	}
	got, ok := Extract(line, pol)
	if !ok {
		t.Fatal("Extract reported not ok")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() mismatch\n got = %s\nwant = %s", dump(got), dump(want))
	}
}

func TestExtract_TooShort(t *testing.T) {
	if _, ok := Extract("2024.01.15 매수 에이비씨", DefaultPolicy()); ok {
		t.Error("a three-token line is not a statement entry")
	}
}

func TestParseText_Fixture(t *testing.T) {
	raw := readFixture(t)
	records := ParseText(raw, DefaultPolicy())
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}

	// One Record per logical record, in input order.
	wantKinds := []string{"매수", "이체입금", "매도", "출금", "구매"}
	for i, k := range wantKinds {
		if records[i].TradeType != k {
			t.Errorf("record %d kind = %q, want %q", i, records[i].TradeType, k)
		}
	}

	buy := records[0]
	if buy.Symbol == nil || *buy.Symbol != "에이비씨(12345)" {
		t.Errorf("buy symbol = %v", buy.Symbol)
	}
	if buy.Balance == nil || *buy.Balance != "990,000" {
		t.Errorf("buy balance = %v", buy.Balance)
	}

	overseas := records[4]
	if overseas.Symbol == nil || *overseas.Symbol != "테슬라" {
		t.Errorf("overseas symbol = %v", overseas.Symbol)
	}
	if overseas.Amount == nil || *overseas.Amount != "13,500,000 ($ 10,000.00)" {
		t.Errorf("overseas amount = %v", overseas.Amount)
	}
}

// dump prints a record with dereferenced fields for readable test failures.
func dump(r Record) string {
	var b strings.Builder
	b.WriteString(r.TradeDate + " " + r.TradeType)
	for _, f := range []*string{r.Symbol, r.FxRate, r.Quantity, r.UnitPrice, r.Amount, r.Fee, r.TransactionTax, r.OtherTax, r.PenaltyTotal, r.Holdings, r.Balance} {
		if f == nil {
			b.WriteString(" <nil>")
		} else {
			b.WriteString(" " + *f)
		}
	}
	return b.String()
}
