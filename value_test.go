package tosstrades

import "testing"

func TestParseValue(t *testing.T) {
	str := func(s string) *string { return &s }
	testCases := []struct {
		name string
		in   *string
		want string // "" means nil
	}{
		{"nil field", nil, ""},
		{"plain", str("1,000"), "1000"},
		{"decimal", str("1,350.50"), "1350.5"},
		{"negative", str("-5,000"), "-5000"},
		{"compound keeps the KRW component", str("13,500,000 ($ 10,000.00)"), "13500000"},
		{"compound without space", str("13,500,000($10,000.00)"), "13500000"},
		{"not a number", str("에이비씨"), ""},
		{"empty", str("  "), ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseValue(tc.in)
			if tc.want == "" {
				if got != nil {
					t.Errorf("parseValue = %s, want nil", got)
				}
				return
			}
			if got == nil || got.String() != tc.want {
				t.Errorf("parseValue = %v, want %s", got, tc.want)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	for s, want := range map[string]bool{
		"1,000":     true,
		"1350.50":   true,
		"0":         true,
		"($":        false,
		"10,000.00)": false,
		"테슬라":       false,
	} {
		if got := isNumber(s); got != want {
			t.Errorf("isNumber(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestDates(t *testing.T) {
	if got := normDate("2024.01.15"); got != "2024-01-15" {
		t.Errorf("normDate = %q", got)
	}
	if got := toMonth("2024-01-15"); got != "2024-01" {
		t.Errorf("toMonth = %q", got)
	}
	if got := toMonth("2024"); got != "2024" {
		t.Errorf("toMonth on short input = %q", got)
	}
}
