package tosstrades

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy groups the tunables tied to the current statement export format.
// They are format observations, not structural invariants, so they are kept
// adjustable instead of hard-coded in the extraction and aggregation logic.
type Policy struct {
	// CrossBorderMinTokens is the minimum token count of a cross-border row.
	CrossBorderMinTokens int `yaml:"cross_border_min_tokens"`
	// SwapThreshold is the unit price above which a printed price/amount
	// column swap is suspected.
	SwapThreshold float64 `yaml:"swap_threshold"`
	// SwapTolerance is the maximum accepted absolute difference, in KRW,
	// between the printed price and amount*quantity for a swap to be trusted.
	SwapTolerance float64 `yaml:"swap_tolerance"`
	// AmountTolerance is the maximum accepted absolute difference, in KRW,
	// between quantity*unit_price and the printed amount.
	AmountTolerance float64 `yaml:"amount_tolerance"`
}

// DefaultPolicy returns the policy matching the current Toss Securities
// export format.
func DefaultPolicy() Policy {
	return Policy{
		CrossBorderMinTokens: 23,
		SwapThreshold:        10000,
		SwapTolerance:        2,
		AmountTolerance:      1,
	}
}

// LoadPolicy reads policy overrides from a YAML file. A missing file is not
// an error: the defaults apply unchanged.
func LoadPolicy(path string) (Policy, error) {
	pol := DefaultPolicy()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return pol, nil
	}
	if err != nil {
		return pol, err
	}
	if err := yaml.Unmarshal(data, &pol); err != nil {
		return pol, fmt.Errorf("invalid policy file %q: %w", path, err)
	}
	return pol, nil
}
