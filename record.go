package tosstrades

// Record is one structured statement entry. All fields but the date and the
// trade type are nullable: brokerage exports are not guaranteed complete for
// every row (interest rows carry no quantity or price, cash transfers carry
// no symbol), so a missing source field is a nil pointer, never an error.
//
// For cross-border rows, Amount, UnitPrice, the fee fields and Balance hold a
// compound value pairing the KRW figure with its parenthesized dollar
// equivalent, e.g. "13,500,000 ($ 10,000.00)". Aggregation only reads the
// leading KRW component.
type Record struct {
	TradeDate      string  `json:"trade_date"`
	TradeType      string  `json:"trade_type"`
	Symbol         *string `json:"symbol"`
	FxRate         *string `json:"fx_rate"`
	Quantity       *string `json:"quantity"`
	UnitPrice      *string `json:"unit_price"`
	Amount         *string `json:"amount"`
	Fee            *string `json:"fee"`
	TransactionTax *string `json:"transaction_tax"`
	OtherTax       *string `json:"other_tax"`
	PenaltyTotal   *string `json:"penalty_total"`
	Holdings       *string `json:"holdings"`
	Balance        *string `json:"balance"`
}
