package core

import "strings"

// currencyInfo describes how a currency symbol attaches to an amount.
type currencyInfo struct {
	Symbol  string
	Postfix bool // Symbol follows the amount ("120000 تومان")
}

// currencySymbols is the built-in symbol table. Unrecognized codes fall
// through to a "CODE amount" rendering rather than failing.
var currencySymbols = map[string]currencyInfo{
	"USD": {Symbol: "$"},
	"EUR": {Symbol: "€"},
	"GBP": {Symbol: "£"},
	"JPY": {Symbol: "¥"},
	"TRY": {Symbol: "₺"},
	"AED": {Symbol: "د.إ", Postfix: true},
	"IRR": {Symbol: "تومان", Postfix: true},
	"IRT": {Symbol: "تومان", Postfix: true},
}

// PriceString composes the display price for a currency code and raw
// amount. Known codes use their symbol; unknown codes are used verbatim
// as a prefix with a trailing space.
func (d *Deriver) PriceString(code, amount string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	amount = strings.TrimSpace(amount)

	if info, ok := d.symbols[code]; ok {
		if info.Postfix {
			return amount + " " + info.Symbol
		}
		return info.Symbol + amount
	}
	return code + " " + amount
}
