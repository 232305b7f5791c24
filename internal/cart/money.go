package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an amount of Kenyan shillings with thousands separators, e.g. "KES 2,620".
func FormatPrice(amount int64) string {
	return pricePrinter.Sprintf("KES %d", amount)
}
