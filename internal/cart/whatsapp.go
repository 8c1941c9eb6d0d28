package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const whatsAppBaseURL = "https://wa.me/"

// FormatGuaranies renders a guaraní amount with dot thousands separators, the
// way es-PY locales print it. Guaraní amounts carry no decimal places.
func FormatGuaranies(amount decimal.Decimal) string {
	digits := amount.Round(0).String()

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// WhatsAppMessage renders the order text the shopper sends to the store:
// greeting, one line per product, the total, and the payment footer.
func WhatsAppMessage(lines []Line, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("Hola, me gustaría realizar un pedido desde la web Pyper:\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "*%s* (x%d) - %s Gs.\n", line.Name, line.Quantity, FormatGuaranies(line.Subtotal()))
	}
	fmt.Fprintf(&b, "\n*Total: %s Gs.*\n\n", FormatGuaranies(total))
	b.WriteString("*Pago contra entrega / Transferencia*")
	return b.String()
}

// WhatsAppLink builds the wa.me deep link carrying the URL-encoded message.
func WhatsAppLink(phone, message string) string {
	return whatsAppBaseURL + sanitizePhone(phone) + "?text=" + url.QueryEscape(message)
}

// sanitizePhone strips everything but digits so "+595 981 123-456" becomes a
// valid wa.me path segment.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
