package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/healthybite-ma/storefront-backend/internal/cart"
)

// OrderMessage renders the cart snapshot into the human-readable WhatsApp
// order text. Prices are whole dirhams.
func OrderMessage(state cart.State) string {
	var b strings.Builder
	b.WriteString("Bonjour, je souhaite commander:\n\n")
	for _, line := range state.Lines {
		fmt.Fprintf(&b, "- %dx %s (%d DH)\n", line.Quantity, line.Product.Name, line.LineTotal())
	}
	fmt.Fprintf(&b, "\n*Total: %d DH*", state.Total())
	return b.String()
}

// ProgramOrderMessage renders the order text for a meal program by name.
func ProgramOrderMessage(programName string) string {
	return fmt.Sprintf("Bonjour, je souhaite commander le programme : %s", programName)
}

// Link builds the wa.me deep link carrying the url-encoded message.
func Link(phoneNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneNumber, url.QueryEscape(message))
}
