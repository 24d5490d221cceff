package components

import (
	"errors"

	"github.com/nfrund/hireboard/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count formats an integer with thousands separators.
func Count(n int64) string { return printer.Sprintf("%d", n) }

// Money formats a rupee amount.
func Money(v float64) string { return printer.Sprintf("₹%.2f", v) }

// ErrorText is the inline message for a failed load. Authorization errors
// never get here; the session guard redirects first.
func ErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrConfig):
		return "The console is missing its API configuration."
	case errors.Is(err, domain.ErrBadShape):
		return "The server returned an unexpected response."
	default:
		return domain.Message(err, "Could not load data. Please try again.")
	}
}
