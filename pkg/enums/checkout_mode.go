package enums

import "fmt"

// CheckoutMode selects how the storefront closes a sale.
type CheckoutMode string

const (
	// CheckoutModeWhatsApp hands the cart off as a prefilled WhatsApp message.
	CheckoutModeWhatsApp CheckoutMode = "whatsapp"
	// CheckoutModeDirect records the order in the admin panel directly.
	CheckoutModeDirect CheckoutMode = "direct"
)

var validCheckoutModes = []CheckoutMode{
	CheckoutModeWhatsApp,
	CheckoutModeDirect,
}

// String implements fmt.Stringer.
func (m CheckoutMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known CheckoutMode.
func (m CheckoutMode) IsValid() bool {
	for _, candidate := range validCheckoutModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseCheckoutMode converts raw input into a CheckoutMode.
func ParseCheckoutMode(value string) (CheckoutMode, error) {
	for _, candidate := range validCheckoutModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout mode %q", value)
}
