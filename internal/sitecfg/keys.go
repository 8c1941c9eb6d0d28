package sitecfg

// Setting keys the storefront reads from the site_settings table.
const (
	KeyBusinessName           = "business_name"
	KeyBusinessSlogan         = "business_slogan"
	KeyLogoHeaderText         = "logo_header_text"
	KeyLogoHeaderSubtext      = "logo_header_subtext"
	KeyFooterText             = "footer_text"
	KeyCopyright              = "copyright"
	KeyWhatsApp               = "whatsapp"
	KeyCheckoutMode           = "checkout_mode"
	KeyAcceptedPaymentMethods = "accepted_payment_methods"
)

// defaultSettings keeps the storefront presentable when a key was never
// configured.
var defaultSettings = map[string]string{
	KeyBusinessName:           "PYPER PARAGUAY",
	KeyBusinessSlogan:         "Especialistas en soluciones educativas, útiles escolares y tecnología de vanguardia en Paraguay.",
	KeyLogoHeaderText:         "PYPER",
	KeyLogoHeaderSubtext:      "PARAGUAY",
	KeyFooterText:             "Tu librería moderna y centro de soluciones educativas. Calidad, compromiso y tecnología para tu educación.",
	KeyCopyright:              "Pyper Paraguay. Todos los derechos reservados.",
	KeyCheckoutMode:           "whatsapp",
	KeyAcceptedPaymentMethods: "cash_on_delivery",
}
