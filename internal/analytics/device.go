package analytics

import (
	"regexp"

	"github.com/pyperpy/pyper-backend/pkg/enums"
)

// mobilePattern mirrors the storefront tracker's coarse device sniff.
var mobilePattern = regexp.MustCompile(`(?i)Mobile|Android|iPhone`)

// DetectDevice classifies a User-Agent as mobile or desktop. Anything that
// does not look mobile counts as desktop, including an empty UA.
func DetectDevice(userAgent string) enums.DeviceType {
	if mobilePattern.MatchString(userAgent) {
		return enums.DeviceTypeMobile
	}
	return enums.DeviceTypeDesktop
}
