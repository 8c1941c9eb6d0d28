package enums

import "fmt"

// BannerPlacement identifies the storefront slot a banner renders in.
type BannerPlacement string

const (
	BannerPlacementHomeTop    BannerPlacement = "home_top"
	BannerPlacementHomeMiddle BannerPlacement = "home_middle"
	BannerPlacementCarousel   BannerPlacement = "carousel"
	BannerPlacementPopup      BannerPlacement = "popup"
	BannerPlacementSidebar    BannerPlacement = "sidebar"
)

var validBannerPlacements = []BannerPlacement{
	BannerPlacementHomeTop,
	BannerPlacementHomeMiddle,
	BannerPlacementCarousel,
	BannerPlacementPopup,
	BannerPlacementSidebar,
}

// String implements fmt.Stringer.
func (p BannerPlacement) String() string {
	return string(p)
}

// IsValid reports whether the value is a known BannerPlacement.
func (p BannerPlacement) IsValid() bool {
	for _, candidate := range validBannerPlacements {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseBannerPlacement converts raw input into a BannerPlacement.
func ParseBannerPlacement(value string) (BannerPlacement, error) {
	for _, candidate := range validBannerPlacements {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid banner placement %q", value)
}

// BannerPlacements returns every known placement in display order.
func BannerPlacements() []BannerPlacement {
	out := make([]BannerPlacement, len(validBannerPlacements))
	copy(out, validBannerPlacements)
	return out
}
