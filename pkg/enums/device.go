package enums

// DeviceType is the coarse device class inferred from a visit's User-Agent.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
)

// String implements fmt.Stringer.
func (d DeviceType) String() string {
	return string(d)
}
