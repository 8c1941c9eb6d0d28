package enums

import "fmt"

// OrderStatus tracks where an order sits in the fulfillment cycle.
// The Spanish labels are stored verbatim; the admin panel displays them as-is.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pendiente"
	OrderStatusInProgress OrderStatus = "En Proceso"
	OrderStatusCompleted  OrderStatus = "Completado"
)

// orderStatusCycle fixes the advance order: Pendiente → En Proceso → Completado → Pendiente.
var orderStatusCycle = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusCompleted,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range orderStatusCycle {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range orderStatusCycle {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

// Next returns the status that follows in the cycle, wrapping after the last
// one. An unknown stored value advances to the first status.
func (s OrderStatus) Next() OrderStatus {
	idx := -1
	for i, candidate := range orderStatusCycle {
		if candidate == s {
			idx = i
			break
		}
	}
	return orderStatusCycle[(idx+1)%len(orderStatusCycle)]
}

// OrderRequestType records which storefront flow produced the order.
type OrderRequestType string

const (
	OrderRequestTypeDirect   OrderRequestType = "Venta Directa Ecommerce"
	OrderRequestTypeWhatsApp OrderRequestType = "Pedido WhatsApp"
)

var validOrderRequestTypes = []OrderRequestType{
	OrderRequestTypeDirect,
	OrderRequestTypeWhatsApp,
}

// String implements fmt.Stringer.
func (t OrderRequestType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known OrderRequestType.
func (t OrderRequestType) IsValid() bool {
	for _, candidate := range validOrderRequestTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseOrderRequestType converts raw input into an OrderRequestType.
func ParseOrderRequestType(value string) (OrderRequestType, error) {
	for _, candidate := range validOrderRequestTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order request type %q", value)
}
