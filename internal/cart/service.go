package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/pyperpy/pyper-backend/internal/orders"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
	"github.com/pyperpy/pyper-backend/pkg/types"
)

// CheckoutSettings is the slice of the site configuration the checkout flows
// read.
type CheckoutSettings struct {
	Mode          enums.CheckoutMode
	WhatsAppPhone string
}

type settingsReader interface {
	Checkout(ctx context.Context) (CheckoutSettings, error)
}

type orderCreator interface {
	Create(ctx context.Context, input orders.CreateInput) (*models.Order, error)
}

// Service closes carts through either checkout flow.
type Service interface {
	WhatsAppCheckout(ctx context.Context, c *Cart, input CustomerInput) (*WhatsAppCheckoutResult, error)
	DirectCheckout(ctx context.Context, c *Cart, input DirectCheckoutInput) (*models.Order, error)
}

// CustomerInput identifies the shopper on a WhatsApp handoff.
type CustomerInput struct {
	Name  string
	Phone string
}

// DirectCheckoutInput carries the delivery form of the direct flow.
type DirectCheckoutInput struct {
	Name    string
	Phone   string
	Address string
	City    string
}

// WhatsAppCheckoutResult is the recorded order plus the deep link the
// storefront opens.
type WhatsAppCheckoutResult struct {
	Order *models.Order `json:"order"`
	Link  string        `json:"link"`
}

type service struct {
	orders        orderCreator
	settings      settingsReader
	fallbackPhone string
}

// NewService constructs a checkout service instance.
func NewService(orderSvc orderCreator, settings settingsReader, fallbackPhone string) (Service, error) {
	if orderSvc == nil {
		return nil, fmt.Errorf("order service required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings reader required")
	}
	return &service{
		orders:        orderSvc,
		settings:      settings,
		fallbackPhone: fallbackPhone,
	}, nil
}

// WhatsAppCheckout records the pedido and returns the wa.me link. The cart is
// cleared only after the order is stored; a failed insert leaves it intact so
// the shopper can retry.
func (s *service) WhatsAppCheckout(ctx context.Context, c *Cart, input CustomerInput) (*WhatsAppCheckoutResult, error) {
	if c == nil || c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	settings, err := s.settings.Checkout(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout settings")
	}
	phone := settings.WhatsAppPhone
	if strings.TrimSpace(phone) == "" {
		phone = s.fallbackPhone
	}

	lines := c.Lines()
	message := WhatsAppMessage(lines, c.Total())

	order, err := s.orders.Create(ctx, orders.CreateInput{
		CustomerName:  input.Name,
		CustomerPhone: input.Phone,
		Items:         toOrderItems(lines),
		RequestType:   enums.OrderRequestTypeWhatsApp,
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return &WhatsAppCheckoutResult{
		Order: order,
		Link:  WhatsAppLink(phone, message),
	}, nil
}

// DirectCheckout stores the order with the delivery details folded into the
// message field. Refused while the site runs in WhatsApp-only mode.
func (s *service) DirectCheckout(ctx context.Context, c *Cart, input DirectCheckoutInput) (*models.Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}
	if strings.TrimSpace(input.City) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "city is required")
	}

	settings, err := s.settings.Checkout(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout settings")
	}
	if settings.Mode != enums.CheckoutModeDirect {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "direct checkout is disabled")
	}

	message := fmt.Sprintf("Dirección: %s, Ciudad: %s", input.Address, input.City)
	order, err := s.orders.Create(ctx, orders.CreateInput{
		CustomerName:  input.Name,
		CustomerPhone: input.Phone,
		Message:       &message,
		Items:         toOrderItems(c.Lines()),
		RequestType:   enums.OrderRequestTypeDirect,
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}

func toOrderItems(lines []Line) types.OrderItems {
	items := make(types.OrderItems, 0, len(lines))
	for _, line := range lines {
		items = append(items, types.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return items
}
