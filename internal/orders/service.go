package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
	"github.com/pyperpy/pyper-backend/pkg/pagination"
	"github.com/pyperpy/pyper-backend/pkg/types"
)

// Service exposes order intake and admin management.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Advance(ctx context.Context, id uuid.UUID) (*models.Order, error)
	DashboardCounts(ctx context.Context, now time.Time) (*DashboardCounts, error)
}

// CreateInput is a new purchase request from the storefront.
type CreateInput struct {
	CustomerName  string
	CustomerPhone string
	Message       *string
	Items         types.OrderItems
	RequestType   enums.OrderRequestType
}

// ListInput filters and paginates the admin order list.
type ListInput struct {
	Status      *enums.OrderStatus
	RequestType *enums.OrderRequestType
	Pagination  pagination.Params
}

// ListResult is one page of orders.
type ListResult struct {
	Orders     []models.Order `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// DashboardCounts feeds the admin dashboard order cards.
type DashboardCounts struct {
	Pending int64 `json:"pending"`
	Today   int64 `json:"today"`
}

type service struct {
	repo Repository
}

// NewService constructs an order service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

// Create validates and records a purchase request. The total is computed from
// the snapshotted line items, never taken from the client.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Order, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_name is required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_phone is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	if !input.RequestType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown request type %q", input.RequestType))
	}

	items := make(types.OrderItems, len(input.Items))
	copy(items, input.Items)
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
		if strings.TrimSpace(items[i].Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "order item name is required")
		}
		if items[i].Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "order item price cannot be negative")
		}
	}

	order := &models.Order{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Message:       input.Message,
		Items:         items,
		TotalAmount:   items.Total(),
		RequestType:   input.RequestType,
		Status:        enums.OrderStatusPending,
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert order")
	}
	return created, nil
}

// Get loads one order.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

// List returns one page of orders for the admin panel.
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown status %q", *input.Status))
	}
	result, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return result, nil
}

// Advance moves the order one step through the cycle, wrapping from
// Completado back to Pendiente. Orders carrying an unrecognized stored status
// restart at Pendiente.
func (s *service) Advance(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := order.Status.Next()
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	order.Status = next
	return order, nil
}

// DashboardCounts returns the pending backlog and today's intake.
func (s *service) DashboardCounts(ctx context.Context, now time.Time) (*DashboardCounts, error) {
	pending, err := s.repo.CountByStatus(ctx, enums.OrderStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count pending orders")
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.CountCreatedSince(ctx, startOfDay)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count today's orders")
	}
	return &DashboardCounts{Pending: pending, Today: today}, nil
}
