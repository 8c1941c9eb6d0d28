package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
	"github.com/pyperpy/pyper-backend/pkg/types"
)

type stubOrdersRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newStubOrdersRepo() *stubOrdersRepo {
	return &stubOrdersRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubOrdersRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubOrdersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *order
	return &clone, nil
}

func (s *stubOrdersRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	order, ok := s.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (s *stubOrdersRepo) List(ctx context.Context, query ListInput) (*ListResult, error) {
	var rows []models.Order
	for _, order := range s.orders {
		if query.Status != nil && order.Status != *query.Status {
			continue
		}
		rows = append(rows, *order)
	}
	return &ListResult{Orders: rows}, nil
}

func (s *stubOrdersRepo) CountByStatus(ctx context.Context, status enums.OrderStatus) (int64, error) {
	var count int64
	for _, order := range s.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *stubOrdersRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	for _, order := range s.orders {
		if !order.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc
}

func validCreateInput() CreateInput {
	return CreateInput{
		CustomerName:  "María González",
		CustomerPhone: "+595981234567",
		Items: types.OrderItems{
			{ProductID: uuid.New(), Name: "Cuaderno", Quantity: 2, Price: decimal.NewFromInt(15000)},
			{ProductID: uuid.New(), Name: "Lápiz", Quantity: 3, Price: decimal.NewFromInt(2000)},
		},
		RequestType: enums.OrderRequestTypeDirect,
	}
}

func TestCreateComputesTotalServerSide(t *testing.T) {
	svc := newTestService(t, newStubOrdersRepo())

	order, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(36000).Equal(order.TotalAmount))
	assert.Equal(t, enums.OrderStatusPending, order.Status)
}

func TestCreateClampsItemQuantities(t *testing.T) {
	svc := newTestService(t, newStubOrdersRepo())

	input := validCreateInput()
	input.Items[0].Quantity = 0

	order, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, newStubOrdersRepo())

	cases := map[string]func(*CreateInput){
		"missing name":     func(in *CreateInput) { in.CustomerName = " " },
		"missing phone":    func(in *CreateInput) { in.CustomerPhone = "" },
		"no items":         func(in *CreateInput) { in.Items = nil },
		"bad request type": func(in *CreateInput) { in.RequestType = "Pedido Telefónico" },
		"negative price":   func(in *CreateInput) { in.Items[0].Price = decimal.NewFromInt(-1) },
		"blank item name":  func(in *CreateInput) { in.Items[0].Name = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validCreateInput()
			mutate(&input)
			_, err := svc.Create(context.Background(), input)
			require.NotNil(t, pkgerrors.As(err))
			assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
		})
	}
}

func TestAdvanceWalksTheFullCycle(t *testing.T) {
	repo := newStubOrdersRepo()
	svc := newTestService(t, repo)

	order, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	expected := []enums.OrderStatus{
		enums.OrderStatusInProgress,
		enums.OrderStatusCompleted,
		enums.OrderStatusPending, // wraps
	}
	for _, want := range expected {
		advanced, err := svc.Advance(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, want, advanced.Status)
	}
}

func TestAdvanceResetsUnknownStatus(t *testing.T) {
	repo := newStubOrdersRepo()
	svc := newTestService(t, repo)

	order, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	repo.orders[order.ID].Status = "Archivado"

	advanced, err := svc.Advance(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, advanced.Status)
}

func TestAdvanceMissingOrder(t *testing.T) {
	svc := newTestService(t, newStubOrdersRepo())

	_, err := svc.Advance(context.Background(), uuid.New())
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := newTestService(t, newStubOrdersRepo())

	bad := enums.OrderStatus("Cancelado")
	_, err := svc.List(context.Background(), ListInput{Status: &bad})
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDashboardCounts(t *testing.T) {
	repo := newStubOrdersRepo()
	svc := newTestService(t, repo)

	first, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = svc.Advance(context.Background(), first.ID)
	require.NoError(t, err)

	counts, err := svc.DashboardCounts(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Pending)
	assert.Equal(t, int64(2), counts.Today)
}
