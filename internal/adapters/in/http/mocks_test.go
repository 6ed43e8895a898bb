package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetDashboardHandler struct{ mock.Mock }

func (m *MockGetDashboardHandler) Handle(
	ctx context.Context,
	query queries.GetDashboardQuery,
) (queries.GetDashboardQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDashboardQueryResponse), args.Error(1)
}

type MockGetCustomersHandler struct{ mock.Mock }

func (m *MockGetCustomersHandler) Handle(
	ctx context.Context,
	query queries.GetCustomersQuery,
) ([]queries.GetCustomersQueryResponse, error) {
	args := m.Called(ctx, query)
	customers, _ := args.Get(0).([]queries.GetCustomersQueryResponse)
	return customers, args.Error(1)
}

type MockGetAllOrdersHandler struct{ mock.Mock }

func (m *MockGetAllOrdersHandler) Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type handlerMocks struct {
	createOrder       *MockCreateOrderHandler
	changeOrderStatus *MockChangeOrderStatusHandler
	dashboard         *MockGetDashboardHandler
	customers         *MockGetCustomersHandler
	allOrders         *MockGetAllOrdersHandler
	getOrder          *MockGetOrderHandler
}

var fixedNow = time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*echo.Echo, handlerMocks, *prometheus.Registry) {
	t.Helper()

	mocks := handlerMocks{
		createOrder:       &MockCreateOrderHandler{},
		changeOrderStatus: &MockChangeOrderStatusHandler{},
		dashboard:         &MockGetDashboardHandler{},
		customers:         &MockGetCustomersHandler{},
		allOrders:         &MockGetAllOrdersHandler{},
		getOrder:          &MockGetOrderHandler{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := NewServer(mocks.createOrder, mocks.changeOrderStatus, mocks.dashboard,
		mocks.customers, mocks.allOrders, mocks.getOrder, logger)
	server.now = func() time.Time { return fixedNow }

	registry := prometheus.NewRegistry()
	metrics, err := NewServerMetrics(registry)
	require.NoError(t, err)

	e, err := NewRouter(server, metrics, registry, logger)
	require.NoError(t, err)
	return e, mocks, registry
}

func money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func sampleOrder(status order.Status) *order.Order {
	customer, err := order.NewCustomerDetails("Jane Wanjiru", "jane@example.com", "Moi Avenue 1")
	if err != nil {
		panic(err)
	}
	item, err := order.NewLineItem("sku-1", "Kettle", money("1499.5"), 2, "kettle.png")
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), customer, []order.LineItem{item}, money("2999"),
		status, "QK12AB34", fixedNow, fixedNow, fixedNow)
	if err != nil {
		panic(err)
	}
	return o
}
