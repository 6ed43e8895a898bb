package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}

	GetDashboardHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
	}

	GetCustomersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomersQuery) ([]queries.GetCustomersQueryResponse, error)
	}

	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderHandler
	changeOrderStatusHandler ChangeOrderStatusHandler

	// Query handlers
	getDashboardHandler GetDashboardHandler
	getCustomersHandler GetCustomersHandler
	getAllOrdersHandler GetAllOrdersHandler
	getOrderHandler     GetOrderHandler

	logger *slog.Logger
	now    func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	changeOrderStatusHandler ChangeOrderStatusHandler,
	getDashboardHandler GetDashboardHandler,
	getCustomersHandler GetCustomersHandler,
	getAllOrdersHandler GetAllOrdersHandler,
	getOrderHandler GetOrderHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getDashboardHandler:      getDashboardHandler,
		getCustomersHandler:      getCustomersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
		logger:                   logger.With("component", "http_server"),
		now:                      func() time.Time { return time.Now().UTC() },
	}
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return s.failure(ctx, "Failed to fetch dashboard data", err)
	}

	return ctx.JSON(http.StatusOK, servers.DashboardResponse{
		Success: true,
		Data: servers.Dashboard{
			TotalProducts: dashboard.TotalProducts,
			TotalOrders:   dashboard.TotalOrders,
			TotalRevenue:  dashboard.TotalRevenue.String(),
			ActiveUsers:   dashboard.ActiveUsers,
		},
	})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.failure(ctx, "Failed to fetch customers", err)
	}

	data := make([]servers.Customer, len(customers))
	for i, c := range customers {
		data[i] = servers.Customer{
			Email:           c.Email,
			Name:            c.Name,
			OrderCount:      c.OrderCount,
			TotalSpent:      c.TotalSpent.String(),
			LatestOrderDate: c.LatestOrderDate,
			LatestOrderId:   c.LatestOrderID.Bytes(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.CustomersResponse{Success: true, Data: data})
}

// GetOrders handles GET /api/v1/orders - every order, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.problem(ctx, "Failed to retrieve orders", err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.problem(ctx, "Invalid order id", err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.problem(ctx, "Invalid order id", err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// CreateOrder handles POST /api/v1/orders - records a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toCreateOrderItems(body.Items)
	if err != nil {
		return s.problem(ctx, "Invalid order data", err)
	}

	date := s.now()
	if body.Date != nil {
		date = *body.Date
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		commands.CreateOrderCustomer{
			Name:            body.CustomerName,
			Email:           body.CustomerEmail,
			ShippingAddress: deref(body.ShippingAddress),
		},
		items,
		deref(body.TransactionCode),
		date,
	)
	if err != nil {
		return s.problem(ctx, "Invalid order data", err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, "Failed to create order", err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.problem(ctx, "Invalid status", err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.problem(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return s.problem(ctx, "Invalid status change", err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, "Failed to change order status", err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// problem writes the {code, message} error body used by the order routes.
func (s *Server) problem(ctx echo.Context, message string, err error) error {
	code := statusCodeFor(err)
	s.log(ctx, code, err)
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}

// failure writes the {success: false, error} envelope used by the dashboard and customers routes.
func (s *Server) failure(ctx echo.Context, message string, err error) error {
	code := statusCodeFor(err)
	s.log(ctx, code, err)
	return ctx.JSON(code, servers.FailureResponse{
		Success: false,
		Error:   message,
	})
}

func (s *Server) log(ctx echo.Context, code int, err error) {
	req := ctx.Request()
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(req.Context(), "Request failed", "path", req.URL.Path, "status", code, "error", err)
		return
	}
	s.logger.WarnContext(req.Context(), "Request rejected", "path", req.URL.Path, "status", code, "error", err)
}

func toCreateOrderItems(items []servers.LineItem) ([]commands.CreateOrderItem, error) {
	result := make([]commands.CreateOrderItem, 0, len(items))
	priceErrs := make([]error, 0)
	for _, item := range items {
		price, err := kernel.MoneyFromString(item.Price)
		if err != nil {
			priceErrs = append(priceErrs, err)
			continue
		}
		result = append(result, commands.CreateOrderItem{
			ProductID: item.ProductId,
			Name:      item.Name,
			Price:     price,
			Quantity:  item.Quantity,
			Image:     deref(item.Image),
		})
	}
	if err := errors.Join(priceErrs...); err != nil {
		return nil, err
	}
	return result, nil
}

func toOrderResponse(o *order.Order) servers.Order {
	items := make([]servers.LineItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.LineItem{
			ProductId: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price().String(),
			Quantity:  item.Quantity(),
			Image:     optional(item.Image()),
		}
	}

	customer := o.Customer()
	return servers.Order{
		Id:              o.ID().Bytes(),
		CustomerName:    customer.Name(),
		CustomerEmail:   customer.Email(),
		ShippingAddress: optional(customer.ShippingAddress()),
		Items:           items,
		Total:           o.Total().String(),
		Status:          servers.OrderStatus(o.Status().String()),
		TransactionCode: optional(o.TransactionCode()),
		Date:            o.Date(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
