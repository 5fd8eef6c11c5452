// Package http is the inbound HTTP adapter. It binds and validates request
// payloads, translates them into commands and queries, and maps core errors
// onto the transport error contract.
package http

import (
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler

	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderByIDHandler: getOrderByIDHandler,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
		logger:              logger.With("component", "http"),
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrderStatus)
	e.DELETE("/orders/:id", s.CancelOrder)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /orders. Responds 201 with the created order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(badRequestResponse("invalid request body"))
	}

	if err := s.validate.Struct(req); err != nil {
		return ctx.JSON(requestValidationResponse(err))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, items)
	if err != nil {
		return s.renderError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /orders. Responds 200 with the pagination envelope.
func (s *Server) GetOrders(ctx echo.Context) error {
	var req ListOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(badRequestResponse("invalid query parameters"))
	}

	if err := s.validate.Struct(req); err != nil {
		return ctx.JSON(requestValidationResponse(err))
	}

	page, err := listPageRequest(req)
	if err != nil {
		return s.renderError(ctx, err)
	}

	var status *order.Status
	if req.Status != "" {
		parsed, statusErr := order.StatusFromString(req.Status)
		if statusErr != nil {
			return s.renderError(ctx, statusErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(status, page)
	if err != nil {
		return s.renderError(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	data := make([]OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		data = append(data, orderFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Data:       data,
		Pagination: result.Pagination,
	})
}

// GetOrder handles GET /orders/:id. Responds 200 with the order and its
// items.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := s.orderIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(result))
}

// UpdateOrderStatus handles PUT /orders/:id. Responds 200 with the updated
// order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := s.orderIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(badRequestResponse("invalid request body"))
	}

	if err = s.validate.Struct(req); err != nil {
		return ctx.JSON(requestValidationResponse(err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CancelOrder handles DELETE /orders/:id. Cancellation is a lifecycle
// transition, not a removal: responds 200 with the cancelled order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := s.orderIDParam(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// listPageRequest builds the page request for GET /orders, applying the
// default page and limit and attaching the explicit ordering when the caller
// asked for one. An omitted direction sorts descending, matching the default
// newest-first ordering.
func listPageRequest(req ListOrdersRequest) (kernel.PageRequest, error) {
	if req.Page == 0 {
		req.Page = kernel.DefaultPage
	}
	if req.Limit == 0 {
		req.Limit = kernel.DefaultLimit
	}

	page, err := kernel.NewPageRequest(req.Page, req.Limit)
	if err != nil {
		return kernel.PageRequest{}, err
	}

	if req.OrderBy == "" {
		return page, nil
	}

	direction := kernel.SortDesc
	if req.Direction != "" {
		direction = kernel.SortDirection(req.Direction)
	}

	orderBy, err := kernel.NewOrderBy(req.OrderBy, direction)
	if err != nil {
		return kernel.PageRequest{}, err
	}

	return page.WithOrderBy(orderBy), nil
}

func (s *Server) orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// renderError writes the mapped error body. The full error is logged here;
// the client sees only the mapped representation.
func (s *Server) renderError(ctx echo.Context, err error) error {
	status, body := domainErrorResponse(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}
