// Package http is the inbound adapter: a thin echo layer that parses
// transport concerns (bodies, path ids, query filters, the caller role
// header) and delegates to command and query handlers.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// roleHeader carries the resolved caller capability. Authentication happens
// upstream; this service trusts the header.
const roleHeader = "X-Role"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	removeOrderHandler       commands.RemoveOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	removeProductHandler     commands.RemoveProductCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
	getProductHandler  queries.GetProductQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	removeProductHandler commands.RemoveProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		removeOrderHandler:       removeOrderHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		removeProductHandler:     removeProductHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getProductsHandler:       getProductsHandler,
		getProductHandler:        getProductHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.RemoveOrder)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.RemoveProduct)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.CreateOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product id: "+item.ProductID)
		}
		items = append(items, commands.CreateOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerRef, request.IdempotencyKey, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, created.ID())
}

// GetOrders handles GET /api/v1/orders - lists orders with filters and pagination.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return badRequest(ctx, "page must be an integer")
	}
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("orderNumber"),
		ctx.QueryParam("customerRef"),
		ctx.QueryParam("status"),
		page,
		limit,
	)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := OrdersPageResponse{
		Data:       make([]OrderResponse, 0, len(result.Data)),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	for _, orderResp := range result.Data {
		response.Data = append(response.Data, orderFromQuery(orderResp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(result))
}

// UpdateOrder handles PATCH /api/v1/orders/:id - updates the customer reference.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.CustomerRef, request.Version)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, updated.ID())
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves the order
// through its lifecycle. The caller role arrives in the X-Role header.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(roleHeader))
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+roleHeader+" header")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+request.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, role, request.Version)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, updated.ID())
}

// RemoveOrder handles DELETE /api/v1/orders/:id.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		request.Name, request.SKU, request.Price, request.InventoryCount,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondProduct(ctx, http.StatusCreated, created.ID())
}

// GetProducts handles GET /api/v1/products - lists products with filters and pagination.
func (s *Server) GetProducts(ctx echo.Context) error {
	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return badRequest(ctx, "page must be an integer")
	}
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewGetProductsQuery(
		ctx.QueryParam("name"),
		ctx.QueryParam("sku"),
		ctx.QueryParam("status"),
		page,
		limit,
	)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	result, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := ProductsPageResponse{
		Data:       make([]ProductResponse, 0, len(result.Data)),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	for _, productResp := range result.Data {
		response.Data = append(response.Data, productFromQuery(productResp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id - retrieves one product.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	result, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromQuery(result))
}

// UpdateProduct handles PATCH /api/v1/products/:id - partial catalog update.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var request UpdateProductRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *product.Status
	if request.Status != nil {
		parsed := product.Status(*request.Status)
		status = &parsed
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		request.Name,
		request.SKU,
		request.Price,
		status,
		request.InventoryCount,
		request.Version,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondProduct(ctx, http.StatusOK, updated.ID())
}

// RemoveProduct handles DELETE /api/v1/products/:id.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRemoveProductCommand(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	if err = s.removeProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondOrder writes the order fetched back through the read path, so
// mutation responses carry the same shape as the read endpoints: line items
// joined with the product name and SKU, and the created_at timestamp.
func (s *Server) respondOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(code, orderFromQuery(result))
}

// respondProduct is the product counterpart of respondOrder.
func (s *Server) respondProduct(ctx echo.Context, code int, productID kernel.UUID) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(code, productFromQuery(result))
}

// intQueryParam parses an optional integer query parameter, 0 when absent.
func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
