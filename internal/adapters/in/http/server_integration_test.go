package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	warehousehttp "warehouse/internal/adapters/in/http"
	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type productUoWFactoryFunc func() commands.ProductUoW

func (f productUoWFactoryFunc) Create() commands.ProductUoW { return f() }

// ServerTestSuite drives the echo server end to end against a real database,
// asserting on response payloads the way an API client sees them.
type ServerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	router    *echo.Echo
	widget    warehousehttp.ProductResponse
}

func (suite *ServerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	))

	factory := postgres_adapter.NewGormUnitOfWorkFactory(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := warehousehttp.NewServer(
		commands.NewCreateOrderCommandHandler(uowFactoryFunc(func() commands.UoW { return factory.Create() })),
		commands.NewUpdateOrderCommandHandler(orderUoWFactoryFunc(func() commands.OrderUoW { return factory.Create() })),
		commands.NewUpdateOrderStatusCommandHandler(uowFactoryFunc(func() commands.UoW { return factory.Create() })),
		commands.NewRemoveOrderCommandHandler(orderUoWFactoryFunc(func() commands.OrderUoW { return factory.Create() })),
		commands.NewCreateProductCommandHandler(productUoWFactoryFunc(func() commands.ProductUoW { return factory.Create() })),
		commands.NewUpdateProductCommandHandler(productUoWFactoryFunc(func() commands.ProductUoW { return factory.Create() })),
		commands.NewRemoveProductCommandHandler(uowFactoryFunc(func() commands.UoW { return factory.Create() })),
		queries.NewGetOrdersQueryHandler(db),
		queries.NewGetOrderQueryHandler(db),
		queries.NewGetProductsQueryHandler(db),
		queries.NewGetProductQueryHandler(db),
		logger,
	)

	suite.router = echo.New()
	server.RegisterRoutes(suite.router)
}

func (suite *ServerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, products CASCADE").Error)

	rec := suite.do(http.MethodPost, "/api/v1/products", warehousehttp.CreateProductRequest{
		Name:           "Widget",
		SKU:            "SKU-0001",
		Price:          decimal.RequireFromString("29.99"),
		InventoryCount: 100,
	}, nil)
	suite.Require().Equal(http.StatusCreated, rec.Code)
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &suite.widget))
}

func (suite *ServerTestSuite) TestCreateProduct_ResponseMatchesReadShape() {
	suite.Equal("Widget", suite.widget.Name)
	suite.Equal(1, suite.widget.Version)
	suite.False(suite.widget.CreatedAt.IsZero())

	rec := suite.do(http.MethodGet, "/api/v1/products/"+suite.widget.ID, nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var read warehousehttp.ProductResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &read))
	suite.Equal(suite.widget.ID, read.ID)
	suite.Equal(suite.widget.SKU, read.SKU)
	suite.True(suite.widget.CreatedAt.Equal(read.CreatedAt))
}

func (suite *ServerTestSuite) TestCreateOrder_ReturnsHydratedItems() {
	created := suite.createOrder("customer-1", nil, 2)

	suite.Equal("pending", created.Status)
	suite.Equal(1, created.Version)
	suite.Contains(created.OrderNumber, "ORD-")
	suite.False(created.CreatedAt.IsZero())
	suite.Require().Len(created.Items, 1)

	item := created.Items[0]
	suite.Equal(suite.widget.ID, item.ProductID)
	suite.Equal("Widget", item.ProductName)
	suite.Equal("SKU-0001", item.ProductSKU)
	suite.Equal(2, item.Quantity)
	suite.True(item.UnitPrice.Equal(decimal.RequireFromString("29.99")))
	suite.True(item.Subtotal.Equal(decimal.RequireFromString("59.98")))
	suite.True(created.TotalAmount.Equal(decimal.RequireFromString("59.98")))
}

func (suite *ServerTestSuite) TestCreateOrder_IdempotentReplay_ReturnsHydratedBody() {
	key := "replay-key-1"
	first := suite.createOrder("customer-1", &key, 2)
	second := suite.createOrder("customer-1", &key, 2)

	suite.Equal(first.ID, second.ID)
	suite.Equal(first.OrderNumber, second.OrderNumber)
	suite.Require().Len(second.Items, 1)
	suite.Equal("Widget", second.Items[0].ProductName)
	suite.Equal("SKU-0001", second.Items[0].ProductSKU)
	suite.False(second.CreatedAt.IsZero())
}

func (suite *ServerTestSuite) TestUpdateOrderStatus_ReturnsHydratedBody() {
	created := suite.createOrder("customer-1", nil, 2)

	rec := suite.do(http.MethodPatch, "/api/v1/orders/"+created.ID+"/status",
		warehousehttp.UpdateOrderStatusRequest{Status: "confirmed", Version: 1},
		map[string]string{"X-Role": "warehouse_staff"},
	)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var confirmed warehousehttp.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &confirmed))
	suite.Equal("confirmed", confirmed.Status)
	suite.Equal(2, confirmed.Version)
	suite.Require().Len(confirmed.Items, 1)
	suite.Equal("Widget", confirmed.Items[0].ProductName)

	// Confirmation reserved the line quantity
	rec = suite.do(http.MethodGet, "/api/v1/products/"+suite.widget.ID, nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var stocked warehousehttp.ProductResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &stocked))
	suite.Equal(98, stocked.InventoryCount)
}

func (suite *ServerTestSuite) TestUpdateOrder_VersionOnlyBody_IsAccepted() {
	created := suite.createOrder("customer-1", nil, 1)

	rec := suite.do(http.MethodPatch, "/api/v1/orders/"+created.ID,
		warehousehttp.UpdateOrderRequest{Version: 1}, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var updated warehousehttp.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	suite.Equal("customer-1", updated.CustomerRef)
	suite.Equal(2, updated.Version)
}

func (suite *ServerTestSuite) TestUpdateOrder_ChangesCustomerRef() {
	created := suite.createOrder("customer-1", nil, 1)

	newRef := "customer-2"
	rec := suite.do(http.MethodPatch, "/api/v1/orders/"+created.ID,
		warehousehttp.UpdateOrderRequest{CustomerRef: &newRef, Version: 1}, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var updated warehousehttp.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	suite.Equal("customer-2", updated.CustomerRef)
	suite.Require().Len(updated.Items, 1)
	suite.Equal("Widget", updated.Items[0].ProductName)
}

// createOrder places a single-line order on the default product through the API.
func (suite *ServerTestSuite) createOrder(
	customerRef string, idempotencyKey *string, quantity int,
) warehousehttp.OrderResponse {
	rec := suite.do(http.MethodPost, "/api/v1/orders", warehousehttp.CreateOrderRequest{
		CustomerRef:    customerRef,
		IdempotencyKey: idempotencyKey,
		Items: []warehousehttp.CreateOrderItemRequest{
			{ProductID: suite.widget.ID, Quantity: quantity},
		},
	}, nil)
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var created warehousehttp.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func (suite *ServerTestSuite) do(
	method string, path string, body any, headers map[string]string,
) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
