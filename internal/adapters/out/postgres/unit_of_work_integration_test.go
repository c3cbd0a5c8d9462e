package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&productrepo.ProductDTO{}, &orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, products CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ProductRepository(), "First instance should provide product repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.ProductRepository(), "Second instance should provide product repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test product
	testProduct := createTestProduct("Widget", "SKU-1001", "19.99", 10)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add product within transaction
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	// Verify product exists within transaction
	retrievedProduct, err := uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrievedProduct.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify product persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedProduct, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrievedProduct.ID())
}

// TestUnitOfWork_ConfirmOrderWorkflow verifies the inventory reservation and the
// order status change commit or fail as a unit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConfirmOrderWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create catalog entry and pending order outside the transaction
	testProduct := createTestProduct("Widget", "SKU-1001", "19.99", 10)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	testOrder := createTestOrder("customer-1", testProduct, 4)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Begin transaction for the confirmation workflow
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Reserve inventory for every line item
	for _, item := range testOrder.Items() {
		err = uow.ProductRepository().Reserve(ctx, item.ProductID(), item.Quantity())
		suite.Require().NoError(err)
	}

	// Step 2: Move the order to confirmed
	err = testOrder.ChangeStatus(order.StatusConfirmed, kernel.RoleWarehouseStaff)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit the entire workflow
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, retrievedOrder.Status())

	retrievedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, retrievedProduct.InventoryCount())
}

// TestUnitOfWork_ConfirmOrderRollback verifies that a failed reservation leaves
// both the order and the inventory untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConfirmOrderRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Two products, the second with too little stock
	covered := createTestProduct("Widget", "SKU-1001", "19.99", 10)
	scarce := createTestProduct("Gadget", "SKU-1002", "5.50", 1)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, covered))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, scarce))

	item1, err := order.NewItem(kernel.NewUUID(), covered.ID(), 2, covered.Price())
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), scarce.ID(), 3, scarce.Price())
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), order.NewOrderNumber(), "customer-1", nil, []*order.Item{item1, item2},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Begin transaction and reserve until a line item fails
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Reserve(ctx, covered.ID(), 2)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Reserve(ctx, scarce.ID(), 3)
	suite.Require().Error(err)

	var insufficientErr *errs.InsufficientInventoryError
	suite.Require().ErrorAs(err, &insufficientErr)

	// Rollback undoes the reservation that succeeded
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedCovered, err := newUow.ProductRepository().Get(ctx, covered.ID())
	suite.Require().NoError(err)
	suite.Equal(10, retrievedCovered.InventoryCount())

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, retrievedOrder.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testProduct := createTestProduct("Widget", "SKU-1001", "19.99", 10)
	var testOrder *order.Order

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	testOrder = createTestOrder("customer-1", testProduct, 1)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test products
	product1 := createTestProduct("Widget", "SKU-1001", "19.99", 10)
	product2 := createTestProduct("Gadget", "SKU-1002", "5.50", 5)

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different products in each transaction
	err = uow1.ProductRepository().Add(ctx, product1)
	suite.Require().NoError(err)

	err = uow2.ProductRepository().Add(ctx, product2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "UOW1 should see product1")

	_, err = uow1.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "UOW1 should not see product2")

	_, err = uow2.ProductRepository().Get(ctx, product2.ID())
	suite.Require().NoError(err, "UOW2 should see product2")

	_, err = uow2.ProductRepository().Get(ctx, product1.ID())
	suite.Require().Error(err, "UOW2 should not see product1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only product1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "Product1 should persist after commit")

	_, err = newUow.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "Product2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test product
	testProduct := createTestProduct("Widget", "SKU-1001", "19.99", 10)

	// Add product without beginning transaction (should auto-commit)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	// Verify product persists immediately
	retrievedProduct, err := uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrievedProduct.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedProduct, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrievedProduct.ID())
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial product outside transaction
	existingProduct := createTestProduct("Widget", "SKU-1001", "19.99", 10)
	err := uow.ProductRepository().Add(ctx, existingProduct)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add a valid product
	newProduct := createTestProduct("Gadget", "SKU-1002", "5.50", 5)
	err = uow.ProductRepository().Add(ctx, newProduct)
	suite.Require().NoError(err)

	// Try to add a product with an already taken SKU (should fail)
	conflicting := createTestProduct("Other Widget", "SKU-1001", "24.99", 1)
	err = uow.ProductRepository().Add(ctx, conflicting)
	suite.Require().Error(err, "Adding product with duplicate SKU should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing product should still exist (was added before transaction)
	_, err = newUow.ProductRepository().Get(ctx, existingProduct.ID())
	suite.Require().NoError(err, "Existing product should still exist")

	// New product should not exist (transaction was rolled back)
	_, err = newUow.ProductRepository().Get(ctx, newProduct.ID())
	suite.Require().Error(err, "New product should not exist after rollback")
}

// createTestProduct creates a valid product for testing purposes.
func createTestProduct(name string, sku string, price string, inventoryCount int) *product.Product {
	testProduct, _ := product.NewProduct(
		kernel.NewUUID(),
		name,
		sku,
		decimal.RequireFromString(price),
		inventoryCount,
	)
	return testProduct
}

// createTestOrder creates a pending order with a single line item for testing purposes.
func createTestOrder(customerRef string, forProduct *product.Product, quantity int) *order.Order {
	item, _ := order.NewItem(kernel.NewUUID(), forProduct.ID(), quantity, forProduct.Price())
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		customerRef,
		nil,
		[]*order.Item{item},
	)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
