package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewOrderRepo(db)
	require.NotNil(t, repo, "NewOrderRepo should return a non-nil repository")

	return repo, mock
}

func TestCreateOrder(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	addressID := uuid.New()
	order := &models.Order{
		ID:                uuid.New(),
		ProfileID:         uuid.New(),
		Status:            models.OrderStatusPending,
		Currency:          "USD",
		ShippingAddressID: &addressID,
	}

	insertSQL := regexp.QuoteMeta("INSERT INTO orders")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		now := time.Now()
		mock.ExpectQuery(insertSQL).
			WithArgs(order.ID, order.ProfileID, order.Status, order.Currency, order.ShippingAddressID).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, now, order.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("insert failed")
		mock.ExpectQuery(insertSQL).
			WithArgs(order.ID, order.ProfileID, order.Status, order.Currency, order.ShippingAddressID).
			WillReturnError(dbErr)

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertOrderItems(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	items := []models.OrderItem{
		{OrderID: orderID, ProductID: uuid.New(), Quantity: 2, UnitPrice: 4.50, TotalPrice: 9.0},
		{OrderID: orderID, ProductID: uuid.New(), Quantity: 1, UnitPrice: 8.0, TotalPrice: 8.0},
	}

	insertSQL := regexp.QuoteMeta("INSERT INTO order_items")

	t.Run("Success - Single Batch Statement", func(t *testing.T) {
		// Arrange: both rows travel in one statement, one placeholder set each
		mock.ExpectExec(insertSQL).
			WithArgs(
				items[0].OrderID, items[0].ProductID, items[0].Quantity, items[0].UnitPrice, items[0].TotalPrice,
				items[1].OrderID, items[1].ProductID, items[1].Quantity, items[1].UnitPrice, items[1].TotalPrice,
			).
			WillReturnResult(sqlmock.NewResult(0, 2))

		// Act
		err := repo.InsertOrderItems(ctx, items)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Items Is A No-Op", func(t *testing.T) {
		// Act: no expectations set; any statement would fail the test
		err := repo.InsertOrderItems(ctx, nil)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("batch insert failed")
		mock.ExpectExec(insertSQL).
			WithArgs(
				items[0].OrderID, items[0].ProductID, items[0].Quantity, items[0].UnitPrice, items[0].TotalPrice,
				items[1].OrderID, items[1].ProductID, items[1].Quantity, items[1].UnitPrice, items[1].TotalPrice,
			).
			WillReturnError(dbErr)

		// Act
		err := repo.InsertOrderItems(ctx, items)

		// Assert
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to insert order items")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	updateSQL := regexp.QuoteMeta("UPDATE orders SET status")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(updateSQL).
			WithArgs(models.OrderStatusFailed, orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusFailed)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - No Matching Order", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(updateSQL).
			WithArgs(models.OrderStatusFailed, orderID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusFailed)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Exec Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("update failed")
		mock.ExpectExec(updateSQL).
			WithArgs(models.OrderStatusFailed, orderID).
			WillReturnError(dbErr)

		// Act
		err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusFailed)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOrderByID(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	profileID := uuid.New()
	addressID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	orderSQL := regexp.QuoteMeta("FROM orders")
	itemsSQL := regexp.QuoteMeta("FROM order_items")

	t.Run("Success - Order With Items", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(orderSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(
				[]string{"profile_id", "status", "currency", "shipping_address_id", "created_at", "updated_at"}).
				AddRow(profileID, models.OrderStatusPending, "USD", addressID, now, now))
		mock.ExpectQuery(itemsSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(
				[]string{"product_id", "quantity", "unit_price", "total_price"}).
				AddRow(productID, 2, 4.50, 9.0))

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, profileID, order.ProfileID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		require.Len(t, order.Items, 1)
		assert.Equal(t, productID, order.Items[0].ProductID)
		assert.Equal(t, 9.0, order.Items[0].TotalPrice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(orderSQL).
			WithArgs(orderID).
			WillReturnError(sql.ErrNoRows)

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListOrdersByProfile(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	profileID := uuid.New()
	orderID := uuid.New()
	addressID := uuid.New()
	now := time.Now()

	countSQL := regexp.QuoteMeta("SELECT COUNT(*) FROM orders")
	listSQL := regexp.QuoteMeta("FROM orders")
	itemsSQL := regexp.QuoteMeta("FROM order_items")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(countSQL).
			WithArgs(profileID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(listSQL).
			WithArgs(profileID, 10, 0).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "status", "currency", "shipping_address_id", "created_at", "updated_at"}).
				AddRow(orderID, models.OrderStatusPending, "USD", addressID, now, now))
		mock.ExpectQuery(itemsSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price", "total_price"}))

		// Act
		orders, total, err := repo.ListOrdersByProfile(ctx, profileID, 1, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, orders, 1)
		assert.Equal(t, orderID, orders[0].ID)
		assert.Equal(t, profileID, orders[0].ProfileID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("count failed")
		mock.ExpectQuery(countSQL).
			WithArgs(profileID).
			WillReturnError(dbErr)

		// Act
		orders, total, err := repo.ListOrdersByProfile(ctx, profileID, 1, 10)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, orders)
		assert.Equal(t, 0, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
