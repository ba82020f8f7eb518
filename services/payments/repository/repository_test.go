package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeconnect/backend/internal/pkg/database"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

func setupPaymentRepoTest(t *testing.T) (*PaymentRepository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Redis is not exercised by the SQL paths under test
	repo := &PaymentRepository{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreatePaymentRequest(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	pr := &models.PaymentRequest{
		UserID:      uuid.New(),
		Amount:      1500,
		PhoneNumber: "254712345678",
	}

	mock.ExpectExec("INSERT INTO payment_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreatePaymentRequest(context.Background(), pr)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, pr.ID)
	assert.Equal(t, models.PaymentStatusPending, pr.Status)
	assert.False(t, pr.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRequest_DBError(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO payment_requests").
		WillReturnError(errors.New("connection reset"))

	err := repo.CreatePaymentRequest(context.Background(), &models.PaymentRequest{
		UserID:      uuid.New(),
		Amount:      100,
		PhoneNumber: "254712345678",
	})
	assert.Error(t, err)
}

func TestMarkSent(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE payment_requests").
		WithArgs(models.PaymentStatusSent, "ws_CO_123", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), id, "ws_CO_123")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent_CheckoutIDAlreadyAssigned(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	// Zero rows affected: the guard refused to overwrite the id
	mock.ExpectExec("UPDATE payment_requests").
		WithArgs(models.PaymentStatusSent, "ws_CO_456", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), id, "ws_CO_456")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already has a checkout request id")
}

func TestMarkFailed(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE payment_requests").
		WithArgs(models.PaymentStatusFailed, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), id)
	require.NoError(t, err)
}

func TestGetPaymentRequestByID(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()
	userID := uuid.New()
	checkoutID := "ws_CO_789"

	rows := sqlmock.NewRows([]string{"id", "user_id", "amount", "phone_number", "status", "checkout_request_id", "created_at", "updated_at"}).
		AddRow(id, userID, int64(2000), "254712345678", models.PaymentStatusSent, &checkoutID, time.Now(), time.Now())

	mock.ExpectQuery("^SELECT (.+) FROM payment_requests WHERE id").
		WithArgs(id).
		WillReturnRows(rows)

	pr, err := repo.GetPaymentRequestByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, pr.ID)
	assert.Equal(t, userID, pr.UserID)
	assert.Equal(t, models.PaymentStatusSent, pr.Status)
	require.NotNil(t, pr.CheckoutRequestID)
	assert.Equal(t, "ws_CO_789", *pr.CheckoutRequestID)
}

func TestGetPaymentRequestByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectQuery("^SELECT (.+) FROM payment_requests WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	pr, err := repo.GetPaymentRequestByID(context.Background(), id)
	assert.Nil(t, pr)
	assert.ErrorIs(t, err, payments.ErrPaymentRequestNotFound)
}

func TestGetPaymentRequestByCheckoutID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM payment_requests WHERE checkout_request_id").
		WithArgs("ws_CO_missing").
		WillReturnError(sql.ErrNoRows)

	pr, err := repo.GetPaymentRequestByCheckoutID(context.Background(), "ws_CO_missing")
	assert.Nil(t, pr)
	assert.ErrorIs(t, err, payments.ErrPaymentRequestNotFound)
}

func TestFinalizeFromSent(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE payment_requests").
		WithArgs(models.PaymentStatusCompleted, sqlmock.AnyArg(), id, models.PaymentStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	finalized, err := repo.FinalizeFromSent(context.Background(), id, models.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.True(t, finalized)
}

func TestFinalizeFromSent_NotInSent(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE payment_requests").
		WithArgs(models.PaymentStatusFailed, sqlmock.AnyArg(), id, models.PaymentStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 0))

	finalized, err := repo.FinalizeFromSent(context.Background(), id, models.PaymentStatusFailed)
	require.NoError(t, err)
	assert.False(t, finalized)
}

func TestCreateTransaction(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	requestID := uuid.New()
	txn := &models.MpesaTransaction{
		PaymentRequestID:   &requestID,
		MpesaTransactionID: "R1",
		Amount:             1500,
		ResultCode:         0,
		ResultDesc:         "Success",
		RawPayload:         []byte(`{}`),
	}

	mock.ExpectExec("INSERT INTO mpesa_transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTransaction(context.Background(), txn)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txn.ID)
}

func TestCreateTransaction_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO mpesa_transactions").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "mpesa_transactions_mpesa_transaction_id_key"})

	err := repo.CreateTransaction(context.Background(), &models.MpesaTransaction{
		MpesaTransactionID: "R1",
	})
	assert.ErrorIs(t, err, payments.ErrDuplicateTransaction)
}
