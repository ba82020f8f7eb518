package repository

import (
	"context"
	"database/sql"
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
	"github.com/homeconnect/backend/services/marketplace"
)

func setupMarketplaceRepoTest(t *testing.T) (*MarketplaceRepository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &MarketplaceRepository{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	user := &models.User{
		MSISDN:       "254712345678",
		FullName:     "Jane Fundi",
		Role:         models.RoleProvider,
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
}

func TestCreateUser_DuplicateMSISDN(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_msisdn_key"})

	err := repo.CreateUser(context.Background(), &models.User{
		MSISDN: "254712345678",
	})
	assert.ErrorIs(t, err, marketplace.ErrUserExists)
}

func TestGetUserByMSISDN(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "msisdn", "fullname", "role", "bio", "city", "password_hash", "created_at", "updated_at", "is_active"}).
		AddRow(userID, "254712345678", "Jane Fundi", models.RoleProvider, "", "Nairobi", "$2a$10$hash", time.Now(), time.Now(), true)

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE msisdn").
		WithArgs("254712345678").
		WillReturnRows(rows)

	user, err := repo.GetUserByMSISDN(context.Background(), "254712345678")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, models.RoleProvider, user.Role)
}

func TestGetUserByMSISDN_NotFound(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE msisdn").
		WithArgs("254700000000").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByMSISDN(context.Background(), "254700000000")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, marketplace.ErrUserNotFound)
}

func TestGetUserByID_AttachesProviderProfile(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	userRows := sqlmock.NewRows([]string{"id", "msisdn", "fullname", "role", "bio", "city", "password_hash", "created_at", "updated_at", "is_active"}).
		AddRow(userID, "254712345678", "Jane Fundi", models.RoleProvider, "", "Nairobi", "$2a$10$hash", time.Now(), time.Now(), true)
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(userRows)

	profileRows := sqlmock.NewRows([]string{"user_id", "company_name", "skills", "experience_years", "latitude", "longitude", "geohash"}).
		AddRow(userID, "Fundi Works", "plumbing", 5, -1.2921, 36.8219, "kzf0ts")
	mock.ExpectQuery("^SELECT (.+) FROM provider_profiles WHERE user_id").
		WithArgs(userID).
		WillReturnRows(profileRows)

	user, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, user.Provider)
	assert.Equal(t, "Fundi Works", user.Provider.CompanyName)
}

func TestCreateServiceRequest(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	sr := &models.ServiceRequest{
		HomeownerID: uuid.New(),
		ProviderID:  uuid.New(),
		Details:     "Leaking sink",
	}

	mock.ExpectExec("INSERT INTO service_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateServiceRequest(context.Background(), sr)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, sr.Status)
}

func TestGetServiceRequestByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM service_requests WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	sr, err := repo.GetServiceRequestByID(context.Background(), id)
	assert.Nil(t, sr)
	assert.ErrorIs(t, err, marketplace.ErrServiceRequestNotFound)
}

func TestUpdateServiceRequestStatus(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE service_requests").
		WithArgs(models.RequestStatusAccepted, sqlmock.AnyArg(), id, models.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateServiceRequestStatus(context.Background(), id, models.RequestStatusPending, models.RequestStatusAccepted)
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateServiceRequestStatus_StatusChanged(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE service_requests").
		WithArgs(models.RequestStatusAccepted, sqlmock.AnyArg(), id, models.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateServiceRequestStatus(context.Background(), id, models.RequestStatusPending, models.RequestStatusAccepted)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateServiceRequestDetails(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()
	serviceID := uuid.New()

	mock.ExpectExec("UPDATE service_requests").
		WithArgs("New details", &serviceID, sqlmock.AnyArg(), id, models.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateServiceRequestDetails(context.Background(), id, &serviceID, "New details")
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateServiceRequestDetails_NoLongerPending(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE service_requests").
		WithArgs("New details", nil, sqlmock.AnyArg(), id, models.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateServiceRequestDetails(context.Background(), id, nil, "New details")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestDeleteServiceRequest(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("DELETE FROM service_requests").
		WithArgs(id, models.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteServiceRequest(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteServiceRequest_NoLongerPending(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("DELETE FROM service_requests").
		WithArgs(id, models.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteServiceRequest(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeactivateUser(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE users SET is_active").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeactivateUser(context.Background(), id)
	require.NoError(t, err)
}

func TestDeactivateUser_NotFound(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE users SET is_active").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeactivateUser(context.Background(), id)
	assert.ErrorIs(t, err, marketplace.ErrUserNotFound)
}

func TestListServices(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(uuid.New(), "Electrical", "Wiring and repairs").
		AddRow(uuid.New(), "Plumbing", "Pipes and fittings")

	mock.ExpectQuery("^SELECT (.+) FROM services").
		WillReturnRows(rows)

	services, err := repo.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestCreateNotification(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	n := &models.Notification{
		UserID:  uuid.New(),
		Kind:    models.NotificationPaymentCompleted,
		Message: "Your payment of KES 1500 was received.",
	}

	mock.ExpectExec("INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateNotification(context.Background(), n)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, n.ID)
}

func TestListNotificationsByUser(t *testing.T) {
	repo, mock, cleanup := setupMarketplaceRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "kind", "message", "created_at"}).
		AddRow(uuid.New(), userID, models.NotificationPaymentCompleted, "Payment received", time.Now())

	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE user_id").
		WithArgs(userID).
		WillReturnRows(rows)

	notifications, err := repo.ListNotificationsByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, userID, notifications[0].UserID)
}
