package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
	"github.com/homeconnect/backend/services/marketplace/mocks"
)

func setupHandlerTest(t *testing.T) (*MarketplaceHandler, *mocks.MockMarketplaceUC, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockMarketplaceUC(ctrl)
	h := NewMarketplaceHandler(&models.Config{
		JWT: models.JWTConfig{Secret: "test-secret"},
	}, uc)
	return h, uc, ctrl
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Created(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/auth/register",
		`{"msisdn":"0712345678","fullname":"Jane Fundi","password":"s3cret-pass","role":"provider"}`)

	uc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "jwt-token", Role: models.RoleProvider}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}

func TestRegister_Conflict(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/auth/register",
		`{"msisdn":"0712345678","fullname":"Jane","password":"s3cret-pass","role":"provider"}`)

	uc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, marketplace.ErrUserExists)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Unauthorized(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/auth/login",
		`{"msisdn":"0712345678","password":"wrong"}`)

	uc.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, marketplace.ErrInvalidCredentials)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProviderProfile_ForbiddenForHomeowner(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPut, "/providers/me", `{"company_name":"Fundi Works"}`)
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleHomeowner)

	require.NoError(t, h.UpdateProviderProfile(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFindNearbyProviders_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/providers/nearby?lat=-1.2921&lon=36.8219&radius_km=5", "")
	c.Set("user_id", uuid.New())

	uc.EXPECT().
		FindNearbyProviders(gomock.Any(), -1.2921, 36.8219, 5.0).
		Return([]models.NearbyProvider{
			{UserID: uuid.New(), CompanyName: "Fundi Works", DistanceKm: 1.2},
		}, nil)

	require.NoError(t, h.FindNearbyProviders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fundi Works")
}

func TestFindNearbyProviders_MissingCoordinates(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/providers/nearby", "")
	c.Set("user_id", uuid.New())

	require.NoError(t, h.FindNearbyProviders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateServiceRequest_ForbiddenForProvider(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/requests", `{"details":"Leaking sink"}`)
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleProvider)

	require.NoError(t, h.CreateServiceRequest(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAcceptServiceRequest_Conflict(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodPost, "/requests/"+requestID.String()+"/accept", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleProvider)

	uc.EXPECT().
		AcceptServiceRequest(gomock.Any(), gomock.Any(), requestID).
		Return(marketplace.ErrInvalidTransition)

	require.NoError(t, h.AcceptServiceRequest(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelServiceRequest_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodPost, "/requests/"+requestID.String()+"/cancel", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleHomeowner)

	uc.EXPECT().
		CancelServiceRequest(gomock.Any(), userID, requestID).
		Return(nil)

	require.NoError(t, h.CancelServiceRequest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateServiceRequest_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodPut, "/requests/"+requestID.String(), `{"details":"Leaking sink and blocked drain"}`)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleHomeowner)

	uc.EXPECT().
		UpdateServiceRequest(gomock.Any(), userID, requestID, gomock.Any()).
		Return(&models.ServiceRequest{
			ID:          requestID,
			HomeownerID: userID,
			Details:     "Leaking sink and blocked drain",
			Status:      models.RequestStatusPending,
		}, nil)

	require.NoError(t, h.UpdateServiceRequest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Leaking sink and blocked drain")
}

func TestUpdateServiceRequest_Conflict(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodPut, "/requests/"+requestID.String(), `{"details":"New details"}`)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleHomeowner)

	uc.EXPECT().
		UpdateServiceRequest(gomock.Any(), userID, requestID, gomock.Any()).
		Return(nil, marketplace.ErrInvalidTransition)

	require.NoError(t, h.UpdateServiceRequest(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only pending requests can be edited")
}

func TestDeleteServiceRequest_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodDelete, "/requests/"+requestID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleHomeowner)

	uc.EXPECT().
		DeleteServiceRequest(gomock.Any(), userID, requestID).
		Return(nil)

	require.NoError(t, h.DeleteServiceRequest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteServiceRequest_Forbidden(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodDelete, "/requests/"+requestID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleHomeowner)

	uc.EXPECT().
		DeleteServiceRequest(gomock.Any(), gomock.Any(), requestID).
		Return(marketplace.ErrNotAllowed)

	require.NoError(t, h.DeleteServiceRequest(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeactivateAccount_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	c, rec := newContext(e, http.MethodDelete, "/users/me", "")
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleHomeowner)

	uc.EXPECT().
		DeactivateAccount(gomock.Any(), userID).
		Return(nil)

	require.NoError(t, h.DeactivateAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account deactivated")
}

func TestListNotifications_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	c, rec := newContext(e, http.MethodGet, "/notifications", "")
	c.Set("user_id", userID)

	uc.EXPECT().
		ListNotifications(gomock.Any(), userID).
		Return([]models.Notification{
			{ID: uuid.New(), UserID: userID, Kind: models.NotificationPaymentCompleted, Message: "Payment received"},
		}, nil)

	require.NoError(t, h.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment received")
}
