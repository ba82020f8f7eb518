package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeconnect/backend/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "homeconnect-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		msisdn string
		role   string
	}{
		{
			name:   "provider token",
			userID: uuid.New(),
			msisdn: "254712345678",
			role:   models.RoleProvider,
		},
		{
			name:   "homeowner token",
			userID: uuid.New(),
			msisdn: "254798765432",
			role:   models.RoleHomeowner,
		},
		{
			name:   "empty role still signs",
			userID: uuid.New(),
			msisdn: "254712345678",
			role:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.msisdn, tt.role, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.msisdn, claims["msisdn"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, cfg.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	cfg := getTestConfig()
	cfg.JWT.Expiration = 30

	before := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), "254712345678", models.RoleHomeowner, cfg)
	after := time.Now()

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.GreaterOrEqual(t, expiresAt, before.Add(30*time.Minute).Unix())
	assert.LessOrEqual(t, expiresAt, after.Add(30*time.Minute).Unix())
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	validToken, _, err := GenerateToken(userID, "254712345678", models.RoleProvider, cfg)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
	}{
		{
			name:        "valid token",
			tokenString: validToken,
			secret:      cfg.JWT.Secret,
		},
		{
			name:        "wrong secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "malformed token",
			tokenString: "invalid.token.string",
			secret:      cfg.JWT.Secret,
			expectError: true,
		},
		{
			name:        "empty token",
			tokenString: "",
			secret:      cfg.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.tokenString, tt.secret)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, claims)
			claimsMap := *claims
			assert.Equal(t, userID.String(), claimsMap["user_id"])
			assert.Equal(t, models.RoleProvider, claimsMap["role"])
			assert.Equal(t, cfg.JWT.Issuer, claimsMap["iss"])
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.JWT.Expiration = -1

	tokenString, _, err := GenerateToken(uuid.New(), "254712345678", models.RoleProvider, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
