package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/homeconnect/backend/internal/pkg/jwt"
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/marketplace"
)

const minPasswordLength = 8

// Register creates a new user and returns an auth token
func (uc *MarketplaceUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Role != models.RoleHomeowner && req.Role != models.RoleProvider {
		return nil, fmt.Errorf("%w: role must be %s or %s", marketplace.ErrInvalidInput, models.RoleHomeowner, models.RoleProvider)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", marketplace.ErrInvalidInput, minPasswordLength)
	}
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: fullname is required", marketplace.ErrInvalidInput)
	}

	valid, msisdn, err := utils.ValidateMSISDN(req.MSISDN)
	if !valid || err != nil {
		return nil, fmt.Errorf("%w: %v", marketplace.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		MSISDN:       msisdn,
		FullName:     req.FullName,
		Role:         req.Role,
		City:         req.City,
		PasswordHash: string(hash),
	}
	if err := uc.marketplaceRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("msisdn", utils.MaskPhoneNumber(msisdn)),
		logger.String("role", user.Role))

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.MSISDN, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// DeactivateAccount marks the caller's account inactive. The row stays so
// payment and request history keeps its references; login rejects inactive
// accounts.
func (uc *MarketplaceUC) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	if err := uc.marketplaceRepo.DeactivateUser(ctx, userID); err != nil {
		return err
	}

	uc.logger.Info("Account deactivated",
		logger.String("user_id", userID.String()))

	return nil
}

// Login authenticates a user by MSISDN and password
func (uc *MarketplaceUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	valid, msisdn, err := utils.ValidateMSISDN(req.MSISDN)
	if !valid || err != nil {
		return nil, marketplace.ErrInvalidCredentials
	}

	user, err := uc.marketplaceRepo.GetUserByMSISDN(ctx, msisdn)
	if err != nil {
		if errors.Is(err, marketplace.ErrUserNotFound) {
			return nil, marketplace.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, marketplace.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, marketplace.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.MSISDN, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}
