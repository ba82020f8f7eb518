package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleHomeowner = "homeowner"
	RoleProvider  = "provider"
)

// User represents a user in the system (either homeowner or service provider)
type User struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	MSISDN       string           `json:"msisdn" db:"msisdn"`
	FullName     string           `json:"fullname" db:"fullname"`
	Role         string           `json:"role" db:"role"`
	Bio          string           `json:"bio,omitempty" db:"bio"`
	City         string           `json:"city,omitempty" db:"city"`
	PasswordHash string           `json:"-" db:"password_hash"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
	IsActive     bool             `json:"is_active" db:"is_active"`
	Provider     *ProviderProfile `json:"provider_profile,omitempty"`
}

// ProviderProfile represents additional information for provider users
type ProviderProfile struct {
	UserID          uuid.UUID   `json:"user_id" db:"user_id"`
	CompanyName     string      `json:"company_name" db:"company_name"`
	Skills          string      `json:"skills" db:"skills"`
	ExperienceYears int         `json:"experience_years" db:"experience_years"`
	Latitude        float64     `json:"latitude" db:"latitude"`
	Longitude       float64     `json:"longitude" db:"longitude"`
	Geohash         string      `json:"geohash,omitempty" db:"geohash"`
	ServiceIDs      []uuid.UUID `json:"service_ids,omitempty" db:"-"`
}

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	MSISDN   string `json:"msisdn"`
	FullName string `json:"fullname"`
	Password string `json:"password"`
	Role     string `json:"role"`
	City     string `json:"city,omitempty"`
}

// LoginRequest is the request body for user login
type LoginRequest struct {
	MSISDN   string `json:"msisdn"`
	Password string `json:"password"`
}

// AuthResponse contains the authentication result
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// NearbyProvider is one result of a provider proximity search
type NearbyProvider struct {
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	DistanceKm  float64   `json:"distance_km"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}
