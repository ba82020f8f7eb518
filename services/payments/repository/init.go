package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/homeconnect/backend/internal/pkg/database"
	"github.com/homeconnect/backend/internal/pkg/models"
)

// PaymentRepository handles payment persistence and callback deduplication
type PaymentRepository struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PaymentRepository {
	return &PaymentRepository{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
