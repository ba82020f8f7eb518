package config

import (
	"log"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an env file (local development) and
// environment variables. Environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if v.GetString("APP_ENV") == "" || v.GetString("APP_ENV") == "local" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	setDefaults(v)

	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.NSQDAddress = v.GetString("NSQ_NSQD_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// M-Pesa gateway config
	configs.Mpesa.BaseURL = v.GetString("MPESA_BASE_URL")
	configs.Mpesa.APIKey = v.GetString("MPESA_API_KEY")
	configs.Mpesa.ShortCode = v.GetString("MPESA_SHORT_CODE")
	configs.Mpesa.CallbackURL = v.GetString("MPESA_CALLBACK_URL")
	configs.Mpesa.CallbackSecret = v.GetString("MPESA_CALLBACK_SECRET")
	configs.Mpesa.TimeoutSeconds = v.GetInt("MPESA_TIMEOUT_SECONDS")

	// Provider search config
	configs.Search.RadiusKm = v.GetFloat64("SEARCH_RADIUS_KM")
	configs.Search.GeohashPrecision = uint(v.GetInt("SEARCH_GEOHASH_PRECISION"))

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NSQ_NSQD_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_CHANNEL", "homeconnect")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "homeconnect")
	v.SetDefault("MPESA_TIMEOUT_SECONDS", 15)
	v.SetDefault("SEARCH_RADIUS_KM", 10.0)
	v.SetDefault("SEARCH_GEOHASH_PRECISION", 6)
	v.SetDefault("LOG_LEVEL", "info")
}
