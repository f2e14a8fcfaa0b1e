package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Orders   OrdersConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	Migrate bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// RedisConfig configures the catalog read cache. An empty Addr disables it.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	CatalogTTLSecs int
}

// KafkaConfig configures order event publishing. No brokers disables it.
type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

type OrdersConfig struct {
	PageSize    int
	MaxPageSize int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "airport-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CATALOG_TTL_SECONDS", 300)
	viper.SetDefault("KAFKA_ORDER_TOPIC", "orders")
	viper.SetDefault("ORDERS_PAGE_SIZE", 5)
	viper.SetDefault("ORDERS_MAX_PAGE_SIZE", 100)

	// .env is optional, the environment wins anyway
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			Migrate: viper.GetBool("DB_MIGRATE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:           viper.GetString("REDIS_ADDR"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			DB:             viper.GetInt("REDIS_DB"),
			CatalogTTLSecs: viper.GetInt("REDIS_CATALOG_TTL_SECONDS"),
		},
		Kafka: KafkaConfig{
			Brokers:    ParseCSV(viper.GetString("KAFKA_BROKERS")),
			OrderTopic: viper.GetString("KAFKA_ORDER_TOPIC"),
		},
		Orders: OrdersConfig{
			PageSize:    viper.GetInt("ORDERS_PAGE_SIZE"),
			MaxPageSize: viper.GetInt("ORDERS_MAX_PAGE_SIZE"),
		},
	}

	return config, nil
}
