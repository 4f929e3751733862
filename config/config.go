package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	JWTSecret  []byte
	TokenTTL   time.Duration
	Port       string
}

// Load reads .env (if present) and the environment. TOKEN_TTL_HOURS
// defaults to 72, PORT to 8080.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		JWTSecret:  []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:   72 * time.Hour,
		Port:       "8080",
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %w", err)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables for every entity. The models declare no
// associations, so no foreign key constraints are created and deletes
// never cascade.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Country{},
		&models.Season{},
		&models.DishType{},
		&models.Chief{},
		&models.Dish{},
		&models.Product{},
		&models.Recipe{},
		&models.User{},
		&models.DishRating{},
		&models.OrderOfDishes{},
	)
	if err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	return nil
}
