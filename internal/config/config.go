package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config memuat seluruh setting aplikasi sebagai struct bertipe.
// Semua key dienumerasi di sini dan divalidasi saat Load, tidak ada
// pembacaan os.Getenv tersebar di business logic.
type Config struct {
	Port string

	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig

	JWTSecret string

	Office   OfficeConfig
	Tracking TrackingConfig
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

// OfficeConfig adalah referensi geofence kantor tunggal.
type OfficeConfig struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Timezone     *time.Location
}

type TrackingConfig struct {
	Required bool
	TTL      time.Duration
}

// Load membaca environment (plus .env bila ada) dan memvalidasi isinya.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "presensi"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	lat, err := getEnvFloat("OFFICE_LATITUDE", -6.251426)
	if err != nil {
		return nil, err
	}
	lon, err := getEnvFloat("OFFICE_LONGITUDE", 107.113798)
	if err != nil {
		return nil, err
	}
	radius, err := getEnvFloat("OFFICE_RADIUS_METERS", 100)
	if err != nil {
		return nil, err
	}

	tzName := getEnv("OFFICE_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_TIMEZONE %q: %w", tzName, err)
	}

	cfg.Office = OfficeConfig{
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
		Timezone:     loc,
	}

	trackingTTL, err := getEnvDuration("TRACKING_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.Tracking = TrackingConfig{
		Required: strings.EqualFold(getEnv("TRACKING_REQUIRED", "true"), "true"),
		TTL:      trackingTTL,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	o := c.Office
	if math.IsNaN(o.Latitude) || o.Latitude < -90 || o.Latitude > 90 {
		return fmt.Errorf("OFFICE_LATITUDE out of range: %v", o.Latitude)
	}
	if math.IsNaN(o.Longitude) || o.Longitude < -180 || o.Longitude > 180 {
		return fmt.Errorf("OFFICE_LONGITUDE out of range: %v", o.Longitude)
	}
	if o.RadiusMeters <= 0 {
		return fmt.Errorf("OFFICE_RADIUS_METERS must be positive: %v", o.RadiusMeters)
	}
	if c.Tracking.TTL <= 0 {
		return fmt.Errorf("TRACKING_TTL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
