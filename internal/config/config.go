package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the attendance policy every derivation depends on.
// The timezone defines the organizational day boundary; a check-in at 23:30
// local time belongs to that local date regardless of what UTC says.
type AttendanceConfig struct {
	Timezone              string
	ShiftStart            time.Duration
	GraceMinutes          int
	HalfDayThresholdHours float64
	StandardShiftHours    float64
	WeekendDays           []string
}

// Policy converts the config block into the domain policy value.
func (a AttendanceConfig) Policy() attendance.Policy {
	return attendance.Policy{
		ShiftStart:            a.ShiftStart,
		GraceMinutes:          a.GraceMinutes,
		HalfDayThresholdHours: a.HalfDayThresholdHours,
		StandardShiftHours:    a.StandardShiftHours,
	}
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub-wfm"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance policy configuration
	shiftStart, err := parseClock(getEnv("ATTENDANCE_SHIFT_START", "09:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SHIFT_START: %w", err)
	}

	graceMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_GRACE_MINUTES: %w", err)
	}

	halfDayThreshold, err := strconv.ParseFloat(getEnv("ATTENDANCE_HALF_DAY_THRESHOLD_HOURS", "6"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HALF_DAY_THRESHOLD_HOURS: %w", err)
	}

	standardShift, err := strconv.ParseFloat(getEnv("ATTENDANCE_STANDARD_SHIFT_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_STANDARD_SHIFT_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		Timezone:              getEnv("ATTENDANCE_TIMEZONE", "UTC"),
		ShiftStart:            shiftStart,
		GraceMinutes:          graceMinutes,
		HalfDayThresholdHours: halfDayThreshold,
		StandardShiftHours:    standardShift,
		WeekendDays:           getEnvSlice("ATTENDANCE_WEEKEND_DAYS"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
		return fmt.Errorf("ATTENDANCE_TIMEZONE is invalid: %w", err)
	}
	if c.Attendance.GraceMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_GRACE_MINUTES must not be negative")
	}
	if c.Attendance.HalfDayThresholdHours <= 0 {
		return fmt.Errorf("ATTENDANCE_HALF_DAY_THRESHOLD_HOURS must be positive")
	}
	if c.Attendance.StandardShiftHours < c.Attendance.HalfDayThresholdHours {
		return fmt.Errorf("ATTENDANCE_STANDARD_SHIFT_HOURS must be at least the half-day threshold")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// parseClock parses "HH:MM" into an offset from local midnight.
func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
