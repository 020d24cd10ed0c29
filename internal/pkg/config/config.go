package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   provider credentials), security settings
// - default: Values common across all environments (timezone, shop policy,
//   timeout), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Stripe   StripeConfig
	Calendar CalendarConfig
	Email    EmailConfig
	Shop     ShopConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Origin used for checkout return URLs when the request carries none.
	PublicOrigin string `envconfig:"PUBLIC_ORIGIN" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"require"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
}

type CalendarConfig struct {
	ServiceAccountJSON string `envconfig:"GOOGLE_SERVICE_ACCOUNT_JSON" required:"true"`
	CalendarID         string `envconfig:"GOOGLE_CALENDAR_ID" required:"true"`
	TimeZone           string `envconfig:"BOOKING_TIMEZONE" default:"Europe/London"`
}

type EmailConfig struct {
	ServiceID          string `envconfig:"EMAILJS_SERVICE_ID" required:"true"`
	PublicKey          string `envconfig:"EMAILJS_PUBLIC_KEY" required:"true"`
	CustomerTemplateID string `envconfig:"EMAILJS_CUSTOMER_TEMPLATE_ID" required:"true"`
	OwnerTemplateID    string `envconfig:"EMAILJS_OWNER_TEMPLATE_ID" required:"true"`
	// Optional; booking confirmations are skipped when unset.
	BookingTemplateID  string `envconfig:"EMAILJS_BOOKING_TEMPLATE_ID"`
	FromName           string `envconfig:"EMAIL_FROM_NAME" default:"Serrano Rivers"`
}

type ShopConfig struct {
	Currency                   string `envconfig:"SHOP_CURRENCY" default:"gbp"`
	FreeShippingThresholdPence int64  `envconfig:"SHOP_FREE_SHIPPING_THRESHOLD_PENCE" default:"10000"`
	FlatShippingPence          int64  `envconfig:"SHOP_FLAT_SHIPPING_PENCE" default:"500"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// Local development convenience; real environments set vars directly.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8889",
			PublicOrigin: "http://localhost:5173",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "Europe/London",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Stripe: StripeConfig{
			SecretKey: "sk_test_dummy",
		},
		Calendar: CalendarConfig{
			ServiceAccountJSON: "{}",
			CalendarID:         "test-calendar",
			TimeZone:           "Europe/London",
		},
		Email: EmailConfig{
			ServiceID:          "service_test",
			PublicKey:          "public_test",
			CustomerTemplateID: "template_customer",
			OwnerTemplateID:    "template_owner",
			BookingTemplateID:  "template_booking",
			FromName:           "Serrano Rivers",
		},
		Shop: ShopConfig{
			Currency:                   "gbp",
			FreeShippingThresholdPence: 10000,
			FlatShippingPence:          500,
		},
	}
}
