package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Invoice   InvoiceConfig
	Company   CompanyConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// InvoiceConfig controls invoice numbering and money formatting.
type InvoiceConfig struct {
	NumberPrefix   string
	CurrencySymbol string
	Locale         string
	DueDays        int
}

// CompanyConfig is the fixed letterhead/footer content printed on every PDF.
type CompanyConfig struct {
	Name         string
	Email        string
	Phone        string
	FooterNote   string
	PDFWatermark string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "invoicely-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "invoicely")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("INVOICE_NUMBER_PREFIX", "INV")
	viper.SetDefault("INVOICE_CURRENCY_SYMBOL", "$")
	viper.SetDefault("INVOICE_LOCALE", "en")
	viper.SetDefault("INVOICE_DUE_DAYS", 30)
	viper.SetDefault("COMPANY_NAME", "Invoicely")
	viper.SetDefault("COMPANY_EMAIL", "billing@invoicely.example")
	viper.SetDefault("COMPANY_PHONE", "")
	viper.SetDefault("COMPANY_FOOTER_NOTE", "Thank you for your business! Questions? Contact us anytime.")
	viper.SetDefault("COMPANY_PDF_WATERMARK", "INVOICE")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Invoice: InvoiceConfig{
			NumberPrefix:   viper.GetString("INVOICE_NUMBER_PREFIX"),
			CurrencySymbol: viper.GetString("INVOICE_CURRENCY_SYMBOL"),
			Locale:         viper.GetString("INVOICE_LOCALE"),
			DueDays:        viper.GetInt("INVOICE_DUE_DAYS"),
		},
		Company: CompanyConfig{
			Name:         viper.GetString("COMPANY_NAME"),
			Email:        viper.GetString("COMPANY_EMAIL"),
			Phone:        viper.GetString("COMPANY_PHONE"),
			FooterNote:   viper.GetString("COMPANY_FOOTER_NOTE"),
			PDFWatermark: viper.GetString("COMPANY_PDF_WATERMARK"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
