package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	BackendURL  string // base URL of this API, used to build gateway callback URLs
	FrontendURL string // base URL of the frontend, used for post-payment redirects

	StoreID    string // SSLCommerz merchant store id
	StorePass  string // SSLCommerz merchant store password
	Sandbox    bool   // use the SSLCommerz sandbox endpoint
	GatewayURL string // optional override for the gateway base URL

	InvoiceDir string // directory where generated invoice PDFs are written
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		BackendURL:  getEnv("BACKEND_URL", "http://localhost:3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		StoreID:    getEnv("SSLCZ_STORE_ID", ""),
		StorePass:  getEnv("SSLCZ_STORE_PASS", ""),
		Sandbox:    getEnvBool("SSLCZ_SANDBOX", true),
		GatewayURL: getEnv("SSLCZ_BASE_URL", ""),

		InvoiceDir: getEnv("INVOICE_DIR", "./invoices"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StoreID == "" || AppConfig.StorePass == "" {
		log.Println("Warning: SSLCommerz merchant credentials are not set. Payment initiation will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
