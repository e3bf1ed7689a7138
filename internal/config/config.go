package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret   string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	ServerPort  string
	Issuer      string
	AppEnv      string
	MultiTenant bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "apptrack")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "apptrack")
	AppEnv = getEnv("APP_ENV", "development")
	MultiTenant, _ = strconv.ParseBool(getEnv("MULTI_TENANT", "true"))
}

// IsProduction controls how much internal error detail crosses the
// trust boundary.
func IsProduction() bool {
	return AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
