package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI     string
	DBName       string
	StripeSecret string
	Port         string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:     mongoURI(),
		DBName:       getEnvOrDefault("DB_NAME", "bonsaiShop"),
		StripeSecret: getEnvOrDefault("STRIPE_SECRET", ""),
		Port:         getEnvOrDefault("PORT", "5000"),
	}
}

// mongoURI prefers an explicit MONGO_URI and otherwise composes one from
// the DB_USER/DB_PASS credential pair the deployment environment provides.
func mongoURI() string {
	if uri := strings.TrimSpace(os.Getenv("MONGO_URI")); uri != "" {
		return uri
	}

	host := getEnvOrDefault("DB_HOST", "localhost:27017")
	user := strings.TrimSpace(os.Getenv("DB_USER"))
	pass := strings.TrimSpace(os.Getenv("DB_PASS"))
	if user == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s", user, pass, host)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
