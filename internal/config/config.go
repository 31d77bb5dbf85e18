package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
}

// NewApp builds the process configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func NewApp() (App, error) {
	// optional; real env vars win over file values
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
	}, nil
}
