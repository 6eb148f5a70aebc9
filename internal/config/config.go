package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  The database settings
// are optional: when they are unset the MySQL archive collaborator
// is disabled and the in-memory store runs alone.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	JWTSecret        string // secret used to sign JWTs
	AccessTTLMin     int    // access token time-to-live in minutes
	BcryptCost       int    // bcrypt cost for password hashing
	AvailabilityDays int    // default availability window in days
	DBUser           string // archive database username (optional)
	DBPass           string // archive database password (optional)
	DBHost           string // archive database host (optional)
	DBPort           string // archive database port (optional)
	DBName           string // archive database name (optional)
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),
		Port:             must("APP_PORT"),
		JWTSecret:        must("JWT_SECRET"),
		AccessTTLMin:     mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:       mustInt("BCRYPT_COST"),
		AvailabilityDays: atoi(getenv("AVAILABILITY_DAYS", "30")),
		DBUser:           os.Getenv("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT", "3306"),
		DBName:           os.Getenv("DB_NAME"),
	}
}

// ArchiveEnabled reports whether enough database settings are
// present to run the durable archive collaborator.
func (c Config) ArchiveEnabled() bool {
	return c.DBHost != "" && c.DBName != "" && c.DBUser != ""
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal
// error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an
// integer.  If conversion fails, the application logs a fatal
// error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
