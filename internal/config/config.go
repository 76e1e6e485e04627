package config

import (
	"os"
	"strconv"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration. An empty JWTSecret disables token issuance and
// verification; the affected endpoints report the missing configuration
// instead of failing silently.
type AuthConfig struct {
	JWTSecret   string
	TokenTTLMin int
	Issuer      string
}

// Storage configuration for the public blob store. An empty PublicHost
// disables uploads.
type StorageConfig struct {
	RootDir    string
	Bucket     string
	PublicHost string
}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Auth    AuthConfig
	Storage StorageConfig
}

// Default configuration values
const (
	DefaultServerPort    = "8080"
	DefaultServerHost    = ""
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDB       = "outreach"
	DefaultTokenTTLMin   = 24 * 60
	DefaultTokenIssuer   = "outreach"
	DefaultStorageRoot   = "/var/lib/outreach/storage"
	DefaultStorageBucket = "outreach-media"
)

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenTTLMin: getEnvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMin),
			Issuer:      getEnv("TOKEN_ISSUER", DefaultTokenIssuer),
		},
		Storage: StorageConfig{
			RootDir:    getEnv("STORAGE_ROOT", DefaultStorageRoot),
			Bucket:     getEnv("STORAGE_BUCKET", DefaultStorageBucket),
			PublicHost: getEnv("STORAGE_PUBLIC_HOST", ""),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Configured reports whether token issuance is possible.
func (a *AuthConfig) Configured() bool {
	return a.JWTSecret != ""
}

// Configured reports whether public uploads are possible.
func (s *StorageConfig) Configured() bool {
	return s.PublicHost != "" && s.Bucket != "" && s.RootDir != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
