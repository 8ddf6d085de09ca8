package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the fileshare API.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	Share   ShareConfig
	Metrics MetricsConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig locates the metadata documents and the blob directory.
type StorageConfig struct {
	DataDir       string
	UploadDir     string
	MaxUploadSize int64
}

// FolderDocument returns the path of the folder metadata document.
func (s StorageConfig) FolderDocument() string {
	return filepath.Join(s.DataDir, "folder-metadata.json")
}

// FileDocument returns the path of the file metadata document.
func (s StorageConfig) FileDocument() string {
	return filepath.Join(s.DataDir, "file-metadata.json")
}

// AuthConfig groups the admin credential and session settings.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	// AdminPasswordHash, when non-empty, is a bcrypt hash checked instead
	// of AdminPassword.
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration
	Production        bool
}

// ShareConfig controls how shared folder links are built.
type ShareConfig struct {
	BaseURL string
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("FILESHARE_API_HOST", "0.0.0.0"),
			Port:         getInt("FILESHARE_API_PORT", 8080),
			ReadTimeout:  getDuration("FILESHARE_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("FILESHARE_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("FILESHARE_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			DataDir:       getString("FILESHARE_DATA_DIR", "data"),
			UploadDir:     getString("FILESHARE_UPLOAD_DIR", filepath.Join("data", "uploads")),
			MaxUploadSize: getInt64("FILESHARE_MAX_UPLOAD_SIZE", 50*1024*1024),
		},
		Auth: AuthConfig{
			AdminUsername:     getString("FILESHARE_ADMIN_USERNAME", "admin"),
			AdminPassword:     getString("FILESHARE_ADMIN_PASSWORD", "password"),
			AdminPasswordHash: getString("FILESHARE_ADMIN_PASSWORD_HASH", ""),
			SessionSecret:     getString("FILESHARE_SESSION_SECRET", "change-me-to-a-32-byte-secret"),
			SessionTTL:        getDuration("FILESHARE_SESSION_TTL", 24*time.Hour),
			Production:        getBool("FILESHARE_PRODUCTION", false),
		},
		Share: ShareConfig{
			BaseURL: strings.TrimRight(getString("FILESHARE_BASE_URL", "http://localhost:8080"), "/"),
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("FILESHARE_METRICS_PATH", "/metrics"),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
