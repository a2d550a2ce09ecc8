package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento aceitos em STORE_DRIVER
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMySQL    = "mysql"
)

// DefaultStorageKey é a chave sob a qual o estado inteiro é gravado
const DefaultStorageKey = "vcontrol_pro_db_v_original_plus_caixa"

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY não configurada")
	ErrInvalidDriver    = errors.New("STORE_DRIVER inválido")
)

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	HTTPPort       string
	BasePath       string
	JWTSecret      string
	JWTExpiration  time.Duration
	AllowedOrigins []string
	LogLevel       string

	TLSCertPath     string
	TLSCertPassword string

	Store StoreConfig
}

// StoreConfig seleciona e configura o backend de persistência
type StoreConfig struct {
	Driver     string
	StorageKey string
	FilePath   string

	Postgres PostgresConfig

	MongoURI string
	MongoDB  string

	MySQLDSN string
}

// PostgresConfig contém as configurações para conexão com o PostgreSQL
type PostgresConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// ConnectionString retorna a URL de conexão, montada a partir das
// variáveis DB_* quando DATABASE_URL não foi informada
func (c PostgresConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// Load lê as configurações do ambiente
func Load() (*Config, error) {
	hours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "1"))
	maxLifetime, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "3600"))

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BasePath:        getEnv("API_BASE_PATH", "/api/v1"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpiration:   time.Duration(hours) * time.Hour,
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		TLSCertPath:     os.Getenv("TLS_PFX_PATH"),
		TLSCertPassword: os.Getenv("TLS_PFX_PASSWORD"),
		Store: StoreConfig{
			Driver:     strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
			StorageKey: getEnv("STORAGE_KEY", DefaultStorageKey),
			FilePath:   getEnv("STORE_FILE_PATH", "data/vcontrol.json"),
			Postgres: PostgresConfig{
				URL:             os.Getenv("DATABASE_URL"),
				Host:            getEnv("DB_HOST", "localhost"),
				Port:            port,
				User:            getEnv("DB_USER", "postgres"),
				Password:        getEnv("DB_PASSWORD", "postgres"),
				Database:        getEnv("DB_NAME", "vcontrol_pro"),
				SSLMode:         getEnv("DB_SSL_MODE", "disable"),
				MaxConnections:  int32(maxConns),
				MinConnections:  int32(minConns),
				MaxConnLifetime: time.Duration(maxLifetime) * time.Second,
			},
			MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:  getEnv("MONGO_DB", "vcontrol_pro"),
			MySQLDSN: os.Getenv("MYSQL_DSN"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate confere as configurações obrigatórias
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	switch c.Store.Driver {
	case DriverFile, DriverMemory, DriverPostgres, DriverMongo, DriverMySQL:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidDriver, c.Store.Driver)
	}
	if c.JWTExpiration <= 0 {
		c.JWTExpiration = 24 * time.Hour
	}
	return nil
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
