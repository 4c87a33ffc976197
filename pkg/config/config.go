package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Cookie  CookieConfig
	Redis   RedisConfig
	Storage StorageConfig
	Payment PaymentConfig
	Log     LogConfig
	Budget  BudgetConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	UploadMaxMB int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CookieConfig cookie HTTP-only que transporta la sesión.
type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

// RedisConfig caché de listados y rate limit. Addr vacío = deshabilitado.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	LoginPerMinute int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// StorageConfig almacenamiento de medios compatible con S3 (MinIO).
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base pública para construir la URL segura del objeto
}

// Enabled indica si hay almacenamiento de medios configurado.
func (c StorageConfig) Enabled() bool { return c.Endpoint != "" }

// PaymentConfig pasarela de pagos (API compatible con Stripe).
type PaymentConfig struct {
	APIKey   string // vacío = pasarela local de desarrollo
	BaseURL  string
	Currency string
}

// LogConfig nivel y archivo rotado opcional.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// BudgetConfig ruta opcional a la tabla de tarifas del calculador.
type BudgetConfig struct {
	RatesFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "interiores-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "interiores"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24*7),
			Issuer:     getString(v, "JWT_ISSUER", "interiores-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			UploadMaxMB: getInt(v, "UPLOAD_MAX_MB", 5),
		},
		Cookie: CookieConfig{
			Name:   getString(v, "SESSION_COOKIE_NAME", "session"),
			Domain: getString(v, "SESSION_COOKIE_DOMAIN", ""),
			Secure: getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:           getString(v, "REDIS_ADDR", ""),
			Password:       getString(v, "REDIS_PASSWORD", ""),
			DB:             getInt(v, "REDIS_DB", 0),
			LoginPerMinute: getInt(v, "RATE_LIMIT_LOGIN", 10),
		},
		Storage: StorageConfig{
			Endpoint:  getString(v, "STORAGE_ENDPOINT", ""),
			AccessKey: getString(v, "STORAGE_ACCESS_KEY", ""),
			SecretKey: getString(v, "STORAGE_SECRET_KEY", ""),
			Bucket:    getString(v, "STORAGE_BUCKET", "interiores-media"),
			UseSSL:    getBool(v, "STORAGE_USE_SSL", true),
			PublicURL: getString(v, "STORAGE_PUBLIC_URL", ""),
		},
		Payment: PaymentConfig{
			APIKey:   getString(v, "PAYMENT_API_KEY", ""),
			BaseURL:  getString(v, "PAYMENT_BASE_URL", "https://api.stripe.com"),
			Currency: getString(v, "PAYMENT_CURRENCY", "usd"),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			File:       getString(v, "LOG_FILE", ""),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 64),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 7),
			MaxAgeDays: getInt(v, "LOG_MAX_AGE_DAYS", 7),
		},
		Budget: BudgetConfig{
			RatesFile: getString(v, "BUDGET_RATES_FILE", ""),
		},
	}

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

// LoadFile decodifica un archivo YAML/JSON/TOML en out usando Viper (tags mapstructure).
// Se usa para tablas de configuración inyectadas, como las tarifas del calculador.
func LoadFile(path string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: leer %s: %w", path, err)
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("config: decodificar %s: %w", path, err)
	}
	return nil
}
