package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Password PasswordConfig
	Storage  StorageConfig
	Media    MediaConfig
	WhatsApp WhatsAppConfig
	Cart     CartConfig
	Limits   RateLimitConfig
	Features FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HEALTHYBITE_APP_ENV" required:"true"`
	Port         string `envconfig:"HEALTHYBITE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HEALTHYBITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HEALTHYBITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"HEALTHYBITE_DB_DSN"`

	Host     string `envconfig:"HEALTHYBITE_DB_HOST"`
	Port     int    `envconfig:"HEALTHYBITE_DB_PORT" default:"5432"`
	User     string `envconfig:"HEALTHYBITE_DB_USER"`
	Password string `envconfig:"HEALTHYBITE_DB_PASSWORD"`
	Name     string `envconfig:"HEALTHYBITE_DB_NAME"`
	SSLMode  string `envconfig:"HEALTHYBITE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HEALTHYBITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HEALTHYBITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HEALTHYBITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HEALTHYBITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HEALTHYBITE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"HEALTHYBITE_REDIS_ADDR"`
	Password     string        `envconfig:"HEALTHYBITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"HEALTHYBITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HEALTHYBITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HEALTHYBITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HEALTHYBITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HEALTHYBITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HEALTHYBITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"HEALTHYBITE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"HEALTHYBITE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"HEALTHYBITE_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"HEALTHYBITE_SESSION_TTL_MINUTES" default:"720"`
}

// SessionTTL returns the admin session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HEALTHYBITE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HEALTHYBITE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HEALTHYBITE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HEALTHYBITE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HEALTHYBITE_ARGON_KEY_LEN" default:"32"`
}

// StorageConfig points at the hosted Supabase Storage bucket that keeps
// product and program images.
type StorageConfig struct {
	ProjectURL string `envconfig:"HEALTHYBITE_STORAGE_PROJECT_URL"`
	ServiceKey string `envconfig:"HEALTHYBITE_STORAGE_SERVICE_KEY"`
	Bucket     string `envconfig:"HEALTHYBITE_STORAGE_BUCKET" default:"product-images"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"HEALTHYBITE_MAX_UPLOAD_MB" default:"5"`
}

// WhatsAppConfig carries the destination number for checkout hand-off links.
type WhatsAppConfig struct {
	PhoneNumber string `envconfig:"HEALTHYBITE_WHATSAPP_NUMBER" default:"212654352802"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"HEALTHYBITE_CART_SNAPSHOT_TTL" default:"720h"`
	OpenDrawer  bool          `envconfig:"HEALTHYBITE_CART_OPEN_DRAWER_ON_ADD" default:"true"`
}

// RateLimitConfig throttles the admin login surface. Zero limits disable it.
type RateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"HEALTHYBITE_LOGIN_RATE_WINDOW" default:"5m"`
	LoginIPLimit    int           `envconfig:"HEALTHYBITE_LOGIN_RATE_IP_LIMIT" default:"20"`
	LoginEmailLimit int           `envconfig:"HEALTHYBITE_LOGIN_RATE_EMAIL_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HEALTHYBITE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if parts[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
