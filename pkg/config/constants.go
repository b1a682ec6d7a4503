package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// HEALTHYBITE_ tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv     = "HEALTHYBITE_APP_ENV"
	EnvPort       = "HEALTHYBITE_APP_PORT"
	EnvDBDSN      = "HEALTHYBITE_DB_DSN"
	EnvDBHost     = "HEALTHYBITE_DB_HOST"
	EnvDBUser     = "HEALTHYBITE_DB_USER"
	EnvDBName     = "HEALTHYBITE_DB_NAME"
	EnvRedisURL   = "HEALTHYBITE_REDIS_URL"
	EnvJWTSecret  = "HEALTHYBITE_JWT_SECRET"
	EnvJWTIssuer  = "HEALTHYBITE_JWT_ISSUER"
	EnvJWTExpMins = "HEALTHYBITE_JWT_EXPIRATION_MINUTES"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
