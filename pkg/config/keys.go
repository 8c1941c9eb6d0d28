package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "PYPER"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                 = "PYPER_APP_ENV"
	EnvPort                   = "PYPER_APP_PORT"
	EnvDBDSN                  = "PYPER_DB_DSN"
	EnvDBHost                 = "PYPER_DB_HOST"
	EnvDBUser                 = "PYPER_DB_USER"
	EnvDBName                 = "PYPER_DB_NAME"
	EnvRedisURL               = "PYPER_REDIS_URL"
	EnvJWTSecret              = "PYPER_JWT_SECRET"
	EnvJWTIssuer              = "PYPER_JWT_ISSUER"
	EnvJWTExpMins             = "PYPER_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "PYPER_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
