package config

// EnvPrefix is passed to envconfig; individual fields carry fully-qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "VITRINE_APP_ENV"
	EnvPort     = "VITRINE_APP_PORT"
	EnvDBDSN    = "VITRINE_DB_DSN"
	EnvDBHost   = "VITRINE_DB_HOST"
	EnvDBUser   = "VITRINE_DB_USER"
	EnvDBName   = "VITRINE_DB_NAME"
	EnvRedisURL = "VITRINE_REDIS_URL"

	EnvJWTSecret  = "VITRINE_JWT_SECRET"
	EnvJWTIssuer  = "VITRINE_JWT_ISSUER"
	EnvJWTExpMins = "VITRINE_JWT_EXPIRATION_MINUTES"

	EnvMPAccessToken     = "VITRINE_MP_ACCESS_TOKEN"
	EnvMPBaseURL         = "VITRINE_MP_BASE_URL"
	EnvMPNotificationURL = "VITRINE_MP_NOTIFICATION_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
