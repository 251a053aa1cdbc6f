package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Mail     MailConfig     `yaml:"mail"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"20"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"entomoguide"`
	TokenTTL         time.Duration `yaml:"token_ttl"          env:"AUTH_TOKEN_TTL"          env-default:"8h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	// PublicRateLimit caps login and registration attempts per client per minute.
	PublicRateLimit int `yaml:"public_rate_limit" env:"AUTH_PUBLIC_RATE_LIMIT" env-default:"20"`
}

// StorageConfig selects and configures blob storage for uploaded images.
type StorageConfig struct {
	Driver        string `yaml:"driver"          env:"STORAGE_DRIVER"          env-default:"local"`
	UploadsDir    string `yaml:"uploads_dir"     env:"STORAGE_UPLOADS_DIR"     env-default:"./uploads"`
	MaxUploadSize int64  `yaml:"max_upload_size" env:"STORAGE_MAX_UPLOAD_SIZE" env-default:"10485760"`

	S3Endpoint  string `yaml:"s3_endpoint"   env:"STORAGE_S3_ENDPOINT"`
	S3Region    string `yaml:"s3_region"     env:"STORAGE_S3_REGION"     env-default:"us-east-1"`
	S3Bucket    string `yaml:"s3_bucket"     env:"STORAGE_S3_BUCKET"`
	S3AccessKey string `yaml:"s3_access_key" env:"STORAGE_S3_ACCESS_KEY"`
	S3SecretKey string `yaml:"s3_secret_key" env:"STORAGE_S3_SECRET_KEY"`
	// S3PathStyle is needed for MinIO and most self-hosted endpoints.
	S3PathStyle bool `yaml:"s3_path_style" env:"STORAGE_S3_PATH_STYLE" env-default:"true"`
}

// IsS3 reports whether uploads go to an S3-compatible bucket.
func (c StorageConfig) IsS3() bool {
	return strings.EqualFold(c.Driver, "s3")
}

// MailConfig holds SMTP settings for notification emails.
// Credentials come from the environment or the config file only.
type MailConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"MAIL_ENABLED"    env-default:"false"`
	Host      string        `yaml:"host"       env:"MAIL_HOST"       env-default:"smtp.gmail.com"`
	Port      int           `yaml:"port"       env:"MAIL_PORT"       env-default:"587"`
	Username  string        `yaml:"username"   env:"MAIL_USERNAME"`
	Password  string        `yaml:"password"   env:"MAIL_PASSWORD"`
	From      string        `yaml:"from"       env:"MAIL_FROM"`
	FromName  string        `yaml:"from_name"  env:"MAIL_FROM_NAME"  env-default:"Entomoguide"`
	TLSPolicy string        `yaml:"tls_policy" env:"MAIL_TLS_POLICY" env-default:"mandatory"`
	Timeout   time.Duration `yaml:"timeout"    env:"MAIL_TIMEOUT"    env-default:"15s"`

	// AdminRecipient receives new-registration notices.
	AdminRecipient string `yaml:"admin_recipient" env:"MAIL_ADMIN_RECIPIENT"`
	// ReviewURL is linked from the admin notice.
	ReviewURL string `yaml:"review_url" env:"MAIL_REVIEW_URL" env-default:"http://localhost:8100/solicitacoes"`
	// LoginURL is linked from the approval notice.
	LoginURL string `yaml:"login_url" env:"MAIL_LOGIN_URL" env-default:"http://localhost:8100/login"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
