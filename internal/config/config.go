package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Minio     MinioConfig
	Upload    UploadConfig
	Thumbnail ThumbnailConfig
	Auth      AuthConfig
	Events    EventsConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host          string `envconfig:"SERVER_HOST" default:"localhost"`
	Port          string `envconfig:"SERVER_PORT" default:"8080"`
	PublicBaseURL string `envconfig:"SERVER_PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

// StorageConfig selects where asset bytes live. The local driver keeps
// everything under Directory; the s3 driver goes through minio.
type StorageConfig struct {
	Driver    string `envconfig:"STORAGE_DRIVER" default:"local"`
	Directory string `envconfig:"STORAGE_DIRECTORY" default:"uploads"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	MaxFileSize      int64 `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"524288000"`     // 500MiB
	MaxThumbnailSize int64 `envconfig:"UPLOAD_MAX_THUMBNAIL_SIZE" default:"20971520"` // 20MiB
	DefaultPageSize  int   `envconfig:"UPLOAD_DEFAULT_PAGE_SIZE" default:"24"`
	MaxPageSize      int   `envconfig:"UPLOAD_MAX_PAGE_SIZE" default:"100"`
}

type ThumbnailConfig struct {
	FFmpegPath  string        `envconfig:"THUMBNAIL_FFMPEG_PATH" default:"ffmpeg"`
	FFprobePath string        `envconfig:"THUMBNAIL_FFPROBE_PATH" default:"ffprobe"`
	SeekOffset  time.Duration `envconfig:"THUMBNAIL_SEEK_OFFSET" default:"1s"`
	Timeout     time.Duration `envconfig:"THUMBNAIL_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	Enabled  bool          `envconfig:"AUTH_ENABLED" default:"true"`
	Secret   string        `envconfig:"AUTH_JWT_SECRET" default:"change-me"`
	Issuer   string        `envconfig:"AUTH_JWT_ISSUER" default:"movie-api"`
	TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

type EventsConfig struct {
	Enabled     bool   `envconfig:"EVENTS_ENABLED" default:"false"`
	NATSURL     string `envconfig:"EVENTS_NATS_URL" default:"nats://localhost:4222"`
	StreamName  string `envconfig:"EVENTS_STREAM_NAME" default:"ASSETS"`
	SubjectBase string `envconfig:"EVENTS_SUBJECT_BASE" default:"asset"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
