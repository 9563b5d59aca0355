package utils

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"io/fs"
	"log"
	"os"
)

type Config struct {
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Photo storage
	PhotosDirectory string `yaml:"PHOTOS_DIRECTORY"`
	PhotoStorage    string `yaml:"PHOTO_STORAGE"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`

	// HTTP
	LogFile          string `yaml:"LOG_FILE"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     string `yaml:"RATE_LIMIT_MAX"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:          "8080",
		DBDriver:         "postgres",
		DBPath:           "recipes.db",
		PhotosDirectory:  "photos",
		PhotoStorage:     "local",
		LogFile:          "./logs/app.log",
		CORSAllowOrigins: "*",
		RateLimitMax:     "20",
	}
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"DB_DRIVER":          &c.DBDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_PATH":            &c.DBPath,
		"PHOTOS_DIRECTORY":   &c.PhotosDirectory,
		"PHOTO_STORAGE":      &c.PhotoStorage,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"AWS_S3_ENDPOINT":    &c.AWSS3Endpoint,
		"LOG_FILE":           &c.LogFile,
		"CORS_ALLOW_ORIGINS": &c.CORSAllowOrigins,
		"RATE_LIMIT_MAX":     &c.RateLimitMax,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then lets
// .env and process environment variables override it. A missing file is
// not an error.
func LoadConfig(path string) error {
	loaded := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &loaded); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config file %s not found, using defaults and environment\n", path)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}

	// .env is optional
	_ = godotenv.Load()

	for key, field := range loaded.fields() {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}

	config = loaded
	return nil
}

func GetConfig(key string) string {
	if field, ok := config.fields()[key]; ok {
		return *field
	}
	return ""
}
