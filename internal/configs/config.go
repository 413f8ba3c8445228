package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/LallyDik/airtable-estate-flow/internal/constants"
)

// RecordStoreConfig — внешнее табличное хранилище записей
type RecordStoreConfig struct {
	BaseURL string
	BaseID  string
	APIKey  string
}

// UploadConfig — внешний сервис загрузки файлов
type UploadConfig struct {
	URL string
}

type RESTconfig struct {
	PORT string
}

type CorsConfig struct {
	AllowedOrigins []string
}

type SessionConfig struct {
	// FilePath — путь к JSON-блобу сессии
	FilePath string
}

// RabbitMQConfig — публикация событий; выключена по умолчанию
type RabbitMQConfig struct {
	URL     string
	Enabled bool
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	Cors         CorsConfig
	RecordStore  RecordStoreConfig
	Upload       UploadConfig
	Session      SessionConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// .env не обязателен: в контейнере все приходит из окружения
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "postings-service")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")

	origins := getEnvAsString("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.Cors.AllowedOrigins = append(cfg.Cors.AllowedOrigins, o)
		}
	}

	cfg.RecordStore.BaseURL = getEnvAsString("RECORDSTORE_URL", "https://api.airtable.com/v0")
	cfg.RecordStore.BaseID = os.Getenv("RECORDSTORE_BASE_ID")
	if cfg.RecordStore.BaseID == "" {
		return nil, fmt.Errorf("RECORDSTORE_BASE_ID environment variable is required")
	}
	cfg.RecordStore.APIKey = os.Getenv("RECORDSTORE_API_KEY")
	if cfg.RecordStore.APIKey == "" {
		return nil, fmt.Errorf("RECORDSTORE_API_KEY environment variable is required")
	}

	cfg.Upload.URL = getEnvAsString("UPLOAD_URL", "https://files.thinka.co.il/upload")

	cfg.Session.FilePath = os.Getenv("SESSION_FILE")
	if cfg.Session.FilePath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("could not resolve user config dir for session file: %w", err)
		}
		cfg.Session.FilePath = filepath.Join(configDir, cfg.AppName, constants.SessionFileName)
	}

	cfg.RabbitMQ.Enabled = getEnvAsBool("EVENTS_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: EVENTS_ENABLED is true, but RABBITMQ_URL is not set. Disabling events.")
			cfg.RabbitMQ.Enabled = false
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
