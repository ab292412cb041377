package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Session struct {
		Secret         string `yaml:"secret"`
		CookieName     string `yaml:"cookie_name"`
		TTLHours       int    `yaml:"ttl_hours"`
		CleanupMinutes int    `yaml:"cleanup_minutes"`
	} `yaml:"session"`
}

var AppConfig *Config

// defaults возвращает конфигурацию, с которой бинарь запускается вообще без
// config.yaml: локальный sqlite-файл и захардкоженный секрет сессии.
func defaults() Config {
	var cfg Config
	cfg.Server.Host = ""
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Database.DSN = "karigar.db"
	cfg.Session.Secret = "hackathon_secret_key"
	cfg.Session.CookieName = "karigar_session"
	cfg.Session.TTLHours = 24
	cfg.Session.CleanupMinutes = 60
	return cfg
}

// LoadConfig загружает конфигурацию: сначала дефолты, потом config.yaml
// (если есть), потом переменные окружения (режим теста/деплоя).
func LoadConfig() {
	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		log.Printf("Конфигурация загружена из %s", configPath)
	}

	// Переменные окружения перекрывают файл
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}
	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}

	AppConfig = &cfg
}

// GetConfig возвращает текущую конфигурацию (LoadConfig должен быть вызван)
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
