package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
}

type JWTConfig struct {
	Token     string
	ExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisPass = "REDIS_PASSWORD"
	envRedisDB   = "REDIS_DB"
	envJWTSecret = "JWT_SECRET"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// инициализация JWT конфигурации
	cfg.JWT = JWTConfig{
		Token:     envOrDefault(envJWTSecret, "supersecretkey"),
		ExpiresIn: 24 * time.Hour,
	}

	// инициализация Redis конфигурации из env
	cfg.Redis.Host = envOrDefault(envRedisHost, "127.0.0.1")
	cfg.Redis.Port, err = strconv.Atoi(envOrDefault(envRedisPort, "6379"))
	if err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.DB, err = strconv.Atoi(envOrDefault(envRedisDB, "0"))
	if err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
