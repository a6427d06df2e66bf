package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Artifacts ArtifactsConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ArtifactsConfig struct {
	ScalerPath string
	ModelPath  string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults reproduce the fixed address and artifact locations the
	// service has always used.
	v.SetDefault("SERVER_HOST", "127.0.0.1")
	v.SetDefault("SERVER_PORT", 8500)
	v.SetDefault("SCALER_PATH", "artifacts/scaler.json")
	v.SetDefault("MODEL_PATH", "artifacts/model.json")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Artifacts: ArtifactsConfig{
			ScalerPath: v.GetString("SCALER_PATH"),
			ModelPath:  v.GetString("MODEL_PATH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
