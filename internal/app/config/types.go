package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	InternalConfig struct {
		App App
		JWT JWT
		AI  AI
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env             string
		Port            string
		Version         string
		EndpointPrefix  string
		Timezone        string
		MaxRequests     int
		ShutdownTimeout int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AI struct {
		ApiKey           string
		ApiUrl           string
		Model            string
		TimeoutInSeconds int
		MaxTokens        int
	}
)
