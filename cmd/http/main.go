package main

import (
	"context"
	"net/http"
	"nutripulse-service/internal/app/config"
	"nutripulse-service/internal/app/delivery/http/middlewares"
	"nutripulse-service/internal/app/delivery/http/routers"
	"nutripulse-service/internal/app/drivers/database"
	"nutripulse-service/internal/app/drivers/logger"
	"nutripulse-service/internal/app/services/auth"
	"nutripulse-service/internal/app/services/chatbot"
	"nutripulse-service/internal/app/services/nurses"
	"nutripulse-service/internal/app/services/nutritionplans"
	"nutripulse-service/internal/app/services/patients"
	"nutripulse-service/internal/app/services/records"
	"nutripulse-service/internal/app/services/reports"
	"nutripulse-service/internal/app/services/shared/redis"
	"nutripulse-service/internal/app/services/users"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("shutting down, waiting for in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	nurseMongoRepository := nurses.NewNurseMongoRepository(bootstrap.MongoDB, dbName)
	healthRecordMongoRepository := records.NewHealthRecordMongoRepository(bootstrap.MongoDB, dbName)
	nutritionPlanMongoRepository := nutritionplans.NewNutritionPlanMongoRepository(bootstrap.MongoDB, dbName)
	chatMongoRepository := chatbot.NewChatMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		bootstrap.Logger,
		userMongoRepository,
		patientMongoRepository,
		nurseMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
	)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patient
	patientUsecase := patients.NewPatientUsecase(
		bootstrap.Logger,
		patientMongoRepository,
		userMongoRepository,
		nurseMongoRepository,
		healthRecordMongoRepository,
		nutritionPlanMongoRepository,
	)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Chatbot
	completionClient := chatbot.NewOpenAICompletionClient(bootstrap.Logger, bootstrap.InternalConfig.AI)
	chatbotUsecase := chatbot.NewChatbotUsecase(bootstrap.Logger, chatMongoRepository, completionClient)
	chatbotController := chatbot.NewChatbotController(bootstrap.Logger, chatbotUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(
		bootstrap.Logger,
		userMongoRepository,
		patientMongoRepository,
		healthRecordMongoRepository,
		nutritionPlanMongoRepository,
		chatMongoRepository,
	)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		chatbotController,
		reportController,
	)
}
