package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/votetally/internal/handler/http"
	redisclient "github.com/mikiasgoitom/votetally/internal/infrastructure/cache"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/config"
	database "github.com/mikiasgoitom/votetally/internal/infrastructure/database"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/votetally/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/votetally/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/repository/mongodb"
	pgrepo "github.com/mikiasgoitom/votetally/internal/infrastructure/repository/postgres"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/repository/serialized"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/store"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/votetally/internal/infrastructure/validator"
	"github.com/mikiasgoitom/votetally/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// repositories groups the storage implementations selected by STORAGE_DRIVER.
type repositories struct {
	items        contract.IItemRepository
	tallies      contract.ITallyRepository
	tallyStore   contract.ITallyStore
	interactions contract.IInteractionRepository
	close        func()
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger(appConfig.GetLogLevel())

	// Register custom validators
	if err := validator.RegisterCustomValidators(); err != nil {
		log.Fatalf("Failed to register custom validators: %v", err)
	}

	repos := openRepositories(appConfig, appLogger)
	defer repos.close()

	tallyRepo := repos.tallies
	if appConfig.GetTallyWriteMode() == config.TallyWriteSerialized {
		appLogger.Infof("tally writes serialized per item")
		tallyRepo = serialized.NewTallyRepository(repos.tallyStore)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	tokenSecret := appConfig.GetClientTokenSecret()
	if tokenSecret == "" {
		if appConfig.GetStorageDriver() != config.StorageMemory {
			log.Fatal("CLIENT_TOKEN_SECRET environment variable not set")
		}
		// Client ids die with the in-memory store anyway, so a per-process secret is enough.
		generated, err := randomgenerator.NewRandomGenerator().GenerateRandomToken(32)
		if err != nil {
			log.Fatalf("Failed to generate client token secret: %v", err)
		}
		tokenSecret = generated
		appLogger.Warnf("CLIENT_TOKEN_SECRET not set, using a random secret for this process")
	}
	jwtManager, err := jwt.NewJWTManager(tokenSecret, appConfig.GetClientTokenTTL())
	if err != nil {
		log.Fatalf("Failed to configure client tokens: %v", err)
	}
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	if appConfig.GetAdminKeyHash() == "" {
		appLogger.Warnf("ADMIN_KEY_HASH not set, admin routes will refuse every request")
	}

	// Dependency Injection: Usecases
	voteUsecase := usecase.NewVoteUsecase(tallyRepo, repos.interactions, appValidator, appLogger)
	itemUsecase := usecase.NewItemUseCase(repos.items, uuidGenerator, appValidator, appLogger)
	clientUsecase := usecase.NewClientUsecase(jwtService, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		voteUsecase.SetTallyCache(store.NewTallyCacheStore(rdb, appConfig.GetTallyCacheTTL()))
		appLogger.Infof("tally cache enabled (ttl %s)", appConfig.GetTallyCacheTTL())
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(voteUsecase, itemUsecase, clientUsecase, hasher, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetPort()
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openRepositories(cfg usecasecontract.IConfigProvider, appLogger usecasecontract.IAppLogger) repositories {
	switch cfg.GetStorageDriver() {
	case config.StorageMongo:
		if cfg.GetMongoURI() == "" {
			log.Fatal("MONGODB_URI environment variable not set")
		}
		// Establish MongoDB connection
		mongoClient, err := database.NewMongoDBClient(cfg.GetMongoURI())
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		db := mongoClient.Client.Database(cfg.GetMongoDBName())
		interactions := mongodb.NewInteractionRepository(db)
		if err := interactions.EnsureIndexes(context.Background()); err != nil {
			log.Fatalf("Failed to prepare MongoDB indexes: %v", err)
		}
		tallies := mongodb.NewTallyRepository(db)
		appLogger.Infof("using MongoDB database %s", cfg.GetMongoDBName())
		return repositories{
			items:        mongodb.NewItemRepository(db),
			tallies:      tallies,
			tallyStore:   tallies,
			interactions: interactions,
			close:        mongoClient.Disconnect,
		}

	case config.StoragePostgres:
		if cfg.GetDatabaseURL() == "" {
			log.Fatal("DATABASE_URL environment variable not set")
		}
		db, err := database.NewPostgresDB(cfg.GetDatabaseURL(), pgrepo.Models()...)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		items := pgrepo.NewItemRepository(db)
		appLogger.Infof("using PostgreSQL storage")
		return repositories{
			items:        items,
			tallies:      items,
			tallyStore:   items,
			interactions: pgrepo.NewInteractionRepository(db),
			close: func() {
				if err := database.ClosePostgresDB(db); err != nil {
					appLogger.Errorf("failed to close postgres: %v", err)
				}
			},
		}

	case config.StorageMemory:
		appLogger.Warnf("using in-memory storage, votes are lost on restart")
		items := memory.NewItemRepository()
		return repositories{
			items:        items,
			tallies:      items,
			tallyStore:   items,
			interactions: memory.NewInteractionRepository(),
			close:        func() {},
		}

	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q (want mongo, postgres or memory)", cfg.GetStorageDriver())
	}
	return repositories{}
}
