package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	voteHandler   *VoteHandler
	itemHandler   *ItemHandler
	clientHandler *ClientHandler
	clientUsecase usecasecontract.IClientUseCase
	hasher        contract.IHasher
	config        usecasecontract.IConfigProvider
}

func NewRouter(voteUsecase usecasecontract.IVoteUseCase, itemUsecase usecasecontract.IItemUseCase, clientUsecase usecasecontract.IClientUseCase, hasher contract.IHasher, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		voteHandler:   NewVoteHandler(voteUsecase),
		itemHandler:   NewItemHandler(itemUsecase),
		clientHandler: NewClientHandler(clientUsecase),
		clientUsecase: clientUsecase,
		hasher:        hasher,
		config:        config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Client-Token", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitPerSecond())))

	router.GET("/health", HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/v1/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/clients", r.clientHandler.RegisterClientHandler)
	items := v1.Group("/items")
	{
		items.GET("", r.itemHandler.ListItemsHandler)
		items.GET("/:itemID", r.itemHandler.GetItemHandler)
		items.GET("/:itemID/tally", r.voteHandler.GetTallyHandler)
	}

	// Vote routes (client token required)
	voting := v1.Group("/items")
	voting.Use(middleware.ClientAuthMiddleware(r.clientUsecase))
	{
		voting.GET("/:itemID/vote", r.voteHandler.GetMyVoteHandler)
		voting.POST("/:itemID/vote", r.voteHandler.VoteItemHandler)
		voting.POST("/:itemID/like", r.voteHandler.LikeItemHandler)
		voting.POST("/:itemID/dislike", r.voteHandler.DislikeItemHandler)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware(r.hasher, r.config.GetAdminKeyHash()))
	{
		admin.POST("/items", r.itemHandler.CreateItemHandler)
	}
}
