package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/craftlink/community-api/docs"
	"github.com/craftlink/community-api/internal/api/handler"
	"github.com/craftlink/community-api/internal/api/middleware"
	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
	"github.com/craftlink/community-api/internal/core/service"
	aiclient "github.com/craftlink/community-api/internal/infrastructure/ai"
	mongodb "github.com/craftlink/community-api/internal/infrastructure/db/mongo"
	redisdb "github.com/craftlink/community-api/internal/infrastructure/db/redis"
	"github.com/craftlink/community-api/internal/infrastructure/queue"
	"github.com/craftlink/community-api/internal/pkg/config"
)

// RouterDeps carries the shared infrastructure the router wires handlers to.
type RouterDeps struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Dispatcher *queue.Dispatcher
	Broker     ports.MessageBroker
	Config     *config.Config
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("craftlink"))

	// --- Repositories ---
	identityRepo := mongodb.NewIdentityRepository(deps.Mongo)
	requestRepo := mongodb.NewRequestRepository(deps.Mongo)
	messageRepo := mongodb.NewMessageRepository(deps.Mongo)
	forumRepo := mongodb.NewForumRepository(deps.Mongo)
	pointsReader := redisdb.NewPointsReader(deps.Redis)

	// --- Services ---
	cfg := deps.Config
	authService := service.NewAuthService(identityRepo, cfg.JWTSecret, 24*time.Hour)
	profileService := service.NewProfileService(identityRepo, pointsReader, deps.Logger)
	requestService := service.NewRequestService(requestRepo, identityRepo, deps.Logger)
	conversationService := service.NewConversationService(messageRepo, identityRepo, deps.Dispatcher, deps.Broker, deps.Logger)
	forumService := service.NewForumService(forumRepo, identityRepo, deps.Logger)
	aiProvider := aiclient.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Timeout)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	requestHandler := handler.NewRequestHandler(requestService)
	chatHandler := handler.NewChatHandler(conversationService)
	wsHandler := handler.NewWSHandler(conversationService, cfg.JWTSecret, deps.Logger)
	wsHandler.AcceptInsecure = cfg.Env == "development"
	forumHandler := handler.NewForumHandler(forumService, deps.Logger)
	aiHandler := handler.NewAIHandler(aiProvider, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Websocket stream authenticates via query token, outside the request
	// timeout since the connection is long-lived.
	e.GET("/ws/chat", wsHandler.Stream)

	// --- Authenticated API ---
	v1 := e.Group("/v1")
	v1.Use(middleware.Auth(cfg.JWTSecret))
	// Tokens carrying an unknown role are rejected outright.
	v1.Use(middleware.RequireRole(domain.RoleArtisan, domain.RoleMentor))
	v1.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	v1.GET("/users/me", profileHandler.Me)
	v1.PUT("/users/me", profileHandler.Update)
	v1.GET("/users/me/points", profileHandler.Points)
	v1.GET("/users", profileHandler.Search)
	v1.GET("/users/:id", profileHandler.Get)

	v1.POST("/requests", requestHandler.Create)
	v1.GET("/requests", requestHandler.List)
	v1.POST("/requests/:id/response", requestHandler.Respond)

	v1.GET("/chat/:user_id", chatHandler.History)
	v1.POST("/chat/:user_id", chatHandler.Send)

	v1.GET("/forum/posts", forumHandler.ListPosts)
	v1.POST("/forum/posts", forumHandler.CreatePost)

	ai := v1.Group("/ai")
	ai.POST("/images", aiHandler.GenerateImage)
	ai.POST("/transcriptions", aiHandler.SpeechToText)
	ai.POST("/speech", aiHandler.TextToSpeech)
	ai.POST("/ideas", aiHandler.GenerateIdeas)

	return e
}
