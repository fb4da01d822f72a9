package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "postline/internal/app"
	"postline/internal/bootstrap"
	"postline/internal/cache"
	"postline/internal/platform/rabbitmq"
	"postline/internal/repository"
	"postline/internal/transport/http/handler"
	"postline/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	subscriptionRepo := repository.NewSubscriptionRepository(app.MySQL)
	notificationRepo := repository.NewNotificationRepository(app.MySQL)

	revoker := cache.NewTokenRevocation(app.Redis)
	publisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.PostEventQueue)

	tokenTTL := time.Duration(app.Config.Auth.TokenExpireMinute) * time.Minute
	userService := appsvc.NewUserService(
		userRepo,
		revoker,
		app.Config.Auth.SessionSecret,
		app.Config.Auth.ResetSecret,
		tokenTTL,
	)
	postService := appsvc.NewPostService(postRepo, publisher)
	subscriptionService := appsvc.NewSubscriptionService(userRepo, subscriptionRepo)
	notificationService := appsvc.NewNotificationService(notificationRepo)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authRequired := middleware.AuthBearer(app.Config.Auth.SessionSecret, userService, revoker)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/access-token", authHandler.AccessToken)
	authGroup.POST("/reset-password", authRequired, authHandler.ResetPassword)
	authGroup.POST("/logout", authRequired, authHandler.Logout)

	userGroup := v1.Group("/users")
	userGroup.POST("", userHandler.Register)
	userGroup.GET("/:user_id", authRequired, userHandler.Get)
	userGroup.PATCH("/:user_id", authRequired, userHandler.Patch)
	userGroup.DELETE("/:user_id", authRequired, userHandler.Delete)

	postGroup := v1.Group("/posts")
	postGroup.Use(authRequired)
	postGroup.POST("", postHandler.Create)
	postGroup.GET("/:post_id", postHandler.Get)
	postGroup.PATCH("/:post_id", postHandler.Patch)
	postGroup.DELETE("/:post_id", postHandler.Delete)

	subscriptionGroup := v1.Group("/subscriptions")
	subscriptionGroup.Use(authRequired)
	subscriptionGroup.GET("", subscriptionHandler.List)
	subscriptionGroup.POST("/add_subscription/:username", subscriptionHandler.Add)
	subscriptionGroup.POST("/remove_subscription/:username", subscriptionHandler.Remove)

	notificationGroup := v1.Group("/notifications")
	notificationGroup.Use(authRequired)
	notificationGroup.GET("", notificationHandler.List)

	return router
}
