package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/louis833/Donnachy-Electrical/internal/httpapi"
	"github.com/louis833/Donnachy-Electrical/internal/storage"
)

const (
	publicRouteContact = "/api/contact"
	publicRouteHealth  = "/api/health"

	corsOriginWildcard      = "*"
	corsHeaderContentType   = "Content-Type"
	httpMethodGet           = "GET"
	httpMethodOptions       = "OPTIONS"
	httpMethodPost          = "POST"
	corsPreflightCacheHours = 12
)

var (
	corsAllowedMethods = []string{httpMethodPost, httpMethodGet, httpMethodOptions}
	corsAllowedHeaders = []string{corsHeaderContentType}
	corsExposedHeaders = []string{corsHeaderContentType}
	corsAllowOrigins   = []string{corsOriginWildcard}
)

func buildRouter(database *gorm.DB, logger *zap.Logger, serverConfig ServerConfig, contactNotifier httpapi.ContactNotifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpapi.RequestLogger(logger))

	// Behind a reverse proxy the rate limiter must key on the forwarded
	// client address, not the proxy's.
	if len(serverConfig.TrustedProxies) > 0 {
		if proxyErr := router.SetTrustedProxies(serverConfig.TrustedProxies); proxyErr != nil {
			logger.Fatal(loggerContextTrustedProxies, zap.Error(proxyErr))
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsAllowOrigins,
		AllowMethods:     corsAllowedMethods,
		AllowHeaders:     corsAllowedHeaders,
		ExposeHeaders:    corsExposedHeaders,
		AllowCredentials: false,
		MaxAge:           corsPreflightCacheHours * time.Hour,
	}))

	contactRepository := storage.NewContactRepository(database)
	rateLimiter := httpapi.NewSlidingWindowRateLimiter(httpapi.DefaultRateLimitWindow, httpapi.DefaultRateLimitMaxRequests)
	publicHandlers := httpapi.NewPublicHandlers(contactRepository, logger, rateLimiter, contactNotifier)
	healthHandlers := httpapi.NewHealthHandlers(serverConfig.BusinessName)

	router.POST(publicRouteContact, publicHandlers.CreateContact)
	router.GET(publicRouteHealth, healthHandlers.Health)

	if serverConfig.StaticDirectory != "" {
		router.NoRoute(httpapi.StaticFrontendHandler(serverConfig.StaticDirectory))
	}

	return router
}
